// mdbundle concatenates markdown file trees into a single document.
package main

import "github.com/mouse-blink/mdbundle/cmd"

func main() {
	cmd.Execute()
}
