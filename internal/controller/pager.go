package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pagerTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	pagerInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// PagerUI implements UI with an interactive Bubble Tea viewport, so large
// bundles can be reviewed without flooding the terminal.
type PagerUI struct {
	title string
}

// NewPagerUI creates a pager with the given header title.
func NewPagerUI(title string) *PagerUI {
	return &PagerUI{title: title}
}

// DisplayListing pages a plain rendering of the discovery rows.
func (p *PagerUI) DisplayListing(listings []Listing) error {
	var b strings.Builder

	for _, l := range listings {
		fmt.Fprintf(&b, "%d  %s  %s\n", l.Level, l.Path, l.Title)
	}

	return p.DisplayDocument(b.String())
}

// DisplayDocument pages the bundled document. q, esc and ctrl+c quit.
func (p *PagerUI) DisplayDocument(content string) error {
	model := newPagerModel(p.title, content)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

// Init implements tea.Model.
func (m pagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m pagerModel) View() string {
	if !m.ready {
		return "loading…"
	}

	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m pagerModel) headerView() string {
	return pagerTitleStyle.Render(m.title)
}

func (m pagerModel) footerView() string {
	return pagerInfoStyle.Render(fmt.Sprintf("%3.f%%  (q to quit)", m.viewport.ScrollPercent()*100))
}
