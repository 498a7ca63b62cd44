// Package tui implements the full screen result viewer.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	viewerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF")).Padding(0, 1)
	viewerFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Padding(0, 1)
)

// View opens content in a scrollable alternate screen pager and blocks
// until the user quits with q, esc or ctrl+c.
func View(title, content string) error {
	m := viewerModel{title: title, content: content}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type viewerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		chromeHeight := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		contentHeight := msg.Height - chromeHeight
		if contentHeight < 1 {
			contentHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight)
			m.viewport.SetContent(m.content)
			m.viewport.GotoTop()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}

	// Remaining messages drive the viewport: arrows, page keys, mouse wheel.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewerModel) View() string {
	if !m.ready {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.footerView())
}

func (m viewerModel) headerView() string {
	return viewerTitleStyle.Render(m.title)
}

func (m viewerModel) footerView() string {
	return viewerFooterStyle.Render(fmt.Sprintf("%3.0f%%  q to quit", m.viewport.ScrollPercent()*100))
}
