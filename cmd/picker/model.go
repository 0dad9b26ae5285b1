package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().
			Margin(1, 0, 1, 0)
	tableStyle = lipgloss.NewStyle().
			Margin(0, 0, 1, 0)
)

var (
	enterKey = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "pick image"),
	)
	nextKey = key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("tab", "next folder"),
	)
	prevKey = key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("shift+tab", "previous folder"),
	)
	quitKey = key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	)
)

type model struct {
	table    table.Model
	entries  []pickerEntry
	selected string
	err      error
}

func newModel(entries []pickerEntry, t table.Model) model {
	t.SetRows(entryRows(entries))
	return model{table: t, entries: entries}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, enterKey):
			cursor := m.table.Cursor()
			if cursor >= 0 && cursor < len(m.entries) {
				m.selected = m.entries[cursor].Asset.URL
				return m, tea.Quit
			}
			m.err = fmt.Errorf("no image selected")
			return m, nil
		case key.Matches(msg, nextKey):
			m.table.SetCursor(nextSection(m.entries, m.table.Cursor()))
			return m, nil
		case key.Matches(msg, prevKey):
			m.table.SetCursor(prevSection(m.entries, m.table.Cursor()))
			return m, nil
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(msg.Height - 8)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	header := "No images found in the public folder."
	if len(m.entries) > 0 {
		group := m.entries[m.table.Cursor()].Group
		folder := lipgloss.NewStyle().
			Background(lipgloss.Color(colorForGroup(group))).
			Padding(0, 1).
			Foreground(lipgloss.Color("229")).
			Render(group)
		header = fmt.Sprintf("%d images, folder %s", len(m.entries), folder)
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	instructions := "Press Enter to pick an image, Tab/Shift+Tab to jump between folders, Esc to quit."
	return baseStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			b.String(),
			lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Render(instructions),
		),
	)
}
