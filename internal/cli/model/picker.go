// Package model holds the Bubble Tea models of the demo CLI.
package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/gtkbridge/internal/cli/styles"
)

// PickerModel lets the user choose a scenario to run.
type PickerModel struct {
	list  list.Model
	help  help.Model
	keys  styles.PickerKeyMap
	theme *styles.Theme

	items    []styles.ScenarioItem
	selected string
	width    int
	height   int
}

// NewPickerModel creates a picker over items.
func NewPickerModel(theme *styles.Theme, items []styles.ScenarioItem) PickerModel {
	m := PickerModel{
		help:   styles.NewStyledHelp(theme),
		keys:   styles.DefaultPickerKeyMap(),
		theme:  theme,
		items:  items,
		width:  80,
		height: 24,
	}
	m.updateList()
	return m
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateList()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Run):
			if item, ok := m.list.SelectedItem().(styles.ScenarioItem); ok {
				m.selected = item.Name
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *PickerModel) updateList() {
	index := 0
	if m.list.Items() != nil {
		index = m.list.Index()
	}
	listHeight := max(m.height-6, 5)
	m.list = styles.NewScenarioList(m.theme, m.items, m.width, listHeight)
	m.list.Select(index)
}

// View implements tea.Model.
func (m PickerModel) View() string {
	t := m.theme
	header := t.Title.Render(styles.IconSession + " Pick a scenario")
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		m.list.View(),
		"",
		m.help.View(m.keys),
	)
}

// Selected returns the chosen scenario name, "" when the picker was cancelled.
func (m PickerModel) Selected() string {
	return m.selected
}

var _ tea.Model = (*PickerModel)(nil)
