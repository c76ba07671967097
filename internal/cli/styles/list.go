package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cursorEmpty    = "  "
	cursorSelected = "\u25b8 " // ▸ Black right-pointing small triangle
)

// ScenarioItem is a scenario entry in the picker.
type ScenarioItem struct {
	Name        string
	Description string
}

// FilterValue implements list.Item.
func (i ScenarioItem) FilterValue() string {
	return i.Name + " " + i.Description
}

// ScenarioDelegate renders scenario items with theme styling.
type ScenarioDelegate struct {
	Theme *Theme
}

func (d ScenarioDelegate) Height() int { return 2 }

func (d ScenarioDelegate) Spacing() int { return 0 }

func (d ScenarioDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d ScenarioDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(ScenarioItem)
	if !ok {
		return
	}

	t := d.Theme
	cursor := cursorEmpty
	titleStyle := t.ListItemTitle
	descStyle := t.ListItemDesc
	if index == m.Index() {
		cursor = cursorSelected
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
		descStyle = descStyle.Foreground(t.Text)
	}

	line1 := lipgloss.JoinHorizontal(lipgloss.Left, t.Highlight.Render(cursor), titleStyle.Render(si.Name))
	line2 := "  " + descStyle.Render(si.Description)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewScenarioList creates a themed list of scenarios.
func NewScenarioList(theme *Theme, items []ScenarioItem, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, ScenarioDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	return l
}
