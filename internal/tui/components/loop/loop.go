package loop

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/score100/internal/models"
)

type ToggleMsg struct {
	ID string
}

type AddMsg struct{}

type EditMsg struct {
	Item models.LoopItem
}

type DeleteMsg struct {
	ID string
}

type Item struct {
	Loop    models.LoopItem
	Checked bool
}

func (i Item) Title() string {
	if i.Checked {
		return "✓ " + i.Loop.Name
	}
	return "○ " + i.Loop.Name
}

func (i Item) Description() string { return i.Loop.Time }
func (i Item) FilterValue() string { return i.Loop.Name }

type KeyMap struct {
	Toggle key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter", "x"),
			key.WithHelp("space", "check"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add habit"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []models.LoopItem, checks models.LoopChecks, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Loop"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Edit, keys.Delete}
	}

	m := Model{list: l, keys: keys}
	m.SetItems(items, checks)
	return m
}

func (m *Model) SetItems(items []models.LoopItem, checks models.LoopChecks) {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = Item{Loop: it, Checked: checks[it.ID]}
	}
	m.list.SetItems(listItems)
}

// Progress returns how many habits are checked out of the total.
func (m Model) Progress() (checked, total int) {
	for _, it := range m.list.Items() {
		if item, ok := it.(Item); ok && item.Checked {
			checked++
		}
	}
	return checked, len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleMsg{ID: i.Loop.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditMsg{Item: i.Loop} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteMsg{ID: i.Loop.ID} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  Your loop is empty.\n  Press 'a' to add a habit."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
