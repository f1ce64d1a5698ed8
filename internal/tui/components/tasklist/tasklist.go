package tasklist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/score100/internal/constants"
	"github.com/julianstephens/score100/internal/models"
	"github.com/julianstephens/score100/internal/scheduler"
)

// SwipeStep is how far one key press drags the selected task.
const SwipeStep = 25

type AddTaskMsg struct{}

type CompleteTaskMsg struct {
	ID string
}

type SkipTaskMsg struct {
	ID string
}

type DeleteTaskMsg struct {
	ID string
}

type Item struct {
	Task   models.Task
	Passed bool
	Swipe  int
}

func (i Item) Title() string {
	switch {
	case i.Task.Completed:
		return "✓ " + i.Task.Name
	case i.Task.Skipped:
		return "– " + i.Task.Name
	case i.Passed:
		return "! " + i.Task.Name
	}
	return "○ " + i.Task.Name
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %d pts", i.Task.Time, i.Task.Points)
	switch {
	case i.Task.Skipped:
		desc += " | skipped"
	case i.Passed:
		desc += " | passed"
	}
	if i.Swipe > 0 {
		filled := i.Swipe * 10 / constants.SwipeThreshold
		desc += " " + strings.Repeat("▸", filled) + strings.Repeat("·", 10-filled)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Task.Name }

type KeyMap struct {
	Add      key.Binding
	Complete key.Binding
	Swipe    key.Binding
	Unswipe  key.Binding
	Skip     key.Binding
	Delete   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Complete: key.NewBinding(
			key.WithKeys("x", "enter"),
			key.WithHelp("x", "complete"),
		),
		Swipe: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "swipe to complete"),
		),
		Unswipe: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "swipe back"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list      list.Model
	keys      KeyMap
	swipeID   string
	swipeDist int
}

func New(tasks []models.Task, now time.Time, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete, keys.Swipe, keys.Skip, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete, keys.Swipe, keys.Unswipe, keys.Skip, keys.Delete}
	}

	m := Model{list: l, keys: keys}
	m.SetTasks(tasks, now)
	return m
}

// SetTasks replaces the items. tasks should already be in display order.
func (m *Model) SetTasks(tasks []models.Task, now time.Time) {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{Task: t, Passed: scheduler.IsPassed(t, now)}
	}
	m.list.SetItems(items)
	m.resetSwipe()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		selected, hasSelection := m.list.SelectedItem().(Item)
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddTaskMsg{} }
		case key.Matches(msg, m.keys.Complete):
			if hasSelection && !selected.Task.Completed {
				id := selected.Task.ID
				m.resetSwipe()
				return m, func() tea.Msg { return CompleteTaskMsg{ID: id} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Swipe):
			if hasSelection && !selected.Task.Completed {
				return m.swipe(selected.Task.ID, SwipeStep)
			}
			return m, nil
		case key.Matches(msg, m.keys.Unswipe):
			if hasSelection {
				return m.swipe(selected.Task.ID, -SwipeStep)
			}
			return m, nil
		case key.Matches(msg, m.keys.Skip):
			if hasSelection {
				id := selected.Task.ID
				return m, func() tea.Msg { return SkipTaskMsg{ID: id} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if hasSelection {
				id := selected.Task.ID
				return m, func() tea.Msg { return DeleteTaskMsg{ID: id} }
			}
			return m, nil
		}
	}

	before := m.list.Index()
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.resetSwipe()
	}
	return m, cmd
}

// swipe drags the selected task. Crossing the threshold completes it;
// anything short of it snaps back when the selection moves.
func (m Model) swipe(id string, delta int) (Model, tea.Cmd) {
	if m.swipeID != id {
		m.resetSwipe()
		m.swipeID = id
	}
	m.swipeDist += delta
	if m.swipeDist < 0 {
		m.swipeDist = 0
	}
	if m.swipeDist >= constants.SwipeThreshold {
		m.resetSwipe()
		return m, func() tea.Msg { return CompleteTaskMsg{ID: id} }
	}
	m.setSwipe(id, m.swipeDist)
	return m, nil
}

func (m *Model) resetSwipe() {
	if m.swipeID != "" {
		m.setSwipe(m.swipeID, 0)
	}
	m.swipeID = ""
	m.swipeDist = 0
}

func (m *Model) setSwipe(id string, dist int) {
	for idx, it := range m.list.Items() {
		if item, ok := it.(Item); ok && item.Task.ID == id {
			item.Swipe = dist
			m.list.SetItem(idx, item)
			return
		}
	}
}

// SwipeDistance reports how far the selected task has been dragged.
func (m Model) SwipeDistance() int {
	return m.swipeDist
}

// Selected returns the highlighted task.
func (m Model) Selected() (models.Task, bool) {
	item, ok := m.list.SelectedItem().(Item)
	return item.Task, ok
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No tasks yet.\n  Press 'a' to plan one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
