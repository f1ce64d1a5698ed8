package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/score100/internal/day"
	"github.com/julianstephens/score100/internal/models"
	"github.com/julianstephens/score100/internal/prompts"
	"github.com/julianstephens/score100/internal/tui/components/loop"
	"github.com/julianstephens/score100/internal/tui/components/tasklist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateLoop
	StateReflect
	StateAddTask
	StateEditLoop
	StateCloseDay
	StateConfirmDelete
)

// tabCount is the number of states reachable with tab.
const tabCount = 3

// refreshInterval re-sorts passed tasks and catches the midnight rollover.
const refreshInterval = time.Minute

type TaskFormModel struct {
	Name   string
	Points string
	Time   string
}

type LoopFormModel struct {
	ID   string
	Name string
	Time string
}

type CloseFormModel struct {
	Journal string
	Confirm bool
}

type tickMsg time.Time

type Model struct {
	store          *day.Store
	prompts        *prompts.Rotation
	ids            day.IDGenerator
	state          SessionState
	previousState  SessionState
	keys           KeyMap
	help           help.Model
	taskList       tasklist.Model
	loopList       loop.Model
	form           *huh.Form
	taskForm       *TaskFormModel
	loopForm       *LoopFormModel
	closeForm      *CloseFormModel
	taskToDeleteID string
	notice         string
	formError      string
	quitting       bool
	width          int
	height         int
}

func NewModel(store *day.Store, rotation *prompts.Rotation, ids day.IDGenerator) Model {
	if rotation == nil {
		rotation = prompts.Default()
	}
	if ids == nil {
		ids = day.TimestampIDs{}
	}
	m := Model{
		store:    store,
		prompts:  rotation,
		ids:      ids,
		state:    StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		taskList: tasklist.New(nil, store.Now(), 0, 0),
		loopList: loop.New(nil, nil, 0, 0),
	}
	m.syncLists()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		tk := tasklist.DefaultKeyMap()
		keys = append(keys, tk.Add, tk.Complete, tk.Swipe)
	case StateLoop:
		lk := loop.DefaultKeyMap()
		keys = append(keys, lk.Toggle, lk.Add, lk.Edit)
	}
	return append(keys, m.keys.Start, m.keys.Close)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	lifecycle := []key.Binding{m.keys.Start, m.keys.Close}

	var actions []key.Binding
	switch m.state {
	case StateToday:
		tk := tasklist.DefaultKeyMap()
		actions = []key.Binding{tk.Add, tk.Complete, tk.Swipe, tk.Unswipe, tk.Skip, tk.Delete}
	case StateLoop:
		lk := loop.DefaultKeyMap()
		actions = []key.Binding{lk.Toggle, lk.Add, lk.Edit, lk.Delete}
	}

	return [][]key.Binding{global, navigation, actions, lifecycle}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// syncLists rebuilds both lists from the store.
func (m *Model) syncLists() {
	m.taskList.SetTasks(m.store.SortedTasks(), m.store.Now())
	m.loopList.SetItems(m.store.LoopItems(), m.store.LoopChecks())
}

func (m Model) closed() bool {
	return m.store.Status() == models.DayCompleted
}

func (m Model) ctx() context.Context {
	return context.Background()
}
