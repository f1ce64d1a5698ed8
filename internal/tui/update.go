package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/score100/internal/logger"
	"github.com/julianstephens/score100/internal/score"
	"github.com/julianstephens/score100/internal/tui/components/loop"
	"github.com/julianstephens/score100/internal/tui/components/tasklist"
	"github.com/julianstephens/score100/internal/utils"
	"github.com/julianstephens/score100/internal/validation"
)

// headerHeight is the rows taken by the score header, tabs and help line.
const headerHeight = 8

var errDayClosed = errors.New("today is closed; tasks are frozen")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.taskList.SetSize(msg.Width-h, msg.Height-v-headerHeight)
		m.loopList.SetSize(msg.Width-h, msg.Height-v-headerHeight)

	case tickMsg:
		rolled, err := m.store.Refresh(m.ctx())
		if err != nil {
			logger.Warn("Failed to refresh day", "error", err)
		} else if rolled {
			m.notice = "A new day has begun."
			m.state = StateToday
			m.form = nil
		}
		m.syncLists()
		return m, tick()
	}

	switch m.state {
	case StateAddTask, StateEditLoop, StateCloseDay:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if handled, cmd := m.handleComponentMsg(msg); handled {
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.notice, m.formError = "", ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.notice, m.formError = "", ""
			return m, nil
		case key.Matches(msg, m.keys.Start):
			m.startDay()
			return m, nil
		case key.Matches(msg, m.keys.Close):
			return m, m.openCloseForm()
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.taskList, cmd = m.taskList.Update(msg)
	case StateLoop:
		m.loopList, cmd = m.loopList.Update(msg)
	}
	return m, cmd
}

// handleComponentMsg applies actions emitted by the list components.
func (m *Model) handleComponentMsg(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tasklist.AddTaskMsg:
		if m.closed() {
			m.notice = errDayClosed.Error()
			return true, nil
		}
		m.taskForm = &TaskFormModel{}
		m.form = NewTaskForm(m.taskForm, m.store.TotalPlanned())
		m.formError = ""
		m.enterForm(StateAddTask)
		return true, m.form.Init()

	case tasklist.CompleteTaskMsg:
		if m.closed() {
			m.notice = errDayClosed.Error()
			return true, nil
		}
		if task, ok := m.store.Task(msg.ID); ok && m.store.CompleteTask(m.ctx(), msg.ID) {
			m.notice = "+" + strconv.Itoa(task.Points) + " " + task.Name
		}
		m.syncLists()
		return true, nil

	case tasklist.SkipTaskMsg:
		if m.closed() {
			m.notice = errDayClosed.Error()
			return true, nil
		}
		m.store.SkipTask(m.ctx(), msg.ID)
		m.syncLists()
		return true, nil

	case tasklist.DeleteTaskMsg:
		if m.closed() {
			m.notice = errDayClosed.Error()
			return true, nil
		}
		m.taskToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return true, nil

	case loop.ToggleMsg:
		m.store.ToggleLoopCheck(m.ctx(), msg.ID)
		m.syncLists()
		return true, nil

	case loop.AddMsg:
		id := m.ids.Next()
		m.store.UpdateLoopItems(m.ctx(), validation.AddLoopItem(m.store.LoopItems(), id))
		m.syncLists()
		items := m.store.LoopItems()
		return true, m.openLoopForm(items[len(items)-1].ID)

	case loop.EditMsg:
		return true, m.openLoopForm(msg.Item.ID)

	case loop.DeleteMsg:
		items, err := validation.DeleteLoopItem(m.store.LoopItems(), msg.ID)
		if err != nil {
			m.notice = err.Error()
			return true, nil
		}
		m.store.UpdateLoopItems(m.ctx(), items)
		m.syncLists()
		return true, nil
	}
	return false, nil
}

func (m *Model) enterForm(state SessionState) {
	if m.state < tabCount {
		m.previousState = m.state
	}
	m.state = state
}

func (m *Model) leaveForm() {
	m.state = m.previousState
	m.form = nil
}

func (m *Model) openLoopForm(id string) tea.Cmd {
	for _, item := range m.store.LoopItems() {
		if item.ID == id {
			m.loopForm = &LoopFormModel{ID: item.ID, Name: item.Name, Time: item.Time}
			m.form = NewLoopForm(m.loopForm)
			m.formError = ""
			m.enterForm(StateEditLoop)
			return m.form.Init()
		}
	}
	return nil
}

func (m *Model) openCloseForm() tea.Cmd {
	m.closeForm = &CloseFormModel{Journal: m.store.Journal(), Confirm: true}
	m.form = NewCloseForm(m.closeForm, m.prompts.ForDate(m.store.Now()), m.store.CurrentScore())
	m.formError = ""
	m.enterForm(StateCloseDay)
	return m.form.Init()
}

func (m *Model) startDay() {
	if m.store.StartDay(m.ctx()) {
		m.notice = "Day started. Go get them."
		return
	}
	if m.closed() {
		m.notice = "Today is already closed."
	} else {
		m.notice = "Today is already underway."
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.abortForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitForm(); err != nil {
			m.formError = err.Error()
		}
		m.leaveForm()
		m.syncLists()
	case huh.StateAborted:
		m.abortForm()
	}
	return m, cmd
}

// abortForm drops the form. An unfinished reflection is kept as a draft.
func (m *Model) abortForm() {
	if m.state == StateCloseDay && m.closeForm != nil {
		m.store.SetJournalDraft(m.closeForm.Journal)
	}
	m.leaveForm()
}

func (m *Model) submitForm() error {
	switch m.state {
	case StateAddTask:
		return m.submitTaskForm()
	case StateEditLoop:
		return m.submitLoopForm()
	case StateCloseDay:
		m.submitCloseForm()
	}
	return nil
}

func (m *Model) submitTaskForm() error {
	if m.closed() {
		return errDayClosed
	}
	points, err := validation.ParsePoints(m.taskForm.Points)
	if err != nil {
		return err
	}
	req, err := validation.ValidateTask(m.taskForm.Name, points, m.taskForm.Time, m.store.TotalPlanned())
	if err != nil {
		return err
	}
	clock, err := utils.NormalizeClock(req.Time)
	if err != nil {
		return err
	}
	task := m.store.AddTask(m.ctx(), req.Name, req.Points, clock)
	m.notice = "Planned " + task.Name + " for " + task.Time
	return nil
}

func (m *Model) submitLoopForm() error {
	clock := strings.TrimSpace(m.loopForm.Time)
	if clock != "" {
		var err error
		if clock, err = utils.NormalizeClock(clock); err != nil {
			return err
		}
	}
	items, err := validation.EditLoopItem(m.store.LoopItems(), m.loopForm.ID, m.loopForm.Name, clock)
	if err != nil {
		return err
	}
	m.store.UpdateLoopItems(m.ctx(), items)
	return nil
}

func (m *Model) submitCloseForm() {
	journal := strings.TrimSpace(m.closeForm.Journal)
	if !m.closeForm.Confirm {
		m.store.SetJournalDraft(journal)
		return
	}
	final := m.store.CloseDay(m.ctx(), journal)
	m.notice = score.Message(final)
	m.previousState = StateReflect
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		m.store.RemoveTask(m.ctx(), m.taskToDeleteID)
		m.taskToDeleteID = ""
		m.state = m.previousState
		m.syncLists()
	case key.Matches(keyMsg, m.keys.Cancel):
		m.taskToDeleteID = ""
		m.state = m.previousState
	}
	return m, nil
}
