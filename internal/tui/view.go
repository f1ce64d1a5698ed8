package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/score100/internal/constants"
	"github.com/julianstephens/score100/internal/models"
	"github.com/julianstephens/score100/internal/score"
)

const barWidth = 30

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.store.Ready() {
		return docStyle.Render("Loading today...")
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.taskList.View())
	case StateLoop:
		content = docStyle.Render(m.loopList.View())
	case StateReflect:
		content = docStyle.Render(m.viewReflect())
	case StateAddTask, StateEditLoop, StateCloseDay:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewHeader(), m.viewTabs()}
	if m.formError != "" {
		parts = append(parts, dangerStyle.Render(m.formError))
	} else if m.notice != "" {
		parts = append(parts, warningStyle.Render(m.notice))
	}
	parts = append(parts, content, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewHeader() string {
	now := m.store.Now()
	current := m.store.CurrentScore()

	greeting := greetingStyle.Render(fmt.Sprintf("%s · %s · %s",
		score.Greeting(now), now.Format("Mon Jan 2"), strings.ToUpper(m.store.Status().String())))

	line := scoreStyle.Render(fmt.Sprintf("%3d", current)) + " " + progressBar(current, barWidth)
	if delta, ok := m.store.ScoreDelta(); ok {
		style := gainStyle
		if delta < 0 {
			style = lossStyle
		}
		line += "  " + style.Render(score.FormatDelta(delta))
	}

	planned := mutedStyle.Render(fmt.Sprintf("%d of %d points planned · %d left",
		m.store.TotalPlanned(), constants.PointCeiling, m.store.PointsRemaining()))

	return lipgloss.NewStyle().Padding(1, 2, 0).Render(
		lipgloss.JoinVertical(lipgloss.Left, greeting, line, planned),
	)
}

func progressBar(points, width int) string {
	filled := int(score.Progress(points)*float64(width) + 0.5)
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}

func (m Model) viewTabs() string {
	checked, total := m.loopList.Progress()
	titles := []string{
		"Today",
		fmt.Sprintf("Loop %d/%d", checked, total),
		"Reflect",
	}

	var tabs []string
	for i, title := range titles {
		if m.activeTab() == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// activeTab maps form and dialog states back to the tab they were opened from.
func (m Model) activeTab() SessionState {
	if m.state < tabCount {
		return m.state
	}
	return m.previousState
}

func (m Model) viewReflect() string {
	current := m.store.CurrentScore()

	if m.store.Status() == models.DayCompleted {
		lines := []string{
			scoreStyle.Render(fmt.Sprintf("Day closed with %d points", current)),
			score.Message(current),
			"",
		}
		if journal := m.store.Journal(); journal != "" {
			lines = append(lines, promptStyle.Render(journal))
		} else {
			lines = append(lines, mutedStyle.Render("No reflection recorded."))
		}
		lines = append(lines, "", mutedStyle.Render("Press C to close again and overwrite today's entry."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines := []string{
		"Tonight's question:",
		promptStyle.Render(m.prompts.ForDate(m.store.Now())),
		"",
	}
	if draft := m.store.Journal(); draft != "" {
		lines = append(lines, mutedStyle.Render("Draft: "+draft), "")
	}
	lines = append(lines, mutedStyle.Render("Press C to write your reflection and close the day."))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewConfirmDelete() string {
	name := "this task"
	if task, ok := m.store.Task(m.taskToDeleteID); ok {
		name = fmt.Sprintf("%q", task.Name)
	}
	return lipgloss.Place(m.width, m.height-headerHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %s?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
