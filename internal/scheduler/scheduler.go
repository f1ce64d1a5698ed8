// Package scheduler orders a day's tasks for display.
package scheduler

import (
	"sort"
	"time"

	"github.com/julianstephens/score100/internal/models"
	"github.com/julianstephens/score100/internal/utils"
)

// unscheduled is where a task with an unreadable time sorts: after every real
// minute of the day, and never considered passed.
const unscheduled = utils.MinutesPerDay

// TaskMinutes returns the task's time as minutes since midnight.
func TaskMinutes(task models.Task) int {
	m, err := utils.ParseClockToMinutes(task.Time)
	if err != nil {
		return unscheduled
	}
	return m
}

// IsPassed reports whether an incomplete task's time is already behind now.
func IsPassed(task models.Task, now time.Time) bool {
	return !task.Completed && TaskMinutes(task) < utils.MinuteOfDay(now)
}

// SortTasks returns a new slice ordered for display at now:
//
//  1. incomplete tasks before completed ones
//  2. among incomplete, upcoming before passed
//  3. then ascending time of day
//
// Completed tasks are ordered by time only. The sort is stable and tasks is
// left untouched.
func SortTasks(tasks []models.Task, now time.Time) []models.Task {
	current := utils.MinuteOfDay(now)

	type keyed struct {
		task    models.Task
		minutes int
		passed  bool
	}
	rows := make([]keyed, len(tasks))
	for i, t := range tasks {
		m := TaskMinutes(t)
		rows[i] = keyed{task: t, minutes: m, passed: !t.Completed && m < current}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.task.Completed != b.task.Completed {
			return !a.task.Completed
		}
		if !a.task.Completed && a.passed != b.passed {
			return !a.passed
		}
		return a.minutes < b.minutes
	})

	out := make([]models.Task, len(rows))
	for i, r := range rows {
		out[i] = r.task
	}
	return out
}
