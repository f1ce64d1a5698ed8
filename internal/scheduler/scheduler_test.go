package scheduler

import (
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/score100/internal/models"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, 0, 0, time.Local)
}

func ids(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestSortTasks(t *testing.T) {
	tests := []struct {
		name  string
		tasks []models.Task
		now   time.Time
		want  []string
	}{
		{
			name: "upcoming before passed even when earlier",
			tasks: []models.Task{
				{ID: "A", Time: "09:00 AM"},
				{ID: "B", Time: "08:00 AM"},
			},
			now:  at(8, 30),
			want: []string{"A", "B"},
		},
		{
			name: "completed always last",
			tasks: []models.Task{
				{ID: "done-early", Time: "06:00 AM", Completed: true},
				{ID: "late", Time: "11:00 PM"},
				{ID: "done-late", Time: "10:00 PM", Completed: true},
				{ID: "passed", Time: "07:00 AM"},
			},
			now:  at(12, 0),
			want: []string{"late", "passed", "done-early", "done-late"},
		},
		{
			name: "ascending time within each group",
			tasks: []models.Task{
				{ID: "p2", Time: "10:00 AM"},
				{ID: "u2", Time: "05:00 PM"},
				{ID: "p1", Time: "07:15 AM"},
				{ID: "u1", Time: "01:00 PM"},
			},
			now:  at(12, 0),
			want: []string{"u1", "u2", "p1", "p2"},
		},
		{
			name: "task at the current minute is upcoming",
			tasks: []models.Task{
				{ID: "earlier", Time: "08:00 AM"},
				{ID: "now", Time: "08:30 AM"},
			},
			now:  at(8, 30),
			want: []string{"now", "earlier"},
		},
		{
			name: "midnight and noon conversion",
			tasks: []models.Task{
				{ID: "noon", Time: "12:00 PM"},
				{ID: "midnight", Time: "12:00 AM"},
				{ID: "one", Time: "01:00 AM"},
			},
			now:  at(0, 0),
			want: []string{"midnight", "one", "noon"},
		},
		{
			name: "equal keys keep insertion order",
			tasks: []models.Task{
				{ID: "first", Time: "09:00 AM", Completed: true},
				{ID: "second", Time: "09:00 AM", Completed: true, Skipped: true},
				{ID: "third", Time: "09:00 AM", Completed: true},
			},
			now:  at(10, 0),
			want: []string{"first", "second", "third"},
		},
		{
			name: "unreadable time sorts last among upcoming",
			tasks: []models.Task{
				{ID: "bad", Time: "whenever"},
				{ID: "passed", Time: "06:00 AM"},
				{ID: "soon", Time: "11:00 PM"},
			},
			now:  at(9, 0),
			want: []string{"soon", "bad", "passed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(SortTasks(tt.tasks, tt.now))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortTasks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortTasksDoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		{ID: "x", Time: "11:00 AM", Completed: true},
		{ID: "y", Time: "09:00 AM"},
	}
	before := append([]models.Task(nil), tasks...)

	sorted := SortTasks(tasks, at(8, 0))
	if !reflect.DeepEqual(tasks, before) {
		t.Errorf("input mutated: %v", tasks)
	}

	sorted[0].Name = "changed"
	if tasks[1].Name == "changed" {
		t.Error("sorted result aliases the input slice")
	}
}

func TestIsPassed(t *testing.T) {
	now := at(12, 0)
	tests := []struct {
		task models.Task
		want bool
	}{
		{models.Task{Time: "11:59 AM"}, true},
		{models.Task{Time: "12:00 PM"}, false},
		{models.Task{Time: "11:00 AM", Completed: true}, false},
		{models.Task{Time: "garbage"}, false},
	}
	for _, tt := range tests {
		if got := IsPassed(tt.task, now); got != tt.want {
			t.Errorf("IsPassed(%+v) = %v, want %v", tt.task, got, tt.want)
		}
	}
}
