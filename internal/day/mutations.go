package day

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/score100/internal/logger"
	"github.com/julianstephens/score100/internal/models"
	"github.com/julianstephens/score100/internal/score"
	"github.com/julianstephens/score100/internal/storage"
)

// TimestampIDs hands out nanoseconds since the epoch. A nil Now reads the
// wall clock.
type TimestampIDs struct {
	Now func() time.Time
}

func (g TimestampIDs) Next() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return strconv.FormatInt(now().UnixNano(), 10)
}

// AddTask appends a new incomplete task and returns it. The creation policy
// is the caller's job; see the validation package.
func (s *Store) AddTask(ctx context.Context, name string, points int, clock string) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:     s.ids.Next(),
		Name:   name,
		Points: points,
		Time:   clock,
	}
	s.tasks = append(s.tasks, task)
	s.saveTasksLocked(ctx)

	logger.Debug("Added task", "id", task.ID, "points", points, "session", s.session)
	return task
}

// RemoveTask deletes the task with id. Unknown ids are ignored but the list is still written.
func (s *Store) RemoveTask(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(s.tasks)
	s.tasks = kept
	s.saveTasksLocked(ctx)
	return removed
}

// CompleteTask marks the task done. It reports whether anything changed, so a
// second call on the same id is a no-op.
func (s *Store) CompleteTask(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || s.tasks[i].Completed {
		return false
	}
	s.tasks[i].Completed = true
	s.saveTasksLocked(ctx)
	return true
}

// SkipTask flags the task as skipped and clears completed, even on a task that
// was already completed.
func (s *Store) SkipTask(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = false
	s.tasks[i].Skipped = true
	s.saveTasksLocked(ctx)
	return true
}

// ToggleLoopCheck flips today's check for itemID and returns the new value.
func (s *Store) ToggleLoopCheck(ctx context.Context, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	checks := s.checks.Clone()
	checks[itemID] = !checks[itemID]
	s.checks = checks

	date := s.date
	snapshot := checks.Clone()
	s.persist(storage.LoopChecksKey(date), func() error {
		return s.repo.SaveLoopChecks(ctx, date, snapshot)
	})
	return checks[itemID]
}

// UpdateLoopItems replaces the loop template wholesale.
func (s *Store) UpdateLoopItems(ctx context.Context, items []models.LoopItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loop = append([]models.LoopItem{}, items...)
	snapshot := append([]models.LoopItem{}, items...)
	s.persist(storage.LoopKey(), func() error {
		return s.repo.SaveLoop(ctx, snapshot)
	})
}

// StartDay moves planning to active. Any other status is left alone and
// false is returned.
func (s *Store) StartDay(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != models.DayPlanning {
		return false
	}
	s.status = models.DayActive

	date := s.date
	s.persist(storage.DayStatusKey(date), func() error {
		return s.repo.SaveDayStatus(ctx, date, models.DayActive)
	})
	logger.Info("Day started", "date", date, "session", s.session)
	return true
}

// CloseDay freezes the journal and the current score and marks the day
// completed. Calling it again overwrites the same date's journal and score.
// It returns the recorded score.
func (s *Store) CloseDay(ctx context.Context, journal string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	final := score.Current(s.tasks)
	s.journal = journal
	s.status = models.DayCompleted
	date := s.date

	// The three keys are independent; a crash between them may leave a partial close.
	var g errgroup.Group
	g.Go(func() error {
		s.persist(storage.JournalKey(date), func() error {
			return s.repo.SaveJournal(ctx, date, journal)
		})
		return nil
	})
	g.Go(func() error {
		s.persist(storage.ScoresKey(), func() error {
			return s.repo.RecordScore(ctx, date, final)
		})
		return nil
	})
	g.Go(func() error {
		s.persist(storage.DayStatusKey(date), func() error {
			return s.repo.SaveDayStatus(ctx, date, models.DayCompleted)
		})
		return nil
	})
	_ = g.Wait()

	logger.Info("Day closed", "date", date, "score", final, "session", s.session)
	return final
}

// SetJournalDraft keeps unsaved journal text in memory. It is ignored once
// the day is completed.
func (s *Store) SetJournalDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == models.DayCompleted {
		return
	}
	s.journal = text
}
