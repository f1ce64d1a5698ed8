// Package day owns one calendar day's plan, loop checks, journal and status.
//
// A Store is the single writer for its day. Mutators update memory first and
// then write the affected key through the repository before returning. Write
// failures never roll back memory; they are handed to the persist error
// handler and the in-memory state stays authoritative for the session.
package day

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/score100/internal/logger"
	"github.com/julianstephens/score100/internal/models"
	"github.com/julianstephens/score100/internal/scheduler"
	"github.com/julianstephens/score100/internal/score"
	"github.com/julianstephens/score100/internal/storage"
	"github.com/julianstephens/score100/internal/utils"
)

// IDGenerator hands out task and loop-item ids.
type IDGenerator interface {
	Next() string
}

// PersistErrorHandler receives the key that failed to save and the cause.
// It may be called from several goroutines at once during CloseDay.
type PersistErrorHandler func(key string, err error)

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the id source for new tasks.
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Store) { s.ids = ids }
}

// WithPersistErrorHandler replaces the default handler, which logs at warn.
func WithPersistErrorHandler(h PersistErrorHandler) Option {
	return func(s *Store) { s.onPersistErr = h }
}

type Store struct {
	repo         *storage.Repository
	now          func() time.Time
	ids          IDGenerator
	onPersistErr PersistErrorHandler
	session      string

	mu           sync.Mutex
	ready        bool
	date         string
	tasks        []models.Task
	loop         []models.LoopItem
	checks       models.LoopChecks
	yesterday    int
	hasYesterday bool
	journal      string
	status       models.DayStatus
}

// New builds a Store over repo. Call Load before reading day state.
func New(repo *storage.Repository, opts ...Option) *Store {
	s := &Store{
		repo:    repo,
		now:     time.Now,
		session: uuid.NewString(),
		tasks:   []models.Task{},
		loop:    []models.LoopItem{},
		checks:  models.LoopChecks{},
		status:  models.DayPlanning,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = TimestampIDs{Now: s.now}
	}
	if s.onPersistErr == nil {
		s.onPersistErr = s.logPersistError
	}
	return s
}

func (s *Store) logPersistError(key string, err error) {
	logger.Warn("Failed to persist", "key", key, "error", err, "session", s.session)
}

// Load reads today's records concurrently. A key that cannot be read or
// decoded falls back to its default. Only context cancellation is returned.
func (s *Store) Load(ctx context.Context) error {
	return s.loadDate(ctx, utils.DateKey(s.now()))
}

// Refresh reloads when the calendar date has moved past the loaded day.
// It reports whether a reload happened.
func (s *Store) Refresh(ctx context.Context) (bool, error) {
	today := utils.DateKey(s.now())

	s.mu.Lock()
	current := s.date
	s.mu.Unlock()

	if current == today {
		return false, nil
	}
	if err := s.loadDate(ctx, today); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) loadDate(ctx context.Context, date string) error {
	var (
		tasks        []models.Task
		loop         []models.LoopItem
		checks       models.LoopChecks
		yesterday    int
		hasYesterday bool
		journal      string
		status       models.DayStatus
	)

	yesterdayKey := yesterdayOf(date)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		tasks, err = s.repo.LoadTasks(gctx, date)
		s.warnLoad(storage.TasksKey(date), err)
		return gctx.Err()
	})
	g.Go(func() error {
		var err error
		loop, err = s.repo.LoadLoop(gctx)
		s.warnLoad(storage.LoopKey(), err)
		return gctx.Err()
	})
	g.Go(func() error {
		var err error
		checks, err = s.repo.LoadLoopChecks(gctx, date)
		s.warnLoad(storage.LoopChecksKey(date), err)
		return gctx.Err()
	})
	g.Go(func() error {
		var err error
		yesterday, hasYesterday, err = s.repo.ScoreFor(gctx, yesterdayKey)
		s.warnLoad(storage.ScoresKey(), err)
		return gctx.Err()
	})
	g.Go(func() error {
		var err error
		journal, err = s.repo.LoadJournal(gctx, date)
		s.warnLoad(storage.JournalKey(date), err)
		return gctx.Err()
	})
	g.Go(func() error {
		var err error
		status, err = s.repo.LoadDayStatus(gctx, date)
		s.warnLoad(storage.DayStatusKey(date), err)
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.date = date
	s.tasks = tasks
	s.loop = loop
	s.checks = checks
	s.yesterday = yesterday
	s.hasYesterday = hasYesterday
	s.journal = journal
	s.status = status
	s.ready = true

	logger.Debug("Loaded day", "date", date, "tasks", len(tasks), "status", status, "session", s.session)
	return nil
}

func (s *Store) warnLoad(key string, err error) {
	if err != nil {
		logger.Warn("Using default after failed load", "key", key, "error", err, "session", s.session)
	}
}

func yesterdayOf(date string) string {
	t, err := utils.ParseDate(date, time.UTC)
	if err != nil {
		return ""
	}
	return utils.YesterdayKey(t)
}

// persist runs a write and reports failure. Callers hold s.mu so writes land
// in mutation order.
func (s *Store) persist(key string, write func() error) {
	if err := write(); err != nil {
		s.onPersistErr(key, err)
	}
}

func (s *Store) saveTasksLocked(ctx context.Context) {
	tasks := cloneTasks(s.tasks)
	s.persist(storage.TasksKey(s.date), func() error {
		return s.repo.SaveTasks(ctx, s.date, tasks)
	})
}

// Ready reports whether the initial load has finished.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Date is the YYYY-MM-DD key of the loaded day.
func (s *Store) Date() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// SessionID identifies this Store in log lines.
func (s *Store) SessionID() string {
	return s.session
}

// Now returns the Store's clock reading.
func (s *Store) Now() time.Time {
	return s.now()
}

// Tasks returns a copy of the day's tasks in insertion order.
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

// SortedTasks returns the display ordering for the current clock time.
func (s *Store) SortedTasks() []models.Task {
	s.mu.Lock()
	tasks := cloneTasks(s.tasks)
	s.mu.Unlock()
	return scheduler.SortTasks(tasks, s.now())
}

// Task finds a task by id.
func (s *Store) Task(id string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return models.Task{}, false
}

func (s *Store) LoopItems() []models.LoopItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.LoopItem(nil), s.loop...)
}

func (s *Store) LoopChecks() models.LoopChecks {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checks.Clone()
}

func (s *Store) IsChecked(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checks[itemID]
}

// Journal returns the saved entry or the current unsaved draft.
func (s *Store) Journal() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journal
}

func (s *Store) Status() models.DayStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// CurrentScore sums completed task points. It is recomputed on every call.
func (s *Store) CurrentScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return score.Current(s.tasks)
}

// TotalPlanned sums every task's points.
func (s *Store) TotalPlanned() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return score.TotalPlanned(s.tasks)
}

// PointsRemaining is the planning headroom under the ceiling.
func (s *Store) PointsRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return score.Remaining(s.tasks)
}

// YesterdayScore returns the frozen score of the previous day, if one was recorded.
func (s *Store) YesterdayScore() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.yesterday, s.hasYesterday
}

// ScoreDelta is today's score minus yesterday's. ok is false without a yesterday score.
func (s *Store) ScoreDelta() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return score.Delta(score.Current(s.tasks), s.yesterday, s.hasYesterday)
}

// History reads the full score history from storage.
func (s *Store) History(ctx context.Context) (models.ScoreHistory, error) {
	return s.repo.LoadScores(ctx)
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	return out
}
