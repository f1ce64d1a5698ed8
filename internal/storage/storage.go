// Package storage maps the day planner's records onto a kv.Provider.
//
// Every Load method returns the documented default alongside any error, so
// callers that only log failures can use the value unconditionally.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/score100/internal/kv"
	"github.com/julianstephens/score100/internal/models"
)

// ErrMalformed wraps decode failures of persisted values.
var ErrMalformed = errors.New("malformed persisted value")

type Repository struct {
	kv kv.Provider
}

func New(p kv.Provider) *Repository {
	return &Repository{kv: p}
}

// Provider returns the underlying key-value store.
func (r *Repository) Provider() kv.Provider {
	return r.kv
}

// loadJSON decodes key into dst. It reports found=false when the key is absent.
func (r *Repository) loadJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return true, nil
}

func (r *Repository) saveJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return r.kv.Set(ctx, key, string(data))
}

// LoadTasks returns the tasks planned for date, or an empty list.
func (r *Repository) LoadTasks(ctx context.Context, date string) ([]models.Task, error) {
	var tasks []models.Task
	if _, err := r.loadJSON(ctx, TasksKey(date), &tasks); err != nil {
		return []models.Task{}, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (r *Repository) SaveTasks(ctx context.Context, date string, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return r.saveJSON(ctx, TasksKey(date), tasks)
}

// LoadLoop returns the loop template, or the seed habits if none was ever saved.
// A saved empty list stays empty.
func (r *Repository) LoadLoop(ctx context.Context) ([]models.LoopItem, error) {
	var items []models.LoopItem
	found, err := r.loadJSON(ctx, LoopKey(), &items)
	if err != nil || !found {
		return models.SeedLoop(), err
	}
	if items == nil {
		items = []models.LoopItem{}
	}
	return items, nil
}

func (r *Repository) SaveLoop(ctx context.Context, items []models.LoopItem) error {
	if items == nil {
		items = []models.LoopItem{}
	}
	return r.saveJSON(ctx, LoopKey(), items)
}

func (r *Repository) LoadLoopChecks(ctx context.Context, date string) (models.LoopChecks, error) {
	var checks models.LoopChecks
	if _, err := r.loadJSON(ctx, LoopChecksKey(date), &checks); err != nil {
		return models.LoopChecks{}, err
	}
	if checks == nil {
		checks = models.LoopChecks{}
	}
	return checks, nil
}

func (r *Repository) SaveLoopChecks(ctx context.Context, date string, checks models.LoopChecks) error {
	if checks == nil {
		checks = models.LoopChecks{}
	}
	return r.saveJSON(ctx, LoopChecksKey(date), checks)
}

func (r *Repository) LoadScores(ctx context.Context) (models.ScoreHistory, error) {
	var scores models.ScoreHistory
	if _, err := r.loadJSON(ctx, ScoresKey(), &scores); err != nil {
		return models.ScoreHistory{}, err
	}
	if scores == nil {
		scores = models.ScoreHistory{}
	}
	return scores, nil
}

func (r *Repository) SaveScores(ctx context.Context, scores models.ScoreHistory) error {
	if scores == nil {
		scores = models.ScoreHistory{}
	}
	return r.saveJSON(ctx, ScoresKey(), scores)
}

// ScoreFor looks up the frozen score for date. A recorded zero counts as
// present, so a day closed with no points still yields a delta the next day;
// only a missing entry reports false.
func (r *Repository) ScoreFor(ctx context.Context, date string) (int, bool, error) {
	scores, err := r.LoadScores(ctx)
	if err != nil {
		return 0, false, err
	}
	v, ok := scores[date]
	return v, ok, nil
}

// RecordScore sets scores[date] = score, replacing any earlier value for date.
func (r *Repository) RecordScore(ctx context.Context, date string, score int) error {
	scores, err := r.LoadScores(ctx)
	if err != nil && !errors.Is(err, ErrMalformed) {
		return err
	}
	scores[date] = score
	return r.SaveScores(ctx, scores)
}

// LoadJournal returns the raw journal text for date, or "".
func (r *Repository) LoadJournal(ctx context.Context, date string) (string, error) {
	raw, _, err := r.kv.Get(ctx, JournalKey(date))
	if err != nil {
		return "", err
	}
	return raw, nil
}

func (r *Repository) SaveJournal(ctx context.Context, date, text string) error {
	return r.kv.Set(ctx, JournalKey(date), text)
}

// LoadDayStatus returns the status for date, or planning.
func (r *Repository) LoadDayStatus(ctx context.Context, date string) (models.DayStatus, error) {
	raw, ok, err := r.kv.Get(ctx, DayStatusKey(date))
	if err != nil {
		return models.DayPlanning, err
	}
	if !ok {
		return models.DayPlanning, nil
	}
	status, err := models.ParseDayStatus(raw)
	if err != nil {
		return models.DayPlanning, fmt.Errorf("%w: %s: %v", ErrMalformed, DayStatusKey(date), err)
	}
	return status, nil
}

func (r *Repository) SaveDayStatus(ctx context.Context, date string, status models.DayStatus) error {
	return r.kv.Set(ctx, DayStatusKey(date), status.String())
}

func (r *Repository) Close() error {
	return r.kv.Close()
}
