// Package clitest builds command contexts over an in-memory store.
package clitest

import (
	"bytes"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/julianstephens/score100/internal/cli"
	"github.com/julianstephens/score100/internal/day"
	"github.com/julianstephens/score100/internal/kv/memory"
	"github.com/julianstephens/score100/internal/prompts"
	"github.com/julianstephens/score100/internal/storage"
)

// Env is a loaded command context plus the pieces tests inspect.
type Env struct {
	Ctx   *cli.Context
	KV    *memory.Store
	Out   *bytes.Buffer
	IDs   *SeqIDs
	Clock *Clock
}

// Clock is a settable time source.
type Clock struct {
	T time.Time
}

func (c *Clock) Now() time.Time { return c.T }

// SeqIDs hands out "id-1", "id-2", ...
type SeqIDs struct {
	n int
}

func (g *SeqIDs) Next() string {
	g.n++
	return "id-" + strconv.Itoa(g.n)
}

// At returns a time on 2024-03-15 at hour:minute local time.
func At(hour, minute int) time.Time {
	return time.Date(2024, 3, 15, hour, minute, 0, 0, time.Local)
}

// New returns a loaded context over a fresh memory store.
func New(t *testing.T, now time.Time) *Env {
	t.Helper()
	return NewWithStore(t, memory.New(), now)
}

// NewWithStore returns a loaded context over kvStore.
func NewWithStore(t *testing.T, kvStore *memory.Store, now time.Time) *Env {
	t.Helper()

	clock := &Clock{T: now}
	ids := &SeqIDs{}
	repo := storage.New(kvStore)
	store := day.New(repo, day.WithClock(clock.Now), day.WithIDGenerator(ids))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("failed to load day store: %v", err)
	}

	out := &bytes.Buffer{}
	return &Env{
		Ctx: &cli.Context{
			Repo:    repo,
			Day:     store,
			Prompts: prompts.Default(),
			IDs:     ids,
			Out:     out,
		},
		KV:    kvStore,
		Out:   out,
		IDs:   ids,
		Clock: clock,
	}
}
