package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/julianstephens/score100/internal/backup"
	"github.com/julianstephens/score100/internal/config"
	"github.com/julianstephens/score100/internal/day"
	"github.com/julianstephens/score100/internal/logger"
	"github.com/julianstephens/score100/internal/models"
	"github.com/julianstephens/score100/internal/prompts"
	"github.com/julianstephens/score100/internal/storage"
)

type Context struct {
	Config  config.Config
	Repo    *storage.Repository
	Day     *day.Store
	Prompts *prompts.Rotation
	IDs     day.IDGenerator
	Out     io.Writer
	In      io.Reader
	Base    context.Context
}

// Context is the cancellation scope for store calls made by a command.
func (c *Context) Context() context.Context {
	if c.Base == nil {
		return context.Background()
	}
	return c.Base
}

// Stdout is where commands print. Tests swap it for a buffer.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Stdin() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) Println(a ...interface{}) {
	fmt.Fprintln(c.Stdout(), a...)
}

func (c *Context) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, a...)
}

// BackupManager returns a manager for the sqlite store, or false when the
// configured store is not a local sqlite file.
func (c *Context) BackupManager() (*backup.Manager, bool) {
	if c.Repo == nil {
		return nil, false
	}
	path, ok := storage.SQLitePath(c.Repo.Provider())
	if !ok {
		return nil, false
	}
	return backup.NewManager(path), true
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr, ok := c.BackupManager()
	if !ok {
		return
	}
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveTask finds a task by id or by its 1-based position in the sorted list.
func (c *Context) ResolveTask(ref string) (models.Task, error) {
	ref = strings.TrimSpace(ref)
	if t, ok := c.Day.Task(ref); ok {
		return t, nil
	}
	sorted := c.Day.SortedTasks()
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(sorted) {
		return sorted[n-1], nil
	}
	return models.Task{}, fmt.Errorf("task not found: %s", ref)
}

// ResolveLoopItem finds a loop item by id or by its 1-based position.
func (c *Context) ResolveLoopItem(ref string) (models.LoopItem, error) {
	ref = strings.TrimSpace(ref)
	items := c.Day.LoopItems()
	for _, item := range items {
		if item.ID == ref {
			return item, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(items) {
		return items[n-1], nil
	}
	return models.LoopItem{}, fmt.Errorf("loop item not found: %s", ref)
}

// StatusMark renders a task's state for list output.
func StatusMark(t models.Task) string {
	switch {
	case t.Completed:
		return "✓"
	case t.Skipped:
		return "–"
	default:
		return " "
	}
}
