package tasks

import (
	"errors"

	"github.com/julianstephens/score100/internal/cli"
	"github.com/julianstephens/score100/internal/models"
)

var errDayClosed = errors.New("today is already closed; tasks are frozen")

// resolveOpenTask resolves ref only while today can still change.
func resolveOpenTask(ctx *cli.Context, ref string) (models.Task, error) {
	if ctx.Day.Status() == models.DayCompleted {
		return models.Task{}, errDayClosed
	}
	return ctx.ResolveTask(ref)
}

type TaskCompleteCmd struct {
	Task string `arg:"" help:"Task id or list number."`
}

func (c *TaskCompleteCmd) Run(ctx *cli.Context) error {
	task, err := resolveOpenTask(ctx, c.Task)
	if err != nil {
		return err
	}
	if task.Completed {
		ctx.Printf("%q is already complete.\n", task.Name)
		return nil
	}
	ctx.Day.CompleteTask(ctx.Context(), task.ID)
	ctx.Printf("✓ Completed %q (+%d). Score: %d\n", task.Name, task.Points, ctx.Day.CurrentScore())
	return nil
}

type TaskSkipCmd struct {
	Task string `arg:"" help:"Task id or list number."`
}

func (c *TaskSkipCmd) Run(ctx *cli.Context) error {
	task, err := resolveOpenTask(ctx, c.Task)
	if err != nil {
		return err
	}
	ctx.Day.SkipTask(ctx.Context(), task.ID)
	ctx.Printf("Skipped %q. Its %d points stay out of today's score.\n", task.Name, task.Points)
	return nil
}

type TaskRemoveCmd struct {
	Task string `arg:"" help:"Task id or list number."`
}

func (c *TaskRemoveCmd) Run(ctx *cli.Context) error {
	task, err := resolveOpenTask(ctx, c.Task)
	if err != nil {
		return err
	}
	ctx.Day.RemoveTask(ctx.Context(), task.ID)
	ctx.Printf("✓ Removed %q\n", task.Name)
	return nil
}
