package tasks

import (
	"fmt"

	"github.com/julianstephens/score100/internal/cli"
	"github.com/julianstephens/score100/internal/models"
	"github.com/julianstephens/score100/internal/utils"
	"github.com/julianstephens/score100/internal/validation"
)

type TaskAddCmd struct {
	Name   string `arg:"" help:"Task name."`
	Points string `short:"p" help:"Points the task is worth." required:""`
	Time   string `short:"t" help:"Time of day (e.g. 09:00 AM)." required:""`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if ctx.Day.Status() == models.DayCompleted {
		return errDayClosed
	}

	points, err := validation.ParsePoints(c.Points)
	if err != nil {
		return err
	}

	req, err := validation.ValidateTask(c.Name, points, c.Time, ctx.Day.TotalPlanned())
	if err != nil {
		return err
	}

	clock, err := utils.NormalizeClock(req.Time)
	if err != nil {
		return fmt.Errorf("invalid time %q, expected a time like 09:00 AM", req.Time)
	}

	task := ctx.Day.AddTask(ctx.Context(), req.Name, req.Points, clock)
	ctx.Printf("✓ Added %q (%d pts at %s)\n", task.Name, task.Points, task.Time)
	ctx.Printf("  %d points left to plan today\n", ctx.Day.PointsRemaining())
	return nil
}
