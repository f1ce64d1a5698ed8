package tasks

import (
	"fmt"
	"text/tabwriter"

	"github.com/julianstephens/score100/internal/cli"
	"github.com/julianstephens/score100/internal/scheduler"
)

type TaskListCmd struct {
	IDs bool `help:"Show task ids."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks := ctx.Day.SortedTasks()
	if len(tasks) == 0 {
		ctx.Println("No tasks planned for today.")
		ctx.Printf("Add one with: score100 task add \"Name\" --points 10 --time \"09:00 AM\"\n")
		return nil
	}

	now := ctx.Day.Now()
	w := tabwriter.NewWriter(ctx.Stdout(), 0, 0, 2, ' ', 0)
	for i, t := range tasks {
		note := ""
		if scheduler.IsPassed(t, now) && !t.Skipped {
			note = "passed"
		}
		if t.Skipped {
			note = "skipped"
		}
		if c.IDs {
			fmt.Fprintf(w, "%d.\t[%s]\t%s\t%s\t%d pts\t%s\t%s\n", i+1, cli.StatusMark(t), t.Time, t.Name, t.Points, note, t.ID)
		} else {
			fmt.Fprintf(w, "%d.\t[%s]\t%s\t%s\t%d pts\t%s\n", i+1, cli.StatusMark(t), t.Time, t.Name, t.Points, note)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	ctx.Printf("\nScore: %d / %d planned (%d left to plan)\n",
		ctx.Day.CurrentScore(), ctx.Day.TotalPlanned(), ctx.Day.PointsRemaining())
	return nil
}
