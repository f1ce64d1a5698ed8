package days

import (
	"fmt"
	"strings"

	"github.com/julianstephens/score100/internal/cli"
	"github.com/julianstephens/score100/internal/models"
	"github.com/julianstephens/score100/internal/score"
)

const barWidth = 20

type StartCmd struct{}

func (c *StartCmd) Run(ctx *cli.Context) error {
	switch ctx.Day.Status() {
	case models.DayActive:
		ctx.Println("Today is already underway.")
		return nil
	case models.DayCompleted:
		ctx.Println("Today is already closed. See you tomorrow.")
		return nil
	}
	if len(ctx.Day.Tasks()) == 0 {
		ctx.Println("Note: no tasks are planned yet.")
	}
	ctx.Day.StartDay(ctx.Context())
	ctx.Printf("✓ Day started with %d points planned. Go get them.\n", ctx.Day.TotalPlanned())
	return nil
}

type CloseCmd struct {
	Journal string `short:"j" help:"Reflection to save with today's score."`
}

func (c *CloseCmd) Run(ctx *cli.Context) error {
	if ctx.Day.Status() == models.DayCompleted {
		ctx.Println("Today was already closed. Recording again with the current score.")
	}
	final := ctx.Day.CloseDay(ctx.Context(), strings.TrimSpace(c.Journal))
	ctx.Printf("✓ Day closed with %d points. %s\n", final, score.Message(final))
	if delta, ok := ctx.Day.ScoreDelta(); ok {
		ctx.Printf("  %s\n", score.FormatDelta(delta))
	}
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	now := ctx.Day.Now()
	current := ctx.Day.CurrentScore()

	ctx.Printf("%s · %s\n", score.Greeting(now), now.Format("Monday, January 2"))
	ctx.Printf("Status: %s\n\n", ctx.Day.Status())

	line := fmt.Sprintf("Score: %3d / 100  %s", current, Bar(current))
	if delta, ok := ctx.Day.ScoreDelta(); ok {
		line += "  " + score.FormatDelta(delta)
	}
	ctx.Println(line)
	ctx.Printf("Planned: %d (%d left to plan)\n", ctx.Day.TotalPlanned(), ctx.Day.PointsRemaining())

	var done, skipped, open int
	for _, t := range ctx.Day.Tasks() {
		switch {
		case t.Completed:
			done++
		case t.Skipped:
			skipped++
		default:
			open++
		}
	}
	ctx.Printf("Tasks: %d done, %d skipped, %d open\n", done, skipped, open)

	items := ctx.Day.LoopItems()
	checked := 0
	for _, item := range items {
		if ctx.Day.IsChecked(item.ID) {
			checked++
		}
	}
	ctx.Printf("Loop: %d/%d\n", checked, len(items))

	if ctx.Day.Status() == models.DayCompleted {
		ctx.Printf("\n%s\n", score.Message(current))
		if journal := ctx.Day.Journal(); journal != "" {
			ctx.Printf("Journal: %s\n", journal)
		}
	}
	return nil
}

// Bar renders score as a fixed-width progress bar.
func Bar(points int) string {
	filled := int(score.Progress(points)*barWidth + 0.5)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

type PromptCmd struct{}

func (c *PromptCmd) Run(ctx *cli.Context) error {
	ctx.Println(ctx.Prompts.ForDate(ctx.Day.Now()))
	return nil
}
