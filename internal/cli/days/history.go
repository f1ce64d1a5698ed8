package days

import (
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/score100/internal/cli"
	"github.com/julianstephens/score100/internal/utils"
)

type HistoryCmd struct {
	Limit int `short:"n" help:"Number of days to show." default:"14"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	history, err := ctx.Day.History(ctx.Context())
	if err != nil {
		return err
	}
	if len(history) == 0 {
		ctx.Println("No closed days yet. Close one with: score100 close")
		return nil
	}

	dates := make([]string, 0, len(history))
	total := 0
	for date, points := range history {
		dates = append(dates, date)
		total += points
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	shown := dates
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}

	now := ctx.Day.Now()
	for _, date := range shown {
		points := history[date]
		ctx.Printf("%s  %3d  %s  %s\n", date, points, Bar(points), relativeDay(date, now))
	}

	ctx.Printf("\n%s closed, average %d\n",
		humanize.Comma(int64(len(history)))+pluralDays(len(history)), total/len(history))
	return nil
}

func relativeDay(date string, now time.Time) string {
	day, err := utils.ParseDate(date, now.Location())
	if err != nil {
		return ""
	}
	today, _ := utils.ParseDate(utils.DateKey(now), now.Location())
	if day.Equal(today) {
		return "today"
	}
	return humanize.RelTime(day, today, "ago", "from now")
}

func pluralDays(n int) string {
	if n == 1 {
		return " day"
	}
	return " days"
}
