package days

import (
	"context"
	"strings"
	"testing"

	"github.com/julianstephens/score100/internal/cli/clitest"
	"github.com/julianstephens/score100/internal/kv/memory"
	"github.com/julianstephens/score100/internal/models"
	"github.com/julianstephens/score100/internal/storage"
)

func TestStartCmd(t *testing.T) {
	env := clitest.New(t, clitest.At(7, 0))

	if err := (&StartCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if got := env.Ctx.Day.Status(); got != models.DayActive {
		t.Errorf("status = %s, want active", got)
	}
	if !strings.Contains(env.Out.String(), "no tasks are planned") {
		t.Errorf("expected empty-plan note:\n%s", env.Out.String())
	}

	env.Out.Reset()
	if err := (&StartCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("second start failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "already underway") {
		t.Errorf("unexpected output:\n%s", env.Out.String())
	}
}

func TestCloseCmdRecordsScore(t *testing.T) {
	kvStore := memory.New()
	repo := storage.New(kvStore)
	if err := repo.RecordScore(context.Background(), "2024-03-14", 50); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	env := clitest.NewWithStore(t, kvStore, clitest.At(21, 0))
	ctx := env.Ctx.Context()
	a := env.Ctx.Day.AddTask(ctx, "A", 40, "09:00 AM")
	env.Ctx.Day.AddTask(ctx, "B", 30, "10:00 AM")
	env.Ctx.Day.CompleteTask(ctx, a.ID)

	if err := (&CloseCmd{Journal: "  good day  "}).Run(env.Ctx); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	out := env.Out.String()
	if !strings.Contains(out, "Day closed with 40 points. Keep pushing!") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "-10 from yesterday") {
		t.Errorf("expected delta:\n%s", out)
	}

	got, ok, err := repo.ScoreFor(context.Background(), "2024-03-15")
	if err != nil || !ok || got != 40 {
		t.Errorf("ScoreFor = %d, %v, %v; want 40, true, nil", got, ok, err)
	}
	journal, _ := repo.LoadJournal(context.Background(), "2024-03-15")
	if journal != "good day" {
		t.Errorf("journal = %q, want %q", journal, "good day")
	}
	if env.Ctx.Day.Status() != models.DayCompleted {
		t.Errorf("status = %s, want completed", env.Ctx.Day.Status())
	}
}

func TestStatusCmd(t *testing.T) {
	env := clitest.New(t, clitest.At(9, 30))
	ctx := env.Ctx.Context()
	a := env.Ctx.Day.AddTask(ctx, "A", 50, "09:00 AM")
	b := env.Ctx.Day.AddTask(ctx, "B", 20, "10:00 AM")
	env.Ctx.Day.AddTask(ctx, "C", 10, "11:00 AM")
	env.Ctx.Day.CompleteTask(ctx, a.ID)
	env.Ctx.Day.SkipTask(ctx, b.ID)
	env.Ctx.Day.ToggleLoopCheck(ctx, "1")

	if err := (&StatusCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("status failed: %v", err)
	}
	out := env.Out.String()
	for _, want := range []string{
		"GOOD MORNING · Friday, March 15",
		"Status: planning",
		"Score:  50 / 100",
		"Planned: 80 (20 left to plan)",
		"Tasks: 1 done, 1 skipped, 1 open",
		"Loop: 1/3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "from yesterday") {
		t.Errorf("no delta expected without yesterday's score:\n%s", out)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		points int
		filled int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{150, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		bar := Bar(tt.points)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("Bar(%d) filled = %d, want %d", tt.points, got, tt.filled)
		}
		if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != barWidth {
			t.Errorf("Bar(%d) width = %d, want %d", tt.points, got, barWidth)
		}
	}
}

func TestPromptCmd(t *testing.T) {
	env := clitest.New(t, clitest.At(20, 0))
	if err := (&PromptCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("prompt failed: %v", err)
	}
	want := env.Ctx.Prompts.ForDate(clitest.At(20, 0))
	if strings.TrimSpace(env.Out.String()) != want {
		t.Errorf("prompt = %q, want %q", env.Out.String(), want)
	}
}

func TestHistoryCmd(t *testing.T) {
	kvStore := memory.New()
	repo := storage.New(kvStore)
	bg := context.Background()
	for date, points := range map[string]int{"2024-03-12": 80, "2024-03-13": 60, "2024-03-14": 70} {
		if err := repo.RecordScore(bg, date, points); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	env := clitest.NewWithStore(t, kvStore, clitest.At(10, 0))

	if err := (&HistoryCmd{Limit: 2}).Run(env.Ctx); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	out := env.Out.String()
	if strings.Contains(out, "2024-03-12") {
		t.Errorf("limit not applied:\n%s", out)
	}
	if strings.Index(out, "2024-03-14") > strings.Index(out, "2024-03-13") {
		t.Errorf("expected newest first:\n%s", out)
	}
	if !strings.Contains(out, "3 days closed, average 70") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestHistoryCmdEmpty(t *testing.T) {
	env := clitest.New(t, clitest.At(10, 0))
	if err := (&HistoryCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "No closed days yet") {
		t.Errorf("unexpected output:\n%s", env.Out.String())
	}
}
