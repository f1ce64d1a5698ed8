package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/score100/internal/cli"
	"github.com/julianstephens/score100/internal/constants"
	"github.com/julianstephens/score100/internal/kv/sqlite"
	"github.com/julianstephens/score100/internal/score"
	"github.com/julianstephens/score100/internal/storage"
	"github.com/julianstephens/score100/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name       string
	run        func(ctx *cli.Context) error
	warning    bool
	needsStore bool
}

var checks = []check{
	{name: "Store reachable", run: checkStoreReachable},
	{name: "Schema version", run: checkSchemaVersion, needsStore: true},
	{name: "Today's records", run: checkTodayRecords, needsStore: true},
	{name: "Score history", run: checkScoreHistory, needsStore: true},
	{name: "Point ceiling", run: checkCeiling},
	{name: "Task times", run: checkTaskTimes, warning: true},
	{name: "Backups present", run: checkBackupsPresent, warning: true},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	reachable := true
	for i, c := range checks {
		if c.needsStore && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (store not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warning:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if i == 0 {
				reachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		return errors.New("diagnostics found problems")
	}
	ctx.Println("All checks passed.")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	_, _, err := ctx.Repo.Provider().Get(ctx.Context(), storage.ScoresKey())
	return err
}

// checkSchemaVersion compares a sqlite store's schema version with the
// embedded migrations. Other backends pass.
func checkSchemaVersion(ctx *cli.Context) error {
	path, ok := storage.SQLitePath(ctx.Repo.Provider())
	if !ok {
		return nil
	}
	store := sqlite.NewStore(path)
	if err := store.Load(); err != nil {
		return err
	}
	return store.Close()
}

func checkTodayRecords(ctx *cli.Context) error {
	bg := ctx.Context()
	date := ctx.Day.Date()
	var errs []error
	if _, err := ctx.Repo.LoadTasks(bg, date); err != nil {
		errs = append(errs, err)
	}
	if _, err := ctx.Repo.LoadLoop(bg); err != nil {
		errs = append(errs, err)
	}
	if _, err := ctx.Repo.LoadLoopChecks(bg, date); err != nil {
		errs = append(errs, err)
	}
	if _, err := ctx.Repo.LoadDayStatus(bg, date); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func checkScoreHistory(ctx *cli.Context) error {
	scores, err := ctx.Repo.LoadScores(ctx.Context())
	if err != nil {
		return err
	}
	for date := range scores {
		if _, err := time.Parse(constants.DateFormat, date); err != nil {
			return fmt.Errorf("score recorded under invalid date %q", date)
		}
	}
	return nil
}

func checkCeiling(ctx *cli.Context) error {
	if total := score.TotalPlanned(ctx.Day.Tasks()); total > constants.PointCeiling {
		return fmt.Errorf("today plans %d points, over the %d point ceiling", total, constants.PointCeiling)
	}
	return nil
}

func checkTaskTimes(ctx *cli.Context) error {
	for _, t := range ctx.Day.Tasks() {
		if !utils.ValidateClock(t.Time) {
			return fmt.Errorf("task %q has an unreadable time %q and will sort last", t.Name, t.Time)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, ok := ctx.BackupManager()
	if !ok {
		return errors.New("store is not a local sqlite file; backups are not managed")
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s", mgr.BackupDir())
	}
	return nil
}

func checkClockTimezone(*cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if now.Location() == nil {
		return errors.New("no local timezone configured")
	}
	return nil
}
