package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/score100/internal/cli"
	"github.com/julianstephens/score100/internal/cli/backups"
	"github.com/julianstephens/score100/internal/cli/days"
	"github.com/julianstephens/score100/internal/cli/loops"
	"github.com/julianstephens/score100/internal/cli/system"
	"github.com/julianstephens/score100/internal/cli/tasks"
	"github.com/julianstephens/score100/internal/config"
	"github.com/julianstephens/score100/internal/constants"
	"github.com/julianstephens/score100/internal/day"
	"github.com/julianstephens/score100/internal/errors"
	"github.com/julianstephens/score100/internal/ids"
	"github.com/julianstephens/score100/internal/logger"
	"github.com/julianstephens/score100/internal/prompts"
	"github.com/julianstephens/score100/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Store target: sqlite path, .json path, postgres:// URL, postgres:keyring, redis:// URL or memory:. Overrides SCORE100_STORE."`
	DataDir string `help:"Directory for logs. Overrides SCORE100_DATA_DIR." type:"path"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Init    system.InitCmd   `cmd:"" help:"Initialize score100 storage."`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Status  days.StatusCmd   `cmd:"" help:"Show today's score and progress."`
	Start   days.StartCmd    `cmd:"" help:"Start the day."`
	Close   days.CloseCmd    `cmd:"" help:"Close the day and record its score."`
	Prompt  days.PromptCmd   `cmd:"" help:"Show today's reflection prompt."`
	History days.HistoryCmd  `cmd:"" help:"Show recorded daily scores."`
	Task    struct {
		Add      tasks.TaskAddCmd      `cmd:"" help:"Plan a task for today."`
		List     tasks.TaskListCmd     `cmd:"" help:"List today's tasks in display order." default:"1"`
		Complete tasks.TaskCompleteCmd `cmd:"" help:"Mark a task complete."`
		Skip     tasks.TaskSkipCmd     `cmd:"" help:"Skip a task."`
		Remove   tasks.TaskRemoveCmd   `cmd:"" help:"Remove a task."`
	} `cmd:"" help:"Manage today's tasks."`
	Loop    struct {
		List   loops.LoopListCmd   `cmd:"" help:"List loop habits and today's checks." default:"1"`
		Add    loops.LoopAddCmd    `cmd:"" help:"Add a habit to the loop."`
		Edit   loops.LoopEditCmd   `cmd:"" help:"Rename or retime a habit."`
		Delete loops.LoopDeleteCmd `cmd:"" help:"Delete a habit from the loop."`
		Check  loops.LoopCheckCmd  `cmd:"" help:"Toggle today's check for a habit."`
	} `cmd:"" help:"Manage the daily loop."`
	Backup  struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Plan a 100-point day, score it, and reflect"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(".env")
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Store != "" {
		cfg.Store = CLI.Store
	}
	if CLI.DataDir != "" {
		cfg.DataDir = CLI.DataDir
	}
	cfg.Debug = cfg.Debug || CLI.Debug

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: dataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	base, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	appCtx := &cli.Context{Config: cfg, Base: base}

	// Keyring commands manage the credentials the store would need
	command := ctx.Command()
	if !strings.HasPrefix(command, "keyring") {
		if err := openDay(appCtx, command); err != nil {
			errors.Fatal(err)
		}
		defer appCtx.Repo.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func openDay(appCtx *cli.Context, command string) error {
	cfg := appCtx.Config

	gen, err := ids.NewGenerator(cfg.NodeID)
	if err != nil {
		return err
	}
	rotation, err := prompts.Load(cfg.PromptsFile)
	if err != nil {
		return err
	}

	repo, err := storage.Open(storage.Options{Target: cfg.Store, RedisPrefix: cfg.RedisPrefix})
	if err != nil {
		return err
	}
	logger.Debug("Opened store", "target", storage.KindOf(cfg.Store), "command", command)

	// The TUI owns the terminal, so its persist failures only go to the log
	interactive := command == "" || command == "tui"
	onPersistErr := func(key string, err error) {
		logger.Warn("Failed to persist", "key", key, "error", err)
		if !interactive {
			fmt.Fprintf(os.Stderr, "Warning: failed to save %s: %v\n", key, err)
		}
	}

	store := day.New(repo, day.WithIDGenerator(gen), day.WithPersistErrorHandler(onPersistErr))
	if err := store.Load(appCtx.Context()); err != nil {
		repo.Close()
		return err
	}

	appCtx.Repo = repo
	appCtx.Day = store
	appCtx.Prompts = rotation
	appCtx.IDs = gen
	return nil
}
