package system

import (
	"fmt"

	"github.com/julianstephens/score100/internal/cli"
	"github.com/julianstephens/score100/internal/kv"
	"github.com/julianstephens/score100/internal/storage"
)

// InitCmd reports the opened store and writes the seed loop on a fresh install.
// Opening the store already created its schema.
type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	bg := ctx.Context()

	_, found, err := ctx.Repo.Provider().Get(bg, storage.LoopKey())
	if err != nil {
		return fmt.Errorf("failed to read store: %w", err)
	}
	if !found {
		items, _ := ctx.Repo.LoadLoop(bg)
		if err := ctx.Repo.SaveLoop(bg, items); err != nil {
			return fmt.Errorf("failed to write starter loop: %w", err)
		}
		ctx.Printf("✓ Added %d starter habits to your loop\n", len(items))
	}

	ctx.Printf("Initialized score100 storage at: %s\n", kv.Describe(ctx.Repo.Provider()))
	return nil
}
