package loops

import (
	"fmt"
	"strings"

	"github.com/julianstephens/score100/internal/cli"
	"github.com/julianstephens/score100/internal/constants"
	"github.com/julianstephens/score100/internal/utils"
	"github.com/julianstephens/score100/internal/validation"
)

type LoopListCmd struct{}

func (c *LoopListCmd) Run(ctx *cli.Context) error {
	items := ctx.Day.LoopItems()
	if len(items) == 0 {
		ctx.Println("The loop is empty. Add a habit with: score100 loop add")
		return nil
	}

	done := 0
	for i, item := range items {
		mark := " "
		if ctx.Day.IsChecked(item.ID) {
			mark = "✓"
			done++
		}
		ctx.Printf("%d. [%s] %-8s  %s  (id: %s)\n", i+1, mark, item.Time, item.Name, item.ID)
	}
	ctx.Printf("\n%d of %d checked today\n", done, len(items))
	return nil
}

type LoopAddCmd struct {
	Name string `arg:"" optional:"" help:"Habit name. Defaults to a placeholder you can edit later."`
	Time string `short:"t" help:"Time of day (e.g. 08:00 AM)."`
}

func (c *LoopAddCmd) Run(ctx *cli.Context) error {
	id := ctx.IDs.Next()
	items := validation.AddLoopItem(ctx.Day.LoopItems(), id)

	if strings.TrimSpace(c.Name) != "" || strings.TrimSpace(c.Time) != "" {
		name := c.Name
		if strings.TrimSpace(name) == "" {
			name = constants.DefaultLoopItemName
		}
		clock := constants.DefaultLoopItemTime
		if strings.TrimSpace(c.Time) != "" {
			var err error
			clock, err = utils.NormalizeClock(c.Time)
			if err != nil {
				return fmt.Errorf("invalid time %q, expected a time like 08:00 AM", c.Time)
			}
		}
		var err error
		items, err = validation.EditLoopItem(items, id, name, clock)
		if err != nil {
			return err
		}
	}

	ctx.Day.UpdateLoopItems(ctx.Context(), items)
	added := items[len(items)-1]
	ctx.Printf("✓ Added %q at %s (id: %s)\n", added.Name, added.Time, added.ID)
	return nil
}

type LoopEditCmd struct {
	Item string `arg:"" help:"Loop item id or list number."`
	Name string `short:"n" help:"New name."`
	Time string `short:"t" help:"New time of day."`
}

func (c *LoopEditCmd) Run(ctx *cli.Context) error {
	item, err := ctx.ResolveLoopItem(c.Item)
	if err != nil {
		return err
	}

	name := item.Name
	if c.Name != "" {
		name = c.Name
	}
	clock := item.Time
	if strings.TrimSpace(c.Time) != "" {
		clock, err = utils.NormalizeClock(c.Time)
		if err != nil {
			return fmt.Errorf("invalid time %q, expected a time like 08:00 AM", c.Time)
		}
	}

	items, err := validation.EditLoopItem(ctx.Day.LoopItems(), item.ID, name, clock)
	if err != nil {
		return err
	}
	ctx.Day.UpdateLoopItems(ctx.Context(), items)
	ctx.Printf("✓ Updated loop item %s\n", item.ID)
	return nil
}

type LoopDeleteCmd struct {
	Item string `arg:"" help:"Loop item id or list number."`
}

func (c *LoopDeleteCmd) Run(ctx *cli.Context) error {
	item, err := ctx.ResolveLoopItem(c.Item)
	if err != nil {
		return err
	}
	items, err := validation.DeleteLoopItem(ctx.Day.LoopItems(), item.ID)
	if err != nil {
		return err
	}
	ctx.Day.UpdateLoopItems(ctx.Context(), items)
	ctx.Printf("✓ Deleted %q from the loop\n", item.Name)
	return nil
}

type LoopCheckCmd struct {
	Item string `arg:"" help:"Loop item id or list number."`
}

func (c *LoopCheckCmd) Run(ctx *cli.Context) error {
	item, err := ctx.ResolveLoopItem(c.Item)
	if err != nil {
		return err
	}
	if ctx.Day.ToggleLoopCheck(ctx.Context(), item.ID) {
		ctx.Printf("✓ Checked %q\n", item.Name)
	} else {
		ctx.Printf("Unchecked %q\n", item.Name)
	}
	return nil
}
