package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/score100/internal/cli"
	"github.com/julianstephens/score100/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Snapshot before the session starts writing
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(
		tui.NewModel(ctx.Day, ctx.Prompts, ctx.IDs),
		tea.WithAltScreen(),
		tea.WithContext(ctx.Context()),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
