package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/reel/internal/core/theme"
	"github.com/colonyops/reel/internal/reel"
	"github.com/colonyops/reel/internal/tui"
	reviewsview "github.com/colonyops/reel/internal/tui/views/reviews"
)

type TuiCmd struct {
	flags *Flags
	app   *reel.App
	build tui.BuildInfo
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *reel.App, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
		build: build,
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	current, err := theme.Load(ctx, cmd.app.Themes)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	m := tui.New(tui.Options{
		Source: cmd.app.Service,
		Themes: cmd.app.Themes,
		Theme:  current,
		Pages:  cmd.app.Pages,
		Reviewers: reviewsview.Reviewers{
			Primary:   cmd.app.Reviewers.Primary,
			Secondary: cmd.app.Reviewers.Secondary,
		},
		Transition: cmd.app.Config.TransitionDuration(),
		Build:      cmd.build,
	})

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
