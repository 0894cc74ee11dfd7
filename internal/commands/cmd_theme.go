package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/reel/internal/core/styles"
	"github.com/colonyops/reel/internal/core/theme"
	"github.com/colonyops/reel/internal/printer"
	"github.com/colonyops/reel/internal/reel"
)

type ThemeCmd struct {
	app *reel.App
}

// NewThemeCmd creates a new theme command
func NewThemeCmd(app *reel.App) *ThemeCmd {
	return &ThemeCmd{app: app}
}

// Register adds the theme command to the application
func (cmd *ThemeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "theme",
		Usage:     "Show or change the color theme",
		UsageText: "reel theme [get | set <light|dark> | toggle]",
		Action:    cmd.runGet,
		Commands: []*cli.Command{
			{
				Name:   "get",
				Usage:  "Print the current theme",
				Action: cmd.runGet,
			},
			{
				Name:      "set",
				Usage:     "Set the theme",
				UsageText: "reel theme set <light|dark>",
				Action:    cmd.runSet,
			},
			{
				Name:   "toggle",
				Usage:  "Switch between light and dark",
				Action: cmd.runToggle,
			},
		},
	})

	return app
}

func (cmd *ThemeCmd) runGet(ctx context.Context, c *cli.Command) error {
	t, err := theme.Load(ctx, cmd.app.Themes)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	_, err = fmt.Fprintln(c.Root().Writer, t)
	return err
}

func (cmd *ThemeCmd) runSet(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one theme (light or dark)")
	}
	t, err := theme.Parse(c.Args().First())
	if err != nil {
		return err
	}
	if err := cmd.app.Themes.Set(ctx, t); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	announce(ctx, t)
	return nil
}

func (cmd *ThemeCmd) runToggle(ctx context.Context, _ *cli.Command) error {
	current, err := theme.Load(ctx, cmd.app.Themes)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	next, err := theme.Toggle(ctx, cmd.app.Themes, current)
	if err != nil {
		return err
	}
	announce(ctx, next)
	return nil
}

func announce(ctx context.Context, t theme.Theme) {
	styles.Apply(t)
	printer.Ctx(ctx).Successf("%s theme set to %s", styles.ThemeIcon(t), t)
}
