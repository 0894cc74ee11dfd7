package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/reel/internal/reel"
	"github.com/colonyops/reel/internal/tui"
)

// NewRoot returns the root command with its global flags bound to flags.
func NewRoot(flags *Flags) *cli.Command {
	return &cli.Command{
		Name:      "reel",
		Usage:     "Browse movie reviews and the watch list",
		UsageText: "reel [global options] command [command options]",
		Description: `Reel reads two published Google Sheets: one holds movie reviews from two
reviewers, the other a watch list of titles still to see.

Run 'reel' with no arguments to open the interactive browser.
Run 'reel ls' or 'reel show <title>' for scriptable output.`,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("REEL_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/reel.log)",
				Sources:     cli.EnvVars("REEL_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("REEL_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("REEL_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
	}
}

// RegisterAll adds every subcommand to root and makes the TUI the default
// action. app may be empty until root's Before hook fills it in.
func RegisterAll(root *cli.Command, flags *Flags, app *reel.App, build tui.BuildInfo) *cli.Command {
	root = NewLsCmd(app).Register(root)
	root = NewShowCmd(app).Register(root)
	root = NewRecentCmd(app).Register(root)
	root = NewWatchlistCmd(app).Register(root)
	root = NewContactCmd().Register(root)
	root = NewThemeCmd(app).Register(root)
	root = NewConfigValidateCmd(flags).Register(root)

	tuiCmd := NewTuiCmd(flags, app, build)
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'reel --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}
	return root
}
