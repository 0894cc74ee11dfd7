package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/reel/internal/reel"
	"github.com/colonyops/reel/pkg/iojson"
)

type WatchlistCmd struct {
	app *reel.App

	jsonOutput bool
}

// NewWatchlistCmd creates a new watchlist command
func NewWatchlistCmd(app *reel.App) *WatchlistCmd {
	return &WatchlistCmd{app: app}
}

// Register adds the watchlist command to the application
func (cmd *WatchlistCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "watchlist",
		Aliases:   []string{"wl"},
		Usage:     "List movies queued to watch",
		UsageText: "reel watchlist [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *WatchlistCmd) run(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.app.Service.FetchWatchlist(ctx)
	if err != nil {
		return fetchFailed(c, cmd.jsonOutput, err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing on the watch list")
		return nil
	}
	for _, e := range entries {
		_, _ = fmt.Fprintln(out, e.Title)
	}
	return nil
}
