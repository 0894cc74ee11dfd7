package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/reel/internal/core/reviews"
	"github.com/colonyops/reel/internal/reel"
	"github.com/colonyops/reel/pkg/iojson"
)

type RecentCmd struct {
	app *reel.App

	count      int
	jsonOutput bool
}

// NewRecentCmd creates a new recent command
func NewRecentCmd(app *reel.App) *RecentCmd {
	return &RecentCmd{app: app}
}

// Register adds the recent command to the application
func (cmd *RecentCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "recent",
		Usage:     "Show the most recently added reviews",
		UsageText: "reel recent [--count n] [--json]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "count",
				Aliases:     []string{"n"},
				Usage:       "number of reviews (defaults to reviews.recent_count)",
				Destination: &cmd.count,
			},
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

func (cmd *RecentCmd) run(ctx context.Context, c *cli.Command) error {
	n := cmd.count
	if n <= 0 {
		n = cmd.app.Pages.RecentCount
	}
	if n <= 0 {
		n = reviews.DefaultRecentCount
	}

	col, err := cmd.app.Service.FetchReviews(ctx)
	if err != nil {
		return fetchFailed(c, cmd.jsonOutput, err)
	}
	recent := col.Recent(n)

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, recent)
	}

	writeReviewTable(out, recent, cmd.app.Reviewers, isTerminal(out))
	if len(recent) == 0 {
		_, _ = fmt.Fprintln(out, "No reviews yet")
	}
	return nil
}
