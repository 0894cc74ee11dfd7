package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/reel/internal/reel"
	reviewsview "github.com/colonyops/reel/internal/tui/views/reviews"
	"github.com/colonyops/reel/pkg/iojson"
)

const showWrapWidth = 80

type ShowCmd struct {
	app *reel.App

	jsonOutput bool
	raw        bool
}

// NewShowCmd creates a new show command
func NewShowCmd(app *reel.App) *ShowCmd {
	return &ShowCmd{app: app}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show the full review of a movie",
		UsageText: "reel show <title> [--json] [--raw]",
		Description: `Prints the reviews of the first movie whose title contains the given text
(case-insensitive), in arrival order.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the record as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without terminal rendering",
				Destination: &cmd.raw,
			},
		},
		ShellComplete: TitleCompleter(cmd),
		Action:        cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	term := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if term == "" {
		return fmt.Errorf("a title is required")
	}

	col, err := cmd.app.Service.FetchReviews(ctx)
	if err != nil {
		return fetchFailed(c, cmd.jsonOutput, err)
	}

	rec, ok := col.Find(term)
	if !ok {
		return fmt.Errorf("no review matches %q", term)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, rec)
	}

	md := reviewsview.DetailMarkdown(rec, reviewsview.Reviewers{
		Primary:   cmd.app.Reviewers.Primary,
		Secondary: cmd.app.Reviewers.Secondary,
	})
	if cmd.raw || !isTerminal(out) {
		_, err = fmt.Fprint(out, md)
		return err
	}

	_, err = fmt.Fprintln(out, reviewsview.RenderMarkdown(md, showWrapWidth))
	return err
}

// Titles lists review titles for shell completion.
func (cmd *ShowCmd) Titles(ctx context.Context) ([]string, error) {
	if cmd.app.Service == nil {
		return nil, nil
	}
	col, err := cmd.app.Service.FetchReviews(ctx)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, col.Len())
	for _, r := range col.Records() {
		if r.Title != "" {
			titles = append(titles, r.Title)
		}
	}
	return titles, nil
}
