package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/reel/internal/core/reviews"
	"github.com/colonyops/reel/internal/core/sheets"
	"github.com/colonyops/reel/internal/core/styles"
	"github.com/colonyops/reel/internal/reel"
	"github.com/colonyops/reel/pkg/iojson"
)

type LsCmd struct {
	app *reel.App

	// flags
	sort       string
	asc        bool
	search     string
	filter     string
	page       int
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(app *reel.App) *LsCmd {
	return &LsCmd{app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List one page of reviews",
		UsageText: "reel ls [--sort key] [--asc] [--search term] [--filter category] [--page n] [--json]",
		Description: `Fetches the review sheet and prints one page after sorting, searching and filtering.

Sort keys: none, title, primary, secondary (descending unless --asc).
Filters: all, with-reviews, without-reviews, primary-reviews, secondary-reviews.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "sort",
				Usage:       "sort key (none, title, primary, secondary)",
				Value:       "none",
				Destination: &cmd.sort,
			},
			&cli.BoolFlag{
				Name:        "asc",
				Usage:       "sort ascending",
				Destination: &cmd.asc,
			},
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "case-insensitive title search",
				Destination: &cmd.search,
			},
			&cli.StringFlag{
				Name:        "filter",
				Usage:       "review category",
				Value:       "all",
				Destination: &cmd.filter,
			},
			&cli.IntFlag{
				Name:        "page",
				Aliases:     []string{"p"},
				Usage:       "page number",
				Value:       1,
				Destination: &cmd.page,
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

// queryState builds the query from flag values.
func queryState(sort string, asc bool, search, filter string, page int) (reviews.QueryState, error) {
	state := reviews.DefaultQueryState()

	key, err := reviews.ParseSortKey(sort)
	if err != nil {
		return state, err
	}
	category, err := reviews.ParseCategory(filter)
	if err != nil {
		return state, err
	}
	if page < 1 {
		return state, fmt.Errorf("page must be at least 1, got %d", page)
	}

	state.SortKey = key
	if asc {
		state.Direction = reviews.Ascending
	}
	state = state.WithSearch(search).WithCategory(category)
	state.Page = page
	return state, nil
}

// pageJSON is the JSON output format for reel ls --json.
type pageJSON struct {
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	Total      int              `json:"total"`
	HasNext    bool             `json:"has_next"`
	HasPrev    bool             `json:"has_prev"`
	Items      []reviews.Record `json:"items"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	state, err := queryState(cmd.sort, cmd.asc, cmd.search, cmd.filter, cmd.page)
	if err != nil {
		return err
	}

	col, err := cmd.app.Service.FetchReviews(ctx)
	if err != nil {
		return fetchFailed(c, cmd.jsonOutput, err)
	}

	res := reviews.Query(col, state, cmd.app.Pages)
	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, pageJSON{
			Page:       res.Page.Page,
			TotalPages: res.Page.TotalPages,
			Total:      res.Page.Total,
			HasNext:    res.Page.HasNext,
			HasPrev:    res.Page.HasPrev,
			Items:      res.Items,
		})
	}

	if len(res.Items) == 0 {
		fmt.Fprintln(os.Stderr, "No matching reviews")
		return nil
	}

	writeReviewTable(out, res.Items, cmd.app.Reviewers, isTerminal(out))
	_, _ = fmt.Fprintf(out, "\nPage %d of %d (%d reviews)\n", res.Page.Page, res.Page.TotalPages, res.Page.Total)
	return nil
}

func writeReviewTable(out io.Writer, items []reviews.Record, names reel.Reviewers, color bool) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "%s\t%s\tREVIEWED\tTITLE\n", names.Primary, names.Secondary)
	for _, r := range items {
		// Title is last so color escapes cannot skew the column widths.
		title := r.Title
		if color {
			title = styles.CoverageStyle(r.Coverage()).Render(title)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.Primary.Rating, r.Secondary.Rating, coverageLabel(r.Coverage(), names), title)
	}
	_ = w.Flush()
}

func coverageLabel(c reviews.Coverage, names reel.Reviewers) string {
	switch c {
	case reviews.CoverageBoth:
		return "both"
	case reviews.CoveragePrimary:
		return names.Primary
	case reviews.CoverageSecondary:
		return names.Secondary
	default:
		return "-"
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// fetchFailed returns err, first writing it as a JSON error document when
// JSON output was requested.
func fetchFailed(c *cli.Command, asJSON bool, err error) error {
	if asJSON {
		_ = iojson.WriteError(c.Root().Writer, err.Error(), map[string]any{"kind": sheets.Kind(err)})
	}
	return err
}
