package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
)

// completionTimeout bounds the sheet fetch behind shell completion.
const completionTimeout = 3 * time.Second

// titleSource lists review titles for completion.
type titleSource interface {
	Titles(ctx context.Context) ([]string, error)
}

// TitleCompleter returns a ShellCompleteFunc that suggests review titles as
// positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func TitleCompleter(src titleSource) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		ctx, cancel := context.WithTimeout(ctx, completionTimeout)
		defer cancel()

		titles, err := src.Titles(ctx)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, t := range titles {
			_, _ = fmt.Fprintln(w, t)
		}
	}
}
