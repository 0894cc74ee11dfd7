package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/reel/internal/core/contact"
	"github.com/colonyops/reel/internal/core/styles"
	"github.com/colonyops/reel/internal/printer"
	"github.com/colonyops/reel/pkg/iojson"
)

type ContactCmd struct {
	sub  contact.Submission
	file iojson.FileReader[contact.Submission]

	// interactive reports whether the form may be shown.
	interactive func() bool
}

// NewContactCmd creates a new contact command
func NewContactCmd() *ContactCmd {
	return &ContactCmd{
		interactive: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// Register adds the contact command to the application
func (cmd *ContactCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "contact",
		Usage:     "Send a message",
		UsageText: "reel contact [--name n --email e --message m] [--file submission.json]",
		Description: `Validates a contact message. With no flags on a terminal an interactive form
is shown. Every field is required and the email must look like an address.

Nothing is sent over the network; accepted messages are written to the log.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Usage:       "your name",
				Destination: &cmd.sub.Name,
			},
			&cli.StringFlag{
				Name:        "email",
				Usage:       "your email address",
				Destination: &cmd.sub.Email,
			},
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "message body",
				Destination: &cmd.sub.Message,
			},
			cmd.file.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ContactCmd) flagsProvided() bool {
	return cmd.sub != (contact.Submission{})
}

func (cmd *ContactCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	switch {
	case cmd.file.Provided():
		sub, err := cmd.file.Read()
		if err != nil {
			return fmt.Errorf("read submission: %w", err)
		}
		cmd.sub = sub
	case !cmd.flagsProvided() && cmd.interactive():
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	return submit(p, cmd.sub)
}

// submit validates sub and acknowledges it. Invalid submissions are
// reported and dropped.
func submit(p *printer.Printer, sub contact.Submission) error {
	if err := sub.Validate(); err != nil {
		log.Debug().Err(err).Msg("contact submission rejected")
		p.Errorf("%s", contact.Reason(err))
		return cli.Exit("", 1)
	}

	log.Info().
		Str("name", sub.Name).
		Str("email", sub.Email).
		Int("message_len", len(sub.Message)).
		Msg("contact form submitted")
	p.Successf("%s", contact.ThankYou)
	return nil
}

func (cmd *ContactCmd) runForm() error {
	fmt.Println(styles.CommandHeaderStyle.Render(styles.IconMail + " Contact"))
	fmt.Println()

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Validate(contact.Required).
				Value(&cmd.sub.Name),
			huh.NewInput().
				Title("Email").
				Validate(contact.Email).
				Value(&cmd.sub.Email),
			huh.NewText().
				Title("Message").
				Validate(contact.Required).
				Value(&cmd.sub.Message),
		),
	).WithTheme(styles.FormTheme()).Run()
}
