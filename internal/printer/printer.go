// Package printer writes styled, human-facing CLI output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/reel/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to an output writer.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext attaches p to ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer attached to ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Printf prints an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Successf prints a line marked as succeeded.
func (p *Printer) Successf(format string, args ...any) {
	p.Printf("%s %s", styles.SuccessStyle.Render("✔"), fmt.Sprintf(format, args...))
}

// Infof prints a line marked as informational.
func (p *Printer) Infof(format string, args ...any) {
	p.Printf("%s %s", styles.CommandHeaderStyle.Render("•"), fmt.Sprintf(format, args...))
}

// Errorf prints a line marked as failed.
func (p *Printer) Errorf(format string, args ...any) {
	p.Printf("%s %s", styles.ErrorStyle.Render("✘"), fmt.Sprintf(format, args...))
}

// Header prints a bold section title followed by a divider.
func (p *Printer) Header(title string) {
	p.Printf("%s", styles.CommandHeaderStyle.Render(title))
	p.Printf("%s", styles.DividerStyle.Render("────────────────────────────────────────"))
}
