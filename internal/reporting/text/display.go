package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/olusolaa/stack-tail/internal/core/domain"
	"github.com/olusolaa/stack-tail/internal/core/ports"
	"golang.org/x/term"
)

const RendererTypeText = "text"

// Display repaints the table in place on each tick. Rows drawn by the
// previous tick are erased before the new batch is written.
type Display struct {
	formatter Formatter
	out       io.Writer
	tw        *tabwriter.Writer
	erase     bool
	logger    ports.Logger
}

type DisplayOption func(*Display)

// WithWriter replaces stdout. Erasing is enabled only if w is a terminal.
func WithWriter(w io.Writer) DisplayOption {
	return func(d *Display) {
		d.out = w
		d.erase = IsTerminal(w)
	}
}

// WithErase forces erasing on or off regardless of the writer.
func WithErase(enabled bool) DisplayOption {
	return func(d *Display) {
		d.erase = enabled
	}
}

func NewDisplay(formatter Formatter, logger ports.Logger, opts ...DisplayOption) *Display {
	d := &Display{
		formatter: formatter,
		out:       os.Stdout,
		erase:     IsTerminal(os.Stdout),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.tw = tabwriter.NewWriter(d.out, 0, 8, 2, ' ', 0)
	return d
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (d *Display) Render(ctx context.Context, tick domain.Tick) error {
	if d.erase && tick.PreviousCount > 0 {
		if _, err := io.WriteString(d.out, EraseLines(tick.PreviousCount)); err != nil {
			d.logger.Debugf(ctx, "erasing %d lines failed: %v", tick.PreviousCount, err)
		}
	}
	d.flush(ctx)

	for _, record := range tick.Records {
		if _, err := fmt.Fprintln(d.tw, d.formatter.Format(record)); err != nil {
			d.logger.Debugf(ctx, "writing row for %s failed: %v", record.ResourceID, err)
		}
	}
	d.flush(ctx)
	return nil
}

func (d *Display) flush(ctx context.Context) {
	if err := d.tw.Flush(); err != nil {
		d.logger.Debugf(ctx, "flushing display failed: %v", err)
	}
}

// EraseLines moves the cursor up n lines, clearing each one, and leaves it
// at the start of the topmost cleared line.
func EraseLines(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for range n {
		b.WriteString(ansi.CursorUp(1))
		b.WriteString(ansi.EraseEntireLine)
	}
	b.WriteString("\r")
	return b.String()
}
