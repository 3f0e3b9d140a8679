// Package ui renders scenario outcomes for the functools CLI.
//
// Human output is colored with fatih/color, which already honors NO_COLOR
// and disables itself when stdout is not a terminal:
//   - Green: successful results
//   - Red: failures
//   - Bold: scenario names and headers
//   - Dim: the helper that ran
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hasbyte1/go-functools/internal/scenario"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
	bold  = color.New(color.Bold)
	dim   = color.New(color.Faint)
)

// InitColors forces colors off when noColor is set. Call it once after
// parsing flags.
func InitColors(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}

// Printer writes outcomes to w.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header prints a bold title with an underline.
func (p *Printer) Header(text string) {
	_, _ = bold.Fprintln(p.w, text)
	fmt.Fprintln(p.w, strings.Repeat("=", len(text)))
}

// Outcome prints one outcome on a single line:
//
//	✓ square list (process): [1 4 9]
//	✗ bogus target (process): processing error: invalid target: ...
func (p *Printer) Outcome(o scenario.Outcome) {
	mark, c := "✓", green
	if !o.OK {
		mark, c = "✗", red
	}
	fmt.Fprintf(p.w, "%s %s %s %s\n",
		c.Sprint(mark),
		bold.Sprint(o.Name),
		dim.Sprintf("(%s):", o.Call),
		c.Sprint(o.Output),
	)
}

// Summary prints the pass/fail counts.
func (p *Printer) Summary(outcomes []scenario.Outcome) {
	failed := Failed(outcomes)
	fmt.Fprintf(p.w, "\n%d scenarios, %s, %s\n",
		len(outcomes),
		green.Sprintf("%d ok", len(outcomes)-failed),
		red.Sprintf("%d failed", failed),
	)
}

// JSON writes outcomes as an indented JSON array.
func (p *Printer) JSON(outcomes []scenario.Outcome) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcomes); err != nil {
		return fmt.Errorf("ui: encode json: %w", err)
	}
	return nil
}

// Failed counts the outcomes that did not succeed.
func Failed(outcomes []scenario.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.OK {
			n++
		}
	}
	return n
}
