package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	m "zdex.dev/pkg/zdex/internal/model"
)

// SimpleUI implements UI by printing tables to the command's output.
type SimpleUI struct {
	cmd          *cobra.Command
	colorEnabled bool
}

// NewSimpleUI creates a new SimpleUI. Colors are only emitted when
// colorEnabled is set and NO_COLOR is not.
func NewSimpleUI(cmd *cobra.Command, colorEnabled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, colorEnabled: colorEnabled && !color.NoColor}
}

// DisplayWarning prints an unparsable value in red.
func (s *SimpleUI) DisplayWarning(ctx context.Context, warning m.Warning) {
	if err := ctx.Err(); err != nil {
		return
	}

	c := color.New(color.FgRed)
	if s.colorEnabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	_, _ = c.Fprintln(s.out(), formatWarning(warning))
}

// DisplayList prints the grouped z-index and Sass variable tables.
func (s *SimpleUI) DisplayList(ctx context.Context, report m.ListReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", s.renderList(report))

	return nil
}

// DisplayTotal prints the summary table.
func (s *SimpleUI) DisplayTotal(ctx context.Context, summary m.Summary, previewLength int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", s.renderTotal(summary, previewLength))

	return nil
}

func (s *SimpleUI) renderList(report m.ListReport) string {
	return renderList(report, newStyles(s.out(), s.colorEnabled))
}

func (s *SimpleUI) renderTotal(summary m.Summary, previewLength int) string {
	return renderTotal(summary, previewLength, newStyles(s.out(), s.colorEnabled))
}

func (s *SimpleUI) out() io.Writer {
	return s.cmd.OutOrStdout()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out(), format, args...)
}
