// Package controller provides output adapters for displaying z-index reports.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "zdex.dev/pkg/zdex/internal/model"
)

// UI defines the interface for displaying scan warnings and reports.
// Implementations can use different output methods (simple text, pager, etc).
type UI interface {
	DisplayWarning(ctx context.Context, warning m.Warning)
	DisplayList(ctx context.Context, report m.ListReport) error
	DisplayTotal(ctx context.Context, summary m.Summary, previewLength int) error
}

// NewUI returns a PagerUI when stdout is a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewPagerUI(cmd, os.Stdout)
	}

	return NewSimpleUI(cmd, false)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
