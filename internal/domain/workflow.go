// Package domain contains the z-index scanning workflow and logic.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"zdex.dev/pkg/zdex/internal/controller"
	m "zdex.dev/pkg/zdex/internal/model"
)

// ErrMissingDirectory is returned when no root directory was given.
var ErrMissingDirectory = errors.New("missing directory argument")

// warningBufferSize bounds how far the scanner may run ahead of the UI.
const warningBufferSize = 16

// ScanOptions holds the arguments shared by every command that scans a tree.
type ScanOptions struct {
	Root               m.Path
	Ignored            []m.Path
	HonorIgnored       bool
	Extensions         []string
	VariableExtensions []string
}

// ListArgs contains the arguments for the grouped list report.
type ListArgs struct {
	ScanOptions
	Sort m.SortKey
}

// TotalArgs contains the arguments for the totals report.
type TotalArgs struct {
	ScanOptions
	PreviewLength int
}

// Workflow defines the top-level operations exposed to the CLI.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Total(ctx context.Context, args TotalArgs) error
}

type workflow struct {
	Scanner
	VariableResolver
	ui controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(scanner Scanner, resolver VariableResolver, ui controller.UI) Workflow {
	return &workflow{
		Scanner:          scanner,
		VariableResolver: resolver,
		ui:               ui,
	}
}

// List scans the tree and displays matches grouped by value and by variable.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	result, err := w.collect(ctx, args.ScanOptions)
	if err != nil {
		return err
	}

	sortKey := args.Sort
	if sortKey == "" {
		sortKey = m.SortByTotal
	}

	zGroups := GroupZIndexes(result.ZIndexes)
	SortZIndexGroups(zGroups, sortKey)

	sassGroups := GroupSassVariables(result.SassVariables)
	SortSassVariableGroups(sassGroups, sortKey)

	return w.ui.DisplayList(ctx, m.ListReport{
		ZIndexes:      zGroups,
		SassVariables: sassGroups,
	})
}

// Total scans the tree and displays summary counts.
func (w *workflow) Total(ctx context.Context, args TotalArgs) error {
	result, err := w.collect(ctx, args.ScanOptions)
	if err != nil {
		return err
	}

	return w.ui.DisplayTotal(ctx, Summarize(result), args.PreviewLength)
}

// collect runs the scan and the variable resolution while a second goroutine
// forwards warnings to the UI in discovery order.
func (w *workflow) collect(ctx context.Context, opts ScanOptions) (m.ScanResult, error) {
	if strings.TrimSpace(string(opts.Root)) == "" {
		return m.ScanResult{}, ErrMissingDirectory
	}

	warnings := make(chan m.Warning, warningBufferSize)
	onWarning := func(warning m.Warning) {
		warnings <- warning
	}

	var result m.ScanResult

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		for warning := range warnings {
			w.ui.DisplayWarning(groupCtx, warning)
		}

		return nil
	})

	group.Go(func() error {
		defer close(warnings)

		scanned, err := w.Scan(groupCtx, ScanArgs{
			Root:       opts.Root,
			Ignored:    opts.Ignored,
			Extensions: opts.Extensions,
			OnWarning:  onWarning,
		})
		if err != nil {
			return fmt.Errorf("scan %s: %w", opts.Root, err)
		}

		names := scanned.VariableNames()
		if len(names) > 0 {
			resolved, err := w.Resolve(groupCtx, ResolveArgs{
				Root:         opts.Root,
				Names:        names,
				Ignored:      opts.Ignored,
				HonorIgnored: opts.HonorIgnored,
				Extensions:   opts.VariableExtensions,
				OnWarning:    onWarning,
			})
			if err != nil {
				return fmt.Errorf("resolve sass variables: %w", err)
			}

			scanned.SassVariables = ApplyResolvedValues(scanned.SassVariables, resolved)
		}

		result = scanned

		return nil
	})

	if err := group.Wait(); err != nil {
		return m.ScanResult{}, err
	}

	slog.Debug("Collected matches", "root", opts.Root, "zIndexes", len(result.ZIndexes), "sassVariables", len(result.SassVariables))

	return result, nil
}
