package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "zdex.dev/pkg/zdex/internal/model"
)

// pagerFooterHeight is the number of lines reserved below the viewport.
const pagerFooterHeight = 1

// PagerUI implements UI for terminals. Reports that fit the screen are
// printed as-is; taller ones open in a scrollable Bubble Tea viewport.
type PagerUI struct {
	*SimpleUI
	output *os.File

	termSize   func(fd int) (width, height int, err error)
	runProgram func(ctx context.Context, model tea.Model, output *os.File) error
}

// NewPagerUI creates a new PagerUI writing to output.
func NewPagerUI(cmd *cobra.Command, output *os.File) *PagerUI {
	return &PagerUI{
		SimpleUI:   NewSimpleUI(cmd, true),
		output:     output,
		termSize:   term.GetSize,
		runProgram: runPagerProgram,
	}
}

// DisplayList pages the grouped tables when they do not fit the terminal.
func (p *PagerUI) DisplayList(ctx context.Context, report m.ListReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.page(ctx, p.renderList(report))
}

// DisplayTotal pages the summary table when it does not fit the terminal.
func (p *PagerUI) DisplayTotal(ctx context.Context, summary m.Summary, previewLength int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.page(ctx, p.renderTotal(summary, previewLength))
}

// page shows content in the viewport when it is taller than the terminal.
// The alternate screen is cleared on exit, so the report is printed again
// afterwards to keep it in the scrollback.
func (p *PagerUI) page(ctx context.Context, content string) error {
	width, height, err := p.termSize(int(p.output.Fd()))
	if err != nil || !needsPaging(content, height) {
		_, err := fmt.Fprint(p.output, content)
		return err
	}

	if err := p.runProgram(ctx, newPagerModel(content, width, height), p.output); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	_, err = fmt.Fprint(p.output, content)

	return err
}

func runPagerProgram(ctx context.Context, model tea.Model, output *os.File) error {
	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()

	return err
}

func needsPaging(content string, height int) bool {
	if height <= 0 {
		return false
	}

	return strings.Count(content, "\n") >= height
}

// pagerModel is a read-only scrollable view over a rendered report.
type pagerModel struct {
	viewport viewport.Model
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerFooterHeight, 1))
	vp.SetContent(content)

	return pagerModel{viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerFooterHeight, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	footer := fmt.Sprintf("%3.f%%  ↑/↓ scroll · q quit", pm.viewport.ScrollPercent()*100)
	return pm.viewport.View() + "\n" + footer
}
