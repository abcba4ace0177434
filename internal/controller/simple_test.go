package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "zdex.dev/pkg/zdex/internal/model"
)

func newTestUI(t *testing.T) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)

	return NewSimpleUI(cmd, false), out
}

func intPtr(v int) *int {
	return &v
}

func TestSimpleUI_DisplayWarning(t *testing.T) {
	ui, out := newTestUI(t)

	ui.DisplayWarning(context.Background(), m.Warning{
		Value:    "banana",
		Match:    "z-index: banana",
		Location: m.Location{Path: "src/a.css", Line: 3},
	})

	output := out.String()
	assert.Contains(t, output, `Invalid z-index: "banana"`)
	assert.Contains(t, output, "Match: [z-index: banana]")
	assert.Contains(t, output, "File path: src/a.css:3")
	assert.NotContains(t, output, "\x1b[", "colors must be disabled")
}

func TestSimpleUI_DisplayWarning_CancelledContext(t *testing.T) {
	ui, out := newTestUI(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayWarning(ctx, m.Warning{Value: "x"})
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayList(t *testing.T) {
	ui, out := newTestUI(t)

	report := m.ListReport{
		ZIndexes: []m.ZIndexGroup{
			{Value: 10, Total: 2, Files: []string{"a.css:1", "b.scss:4"}},
			{Value: 999, Total: 1, Files: []string{"modal.tsx:12"}},
		},
		SassVariables: []m.SassVariableGroup{
			{Name: "$overlay", Value: intPtr(20), Total: 1, Files: []string{"c.scss:2"}},
			{Name: "$missing", Total: 1, Files: []string{"d.scss:7"}},
		},
	}

	err := ui.DisplayList(context.Background(), report)
	require.NoError(t, err)

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "z-indexes\n"))
	assert.Contains(t, output, "sass variables\n")
	assert.Contains(t, output, "z-index")
	assert.Contains(t, output, "files")
	for _, want := range []string{"a.css:1", "b.scss:4", "modal.tsx:12", "999", "$overlay", "20", "$missing", unknownValueLabel, "d.scss:7"} {
		assert.Contains(t, output, want)
	}

	assert.Less(t, strings.Index(output, "a.css:1"), strings.Index(output, "modal.tsx:12"), "group order must be preserved")
}

func TestSimpleUI_DisplayList_Empty(t *testing.T) {
	ui, out := newTestUI(t)

	err := ui.DisplayList(context.Background(), m.ListReport{})
	require.NoError(t, err)

	assert.Contains(t, out.String(), zIndexesTitle)
	assert.Contains(t, out.String(), sassVariablesTitle)
}

func TestSimpleUI_DisplayTotal(t *testing.T) {
	ui, out := newTestUI(t)

	summary := m.Summary{
		ZIndexCount:       3,
		UniqueCount:       2,
		SassVariableCount: 1,
		Values:            []int{1, 1, 5},
		UniqueValues:      []int{1, 5},
		SassVariables: []m.SassVariableMatch{
			{Name: "$overlay", Value: intPtr(20), Location: m.Location{Path: "x.scss", Line: 9}},
		},
	}

	err := ui.DisplayTotal(context.Background(), summary, 0)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "numeric z-indexes")
	assert.Contains(t, output, "unique numeric z-indexes")
	assert.Contains(t, output, "sass variable")
	assert.NotContains(t, output, "sass variables")
	assert.Contains(t, output, "1,1,5")
	assert.Contains(t, output, "$overlay: 20")
	assert.Contains(t, output, "x.scss:9")
}

func TestSimpleUI_DisplayTotal_LinesAligned(t *testing.T) {
	tests := []struct {
		name    string
		summary m.Summary
	}{
		{
			name: "single digit counts with multi-line preview",
			summary: m.Summary{
				ZIndexCount:       1,
				UniqueCount:       1,
				SassVariableCount: 1,
				Values:            []int{7},
				UniqueValues:      []int{7},
				SassVariables: []m.SassVariableMatch{
					{Name: "$overlay", Value: intPtr(20), Location: m.Location{Path: "x.scss", Line: 9}},
				},
			},
		},
		{
			name: "two variables",
			summary: m.Summary{
				SassVariableCount: 2,
				SassVariables: []m.SassVariableMatch{
					{Name: "$overlay", Value: intPtr(20), Location: m.Location{Path: "src/a.scss", Line: 1}},
					{Name: "$toast", Location: m.Location{Path: "src/b.scss", Line: 3}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, out := newTestUI(t)

			err := ui.DisplayTotal(context.Background(), tt.summary, 0)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
			require.NotEmpty(t, lines)

			width := utf8.RuneCountInString(lines[0])
			for _, line := range lines {
				assert.Equal(t, width, utf8.RuneCountInString(line), "misaligned line %q", line)
			}
		})
	}
}

func TestSimpleUI_DisplayTotal_Zero(t *testing.T) {
	ui, out := newTestUI(t)

	err := ui.DisplayTotal(context.Background(), m.Summary{}, 0)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "numeric z-indexes")
	assert.Contains(t, output, "sass variables")
	assert.Equal(t, 3, strings.Count(output, " 0 "))
}

func TestPreviewValues_Truncates(t *testing.T) {
	values := make([]int, 0, 100)
	for i := 0; i < 100; i++ {
		values = append(values, 1000+i)
	}

	preview := previewValues(values, 20)
	assert.Equal(t, "1000,1001,1002,1003…", preview)
}

func TestPreviewVariables_CutsAtEntryBoundary(t *testing.T) {
	vars := []m.SassVariableMatch{
		{Name: "$a", Value: intPtr(1), Location: m.Location{Path: "a.scss", Line: 1}},
		{Name: "$b", Location: m.Location{Path: "b.scss", Line: 2}},
	}

	preview := previewVariables(vars, 20)
	assert.Equal(t, "$a: 1\na.scss:1…", preview)

	full := previewVariables(vars, 200)
	assert.Equal(t, "$a: 1\na.scss:1\n\n$b: [Unknown Value]\nb.scss:2", full)
}

func TestFormatVariableValue(t *testing.T) {
	assert.Equal(t, "7", formatVariableValue(intPtr(7)))
	assert.Equal(t, unknownValueLabel, formatVariableValue(nil))
}
