package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/olekukonko/tablewriter"

	m "zdex.dev/pkg/zdex/internal/model"
	"zdex.dev/pkg/zdex/pkg/textutil"
)

const (
	unknownValueLabel = "[Unknown Value]"

	zIndexesTitle      = "z-indexes"
	sassVariablesTitle = "sass variables"

	// DefaultPreviewLength caps the value previews of the totals view.
	DefaultPreviewLength = 150

	previewWrapWidth = 100

	countColumnMinWidth = 2
)

// renderList renders the grouped z-index table followed by the Sass
// variable table.
func renderList(report m.ListReport, st styles) string {
	var b strings.Builder

	b.WriteString(zIndexesTitle + "\n")
	b.WriteString(renderZIndexTable(report.ZIndexes, st))
	b.WriteString(sassVariablesTitle + "\n")
	b.WriteString(renderSassVariableTable(report.SassVariables, st))

	return b.String()
}

func renderZIndexTable(groups []m.ZIndexGroup, st styles) string {
	var buf bytes.Buffer

	table := newTable(&buf)
	table.SetHeader([]string{"z-index", "total", "files"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, g := range groups {
		table.Append([]string{
			st.value.Render(strconv.Itoa(g.Value)),
			strconv.Itoa(g.Total),
			strings.Join(g.Files, "\n"),
		})
	}

	table.Render()

	return buf.String()
}

func renderSassVariableTable(groups []m.SassVariableGroup, st styles) string {
	var buf bytes.Buffer

	table := newTable(&buf)
	table.SetHeader([]string{"sass variable", "value", "total", "files"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, g := range groups {
		table.Append([]string{
			st.value.Render(g.Name),
			st.value.Render(formatVariableValue(g.Value)),
			strconv.Itoa(g.Total),
			strings.Join(g.Files, "\n"),
		})
	}

	table.Render()

	return buf.String()
}

// renderTotal renders the three summary rows of the totals view.
func renderTotal(summary m.Summary, previewLength int, st styles) string {
	if previewLength <= 0 {
		previewLength = DefaultPreviewLength
	}

	var buf bytes.Buffer

	table := newTable(&buf)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	// tablewriter pads continuation lines of a 1-wide column to 2 characters.
	table.SetColMinWidth(0, countColumnMinWidth)

	rows := [][]string{
		{
			strconv.Itoa(summary.ZIndexCount),
			"numeric " + textutil.Pluralize("z-index", summary.ZIndexCount, "z-indexes"),
			previewValues(summary.Values, previewLength),
		},
		{
			strconv.Itoa(summary.UniqueCount),
			"unique numeric " + textutil.Pluralize("z-index", summary.UniqueCount, "z-indexes"),
			previewValues(summary.UniqueValues, previewLength),
		},
		{
			strconv.Itoa(summary.SassVariableCount),
			textutil.Pluralize("sass variable", summary.SassVariableCount, ""),
			previewVariables(summary.SassVariables, previewLength),
		},
	}

	for _, row := range rows {
		table.Append([]string{
			st.label.Render(row[0]),
			st.label.Render(row[1]),
			st.preview.Render(row[2]),
		})
	}

	table.Render()

	return buf.String()
}

func newTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)

	return table
}

func previewValues(values []int, length int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}

	preview := textutil.Truncate(strings.Join(parts, ","), textutil.TruncateOptions{Length: length})

	return text.WrapSoft(preview, previewWrapWidth)
}

func previewVariables(vars []m.SassVariableMatch, length int) string {
	entries := make([]string, 0, len(vars))
	for _, v := range vars {
		entries = append(entries, fmt.Sprintf("%s: %s\n%s", v.Name, formatVariableValue(v.Value), v.Location))
	}

	preview := textutil.Truncate(strings.Join(entries, "\n\n"), textutil.TruncateOptions{
		Length:    length,
		Separator: "\n\n",
	})

	lines := strings.Split(preview, "\n")
	for i, line := range lines {
		lines[i] = text.WrapSoft(line, previewWrapWidth)
	}

	return strings.Join(lines, "\n")
}

func formatVariableValue(value *int) string {
	if value == nil {
		return unknownValueLabel
	}

	return strconv.Itoa(*value)
}

func formatWarning(warning m.Warning) string {
	return fmt.Sprintf("Invalid z-index: %q\nMatch: [%s]\nFile path: %s\n", warning.Value, warning.Match, warning.Location)
}
