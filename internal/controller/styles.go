package controller

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the cell styles of the report tables. Colors are dropped
// when the renderer's writer has no color support.
type styles struct {
	value   lipgloss.Style
	label   lipgloss.Style
	preview lipgloss.Style
}

func newStyles(w io.Writer, colorEnabled bool) styles {
	renderer := lipgloss.NewRenderer(w)
	if !colorEnabled {
		return styles{
			value:   renderer.NewStyle(),
			label:   renderer.NewStyle(),
			preview: renderer.NewStyle(),
		}
	}

	return styles{
		value:   renderer.NewStyle().Foreground(lipgloss.Color("12")),
		label:   renderer.NewStyle().Foreground(lipgloss.Color("12")),
		preview: renderer.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
