// Package panel renders each dashboard region from a state snapshot
package panel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

// Renderer turns a store snapshot into the visual output of one panel.
// Rendering is a pure function of the snapshot: re-invoking with the same
// snapshot must produce identical output and no side effects.
type Renderer interface {
	Render(snap *view.Snapshot) string
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	upStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	downStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Padding(0, 1)
)

// changeStyle picks the up/down color for a signed change value
func changeStyle(change float64) lipgloss.Style {
	if change < 0 {
		return downStyle
	}
	return upStyle
}
