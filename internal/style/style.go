package style

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// --- Reusable Colors ---
var (
	colorLightRed     = lipgloss.Color("9")
	colorLightBlue    = lipgloss.Color("12")
	colorLightYellow  = lipgloss.Color("11")
	colorLightMagenta = lipgloss.Color("13")
	colorGray         = lipgloss.Color("7")
	colorDarkGray     = lipgloss.Color("8")
)

// HighlightSymbol prefixes the row under the cursor.
const HighlightSymbol = " >> "

// --- Bars ---
var (
	TitleStyle = lipgloss.NewStyle().Foreground(colorLightRed).Align(lipgloss.Center)
	BarStyle   = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorLightBlue).
			Align(lipgloss.Center)
)

// --- File Panes ---
var (
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorLightYellow)
	PaneTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLightYellow)
	FileNameStyle  = lipgloss.NewStyle().Foreground(colorLightMagenta)
	FileSizeStyle  = lipgloss.NewStyle().Foreground(colorGray)
	HighlightStyle = lipgloss.NewStyle().Background(colorDarkGray).Bold(true)
	ClaimedStyle   = lipgloss.NewStyle().Faint(true)
)

// --- General Purpose Styles ---
var (
	DocStyle  = lipgloss.NewStyle().Margin(1, 1)
	HelpStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// NewTableStyles returns the styles of the peer table. The header is set off
// from the rows by a bottom border; no row is highlighted.
func NewTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(colorLightYellow).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(colorDarkGray).
		Bold(true)
	styles.Cell = styles.Cell.Foreground(colorGray)
	styles.Selected = lipgloss.NewStyle()
	return styles
}
