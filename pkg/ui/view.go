package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rescp17/leightbox/internal/render"
	"github.com/rescp17/leightbox/internal/session"
	"github.com/rescp17/leightbox/internal/style"
	"github.com/rescp17/leightbox/internal/util"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	barHeight  = 3
	helpHeight = 1
	// columns between a file name and its size
	detailGap = "   "
)

// Paint draws a layout into a width x height block of terminal cells.
func Paint(l render.Layout, width, height int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	frame := style.DocStyle
	innerWidth := max(width-frame.GetHorizontalMargins(), 12)
	innerHeight := max(height-frame.GetVerticalMargins(), 2*barHeight+helpHeight+3)
	middleHeight := innerHeight - 2*barHeight - helpHeight

	var middle string
	switch l.Mode {
	case session.Client:
		middle = paintPanes(l.Panes, innerWidth, middleHeight)
	case session.Host:
		middle = paintTable(l.Table, innerWidth, middleHeight)
	case session.Unset:
		middle = strings.Repeat("\n", middleHeight-1)
	}

	helpView := style.HelpStyle.Render(help.New().ShortHelpView(l.Help))

	return frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		paintBar(style.TitleStyle.Render(l.Title), innerWidth),
		middle,
		paintBar(l.Info, innerWidth),
		helpView,
	))
}

func paintBar(content string, width int) string {
	return style.BarStyle.Width(width - style.BarStyle.GetHorizontalBorderSize()).Render(content)
}

// paintPanes lays the file panes side by side in equal widths.
func paintPanes(panes []render.Pane, width, height int) string {
	if len(panes) == 0 {
		return strings.Repeat("\n", height-1)
	}
	paneWidth := width / len(panes)
	views := make([]string, 0, len(panes))
	for _, p := range panes {
		views = append(views, paintPane(p, paneWidth, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func paintPane(p render.Pane, width, height int) string {
	contentWidth := max(width-style.PaneStyle.GetHorizontalBorderSize(), 1)
	contentHeight := max(height-style.PaneStyle.GetVerticalBorderSize(), 1)
	visible := max(contentHeight-1, 0)

	// scroll so the cursor row stays visible
	offset := 0
	if p.Cursor >= visible && visible > 0 {
		offset = p.Cursor - visible + 1
	}
	end := min(offset+visible, len(p.Rows))

	lines := make([]string, 0, contentHeight)
	lines = append(lines, style.PaneTitleStyle.Render(util.PadRight(p.Title, contentWidth)))
	for i := offset; i < end; i++ {
		lines = append(lines, paintRow(p.Rows[i], i == p.Cursor, contentWidth))
	}

	return style.PaneStyle.
		Width(contentWidth).
		Height(contentHeight).
		Render(strings.Join(lines, "\n"))
}

// paintRow renders "name   <size> bytes" with the name column padded so sizes
// line up. The cursor row is highlighted and prefixed with the highlight
// symbol.
func paintRow(r render.Row, selected bool, width int) string {
	prefix := strings.Repeat(" ", runewidth.StringWidth(style.HighlightSymbol))
	if selected {
		prefix = style.HighlightSymbol
	}

	nameWidth := width - runewidth.StringWidth(prefix) - len(detailGap) - runewidth.StringWidth(r.Detail)
	if nameWidth < 4 {
		plain := util.PadRight(prefix+r.Name, width)
		if selected {
			return style.HighlightStyle.Render(plain)
		}
		return style.FileNameStyle.Render(plain)
	}

	name := util.PadRight(r.Name, nameWidth)
	switch {
	case selected:
		return style.HighlightStyle.Render(prefix + name + detailGap + r.Detail)
	case r.Claimed:
		return style.ClaimedStyle.Render(prefix + name + detailGap + r.Detail)
	default:
		return prefix + style.FileNameStyle.Render(name) + detailGap + style.FileSizeStyle.Render(r.Detail)
	}
}

// paintTable draws the peer table with its header set off from the rows.
func paintTable(t *render.Table, width, height int) string {
	if t == nil {
		return strings.Repeat("\n", height-1)
	}
	contentWidth := max(width-style.PaneStyle.GetHorizontalBorderSize(), 2)
	contentHeight := max(height-style.PaneStyle.GetVerticalBorderSize(), 3)

	// each cell carries one column of padding on both sides
	colWidth := max(contentWidth/len(t.Header)-2, 1)
	columns := make([]table.Column, 0, len(t.Header))
	for _, h := range t.Header {
		columns = append(columns, table.Column{Title: h, Width: colWidth})
	}
	rows := make([]table.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, table.Row(r))
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(contentHeight-1),
		table.WithFocused(false),
	)
	tbl.SetStyles(style.NewTableStyles())

	content := lipgloss.JoinVertical(lipgloss.Left,
		style.PaneTitleStyle.Render(util.PadRight(t.Title, contentWidth)),
		tbl.View(),
	)
	return style.PaneStyle.
		Width(contentWidth).
		Height(contentHeight).
		Render(content)
}
