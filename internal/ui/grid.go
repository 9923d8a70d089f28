package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/talentdesk/internal/table"
	"github.com/five82/talentdesk/internal/views"
)

// statusColumns are colored by value.
var statusColumns = map[string]bool{
	"stage":  true,
	"status": true,
	"result": true,
}

const skeletonRows = 6

// renderPane renders the active view inside a titled box.
func (m Model) renderPane() string {
	p := m.current()
	contentHeight := max(m.height-3, 3)
	if p == nil {
		styles := m.theme.Styles()
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No views configured"))
	}
	inner := max(m.width-2, 1)
	content := m.renderToolbar(*p, inner) + "\n" + m.renderTable(*p, inner, max(contentHeight-3, 1))
	return m.renderTitledBox(p.title(), content, m.width, contentHeight, true)
}

// renderToolbar renders the search field, search columns and sort choice.
func (m Model) renderToolbar(p pane, width int) string {
	bgColor := m.theme.SurfaceAlt
	if p.bar.Focused() {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	cfg := p.bar.Config()

	var parts []string
	if cfg.Search {
		parts = append(parts, p.bar.InputView())
		parts = append(parts, bg.Render("in", styles.FaintText)+bg.Space()+bg.Render(p.presetName(), styles.AccentText))
	}
	if cfg.Sort {
		parts = append(parts, bg.Render("sort", styles.FaintText)+bg.Space()+bg.Render(p.bar.SortOption(), styles.AccentText))
	}
	return bg.FillLine(bg.Join(parts, "   "), width)
}

// renderTable renders the column header and the resolved body.
func (m Model) renderTable(p pane, width, height int) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	styles := m.theme.Styles()

	widths, titles := columnWidths(p.proj.Headers)
	cols := layoutColumns(widths, titles, width)

	headerCells := make([]string, len(cols))
	for i, w := range cols {
		headerCells[i] = bg.Render(fitCell(titles[i], w), styles.ColumnHeader)
	}
	lines := []string{bg.FillLine(bg.Join(headerCells, " "), width)}

	bodyHeight := max(height-1, 1)
	body := table.Resolve(p.proj.Loading(), p.bar.Searching(), len(p.proj.Rows))
	switch body.State {
	case table.RenderLoading:
		lines = append(lines, m.renderSkeleton(cols, width, min(skeletonRows, bodyHeight))...)
	case table.RenderEmpty:
		msg := styles.MutedText.Background(lipgloss.Color(m.theme.SurfaceAlt)).Render(table.EmptyMessage)
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, msg,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.SurfaceAlt))))
	default:
		if body.Searching {
			line := bg.Render(m.spinner.View(), styles.AccentText) + bg.Space() + bg.Render("Searching...", styles.MutedText)
			lines = append(lines, bg.FillLine(line, width))
			bodyHeight--
		}
		lines = append(lines, m.renderRows(p, cols, width, bodyHeight)...)
	}
	return strings.Join(lines, "\n")
}

func columnWidths(headers []views.Header) ([]int, []string) {
	widths := make([]int, len(headers))
	titles := make([]string, len(headers))
	for i, h := range headers {
		widths[i] = h.Width
		titles[i] = h.Title
	}
	return widths, titles
}

// renderRows renders the window of rows that keeps the selection visible.
func (m Model) renderRows(p pane, cols []int, width, height int) []string {
	if height <= 0 {
		return nil
	}
	start := 0
	if p.selected >= height {
		start = p.selected - height + 1
	}
	end := min(start+height, len(p.proj.Rows))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := p.proj.Rows[i]
		if m.edit.IsEditing(row.ID) {
			lines = append(lines, m.renderEditRow(width))
			continue
		}
		lines = append(lines, m.renderRow(p.proj.Headers, row, cols, width, i == p.selected))
	}
	return lines
}

func (m Model) renderRow(headers []views.Header, row views.Row, cols []int, width int, selected bool) string {
	bgColor := m.theme.SurfaceAlt
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))

	cells := make([]string, len(cols))
	for i, w := range cols {
		var value string
		if i < len(row.Cells) {
			value = row.Cells[i]
		}
		style := styles.Text
		switch {
		case selected:
			style = selText
		case statusColumns[headers[i].ID]:
			style = styles.StatusStyle(value)
		case value == "":
			value = "-"
			style = styles.FaintText
		}
		if statusColumns[headers[i].ID] {
			value = titleCase(value)
		}
		cells[i] = bg.Render(fitCell(value, w), style)
	}
	return bg.FillLine(bg.Join(cells, " "), width)
}

// renderSkeleton renders placeholder bars in place of rows that have not
// arrived yet.
func (m Model) renderSkeleton(cols []int, width, rows int) []string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	styles := m.theme.Styles()
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Skeleton))

	lines := make([]string, 0, rows+1)
	lines = append(lines, bg.FillLine(
		bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+bg.Render("Loading...", styles.MutedText), width))
	for r := 0; r < rows-1; r++ {
		cells := make([]string, len(cols))
		for i, w := range cols {
			// Vary bar lengths so the placeholder reads as rows.
			n := max(w-((r+i)%3)*2, 1)
			cells[i] = bg.Render(strings.Repeat("▒", n), bar) + bg.Spaces(w-n)
		}
		lines = append(lines, bg.FillLine(bg.Join(cells, " "), width))
	}
	return lines
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor := m.theme.Border
	if focused {
		borderColor = m.theme.BorderFocus
	}
	bg := NewBgStyle(m.theme.SurfaceAlt)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 1)
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+bg.FillLine(line, innerWidth)+bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
