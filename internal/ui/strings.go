package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to the given display width, adding an
// ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit == 1 {
		return runewidth.Truncate(value, 1, "")
	}
	return runewidth.Truncate(value, limit, "…")
}

// fitCell truncates or pads value to exactly width display cells.
func fitCell(value string, width int) string {
	if width <= 0 {
		return ""
	}
	// Line breaks in notes would break the row grid.
	value = strings.Join(strings.Fields(value), " ")
	return runewidth.FillRight(truncate(value, width), width)
}

// titleCase converts an underscore-separated string to title case.
func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.Split(value, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}

// layoutColumns returns the display width of each column that fits into
// width. Columns are separated by one space; columns that no longer fit
// are dropped and the last partially fitting column is narrowed.
func layoutColumns(widths []int, titles []string, width int) []int {
	out := make([]int, 0, len(widths))
	used := 0
	for i, w := range widths {
		if i < len(titles) {
			w = max(w, runewidth.StringWidth(titles[i]))
		}
		w = max(w, minColumnWidth)
		sep := 0
		if len(out) > 0 {
			sep = 1
		}
		remaining := width - used - sep
		if remaining < minColumnWidth {
			break
		}
		w = min(w, remaining)
		out = append(out, w)
		used += sep + w
	}
	return out
}

const minColumnWidth = 3
