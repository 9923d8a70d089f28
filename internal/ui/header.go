package ui

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/talentdesk/internal/recruit"
)

// renderHeader renders the status line: logo, active view counts, data
// freshness and either the latest notice or the API error.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < 100

	parts := []string{bg.Render("TALENTDESK", styles.Logo)}

	if p := m.current(); p != nil {
		entry := m.snapshot.Entry(p.def.Resource())
		switch {
		case p.proj.Loading():
			parts = append(parts, bg.Render(m.spinner.View()+" fetching "+strings.ToLower(p.def.Title()), styles.MutedText))
		case entry.Loaded:
			label := fmt.Sprintf("%d rows", len(p.proj.Rows))
			if len(p.proj.Rows) != p.proj.Total {
				label = fmt.Sprintf("%d of %d rows", len(p.proj.Rows), p.proj.Total)
			}
			parts = append(parts, bg.Render(label, styles.Text))
		}
	}

	if ts := m.formatTimestamp(); ts != "" && !compact {
		parts = append(parts, bg.Render("Updated", styles.FaintText)+bg.Space()+bg.Render(ts, styles.MutedText))
	}

	switch {
	case m.notice != "":
		style := styles.SuccessText
		if m.noticeError {
			style = styles.DangerText
		}
		parts = append(parts, bg.Render(truncate(m.notice, noticeLimit(compact)), style))
	case m.snapshot.LastError != nil:
		parts = append(parts, m.formatAPIError(compact, styles, bg))
	}

	return styles.Header.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(bg.Join(parts, "  "))
}

func noticeLimit(compact bool) int {
	if compact {
		return 40
	}
	return 80
}

// formatAPIError formats the last fetch failure. An API that stayed
// unreachable across polls is reported as offline.
func (m Model) formatAPIError(compact bool, styles Styles, bg BgStyle) string {
	label := classifyConnectionError(m.snapshot.LastError)
	if m.snapshot.IsOffline() {
		label = "OFFLINE"
	}
	out := bg.Render(label, styles.DangerText)
	if !compact {
		detail := truncate(m.snapshot.LastError.Error(), 60)
		out += bg.Space() + bg.Render(detail, styles.MutedText)
	}
	return out
}

// formatTimestamp formats the last update time with a relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}
	updated := m.snapshot.LastUpdated
	if updated.IsZero() {
		updated = m.lastUpdated
	}

	since := m.now().Sub(updated)
	out := updated.Format("15:04:05")
	switch {
	case since < time.Minute:
		out += " (now)"
	case since < time.Hour:
		out += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	case since < 24*time.Hour:
		out += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}
	return out
}

// classifyConnectionError returns a short description of a fetch error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "TIMEOUT"
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "status 401"), strings.Contains(msg, "status 403"):
		return "UNAUTHORIZED"
	default:
		return "ERROR"
	}
}

// renderTabs renders one tab per view. Views whose last fetch failed are
// marked.
func (m Model) renderTabs() string {
	bg := NewBgStyle(m.theme.Background)
	styles := m.theme.Styles()

	tabs := make([]string, 0, len(m.panes))
	for i, p := range m.panes {
		label := " " + p.def.Title() + " "
		if e := m.snapshot.Entry(p.def.Resource()); e.LastError != nil {
			label = " " + p.def.Title() + " ! "
		}
		style := styles.MutedText.Background(lipgloss.Color(m.theme.Background))
		if i == m.active {
			style = lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.FocusBg)).
				Foreground(lipgloss.Color(m.theme.Accent)).
				Bold(true)
		}
		tabs = append(tabs, style.Render(label))
	}
	return bg.FillLine(bg.Join(tabs, " "), m.width)
}

// renderCommandBar renders the command hints for the current mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	p := m.current()
	switch {
	case m.edit.Editing():
		commands = []cmd{{"enter", "Save"}, {"tab", "Field"}, {"esc", "Cancel"}}
	case p != nil && p.bar.Focused():
		commands = []cmd{{"enter", "Apply"}, {"esc", "Done"}}
	default:
		commands = append(commands, cmd{"/", "Search"})
		if p != nil && len(p.def.Presets()) > 1 {
			commands = append(commands, cmd{"f", p.presetName()})
		}
		if p != nil && p.bar.Config().Sort {
			commands = append(commands, cmd{"s", p.bar.SortOption()})
		}
		commands = append(commands, cmd{"x", "Export"})
		if p != nil && p.def.Resource() == recruit.InterviewRounds {
			commands = append(commands, cmd{"e", "Edit"})
		}
		commands = append(commands, cmd{"tab", "Views"}, cmd{"?", "More"})
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(bg.Join(segments, "  "))
}
