package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the console.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and command bar
	SurfaceAlt string // Table body
	FocusBg    string // Active tab, focused input

	// Table colors
	SelectionBg   string
	SelectionText string
	HeaderText    string
	Skeleton      string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// StatusColors maps pipeline stages and record statuses to colors.
	StatusColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		InfoText:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HeaderText)).
			Bold(true),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		statusColors: t.StatusColors,
		text:         t.Text,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header       lipgloss.Style
	ColumnHeader lipgloss.Style
	Logo         lipgloss.Style
	Selected     lipgloss.Style

	statusColors map[string]string
	text         string
}

// StatusStyle returns a foreground style for a stage, status or result
// value. Unknown values use the plain text color.
func (s Styles) StatusStyle(status string) lipgloss.Style {
	color, ok := s.statusColors[normalizeStatus(status)]
	if !ok {
		color = s.text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// WithBackground returns a copy of Styles with every text style painted on
// bgColor instead of inheriting the terminal background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	out := s
	out.Background = s.Background.Background(bg)
	out.Surface = s.Surface.Background(bg)
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.InfoText = s.InfoText.Background(bg)
	out.Header = s.Header.Background(bg)
	out.ColumnHeader = s.ColumnHeader.Background(bg)
	out.Logo = s.Logo.Background(bg)
	return out
}

func normalizeStatus(status string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(status)), " ", "_")
}

var themes = map[string]Theme{
	"Nightfall": nightfallTheme(),
	"Paper":     paperTheme(),
	"Slate":     slateTheme(),
}

var themeOrder = []string{"Nightfall", "Paper", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfall.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfallTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

// statusPalette assigns the same semantic color to every stage or status
// with that meaning.
func statusPalette(neutral, active, good, warn, bad string) map[string]string {
	return map[string]string{
		// candidate stages
		"applied":   neutral,
		"screening": active,
		"interview": active,
		"offer":     warn,
		"hired":     good,
		"rejected":  bad,
		"withdrawn": neutral,

		// interview and checkup results
		"pending": neutral,
		"pass":    good,
		"passed":  good,
		"fail":    bad,
		"failed":  bad,
		"hold":    warn,
		"fit":     good,
		"unfit":   bad,

		// positions
		"open":   good,
		"paused": warn,
		"closed": neutral,
		"filled": active,

		// documents
		"uploaded":   neutral,
		"processing": active,
		"verified":   good,
		"review":     warn,

		// contracts
		"draft":      neutral,
		"sent":       active,
		"signed":     good,
		"terminated": bad,
		"expired":    bad,
	}
}

func nightfallTheme() Theme {
	return Theme{
		Name: "Nightfall",

		Background: "#11151c",
		Surface:    "#171c26",
		SurfaceAlt: "#1d2330",
		FocusBg:    "#263042",

		SelectionBg:   "#2f4160",
		SelectionText: "#e6e9ef",
		HeaderText:    "#9fb3d1",
		Skeleton:      "#2a3243",

		Border:      "#34405a",
		BorderFocus: "#7aa2f7",

		Text:    "#d5d9e0",
		Muted:   "#8a93a6",
		Faint:   "#5f6b80",
		Accent:  "#7aa2f7",
		Success: "#8fc08a",
		Warning: "#e0b96a",
		Danger:  "#e06c75",
		Info:    "#66c2cd",

		StatusColors: statusPalette("#8a93a6", "#66c2cd", "#8fc08a", "#e0b96a", "#e06c75"),
	}
}

func paperTheme() Theme {
	return Theme{
		Name: "Paper",

		Background: "#f4f1ea",
		Surface:    "#ebe6db",
		SurfaceAlt: "#faf8f3",
		FocusBg:    "#e0dacb",

		SelectionBg:   "#c9d8ef",
		SelectionText: "#1f2430",
		HeaderText:    "#3b4d6b",
		Skeleton:      "#e2ddd0",

		Border:      "#c4bca9",
		BorderFocus: "#3d6cb3",

		Text:    "#2a2e36",
		Muted:   "#5f6672",
		Faint:   "#8b909a",
		Accent:  "#3d6cb3",
		Success: "#3f7d3a",
		Warning: "#9a6b14",
		Danger:  "#b3363f",
		Info:    "#23788a",

		StatusColors: statusPalette("#5f6672", "#23788a", "#3f7d3a", "#9a6b14", "#b3363f"),
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50
		HeaderText:    "#7dd3fc", // sky-300
		Skeleton:      "#334155", // slate-700

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		StatusColors: statusPalette("#64748b", "#06b6d4", "#22c55e", "#f59e0b", "#dc2626"),
	}
}
