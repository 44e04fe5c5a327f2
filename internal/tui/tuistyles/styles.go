package tuistyles

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
	ColorAccent    = lipgloss.AdaptiveColor{Light: "#DB2777", Dark: "#F472B6"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#EA580C", Dark: "#FB923C"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	ColorInfo      = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

	ColorForeground = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	ColorMuted      = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorBorder     = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

	// Grid cells, matching the web rendering.
	ColorPast   = lipgloss.Color("#6B7280")
	ColorToday  = lipgloss.Color("#3B82F6")
	ColorFuture = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
)

// MetricColors is the value color of each statistics card, in display order.
var MetricColors = []lipgloss.TerminalColor{
	ColorForeground,
	ColorPrimary,
	ColorSuccess,
	ColorSecondary,
	ColorWarning,
	ColorDanger,
}

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorBorder)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = BorderStyle.BorderForeground(ColorPrimary)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorForeground)

	ParameterLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorForeground)
	ParameterValueStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	SliderTrackStyle    = lipgloss.NewStyle().Foreground(ColorBorder)
	SliderThumbStyle    = lipgloss.NewStyle().Foreground(ColorPrimary)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorForeground)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo).Italic(true)
	QuoteStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	GridPastStyle   = lipgloss.NewStyle().Foreground(ColorPast)
	GridTodayStyle  = lipgloss.NewStyle().Foreground(ColorToday).Bold(true)
	GridFutureStyle = lipgloss.NewStyle().Foreground(ColorFuture)
	GridLabelStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
)
