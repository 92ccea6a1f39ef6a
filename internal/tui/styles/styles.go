// Package styles centralizes the lipgloss styles used across the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Playback status colors
	StatusPlaying = lipgloss.Color("#10B981") // Green
	StatusPaused  = lipgloss.Color("#60A5FA") // Blue
	StatusLoading = lipgloss.Color("#F59E0B") // Amber
	StatusPlayed  = lipgloss.Color("#A78BFA") // Purple

	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	// Now-playing pane
	NowPlayingBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	TrackTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	TrackArtist = lipgloss.NewStyle().
			Foreground(MutedColor)

	TimeDisplay = lipgloss.NewStyle().
			Foreground(MutedColor)

	ProgressFilled = lipgloss.NewStyle().Foreground(PrimaryColor)
	ProgressEmpty  = lipgloss.NewStyle().Foreground(BorderColor)

	// Tag row
	TagChip = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(SurfaceColor).
		Padding(0, 1)

	TagChipFocused = lipgloss.NewStyle().
			Bold(true).
			Foreground(SurfaceColor).
			Background(PrimaryColor).
			Padding(0, 1)

	TagToggle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Underline(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(MutedColor)

	StatusMessage = lipgloss.NewStyle().
			Foreground(WarningColor)
)

// StatusColor maps a playback status label to its display color.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "playing":
		return StatusPlaying
	case "loading":
		return StatusLoading
	case "played":
		return StatusPlayed
	default:
		return StatusPaused
	}
}
