package styles

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Intensity colors, minimum to intervals
	intensityColors = []lipgloss.Color{
		lipgloss.Color("#60A5FA"),
		lipgloss.Color("#34D399"),
		lipgloss.Color("#A3E635"),
		lipgloss.Color("#F59E0B"),
		lipgloss.Color("#EF4444"),
		lipgloss.Color("#EC4899"),
	}

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Entry list
	EntryDate = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	EntryText = lipgloss.NewStyle()

	EntryComment = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	EntrySelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	EquipmentRetired = lipgloss.NewStyle().
				Foreground(Muted).
				Strikethrough(true)

	// Filter summary
	FilterBar = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	ToggleOn = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	ToggleOff = lipgloss.NewStyle().
			Foreground(Muted)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// SportTypeColor returns the color configured for a sport type,
// falling back to Primary for empty or malformed values
func SportTypeColor(color string) lipgloss.Color {
	if hexColor.MatchString(color) {
		return lipgloss.Color(color)
	}
	return Primary
}

// IntensityColor returns the color for an intensity index
func IntensityColor(intensity int) lipgloss.Color {
	if intensity < 0 || intensity >= len(intensityColors) {
		return Muted
	}
	return intensityColors[intensity]
}
