package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	// List styles
	ListBlock = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	EntrySelected = lipgloss.NewStyle().
			Bold(true)

	EntryDragged = lipgloss.NewStyle().
			Reverse(true)

	EntryNormal = lipgloss.NewStyle()

	Cursor = ">>"

	// Detail pane
	DetailName = lipgloss.NewStyle().
			Bold(true)

	DetailTime = lipgloss.NewStyle().
			Italic(true).
			Foreground(Muted)

	DetailLink = lipgloss.NewStyle().
			Foreground(Secondary)

	// Key options panel
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
