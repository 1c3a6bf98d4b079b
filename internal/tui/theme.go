// Package tui provides shared theme and styles for the mingle TUI.
package tui

import "github.com/charmbracelet/lipgloss"

// Brand palette.
var (
	ColorPrimary   = lipgloss.Color("#9333EA") // purple-600
	ColorSecondary = lipgloss.Color("#EC4899") // pink-500
	ColorAccent    = lipgloss.Color("#FDE047") // yellow-300

	ColorError  = lipgloss.Color("#EF4444") // red
	ColorMuted  = lipgloss.Color("#6B7280") // gray-500
	ColorText   = lipgloss.Color("#E5E7EB") // gray-200
	ColorSubtle = lipgloss.Color("#9CA3AF") // gray-400
	ColorWhite  = lipgloss.Color("#FFFFFF")
)

// Shared styles.
var (
	// Title is the main heading style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWhite)

	// Icon colors the header glyph.
	Icon = lipgloss.NewStyle().
		Foreground(ColorAccent)

	// Subtitle for secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Description for helper text.
	Description = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	// Selected highlights the currently focused item.
	Selected = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Dimmed for disabled or non-focused items.
	Dimmed = lipgloss.NewStyle().
		Foreground(ColorMuted)

	// Price renders plan prices.
	Price = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	// Badge is the highlighted label on the recommended option.
	Badge = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorSecondary).
		Bold(true).
		Padding(0, 1)

	// Header is the banner at the top of a modal.
	Header = lipgloss.NewStyle().
		Background(ColorPrimary).
		Padding(1, 2)

	// ErrorBox for inline error messages.
	ErrorBox = lipgloss.NewStyle().
			Foreground(ColorError).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Padding(0, 1)

	// Help for keybind hints at the bottom.
	Help = lipgloss.NewStyle().
		Foreground(ColorMuted)

	// Modal is the outer frame of a dialog.
	Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary)

	// Option is an unfocused selectable card.
	Option = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)

	// FocusedOption is the card under the cursor.
	FocusedOption = Option.
			BorderForeground(ColorPrimary)
)
