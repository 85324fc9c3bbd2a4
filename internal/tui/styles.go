package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base styles for chromagen TUI components
var (
	// Header style for titles and section headers
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// Label style for form field labels
	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Muted style for secondary text
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Highlight style for values in the summary
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	// Box style for bordered containers
	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(1, 2)
)

const logoASCII = `
      _                                              
  ___| |__  _ __ ___  _ __ ___   __ _  __ _  ___ _ __  
 / __| '_ \| '__/ _ \| '_ ' _ \ / _' |/ _' |/ _ \ '_ \ 
| (__| | | | | | (_) | | | | | | (_| | (_| |  __/ | | |
 \___|_| |_|_|  \___/|_| |_| |_|\__,_|\__, |\___|_| |_|
                                      |___/            `

// Logo returns the chromagen ASCII art
func Logo() string {
	return StyleHeader.Render(strings.Trim(logoASCII, "\n"))
}
