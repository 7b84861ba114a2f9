package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)

	DeployedStyle = lipgloss.NewStyle().
			Foreground(DeployedColor).
			Bold(true)

	UndeployedStyle = lipgloss.NewStyle().
			Foreground(UndeployedColor).
			Bold(true)

	ConflictStyle = lipgloss.NewStyle().
			Foreground(ConflictColor).
			Bold(true)
)

// Helper functions
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
