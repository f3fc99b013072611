package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/crewdeck/crewdeck/internal/config"
	"github.com/crewdeck/crewdeck/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle   lipgloss.Style
	SubtleStyle  lipgloss.Style
	LabelStyle   lipgloss.Style // For field labels like "Role:", "Due:"
	SectionStyle lipgloss.Style // For section headers like "Team", "Tasks"

	// Status styles
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

// Init initializes all CLI styles with the given theme
func Init(theme config.Theme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Success))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Warning))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Error))
}

// StatusBadge renders a task status with its color.
func StatusBadge(status models.TaskStatus) string {
	switch status {
	case models.StatusCompleted:
		return SuccessStyle.Render(string(status))
	case models.StatusInProgress:
		return WarningStyle.Render(string(status))
	default:
		return SubtleStyle.Render(string(status))
	}
}

// ProgressLabel renders a progress percentage, green at 100.
func ProgressLabel(progress int) string {
	label := fmt.Sprintf("%d%%", progress)
	if progress == 100 {
		return SuccessStyle.Render(label)
	}
	return label
}
