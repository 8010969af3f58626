package dialogs

import "github.com/charmbracelet/lipgloss"

const (
	dialogWidth  = 60
	overlayColor = lipgloss.Color("236")
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("252")).
	BorderBackground(overlayColor).
	Padding(1, 2).
	Width(dialogWidth)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75"))
)

// box frames body under title with a faint hint line at the bottom.
func box(title, body, hint string) string {
	parts := []string{}
	if title != "" {
		parts = append(parts, titleStyle.Render(title), "")
	}
	parts = append(parts, body, "", hintStyle.Render(hint))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
