package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor replaces every style with an unstyled one. Used when output
// is not a terminal.
func DisableColor() {
	plain := lipgloss.NewStyle()
	StyleGreen, StyleYellow, StyleRed = plain, plain, plain
	StyleBlue, StylePurple, StyleDim = plain, plain, plain
	StyleHeader, StyleBold = plain, plain
}

// DeployStatusBadge renders a release's deploy status.
func DeployStatusBadge(s domain.DeployStatus) string {
	switch s {
	case domain.DeployDeployed:
		return StyleGreen.Render("● deployed")
	case domain.DeployScheduled:
		return StyleYellow.Render("● scheduled")
	case domain.DeployPlanning:
		return StyleBlue.Render("● planning")
	default:
		return StyleDim.Render("● " + string(s))
	}
}

// LifeCycleBadge renders an issue lifecycle.
func LifeCycleBadge(lc domain.LifeCycle) string {
	label := strings.ReplaceAll(string(lc), "_", " ")
	switch lc {
	case domain.LifeCycleCompleted:
		return StylePurple.Render(label)
	case domain.LifeCycleDone:
		return StyleGreen.Render(label)
	case domain.LifeCycleInProgress:
		return StyleYellow.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success renders a confirmation line such as "✔ Created release 1.1.0".
func Success(format string, args ...any) string {
	return StyleGreen.Render("✔ ") + fmt.Sprintf(format, args...)
}
