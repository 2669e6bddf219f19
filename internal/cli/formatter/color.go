package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/meridian/internal/adaptation"
	"github.com/alexanderramin/meridian/internal/advisor"
	"github.com/alexanderramin/meridian/internal/domain"
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
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreStyle colors a 0-100 life score.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 75:
		return StyleGreen
	case score >= 50:
		return StyleYellow
	case score > 0:
		return StyleRed
	default:
		return StyleDim
	}
}

// ModeIndicator returns a colored mode badge such as "● SICK".
func ModeIndicator(mode domain.UserMode) string {
	label := "● " + strings.ToUpper(string(mode))
	switch mode {
	case domain.ModeSick:
		return StyleRed.Render(label)
	case domain.ModeExam, domain.ModeTravel:
		return StyleYellow.Render(label)
	case domain.ModeFestival:
		return StylePurple.Render(label)
	default:
		return StyleGreen.Render(label)
	}
}

// PriorityStyle colors an explanation by rule tier.
func PriorityStyle(p advisor.Priority) lipgloss.Style {
	switch {
	case p <= advisor.PrioritySafety:
		return StyleRed
	case p == advisor.PriorityRecovery:
		return StyleYellow
	default:
		return StyleBlue
	}
}

// FatigueIndicator returns a colored fatigue badge.
func FatigueIndicator(level adaptation.FatigueLevel) string {
	switch level {
	case adaptation.FatigueHigh:
		return StyleRed.Render("● HIGH")
	case adaptation.FatigueModerate:
		return StyleYellow.Render("● MODERATE")
	case adaptation.FatigueNone:
		return StyleGreen.Render("● NONE")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// DomainStyle colors a timeline entry by life domain.
func DomainStyle(d advisor.TimelineDomain) lipgloss.Style {
	switch d {
	case advisor.TimelineHealth:
		return StyleGreen
	case advisor.TimelineNutrition:
		return StyleYellow
	case advisor.TimelineWorkout:
		return StyleRed
	case advisor.TimelineLooks:
		return StylePurple
	default:
		return StyleBlue
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
