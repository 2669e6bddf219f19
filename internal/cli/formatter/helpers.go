package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// KeyValue renders an aligned "label  value" block.
func KeyValue(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(Dim(p[0]))
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(p[0])+colGap))
		b.WriteString(p[1])
		b.WriteString("\n")
	}
	return b.String()
}

// Kcal formats an energy amount, e.g. "2259 kcal".
func Kcal(v int) string {
	return fmt.Sprintf("%d kcal", v)
}

// SignedKcal formats a signed energy change, e.g. "-150 kcal".
func SignedKcal(v int) string {
	if v == 0 {
		return "±0 kcal"
	}
	return fmt.Sprintf("%+d kcal", v)
}

// OptionalFloat renders a nillable average with one decimal, or a dim dash.
func OptionalFloat(v *float64, unit string) string {
	if v == nil {
		return Dim("—")
	}
	if unit == "" {
		return fmt.Sprintf("%.1f", *v)
	}
	return fmt.Sprintf("%.1f %s", *v, unit)
}

// Percent renders a 0..1 ratio as a whole percentage.
func Percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

// Bullets renders each line prefixed by a styled bullet.
func Bullets(lines []string, style lipgloss.Style) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(style.Render("•") + " " + l + "\n")
	}
	return b.String()
}
