package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual bar for a score on a 0-max scale.
// Example: "████████░░ 80/100"
func ScoreBar(score, max float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if max <= 0 {
		max = 100
	}

	filled := int((score / max) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	ratio := score / max
	var style func(string) string
	switch {
	case ratio >= 0.7:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case ratio >= 0.4:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f/%.0f", score, max)))
}

// TrendBadge returns a styled indicator for a metric trend classification.
func TrendBadge(trend string) string {
	switch trend {
	case "up":
		return StyleSuccess.Render("▲ up")
	case "down":
		return StyleError.Render("▼ down")
	case "error":
		return StyleError.Render("✗ error")
	default:
		return StyleMuted.Render("─ stable")
	}
}

// DeltaArrow returns a styled indicator for a score change between runs.
// Positive deltas count as improvements.
func DeltaArrow(delta float64) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}
	if delta > 0 {
		return StyleSuccess.Render(fmt.Sprintf("▲ +%.1f", delta))
	}
	return StyleError.Render(fmt.Sprintf("▼ %.1f", delta))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
