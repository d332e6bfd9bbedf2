package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

// FormatDays formats a sprint duration for display ("1 day", "14 days").
func FormatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// FormatTaskCount formats a task count with singular/plural agreement.
func FormatTaskCount(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

// FormatPercent renders an integer percentage label.
func FormatPercent(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}
