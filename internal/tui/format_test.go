package tui

import "testing"

func TestFormatDays(t *testing.T) {
	if got := FormatDays(1); got != "1 day" {
		t.Fatalf("FormatDays(1) = %q", got)
	}
	if got := FormatDays(7); got != "7 days" {
		t.Fatalf("FormatDays(7) = %q", got)
	}
	if got := FormatDays(0); got != "0 days" {
		t.Fatalf("FormatDays(0) = %q", got)
	}
}

func TestFormatTaskCount(t *testing.T) {
	if got := FormatTaskCount(1); got != "1 task" {
		t.Fatalf("FormatTaskCount(1) = %q", got)
	}
	if got := FormatTaskCount(0); got != "0 tasks" {
		t.Fatalf("FormatTaskCount(0) = %q", got)
	}
	if got := FormatTaskCount(12); got != "12 tasks" {
		t.Fatalf("FormatTaskCount(12) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(38); got != "38%" {
		t.Fatalf("FormatPercent(38) = %q", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 20); got != "short" {
		t.Fatalf("truncateLabel should not touch short labels, got %q", got)
	}
	if got := truncateLabel("a very long sprint name", 10); got == "a very long sprint name" {
		t.Fatalf("expected truncation")
	}
	if got := truncateLabel("anything", 0); got != "" {
		t.Fatalf("zero width should yield empty string, got %q", got)
	}
}
