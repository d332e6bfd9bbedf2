package config

// Layout constants.
const (
	// MinPaneWidth is the minimum width for a sprint pane.
	MinPaneWidth = 24

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// ProgressBarWidth is the width of a sprint card's progress bar.
	ProgressBarWidth = 20
)

// Input constraints.
const (
	// MaxNameLength is the maximum sprint or task name length.
	MaxNameLength = 100

	// MaxDescriptionLength is the maximum description length.
	MaxDescriptionLength = 500

	// MaxDurationDigits bounds the duration input field.
	MaxDurationDigits = 3
)
