package config

// Database/application settings.
const (
	AppName    = "sprintdeck"
	DBFileName = "sprintdeck.db"
	AppVersion = "1.2.0"
)

// Persisted state slots. The keys are namespaced so the state table can be
// shared with other writers without collisions.
const (
	StateKeyActive    = "sprintdeck.active_sprints"
	StateKeyCompleted = "sprintdeck.completed_sprints"
)

// Sprint defaults.
const (
	// DefaultSprintDays is used when no valid duration is supplied.
	DefaultSprintDays = 7
)

// Environment variables.
const (
	EnvDataDir = "SPRINTDECK_DATA_DIR"
	EnvTheme   = "SPRINTDECK_THEME"
)
