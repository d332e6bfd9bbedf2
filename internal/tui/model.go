package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbeckert/sprintdeck/internal/config"
	"github.com/tbeckert/sprintdeck/internal/models"
	"github.com/tbeckert/sprintdeck/internal/store"
	"github.com/tbeckert/sprintdeck/internal/util"
)

// pane identifies one of the two sprint collections on screen.
type pane int

const (
	paneActive pane = iota
	paneCompleted
)

// Model is the root bubbletea model. View() rebuilds the entire display
// from the store on every call; there is no incremental patching.
type Model struct {
	store *store.Store

	pane      pane
	sprintIdx [2]int // focused sprint per pane
	taskIdx   int    // focused task within the focused active sprint

	modal ModalState
	bar   progress.Model

	status      string
	statusIsErr bool

	reportsDir string

	width  int
	height int
}

func NewModel(st *store.Store) Model {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(config.ProgressBarWidth),
		progress.WithoutPercentage(),
	)
	return Model{
		store:      st,
		bar:        bar,
		reportsDir: util.ReportsDir(config.AppName),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// sprints returns the collection shown in the given pane.
func (m Model) sprints(p pane) []models.Sprint {
	if p == paneActive {
		return m.store.Active
	}
	return m.store.Completed
}

// focusedSprint returns the sprint under the cursor in the focused pane.
func (m Model) focusedSprint() (models.Sprint, bool) {
	sprints := m.sprints(m.pane)
	idx := m.sprintIdx[m.pane]
	if idx < 0 || idx >= len(sprints) {
		return models.Sprint{}, false
	}
	return sprints[idx], true
}

// focusedTask returns the task under the cursor. Tasks are only focusable
// in the active pane; completed sprints render read-only.
func (m Model) focusedTask() (models.Task, bool) {
	if m.pane != paneActive {
		return models.Task{}, false
	}
	sprint, ok := m.focusedSprint()
	if !ok || m.taskIdx < 0 || m.taskIdx >= len(sprint.Tasks) {
		return models.Task{}, false
	}
	return sprint.Tasks[m.taskIdx], true
}

// clampCursor re-validates cursor positions after a mutation or pane switch.
func (m *Model) clampCursor() {
	for p := paneActive; p <= paneCompleted; p++ {
		max := len(m.sprints(p)) - 1
		if max < 0 {
			max = 0
		}
		m.sprintIdx[p] = util.Clamp(m.sprintIdx[p], 0, max)
	}
	maxTask := 0
	if sprint, ok := m.focusedSprint(); ok && len(sprint.Tasks) > 0 {
		maxTask = len(sprint.Tasks) - 1
	}
	m.taskIdx = util.Clamp(m.taskIdx, 0, maxTask)
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusIsErr = false
}

func (m *Model) setStatusError(msg string) {
	m.status = msg
	m.statusIsErr = true
}

// noteFlush surfaces a persistence failure as a diagnostic. The in-memory
// mutation has already taken effect either way.
func (m *Model) noteFlush() {
	if err := m.store.LastFlushErr; err != nil {
		m.setStatusError("Warning: state not persisted: " + err.Error())
	}
}
