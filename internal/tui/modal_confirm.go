package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmKind distinguishes the destructive actions behind the confirm gate.
type confirmKind int

const (
	confirmEndSprint confirmKind = iota
	confirmDeleteTask
)

// ConfirmState is the boolean gate shown before destructive mutations.
// The mutation runs only after an explicit "y".
type ConfirmState struct {
	kind     confirmKind
	sprintID string
	taskID   string
	prompt   string
}

func (s *ConfirmState) Type() ModalType { return ModalConfirm }

func confirmEndSprintState(sprintID, name string) *ConfirmState {
	return &ConfirmState{
		kind:     confirmEndSprint,
		sprintID: sprintID,
		prompt:   fmt.Sprintf("End sprint %q? This cannot be undone.", name),
	}
}

func confirmDeleteTaskState(sprintID, taskID, name string) *ConfirmState {
	return &ConfirmState{
		kind:     confirmDeleteTask,
		sprintID: sprintID,
		taskID:   taskID,
		prompt:   fmt.Sprintf("Delete task %q?", name),
	}
}

func (m Model) updateConfirm(state *ConfirmState, msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y", "enter":
		m.modal = nil
		return m.performConfirmed(state), nil
	case "n", "N", "esc":
		m.modal = nil
		m.setStatus("Cancelled")
		return m, nil
	}
	return m, nil
}

func (m Model) performConfirmed(state *ConfirmState) Model {
	switch state.kind {
	case confirmEndSprint:
		if !m.store.EndSprint(state.sprintID) {
			m.setStatusError("Sprint not found")
			return m
		}
		m.clampCursor()
		m.setStatus("Sprint completed")
		m.noteFlush()
	case confirmDeleteTask:
		if !m.store.DeleteTask(state.sprintID, state.taskID) {
			m.setStatusError("Task not found")
			return m
		}
		m.clampCursor()
		m.setStatus("Task deleted")
		m.noteFlush()
	}
	return m
}
