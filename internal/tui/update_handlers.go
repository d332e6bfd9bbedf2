package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbeckert/sprintdeck/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		return m.updateDashboard(key)
	}
	return m, nil
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch state := m.modal.(type) {
	case *SprintCreateState:
		return m.updateSprintCreate(state, msg)
	case *TaskCreateState:
		return m.updateTaskCreate(state, msg)
	case *ConfirmState:
		return m.updateConfirm(state, msg)
	}
	return m, nil
}

func (m Model) updateDashboard(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		if m.pane == paneActive {
			m.pane = paneCompleted
		} else {
			m.pane = paneActive
		}
		m.taskIdx = 0
		m.clampCursor()
	case "left", "h":
		m.moveSprintFocus(-1)
	case "right", "l":
		m.moveSprintFocus(1)
	case "up", "k":
		m.moveTaskFocus(-1)
	case "down", "j":
		m.moveTaskFocus(1)
	case "n":
		m.modal = newSprintCreateState()
	case "a":
		return m.handleAddTask(), nil
	case " ", "enter":
		return m.handleToggleTask(), nil
	case "d":
		return m.handleDeleteTask(), nil
	case "e":
		return m.handleEndSprint(), nil
	case "r":
		return m.handleReport(), nil
	case "x":
		return m.handleExport(), nil
	}
	return m, nil
}

func (m *Model) moveSprintFocus(delta int) {
	m.sprintIdx[m.pane] += delta
	m.taskIdx = 0
	m.clampCursor()
}

func (m *Model) moveTaskFocus(delta int) {
	if m.pane != paneActive {
		return
	}
	m.taskIdx += delta
	m.clampCursor()
}

func (m Model) handleAddTask() Model {
	if m.pane != paneActive {
		return m
	}
	sprint, ok := m.focusedSprint()
	if !ok {
		m.setStatusError("No sprint selected")
		return m
	}
	m.modal = newTaskCreateState(sprint.ID, sprint.Name)
	return m
}

func (m Model) handleToggleTask() Model {
	sprint, ok := m.focusedSprint()
	if !ok || m.pane != paneActive {
		return m
	}
	task, ok := m.focusedTask()
	if !ok {
		return m
	}
	next := models.TaskDone
	if task.Done() {
		next = models.TaskNotDone
	}
	if !m.store.UpdateTaskStatus(sprint.ID, task.ID, next) {
		m.setStatusError("Task not found")
		return m
	}
	m.setStatus(fmt.Sprintf("Task %q marked %s", task.Name, next))
	m.noteFlush()
	return m
}

func (m Model) handleDeleteTask() Model {
	if m.pane != paneActive {
		return m
	}
	sprint, ok := m.focusedSprint()
	if !ok {
		return m
	}
	task, ok := m.focusedTask()
	if !ok {
		return m
	}
	m.modal = confirmDeleteTaskState(sprint.ID, task.ID, task.Name)
	return m
}

func (m Model) handleEndSprint() Model {
	if m.pane != paneActive {
		return m
	}
	sprint, ok := m.focusedSprint()
	if !ok {
		m.setStatusError("No sprint selected")
		return m
	}
	m.modal = confirmEndSprintState(sprint.ID, sprint.Name)
	return m
}

func (m Model) handleReport() Model {
	path, err := GeneratePDFReport(m.store, m.reportsDir)
	if err != nil {
		m.setStatusError(fmt.Sprintf("Report failed: %v", err))
		return m
	}
	m.setStatus("Report written to " + path)
	return m
}

func (m Model) handleExport() Model {
	path, err := ExportJSON(m.store, m.reportsDir)
	if err != nil {
		m.setStatusError(fmt.Sprintf("Export failed: %v", err))
		return m
	}
	m.setStatus("Export written to " + path)
	return m
}
