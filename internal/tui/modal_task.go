package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbeckert/sprintdeck/internal/config"
)

// TaskCreateState backs the add-task form for one active sprint.
type TaskCreateState struct {
	sprintID   string
	sprintName string
	name       textinput.Model
	desc       textinput.Model
	focus      int
	errMsg     string
}

func (s *TaskCreateState) Type() ModalType { return ModalTaskCreate }

func newTaskCreateState(sprintID, sprintName string) *TaskCreateState {
	name := textinput.New()
	name.Placeholder = "Task name"
	name.CharLimit = config.MaxNameLength
	name.Width = 40
	name.Focus()

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = config.MaxDescriptionLength
	desc.Width = 40

	return &TaskCreateState{sprintID: sprintID, sprintName: sprintName, name: name, desc: desc}
}

func (s *TaskCreateState) inputs() []*textinput.Model {
	return []*textinput.Model{&s.name, &s.desc}
}

func (s *TaskCreateState) setFocus(i int) {
	fields := s.inputs()
	s.focus = (i + len(fields)) % len(fields)
	for j, f := range fields {
		if j == s.focus {
			f.Focus()
		} else {
			f.Blur()
		}
	}
}

func (m Model) updateTaskCreate(state *TaskCreateState, msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.modal = nil
			return m, nil
		case "tab", "down":
			state.setFocus(state.focus + 1)
			return m, nil
		case "shift+tab", "up":
			state.setFocus(state.focus - 1)
			return m, nil
		case "enter":
			if state.focus < len(state.inputs())-1 {
				state.setFocus(state.focus + 1)
				return m, nil
			}
			return m.submitTaskCreate(state), nil
		}
	}

	var cmd tea.Cmd
	*state.inputs()[state.focus], cmd = state.inputs()[state.focus].Update(msg)
	return m, cmd
}

func (m Model) submitTaskCreate(state *TaskCreateState) Model {
	name := strings.TrimSpace(state.name.Value())
	if name == "" {
		state.errMsg = "Name is required"
		state.setFocus(0)
		return m
	}

	task := m.store.AddTask(state.sprintID, name, strings.TrimSpace(state.desc.Value()))
	m.modal = nil
	if task == nil {
		// The sprint was ended or removed while the form was open.
		m.setStatusError("Sprint is no longer active")
		return m
	}
	m.clampCursor()
	m.setStatus(fmt.Sprintf("Task %q added to %q", task.Name, state.sprintName))
	m.noteFlush()
	return m
}
