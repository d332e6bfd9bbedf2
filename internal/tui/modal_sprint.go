package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbeckert/sprintdeck/internal/config"
)

// SprintCreateState backs the new-sprint form.
type SprintCreateState struct {
	name     textinput.Model
	desc     textinput.Model
	duration textinput.Model
	focus    int
	errMsg   string
}

func (s *SprintCreateState) Type() ModalType { return ModalSprintCreate }

func newSprintCreateState() *SprintCreateState {
	name := textinput.New()
	name.Placeholder = "Sprint name"
	name.CharLimit = config.MaxNameLength
	name.Width = 40
	name.Focus()

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = config.MaxDescriptionLength
	desc.Width = 40

	duration := textinput.New()
	duration.Placeholder = strconv.Itoa(config.DefaultSprintDays)
	duration.CharLimit = config.MaxDurationDigits
	duration.Width = 10

	return &SprintCreateState{name: name, desc: desc, duration: duration}
}

func (s *SprintCreateState) inputs() []*textinput.Model {
	return []*textinput.Model{&s.name, &s.desc, &s.duration}
}

func (s *SprintCreateState) setFocus(i int) {
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

func (m Model) updateSprintCreate(state *SprintCreateState, msg tea.Msg) (Model, tea.Cmd) {
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
			return m.submitSprintCreate(state), nil
		}
	}

	var cmd tea.Cmd
	*state.inputs()[state.focus], cmd = state.inputs()[state.focus].Update(msg)
	return m, cmd
}

func (m Model) submitSprintCreate(state *SprintCreateState) Model {
	name := strings.TrimSpace(state.name.Value())
	if name == "" {
		state.errMsg = "Name is required"
		state.setFocus(0)
		return m
	}
	// A blank or non-numeric duration falls through as zero and the store
	// substitutes the default.
	days, _ := strconv.Atoi(strings.TrimSpace(state.duration.Value()))

	sprint := m.store.CreateSprint(name, strings.TrimSpace(state.desc.Value()), days)
	m.modal = nil
	if sprint == nil {
		m.setStatusError("Could not create sprint")
		return m
	}
	m.pane = paneActive
	m.sprintIdx[paneActive] = len(m.store.Active) - 1
	m.taskIdx = 0
	m.setStatus(fmt.Sprintf("Sprint %q created (%s)", sprint.Name, FormatDays(sprint.DurationDays)))
	m.noteFlush()
	return m
}
