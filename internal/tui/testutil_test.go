package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbeckert/sprintdeck/internal/models"
	"github.com/tbeckert/sprintdeck/internal/store"
)

// memPersister is an in-memory Persister for model tests.
type memPersister struct {
	active    []models.Sprint
	completed []models.Sprint
	saves     int
}

func (p *memPersister) SaveState(active, completed []models.Sprint) error {
	p.saves++
	p.active = append([]models.Sprint(nil), active...)
	p.completed = append([]models.Sprint(nil), completed...)
	return nil
}

func (p *memPersister) LoadState() ([]models.Sprint, []models.Sprint, error) {
	return p.active, p.completed, nil
}

func storeWith(p *memPersister) *store.Store {
	return store.New(p)
}

func setupTestModel(t *testing.T) Model {
	t.Helper()
	st := store.New(&memPersister{})
	m := NewModel(st)
	m.width = 120
	m.height = 40
	m.reportsDir = t.TempDir()
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

// createSprint drives the new-sprint form end to end.
func createSprint(t *testing.T, m Model, name, desc, duration string) Model {
	t.Helper()
	m = press(t, m, "n")
	if m.ActiveModal() != ModalSprintCreate {
		t.Fatalf("expected sprint create modal to open")
	}
	m = typeText(t, m, name)
	m = press(t, m, "enter") // to description
	m = typeText(t, m, desc)
	m = press(t, m, "enter") // to duration
	m = typeText(t, m, duration)
	m = press(t, m, "enter") // submit
	return m
}

// addTask drives the add-task form for the focused sprint.
func addTask(t *testing.T, m Model, name, desc string) Model {
	t.Helper()
	m = press(t, m, "a")
	if m.ActiveModal() != ModalTaskCreate {
		t.Fatalf("expected task create modal to open")
	}
	m = typeText(t, m, name)
	m = press(t, m, "enter")
	m = typeText(t, m, desc)
	m = press(t, m, "enter")
	return m
}
