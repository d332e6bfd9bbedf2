package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/tbeckert/sprintdeck/internal/models"
	"github.com/tbeckert/sprintdeck/internal/testutil"
)

func TestViewBeforeWindowSize(t *testing.T) {
	m := setupTestModel(t)
	m.width = 0
	if got := m.View(); got != "Initializing..." {
		t.Fatalf("View before sizing = %q", got)
	}
}

func TestViewEmptyState(t *testing.T) {
	m := setupTestModel(t)
	out := m.View()
	if !strings.Contains(out, "Active Sprints (0)") {
		t.Fatalf("missing active count badge:\n%s", out)
	}
	if !strings.Contains(out, "Completed Sprints (0)") {
		t.Fatalf("missing completed count badge:\n%s", out)
	}
	if !strings.Contains(out, "No active sprints") {
		t.Fatalf("missing active placeholder")
	}
	if !strings.Contains(out, "No completed sprints yet") {
		t.Fatalf("missing completed placeholder")
	}
}

func TestViewSprintCard(t *testing.T) {
	m := setupTestModel(t)
	sprint := m.store.CreateSprint("Payments rework", "", 1)
	m.store.AddTask(sprint.ID, "Spike", "ledger research")

	out := m.View()
	if !strings.Contains(out, "Active Sprints (1)") {
		t.Fatalf("badge should count the new sprint")
	}
	if !strings.Contains(out, "Payments rework") {
		t.Fatalf("missing sprint name")
	}
	if !strings.Contains(out, "No description") {
		t.Fatalf("missing description fallback")
	}
	if !strings.Contains(out, "1 day") {
		t.Fatalf("missing singular duration")
	}
	if !strings.Contains(out, "1 task") {
		t.Fatalf("missing singular task count")
	}
	if !strings.Contains(out, "[ ] Spike") {
		t.Fatalf("missing not-done checkbox:\n%s", out)
	}
	if !strings.Contains(out, "0%") {
		t.Fatalf("missing progress percentage")
	}
}

func TestViewShowsDoneCheckbox(t *testing.T) {
	m := setupTestModel(t)
	sprint := m.store.CreateSprint("S", "", 7)
	task := m.store.AddTask(sprint.ID, "Ship it", "")
	m.store.UpdateTaskStatus(sprint.ID, task.ID, "done")

	out := m.View()
	if !strings.Contains(out, "[x] Ship it") {
		t.Fatalf("missing done checkbox:\n%s", out)
	}
	if !strings.Contains(out, "100%") {
		t.Fatalf("missing 100%% progress")
	}
}

func TestViewIdempotent(t *testing.T) {
	m := setupTestModel(t)
	sprint := m.store.CreateSprint("Sprint A", "alpha", 7)
	m.store.AddTask(sprint.ID, "one", "")
	m.store.AddTask(sprint.ID, "two", "")
	m.store.EndSprint(m.store.CreateSprint("Sprint B", "", 3).ID)

	first := m.View()
	second := m.View()
	if first != second {
		t.Fatalf("View is not idempotent for unchanged state")
	}
}

func TestFooterOmitsMutationKeysOnCompletedPane(t *testing.T) {
	m := setupTestModel(t)
	activeOut := m.View()
	if !strings.Contains(activeOut, "space toggle") || !strings.Contains(activeOut, "d delete") {
		t.Fatalf("active pane footer should list mutation keys")
	}

	m = press(t, m, "tab")
	completedOut := m.View()
	for _, binding := range []string{"space toggle", "d delete", "e end sprint", "a add task"} {
		if strings.Contains(completedOut, binding) {
			t.Fatalf("completed pane footer must omit %q", binding)
		}
	}
}

func TestViewCompletedSprintCard(t *testing.T) {
	m := setupTestModel(t)
	m.store.Completed = []models.Sprint{
		testutil.NewSprint().
			WithName("Retired sprint").
			WithDuration(14).
			WithTasks(
				testutil.NewTask().WithName("archived work").WithStatus(models.TaskDone).Build(),
			).
			CompletedAt(time.Now()).
			Build(),
	}

	out := m.View()
	if !strings.Contains(out, "Completed Sprints (1)") {
		t.Fatalf("missing completed badge:\n%s", out)
	}
	if !strings.Contains(out, "Retired sprint") {
		t.Fatalf("missing completed sprint name")
	}
	if !strings.Contains(out, "14 days") {
		t.Fatalf("missing plural duration")
	}
	if !strings.Contains(out, "[x] archived work") {
		t.Fatalf("missing completed task checkbox:\n%s", out)
	}
}

func TestViewRendersStatusLine(t *testing.T) {
	m := setupTestModel(t)
	m.setStatus("Sprint completed")
	if !strings.Contains(m.View(), "Sprint completed") {
		t.Fatalf("status line missing from view")
	}
}

func TestViewModalReplacesDashboard(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, m, "n")
	out := m.View()
	if !strings.Contains(out, "New Sprint") {
		t.Fatalf("sprint create modal not rendered")
	}
	if strings.Contains(out, "Active Sprints (0)") {
		t.Fatalf("dashboard should be hidden behind the modal")
	}
}
