// Package testutil provides fluent builders for constructing test fixtures.
package testutil

import (
	"time"

	"github.com/tbeckert/sprintdeck/internal/models"
	"github.com/tbeckert/sprintdeck/internal/util"
)

// TaskBuilder provides a fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:        util.NewID(),
			Name:      "Test Task",
			Status:    models.TaskNotDone,
			CreatedAt: time.Now(),
		},
	}
}

func (b *TaskBuilder) WithID(id string) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithName(name string) *TaskBuilder {
	b.task.Name = name
	return b
}

func (b *TaskBuilder) WithDescription(d string) *TaskBuilder {
	b.task.Description = d
	return b
}

func (b *TaskBuilder) WithStatus(s models.TaskStatus) *TaskBuilder {
	b.task.Status = s
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// SprintBuilder provides a fluent API for creating test sprints.
type SprintBuilder struct {
	sprint models.Sprint
}

func NewSprint() *SprintBuilder {
	return &SprintBuilder{
		sprint: models.Sprint{
			ID:           util.NewID(),
			Name:         "Test Sprint",
			DurationDays: 7,
			Tasks:        []models.Task{},
			CreatedAt:    time.Now(),
		},
	}
}

func (b *SprintBuilder) WithID(id string) *SprintBuilder {
	b.sprint.ID = id
	return b
}

func (b *SprintBuilder) WithName(name string) *SprintBuilder {
	b.sprint.Name = name
	return b
}

func (b *SprintBuilder) WithDescription(d string) *SprintBuilder {
	b.sprint.Description = d
	return b
}

func (b *SprintBuilder) WithDuration(days int) *SprintBuilder {
	b.sprint.DurationDays = days
	return b
}

func (b *SprintBuilder) WithTasks(tasks ...models.Task) *SprintBuilder {
	b.sprint.Tasks = tasks
	return b
}

func (b *SprintBuilder) CompletedAt(t time.Time) *SprintBuilder {
	b.sprint.CompletedAt = &t
	return b
}

func (b *SprintBuilder) Build() models.Sprint {
	return b.sprint
}
