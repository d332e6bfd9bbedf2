package models

import "time"

// TaskStatus enumerates the completion states of a task.
type TaskStatus string

const (
	TaskNotDone TaskStatus = "not-done"
	TaskDone    TaskStatus = "done"
)

// Task represents a single unit of work owned by exactly one sprint.
type Task struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Done reports whether the task is marked complete.
func (t Task) Done() bool {
	return t.Status == TaskDone
}

// Sprint represents a time-boxed container of tasks.
// CompletedAt is nil while the sprint is active and is set exactly once
// when the sprint is ended.
type Sprint struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	DurationDays int        `json:"durationDays"`
	Tasks        []Task     `json:"tasks"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// Completed reports whether the sprint has been ended.
func (s Sprint) Completed() bool {
	return s.CompletedAt != nil
}

// TaskCounts returns the number of done tasks and the total task count.
func (s Sprint) TaskCounts() (done, total int) {
	for _, t := range s.Tasks {
		if t.Done() {
			done++
		}
	}
	return done, len(s.Tasks)
}
