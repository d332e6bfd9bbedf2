// Package store holds the single authoritative in-memory state: the ordered
// active and completed sprint collections. Every mutation updates the
// collections and then unconditionally flushes the full state through the
// Persister. Persistence failures are logged and swallowed; the in-memory
// state stays correct either way.
package store

import (
	"time"

	"github.com/tbeckert/sprintdeck/internal/config"
	"github.com/tbeckert/sprintdeck/internal/models"
	"github.com/tbeckert/sprintdeck/internal/util"
)

// Store owns the two sprint collections. It is not safe for concurrent use;
// all mutations run on the single UI event loop.
type Store struct {
	Active    []models.Sprint
	Completed []models.Sprint

	persist Persister
	now     func() time.Time
	newID   func() string

	// LastFlushErr holds the most recent persistence failure, nil after a
	// successful flush. Surfaced as a diagnostic only.
	LastFlushErr error
}

// New returns an empty Store backed by the given Persister.
func New(p Persister) *Store {
	return &Store{
		persist: p,
		now:     time.Now,
		newID:   util.NewID,
	}
}

// Load replaces the collections with the persisted state. Absent or
// unreadable state yields the default empty collections, never an error.
func (s *Store) Load() {
	active, completed, err := s.persist.LoadState()
	if err != nil {
		util.LogError("load state", err)
		active, completed = nil, nil
	}
	s.Active = active
	s.Completed = completed
}

// CreateSprint appends a new sprint to the active collection and returns it.
// Returns nil without mutating when name is empty. A non-positive duration
// falls back to the default rather than failing.
func (s *Store) CreateSprint(name, description string, durationDays int) *models.Sprint {
	if name == "" {
		return nil
	}
	if durationDays <= 0 {
		durationDays = config.DefaultSprintDays
	}
	sprint := models.Sprint{
		ID:           s.newID(),
		Name:         name,
		Description:  description,
		DurationDays: durationDays,
		Tasks:        []models.Task{},
		CreatedAt:    s.now(),
	}
	s.Active = append(s.Active, sprint)
	s.flush()
	return &sprint
}

// EndSprint moves an active sprint to the head of the completed collection,
// stamping CompletedAt. The transition is one-way. Returns false without
// mutating when the id is not in the active collection.
func (s *Store) EndSprint(sprintID string) bool {
	idx := s.activeIndex(sprintID)
	if idx < 0 {
		return false
	}
	sprint := s.Active[idx]
	sprint.CompletedAt = util.Ptr(s.now())
	s.Active = append(s.Active[:idx], s.Active[idx+1:]...)
	s.Completed = append([]models.Sprint{sprint}, s.Completed...)
	s.flush()
	return true
}

// AddTask appends a new not-done task to an active sprint and returns it.
// Returns nil without mutating when the sprint is not active or name is
// empty; tasks cannot be added to completed sprints.
func (s *Store) AddTask(sprintID, name, description string) *models.Task {
	if name == "" {
		return nil
	}
	idx := s.activeIndex(sprintID)
	if idx < 0 {
		return nil
	}
	task := models.Task{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		Status:      models.TaskNotDone,
		CreatedAt:   s.now(),
	}
	s.Active[idx].Tasks = append(s.Active[idx].Tasks, task)
	s.flush()
	return &task
}

// UpdateTaskStatus overwrites a task's status in place. Returns false
// without mutating when either id misses.
func (s *Store) UpdateTaskStatus(sprintID, taskID string, status models.TaskStatus) bool {
	sIdx := s.activeIndex(sprintID)
	if sIdx < 0 {
		return false
	}
	tIdx := taskIndex(s.Active[sIdx].Tasks, taskID)
	if tIdx < 0 {
		return false
	}
	s.Active[sIdx].Tasks[tIdx].Status = status
	s.flush()
	return true
}

// DeleteTask removes exactly the targeted task, preserving the order of the
// rest. Returns false without mutating when either id misses.
func (s *Store) DeleteTask(sprintID, taskID string) bool {
	sIdx := s.activeIndex(sprintID)
	if sIdx < 0 {
		return false
	}
	tasks := s.Active[sIdx].Tasks
	tIdx := taskIndex(tasks, taskID)
	if tIdx < 0 {
		return false
	}
	s.Active[sIdx].Tasks = append(tasks[:tIdx], tasks[tIdx+1:]...)
	s.flush()
	return true
}

// FindActive returns the active sprint with the given id.
func (s *Store) FindActive(sprintID string) (models.Sprint, bool) {
	idx := s.activeIndex(sprintID)
	if idx < 0 {
		return models.Sprint{}, false
	}
	return s.Active[idx], true
}

// CalculateProgress returns the integer percentage of done tasks, rounding
// half away from zero. A sprint with no tasks reports 0.
func CalculateProgress(sprint models.Sprint) int {
	done, total := sprint.TaskCounts()
	if total == 0 {
		return 0
	}
	return roundPercent(done, total)
}

func roundPercent(done, total int) int {
	// Integer round-half-up of 100*done/total; done and total are small and
	// non-negative so no overflow concerns apply.
	return (200*done + total) / (2 * total)
}

func (s *Store) activeIndex(sprintID string) int {
	for i := range s.Active {
		if s.Active[i].ID == sprintID {
			return i
		}
	}
	return -1
}

func taskIndex(tasks []models.Task, taskID string) int {
	for i := range tasks {
		if tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

// flush persists the full state. Failures are recorded and logged but never
// propagated; the mutation that triggered the flush has already happened.
func (s *Store) flush() {
	err := s.persist.SaveState(s.Active, s.Completed)
	s.LastFlushErr = err
	util.LogError("persist state", err)
}
