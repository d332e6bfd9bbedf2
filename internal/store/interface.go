package store

import "github.com/tbeckert/sprintdeck/internal/models"

// Persister writes and reads the full serialized state.
//
//go:generate mockgen -source=interface.go -destination=mock_persister_test.go -package=store
type Persister interface {
	SaveState(active, completed []models.Sprint) error
	LoadState() (active, completed []models.Sprint, err error)
}
