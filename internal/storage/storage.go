// Package storage persists the full application state as two independent
// JSON documents in a local SQLite key-value table. Writes are best-effort:
// the two slots are written separately and no cross-slot atomicity is
// promised.
package storage

import (
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tbeckert/sprintdeck/internal/config"
	"github.com/tbeckert/sprintdeck/internal/models"
	"github.com/tbeckert/sprintdeck/internal/util"
)

// Store is a SQLite-backed key-value store for serialized sprint lists.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database file and ensures the state table.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrapErr("open", "", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, wrapErr("open", "", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, wrapErr("create table", "", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveState serializes the two sprint lists to their slots. The slots are
// written independently; the first failure is returned but the in-memory
// state the caller holds is unaffected either way.
func (s *Store) SaveState(active, completed []models.Sprint) error {
	if err := s.setJSON(config.StateKeyActive, active); err != nil {
		return err
	}
	return s.setJSON(config.StateKeyCompleted, completed)
}

// LoadState reads both slots. An absent slot yields an empty list. A slot
// that fails to parse is logged and treated as absent rather than fatal.
// The error return covers only store-level read failures.
func (s *Store) LoadState() (active, completed []models.Sprint, err error) {
	raw, ok, err := s.get(config.StateKeyActive)
	if err != nil {
		return nil, nil, err
	}
	if ok {
		active = decodeSprints(config.StateKeyActive, raw)
	}
	raw, ok, err = s.get(config.StateKeyCompleted)
	if err != nil {
		return active, nil, err
	}
	if ok {
		completed = decodeSprints(config.StateKeyCompleted, raw)
	}
	return active, completed, nil
}

func (s *Store) setJSON(key string, sprints []models.Sprint) error {
	if sprints == nil {
		sprints = []models.Sprint{}
	}
	data, err := json.Marshal(sprints)
	if err != nil {
		return wrapErr("marshal", key, err)
	}
	_, err = s.db.Exec(
		"INSERT INTO state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(data),
	)
	return wrapErr("write", key, err)
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr("read", key, err)
	}
	return value, true, nil
}

func decodeSprints(key, raw string) []models.Sprint {
	var sprints []models.Sprint
	if err := json.Unmarshal([]byte(raw), &sprints); err != nil {
		util.LogError("decode state slot "+key, err)
		return nil
	}
	return sprints
}
