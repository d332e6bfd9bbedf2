package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tbeckert/sprintdeck/internal/config"
	"github.com/tbeckert/sprintdeck/internal/models"
	"github.com/tbeckert/sprintdeck/internal/store"
)

type stateExport struct {
	AppVersion       string          `json:"app_version"`
	ExportedAt       string          `json:"exported_at"`
	ActiveSprints    []models.Sprint `json:"activeSprints"`
	CompletedSprints []models.Sprint `json:"completedSprints"`
}

// ExportJSON writes a versioned snapshot of the full state to dir and
// returns the file path.
func ExportJSON(st *store.Store, dir string) (string, error) {
	export := stateExport{
		AppVersion:       config.AppVersion,
		ExportedAt:       time.Now().Format(time.RFC3339),
		ActiveSprints:    st.Active,
		CompletedSprints: st.Completed,
	}
	if export.ActiveSprints == nil {
		export.ActiveSprints = []models.Sprint{}
	}
	if export.CompletedSprints == nil {
		export.CompletedSprints = []models.Sprint{}
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("export_%s.json", time.Now().Format("2006-01-02_150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
