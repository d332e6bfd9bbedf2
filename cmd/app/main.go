package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/tbeckert/sprintdeck/internal/config"
	"github.com/tbeckert/sprintdeck/internal/storage"
	"github.com/tbeckert/sprintdeck/internal/store"
	"github.com/tbeckert/sprintdeck/internal/tui"
	"github.com/tbeckert/sprintdeck/internal/util"
)

func main() {
	// Optional local overrides; missing .env is not an error.
	_ = godotenv.Load()

	dataDir := strings.TrimSpace(os.Getenv(config.EnvDataDir))
	if dataDir == "" {
		dataDir = util.DataDir(config.AppName)
	}
	util.MustSucceed("create data dir", os.MkdirAll(dataDir, 0o755))

	db, err := storage.Open(filepath.Join(dataDir, config.DBFileName))
	util.MustSucceed("open state store", err)
	defer db.Close()

	st := store.New(db)
	st.Load()

	if theme := strings.TrimSpace(os.Getenv(config.EnvTheme)); theme != "" {
		tui.SetTheme(theme)
	}

	p := tea.NewProgram(tui.NewModel(st), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
