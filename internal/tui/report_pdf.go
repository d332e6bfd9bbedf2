package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tbeckert/sprintdeck/internal/models"
	"github.com/tbeckert/sprintdeck/internal/store"
)

// GeneratePDFReport writes a one-page snapshot of all sprints and their task
// checklists to dir and returns the file path.
func GeneratePDFReport(st *store.Store, dir string) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Sprint Report: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	totalCompleted := 0
	writeSection := func(title string, sprints []models.Sprint) {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, fmt.Sprintf("%s (%d)", title, len(sprints)))
		pdf.Ln(8)

		if len(sprints) == 0 {
			pdf.SetFont("Arial", "", 12)
			pdf.Cell(0, 8, "  - None.")
			pdf.Ln(8)
			return
		}

		for _, s := range sprints {
			pdf.SetFont("Arial", "B", 12)
			pdf.Cell(0, 8, fmt.Sprintf("%s - %s, %s, %d%%",
				s.Name, FormatDays(s.DurationDays), FormatTaskCount(len(s.Tasks)), store.CalculateProgress(s)))
			pdf.Ln(7)

			pdf.SetFont("Arial", "", 12)
			if len(s.Tasks) == 0 {
				pdf.Cell(0, 8, "    - No tasks.")
				pdf.Ln(6)
			}
			for _, t := range s.Tasks {
				status := "[ ]"
				if t.Done() {
					status = "[x]"
					totalCompleted++
				}
				pdf.Cell(0, 8, fmt.Sprintf("    %s %s", status, t.Name))
				pdf.Ln(6)
			}
			pdf.Ln(2)
		}
		pdf.Ln(4)
	}

	writeSection("Active Sprints", st.Active)
	writeSection("Completed Sprints", st.Completed)

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total Tasks Completed: %d", totalCompleted))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", time.Now().Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
