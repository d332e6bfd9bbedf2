package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tbeckert/sprintdeck/internal/config"
	"github.com/tbeckert/sprintdeck/internal/models"
	"github.com/tbeckert/sprintdeck/internal/store"
)

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("sprint") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true).Render("deck")
}

// View rebuilds the full display from store state. It reads nothing but the
// model, so two calls with unchanged state yield identical output.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := fmt.Sprintf("%s v%s", renderLogo(), config.AppVersion)

	if m.modal != nil {
		return CurrentTheme.Base.Render(header + "\n\n" + m.renderModal())
	}

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderPane(paneActive),
		" ",
		m.renderPane(paneCompleted),
	)
	return CurrentTheme.Base.Render(header + "\n\n" + panes + "\n" + m.renderFooter())
}

func (m Model) paneWidth() int {
	w := (m.width - 8) / 2
	if w < config.MinPaneWidth {
		w = config.MinPaneWidth
	}
	return w
}

func (m Model) renderPane(p pane) string {
	title, placeholder := "Active Sprints", "No active sprints"
	if p == paneCompleted {
		title, placeholder = "Completed Sprints", "No completed sprints yet"
	}
	sprints := m.sprints(p)
	width := m.paneWidth()

	var b strings.Builder
	badge := fmt.Sprintf("%s (%d)", title, len(sprints))
	if m.pane == p {
		b.WriteString(CurrentTheme.Header.Render(badge))
	} else {
		b.WriteString(CurrentTheme.Badge.Render(badge))
	}
	b.WriteString("\n")

	if len(sprints) == 0 {
		b.WriteString("\n" + CurrentTheme.Dim.Render(placeholder))
	} else {
		for i, sprint := range sprints {
			b.WriteString("\n" + m.renderSprintCard(p, i, sprint, width-4))
		}
	}

	borderColor := CurrentTheme.Border
	if m.pane == p {
		borderColor = CurrentTheme.BorderFocused
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width)
	return frame.Render(b.String())
}

func (m Model) renderSprintCard(p pane, idx int, sprint models.Sprint, width int) string {
	selected := m.pane == p && m.sprintIdx[p] == idx
	interactive := p == paneActive

	marker := "  "
	if selected {
		marker = CurrentTheme.Focused.Render("▸ ")
	}

	var b strings.Builder
	name := truncateLabel(sprint.Name, width-2)
	if selected {
		b.WriteString(marker + CurrentTheme.Focused.Render(name))
	} else {
		b.WriteString(marker + CurrentTheme.Highlight.Render(name))
	}
	b.WriteString("\n")

	desc := sprint.Description
	if desc == "" {
		desc = "No description"
	}
	b.WriteString("  " + CurrentTheme.Dim.Render(truncateLabel(desc, width-2)) + "\n")

	meta := FormatDays(sprint.DurationDays) + " · " + FormatTaskCount(len(sprint.Tasks))
	b.WriteString("  " + CurrentTheme.Dim.Render(meta) + "\n")

	pct := store.CalculateProgress(sprint)
	b.WriteString("  " + m.bar.ViewAs(float64(pct)/100) + " " + FormatPercent(pct) + "\n")

	for j, task := range sprint.Tasks {
		b.WriteString(m.renderTaskLine(task, interactive, selected && interactive && m.taskIdx == j, width))
	}
	return b.String()
}

func (m Model) renderTaskLine(task models.Task, interactive, focused bool, width int) string {
	checkbox := "[ ]"
	if task.Done() {
		checkbox = "[x]"
	}
	label := task.Name
	if task.Description != "" {
		label += " · " + task.Description
	}
	label = truncateLabel(label, width-8)

	cursor := "  "
	if focused {
		cursor = CurrentTheme.Focused.Render("› ")
	}

	style := CurrentTheme.Task
	if task.Done() {
		style = CurrentTheme.CompletedTask
	}
	if !interactive {
		// Completed-sprint tasks are read-only and render dimmed.
		style = CurrentTheme.Dim
	}
	return fmt.Sprintf("  %s%s %s\n", cursor, CurrentTheme.Dim.Render(checkbox), style.Render(label))
}

func (m Model) renderFooter() string {
	var keys string
	if m.pane == paneActive {
		keys = "tab panes · ←/→ sprint · ↑/↓ task · n new sprint · a add task · space toggle · d delete · e end sprint · r report · x export · q quit"
	} else {
		// Completed sprints are read-only: no toggle/delete/add bindings.
		keys = "tab panes · ←/→ sprint · n new sprint · r report · x export · q quit"
	}
	footer := CurrentTheme.Dim.Render(keys)
	if m.status != "" {
		line := m.status
		if m.statusIsErr {
			footer += "\n" + CurrentTheme.Error.Render(line)
		} else {
			footer += "\n" + CurrentTheme.Highlight.Render(line)
		}
	}
	return footer
}

func (m Model) renderModal() string {
	var content string
	switch state := m.modal.(type) {
	case *SprintCreateState:
		content = renderSprintCreate(state)
	case *TaskCreateState:
		content = renderTaskCreate(state)
	case *ConfirmState:
		content = renderConfirm(state)
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(1, 2)
	return frame.Render(content)
}

func renderSprintCreate(state *SprintCreateState) string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Focused.Render("New Sprint") + "\n\n")
	b.WriteString("Name\n" + state.name.View() + "\n\n")
	b.WriteString("Description\n" + state.desc.View() + "\n\n")
	b.WriteString(fmt.Sprintf("Duration in days (default %d)\n", config.DefaultSprintDays) + state.duration.View() + "\n")
	if state.errMsg != "" {
		b.WriteString("\n" + CurrentTheme.Error.Render(state.errMsg) + "\n")
	}
	b.WriteString("\n" + CurrentTheme.Dim.Render("enter next/submit · tab fields · esc cancel"))
	return b.String()
}

func renderTaskCreate(state *TaskCreateState) string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Focused.Render("Add Task to "+state.sprintName) + "\n\n")
	b.WriteString("Name\n" + state.name.View() + "\n\n")
	b.WriteString("Description\n" + state.desc.View() + "\n")
	if state.errMsg != "" {
		b.WriteString("\n" + CurrentTheme.Error.Render(state.errMsg) + "\n")
	}
	b.WriteString("\n" + CurrentTheme.Dim.Render("enter next/submit · tab fields · esc cancel"))
	return b.String()
}

func renderConfirm(state *ConfirmState) string {
	return CurrentTheme.Focused.Render("Confirm") + "\n\n" +
		state.prompt + "\n\n" +
		CurrentTheme.Dim.Render("y confirm · n cancel")
}
