// Package tui provides the interactive terminal browser for plan runs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/gridplan/internal/models"
	"github.com/fentz26/gridplan/internal/planner"
	"github.com/fentz26/gridplan/internal/store"
)

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED")
	successColor = lipgloss.Color("#10B981")
	warningColor = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
	fgColor      = lipgloss.Color("#F9FAFB")
	cyanColor    = lipgloss.Color("#06B6D4")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(fgColor).
			Padding(0, 1)

	phaseItemStyle = lipgloss.NewStyle().
			Padding(0, 2)

	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(fgColor).
			Bold(true).
			Padding(0, 2)

	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cyanColor)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// App is the plan browser TUI model.
type App struct {
	store       *store.Store
	runID       string
	run         *models.PlanRun
	entries     []models.PlanEntry
	summaries   []models.PhaseSummary
	selectedIdx int
	viewport    viewport.Model
	width       int
	height      int
	mode        string // "phases", "entries"
	message     string
}

// New creates a plan browser for a run. An empty runID means the latest run.
func New(s *store.Store, runID string) *App {
	return &App{
		store:    s,
		runID:    runID,
		viewport: viewport.New(80, 20),
		mode:     "phases",
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.loadRun()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit

		case "esc":
			if a.mode == "entries" {
				a.mode = "phases"
			}

		case "up", "k":
			if a.mode == "phases" && a.selectedIdx > 0 {
				a.selectedIdx--
			} else if a.mode == "entries" {
				a.viewport.LineUp(1)
			}

		case "down", "j":
			if a.mode == "phases" && a.selectedIdx < len(a.summaries)-1 {
				a.selectedIdx++
			} else if a.mode == "entries" {
				a.viewport.LineDown(1)
			}

		case "enter":
			if a.mode == "phases" && len(a.summaries) > 0 {
				a.mode = "entries"
				a.viewport.SetContent(a.renderEntries(a.summaries[a.selectedIdx].Phase))
				a.viewport.GotoTop()
			}

		case "r":
			return a, a.loadRun()
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 8

	case runLoadedMsg:
		a.run = msg.run
		a.entries = msg.entries
		a.summaries = planner.Summarize(msg.entries)
		if a.selectedIdx >= len(a.summaries) {
			a.selectedIdx = 0
		}
		a.message = ""

	case errMsg:
		a.message = "Error: " + msg.err.Error()
	}

	return a, nil
}

// View implements tea.Model
func (a *App) View() string {
	var b strings.Builder

	header := titleStyle.Render("⚡ GRIDPLAN Repair Plan")
	if a.run != nil {
		header += "  " + mutedStyle.Render(fmt.Sprintf("run %s · %s · crew %d",
			shortID(a.run.ID), a.run.SourcePath, a.run.CrewSize))
	}
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("─", max(a.width, 20)) + "\n")

	switch a.mode {
	case "phases":
		b.WriteString(a.renderPhaseList())
	case "entries":
		b.WriteString(a.viewport.View())
	}

	if a.message != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(errorColor).Render(a.message))
	}
	b.WriteString("\n")

	var status string
	switch a.mode {
	case "phases":
		status = fmt.Sprintf(" Phases: %d | ↑↓:nav | Enter:open | r:reload | q:quit", len(a.summaries))
	default:
		status = " ↑↓:scroll | Esc:back | q:quit"
	}
	b.WriteString(statusBarStyle.Width(max(a.width, 20)).Render(status))

	return b.String()
}

func (a *App) renderPhaseList() string {
	if len(a.summaries) == 0 {
		return "\n  No plan loaded. Run 'gridplan plan --save' first.\n"
	}

	var lines []string
	lines = append(lines, phaseItemStyle.Render(headerRowStyle.Render(
		fmt.Sprintf("%-8s %10s %10s %10s %12s %14s", "PHASE", "BUILDINGS", "SEGMENTS", "HOUSES", "HOURS", "COST"))))

	for i, s := range a.summaries {
		label := fmt.Sprintf("%-8d %10d %10d %10d %12.2f %14.2f",
			s.Phase, s.BuildingCount, s.SegmentCount, s.HouseCount, s.MaxDurationH, s.CostEuros)
		if i == a.selectedIdx {
			lines = append(lines, selectedStyle.Render("▶ "+label))
		} else {
			lines = append(lines, phaseItemStyle.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderEntries(phase int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n  Phase %d\n\n", phase))
	b.WriteString("  " + headerRowStyle.Render(
		fmt.Sprintf("%-20s %8s %8s %10s %14s %8s %10s", "BUILDING", "SEGS", "WORKERS", "HOURS", "COST", "HOUSES", "HOSPITAL")) + "\n")

	for _, e := range a.entries {
		if e.Phase != phase {
			continue
		}
		safety := "-"
		if e.HospitalOK != nil {
			if *e.HospitalOK {
				safety = lipgloss.NewStyle().Foreground(successColor).Render("ok")
			} else {
				safety = lipgloss.NewStyle().Foreground(warningColor).Render("AT RISK")
			}
		}
		b.WriteString(fmt.Sprintf("  %-20s %8d %8d %10.2f %14.2f %8d %10s\n",
			e.BuildingID, e.SegmentCount, e.WorkersTotal, e.DurationH, e.CostEuros, e.MaxHouses, safety))
	}
	return b.String()
}

func (a *App) loadRun() tea.Cmd {
	return func() tea.Msg {
		var run *models.PlanRun
		var err error
		if a.runID == "" {
			run, err = a.store.LatestRun()
			if err == nil && run == nil {
				err = fmt.Errorf("no runs found")
			}
		} else {
			run, err = a.store.GetRun(a.runID)
		}
		if err != nil {
			return errMsg{err}
		}

		entries, err := a.store.GetEntries(run.ID)
		if err != nil {
			return errMsg{err}
		}
		return runLoadedMsg{run: run, entries: entries}
	}
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

type runLoadedMsg struct {
	run     *models.PlanRun
	entries []models.PlanEntry
}

type errMsg struct {
	err error
}
