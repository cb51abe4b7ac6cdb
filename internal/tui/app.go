// Package tui provides the interactive Bubble Tea dashboard for paylens.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"paylens/internal/model"
	"paylens/internal/pipeline"
	"paylens/internal/tui/components"
	"paylens/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the analysis pipeline finishes.
type DataLoadedMsg struct {
	Result   *pipeline.LoadResult
	LoadTime time.Duration
	Err      error
}

// App is the root Bubble Tea model.
type App struct {
	// Inputs
	inputPath  string
	loadOpts   pipeline.LoadOptions
	topN       int
	percentile float64

	// Data, computed once after load
	ledger    *pipeline.Ledger
	fromCache bool
	summary   model.TableSummary
	totals    []model.VendorTotal
	freq      []model.VendorCount
	monthly   []model.MonthlyTotal
	crosstab  *model.Crosstab
	anomalies pipeline.AnomalyReport

	loaded   bool
	loadErr  error
	loadTime time.Duration

	// UI state
	width     int
	height    int
	activeTab int
	spinner   spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
)

// NewApp creates the dashboard model.
func NewApp(inputPath string, opts pipeline.LoadOptions, topN int, percentile float64) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		inputPath:  inputPath,
		loadOpts:   opts,
		topN:       topN,
		percentile: percentile,
		spinner:    sp,
	}
}

// Init starts the spinner and kicks off the analysis pipeline.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadCmd())
}

func (a App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		result, err := pipeline.Load(a.inputPath, a.loadOpts)
		return DataLoadedMsg{Result: result, LoadTime: time.Since(start), Err: err}
	}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		a.loadTime = msg.LoadTime
		if msg.Err == nil {
			a.ingest(msg.Result)
		}
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// ingest precomputes every view's data from the cleaned ledger.
func (a *App) ingest(result *pipeline.LoadResult) {
	a.ledger = result.Ledger
	a.fromCache = result.FromCache
	a.summary = pipeline.Describe(a.ledger)
	a.totals = pipeline.TotalsByVendor(a.ledger.Records)
	a.freq = pipeline.PaymentFrequency(a.ledger.Records)
	a.monthly = pipeline.MonthlyTotals(a.ledger.Records)
	a.crosstab = pipeline.DepartmentCrosstab(a.ledger, a.topN)
	a.anomalies = pipeline.DetectAnomalies(a.ledger, a.percentile)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return a, tea.Quit
	case "left", "shift+tab":
		a.activeTab--
		if a.activeTab < 0 {
			a.activeTab = len(components.Tabs) - 1
		}
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	return a, nil
}

// View renders the dashboard.
func (a App) View() string {
	t := theme.Active

	if a.width > 0 && a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}

	if !a.loaded {
		return fmt.Sprintf("\n\n  %s Analyzing %s...\n", a.spinner.View(), a.inputPath)
	}
	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return "\n  " + errStyle.Render(fmt.Sprintf("Load failed: %v", a.loadErr)) + "\n\n  [q]uit\n"
	}

	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	cacheNote := ""
	if a.fromCache {
		cacheNote = lipgloss.NewStyle().Foreground(t.TextDim).Render("  (cached)")
	}

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(titleStyle.Render("PAYLENS — Vendor Payment Analysis"))
	b.WriteString(cacheNote)
	b.WriteString("\n\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case 0:
		b.WriteString(a.renderOverviewTab(cw))
	case 1:
		b.WriteString(a.renderTrendTab(cw))
	case 2:
		b.WriteString(a.renderHeatmapTab(cw))
	case 3:
		b.WriteString(a.renderVendorsTab(cw))
	case 4:
		b.WriteString(a.renderAnomaliesTab(cw))
	}

	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(cw, filepath.Base(a.inputPath)))

	return b.String()
}
