// Package tui renders the real-time monitoring dashboard: three display
// panes (resource metrics, processed tasks, dependency graph) over a
// framework collaborator that does the actual work.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/taskpulse/internal/config"
	"github.com/jask/taskpulse/internal/database/repository"
	"github.com/jask/taskpulse/internal/engine"
)

// Framework is the collaborator contract the dashboard drives. engine.Engine
// satisfies it; tests substitute stubs.
type Framework interface {
	ProcessWithBatching(ctx context.Context, text string, batchSize int) ([]engine.TaskResult, error)
	MonitorResources(ctx context.Context, text string) (engine.ResourceMetrics, []engine.Task, string, error)
	VisualizeDependencies(ctx context.Context) (string, error)
}

// Orchestration steps, used to report which call failed and how far a pass
// got before failing.
const (
	stepBatching = iota + 1
	stepMonitoring
	stepVisualization
)

var stepNames = map[int]string{
	stepBatching:      "batch processing",
	stepMonitoring:    "resource monitoring",
	stepVisualization: "dependency visualization",
}

// statusKind selects the status-bar styling for the current status text.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Start key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start task monitoring")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Start, k.Quit}}
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type runDoneMsg struct {
	results        []engine.TaskResult
	metrics        engine.ResourceMetrics
	tasks          []engine.Task
	integratedCode string
	graph          string
	startedAt      time.Time
	elapsed        time.Duration
	steps          int // how many orchestration steps completed
	failedStep     int
	err            error
}

type historyMsg struct {
	count int
	err   error
}

type runSavedMsg struct {
	err error
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the dashboard controller. It never reassigns its framework
// reference and performs no framework calls until the trigger fires.
type Model struct {
	ctx       context.Context
	framework Framework
	runs      *repository.RunRepo // nil disables run history
	cfg       config.Config

	keys       keyMap
	spinner    spinner.Model
	running    bool
	status     string
	statusKind statusKind

	// display regions, each redrawn from these values on every View
	metrics *engine.ResourceMetrics
	tasks   []engine.Task
	graph   string

	historyCount int
	historyErr   error

	width  int
	height int
}

// New builds the dashboard around an explicit framework instance.
func New(ctx context.Context, cfg config.Config, framework Framework, runs *repository.RunRepo) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	return Model{
		ctx:       ctx,
		framework: framework,
		runs:      runs,
		cfg:       cfg,
		keys:      newKeyMap(),
		spinner:   sp,
		status:    "Press s to start task monitoring.",
	}
}

func (m Model) Init() tea.Cmd {
	if m.runs == nil {
		return nil
	}
	return loadHistoryCmd(m.ctx, m.runs)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case runDoneMsg:
		return m.handleRunDone(msg)
	case historyMsg:
		return m.handleHistory(msg)
	case runSavedMsg:
		return m.handleRunSaved(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		if m.running {
			return m, nil
		}
		m.running = true
		m.status = "Running task monitoring pass..."
		m.statusKind = statusInfo
		return m, tea.Batch(
			m.spinner.Tick,
			runCmd(m.ctx, m.framework, m.cfg.Monitor.SampleText, m.cfg.Monitor.BatchSize),
		)
	}
	return m, nil
}

func (m Model) handleRunDone(msg runDoneMsg) (tea.Model, tea.Cmd) {
	m.running = false
	// keep whatever the pass produced before failing
	if msg.steps >= stepMonitoring {
		metrics := msg.metrics
		m.metrics = &metrics
		m.tasks = msg.tasks
	}
	if msg.steps >= stepVisualization {
		m.graph = msg.graph
	}
	if msg.err != nil {
		m.status = fmt.Sprintf("%s failed: %v", stepNames[msg.failedStep], msg.err)
		m.statusKind = statusError
		return m, nil
	}
	m.status = fmt.Sprintf("Processed %d tasks successfully.", len(msg.results))
	m.statusKind = statusSuccess
	if m.runs == nil {
		return m, nil
	}
	run := repository.Run{
		ID:             uuid.NewString(),
		StartedAt:      msg.startedAt.UTC(),
		Duration:       msg.elapsed,
		TaskCount:      len(msg.results),
		BatchSize:      m.cfg.Monitor.BatchSize,
		HeapBytes:      msg.metrics.HeapBytes,
		Goroutines:     msg.metrics.Goroutines,
		GCCycles:       msg.metrics.GCCycles,
		IntegratedCode: msg.integratedCode,
	}
	return m, saveRunCmd(m.ctx, m.runs, run)
}

func (m Model) handleHistory(msg historyMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.historyErr = msg.err
		return m, nil
	}
	m.historyCount = msg.count
	m.historyErr = nil
	return m, nil
}

func (m Model) handleRunSaved(msg runSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// history is best effort; the pass itself already succeeded
		m.historyErr = msg.err
		return m, nil
	}
	m.historyCount++
	m.historyErr = nil
	return m, nil
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

// runCmd performs one orchestration pass: batching, then monitoring, then
// visualization. A failure stops the pass at that step; earlier results are
// still delivered.
func runCmd(ctx context.Context, f Framework, text string, batchSize int) tea.Cmd {
	return func() tea.Msg {
		msg := runDoneMsg{startedAt: time.Now()}

		results, err := f.ProcessWithBatching(ctx, text, batchSize)
		if err != nil {
			msg.err, msg.failedStep = err, stepBatching
			return msg
		}
		msg.results = results
		msg.steps = stepBatching

		metrics, tasks, code, err := f.MonitorResources(ctx, text)
		if err != nil {
			msg.err, msg.failedStep = err, stepMonitoring
			return msg
		}
		msg.metrics, msg.tasks, msg.integratedCode = metrics, tasks, code
		msg.steps = stepMonitoring

		graph, err := f.VisualizeDependencies(ctx)
		if err != nil {
			msg.err, msg.failedStep = err, stepVisualization
			return msg
		}
		msg.graph = graph
		msg.steps = stepVisualization

		msg.elapsed = time.Since(msg.startedAt)
		return msg
	}
}

func loadHistoryCmd(ctx context.Context, runs *repository.RunRepo) tea.Cmd {
	return func() tea.Msg {
		count, err := runs.Count(ctx)
		return historyMsg{count: count, err: err}
	}
}

func saveRunCmd(ctx context.Context, runs *repository.RunRepo, run repository.Run) tea.Cmd {
	return func() tea.Msg {
		return runSavedMsg{err: runs.Insert(ctx, run)}
	}
}
