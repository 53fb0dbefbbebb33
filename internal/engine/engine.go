// Package engine parses conversation text into tasks, processes them in
// batches, samples runtime cost while doing so, and renders the inferred
// task dependency graph.
package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// DefaultBatchSize is used when a caller passes a non-positive batch size.
const DefaultBatchSize = 50

// ErrNoTasks is returned by VisualizeDependencies before any processing
// pass has parsed tasks.
var ErrNoTasks = errors.New("no tasks processed yet")

// Engine is the framework behind the monitoring dashboard. It retains the
// task set from the most recent pass so the dependency graph can be
// rendered afterwards.
type Engine struct {
	defaultBatchSize int

	mu        sync.Mutex
	lastTasks []Task
	lastEdges []Edge
}

// New returns a ready-to-use engine. batchSize <= 0 selects DefaultBatchSize.
func New(batchSize int) *Engine {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Engine{defaultBatchSize: batchSize}
}

// ProcessWithBatching parses text into tasks and processes them in batches
// of batchSize, returning one result per task in input order. Empty text
// yields an empty result with no error.
func (e *Engine) ProcessWithBatching(ctx context.Context, text string, batchSize int) ([]TaskResult, error) {
	if batchSize <= 0 {
		batchSize = e.defaultBatchSize
	}
	tasks := parseTasks(text)
	e.remember(tasks)

	var results []TaskResult
	for start := 0; start < len(tasks); start += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch at task %d: %w", start, err)
		}
		end := start + batchSize
		if end > len(tasks) {
			end = len(tasks)
		}
		batch := start / batchSize
		for _, t := range tasks[start:end] {
			results = append(results, TaskResult{Task: t, Batch: batch, Score: scoreTask(t)})
		}
	}
	return results, nil
}

// MonitorResources runs a processing pass over text while sampling runtime
// metrics, and generates the integrated-code artifact for the parsed tasks.
func (e *Engine) MonitorResources(ctx context.Context, text string) (ResourceMetrics, []Task, string, error) {
	started := time.Now()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	results, err := e.ProcessWithBatching(ctx, text, e.defaultBatchSize)
	if err != nil {
		return ResourceMetrics{}, nil, "", fmt.Errorf("monitor pass: %w", err)
	}
	tasks := make([]Task, len(results))
	for i, r := range results {
		tasks[i] = r.Task
	}

	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	metrics := ResourceMetrics{
		HeapBytes:  after.HeapAlloc,
		Goroutines: runtime.NumGoroutine(),
		GCCycles:   after.NumGC - before.NumGC,
		Elapsed:    time.Since(started),
		TaskCount:  len(tasks),
	}
	return metrics, tasks, integratedCode(tasks), nil
}

// VisualizeDependencies renders the dependency graph for the most recent
// pass. It must follow a processing call; otherwise ErrNoTasks.
func (e *Engine) VisualizeDependencies(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	e.mu.Lock()
	tasks, edges := e.lastTasks, e.lastEdges
	e.mu.Unlock()
	if len(tasks) == 0 {
		return "", ErrNoTasks
	}
	return renderGraph(tasks, edges), nil
}

func (e *Engine) remember(tasks []Task) {
	edges := buildEdges(tasks)
	e.mu.Lock()
	e.lastTasks, e.lastEdges = tasks, edges
	e.mu.Unlock()
}

// scoreTask folds keyword priority and statement length into a single
// ranking score in [0, 10].
func scoreTask(t Task) float64 {
	score := float64(t.Priority) * 2
	score += float64(len(t.Text)) / 40
	if score > 10 {
		score = 10
	}
	return score
}

// integratedCode produces the plan artifact for a task set: a checklist in
// priority order. The dashboard persists it to run history rather than
// rendering it.
func integratedCode(tasks []Task) string {
	if len(tasks) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Integration plan\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "- [ ] (P%d) %s\n", t.Priority, t.Text)
	}
	return b.String()
}
