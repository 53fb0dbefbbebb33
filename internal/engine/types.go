package engine

import "time"

// Task is one actionable item extracted from conversation text.
type Task struct {
	ID       string
	Text     string
	Priority int
	Position int // order of appearance in the source text
}

// TaskResult is the outcome of processing one task during a batching pass.
// Results keep the input order of their tasks.
type TaskResult struct {
	Task  Task
	Batch int
	Score float64
}

// ResourceMetrics is a snapshot of runtime cost for one monitoring pass.
type ResourceMetrics struct {
	HeapBytes  uint64
	Goroutines int
	GCCycles   uint32
	Elapsed    time.Duration
	TaskCount  int
}

// Edge marks that the task at position To depends on the task at position From.
type Edge struct {
	From int
	To   int
}
