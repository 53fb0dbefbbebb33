package repository

import "time"

// Run records one completed monitoring pass.
type Run struct {
	ID             string
	StartedAt      time.Time
	Duration       time.Duration
	TaskCount      int
	BatchSize      int
	HeapBytes      uint64
	Goroutines     int
	GCCycles       uint32
	IntegratedCode string
	CreatedAt      time.Time
}
