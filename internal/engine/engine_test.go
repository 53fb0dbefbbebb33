package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleText = `Develop advanced parsing logic to extract subtasks dynamically from deeply nested workflows.
Test semantic scoring capabilities with sentence transformers for task prioritization.
Enable dynamic feedback loops for real-time task refinement.
Ensure scalability with large and complex conversation threads.`

func TestProcessWithBatchingOrdersAndBatches(t *testing.T) {
	t.Parallel()

	e := New(50)
	results, err := e.ProcessWithBatching(context.Background(), sampleText, 2)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, r := range results {
		require.Equal(t, i, r.Task.Position)
		require.Equal(t, i/2, r.Batch)
		require.Greater(t, r.Score, 0.0)
	}
}

func TestProcessWithBatchingEmptyText(t *testing.T) {
	t.Parallel()

	e := New(50)
	results, err := e.ProcessWithBatching(context.Background(), "", 50)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestProcessWithBatchingFallsBackToDefault(t *testing.T) {
	t.Parallel()

	e := New(3)
	results, err := e.ProcessWithBatching(context.Background(), sampleText, 0)
	require.NoError(t, err)
	require.Len(t, results, 4)
	require.Equal(t, 0, results[2].Batch)
	require.Equal(t, 1, results[3].Batch)
}

func TestProcessWithBatchingCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New(50)
	_, err := e.ProcessWithBatching(ctx, sampleText, 50)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMonitorResources(t *testing.T) {
	t.Parallel()

	e := New(50)
	metrics, tasks, code, err := e.MonitorResources(context.Background(), sampleText)
	require.NoError(t, err)

	require.Len(t, tasks, 4)
	require.Equal(t, 4, metrics.TaskCount)
	require.Greater(t, metrics.Goroutines, 0)
	require.Greater(t, metrics.HeapBytes, uint64(0))
	require.Greater(t, metrics.Elapsed.Nanoseconds(), int64(0))

	require.Contains(t, code, "## Integration plan")
	require.Contains(t, code, "- [ ] (P3) Develop advanced parsing logic")
	require.Contains(t, code, "real-time task refinement")
}

func TestVisualizeDependenciesBeforeAnyPass(t *testing.T) {
	t.Parallel()

	e := New(50)
	_, err := e.VisualizeDependencies(context.Background())
	require.ErrorIs(t, err, ErrNoTasks)
}

func TestVisualizeDependenciesAfterPass(t *testing.T) {
	t.Parallel()

	e := New(50)
	_, err := e.ProcessWithBatching(context.Background(), sampleText, 50)
	require.NoError(t, err)

	graph, err := e.VisualizeDependencies(context.Background())
	require.NoError(t, err)
	require.Contains(t, graph, "Task Dependency Graph")
	require.Contains(t, graph, "4 tasks")
}

func TestEngineSatisfiesScoreBounds(t *testing.T) {
	t.Parallel()

	long := Task{Text: string(make([]byte, 2000)), Priority: 3}
	require.LessOrEqual(t, scoreTask(long), 10.0)
	require.Greater(t, scoreTask(Task{Text: "x", Priority: 1}), 0.0)
}
