package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/taskpulse/internal/database"
)

func openTestDB(t *testing.T) *RunRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))
	return NewRunRepo(db)
}

func testRun(id string, startedAt time.Time) Run {
	return Run{
		ID:             id,
		StartedAt:      startedAt,
		Duration:       42 * time.Millisecond,
		TaskCount:      4,
		BatchSize:      50,
		HeapBytes:      1 << 20,
		Goroutines:     8,
		GCCycles:       1,
		IntegratedCode: "## Integration plan\n- [ ] (P3) Develop parsing logic\n",
	}
}

func TestRunRepoInsertAndList(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestDB(t)

	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, testRun("run-a", base)))
	require.NoError(t, repo.Insert(ctx, testRun("run-b", base.Add(time.Minute))))

	runs, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, "run-b", runs[0].ID)
	require.Equal(t, "run-a", runs[1].ID)

	got := runs[1]
	require.Equal(t, 42*time.Millisecond, got.Duration)
	require.Equal(t, 4, got.TaskCount)
	require.Equal(t, 50, got.BatchSize)
	require.Equal(t, uint64(1<<20), got.HeapBytes)
	require.Equal(t, 8, got.Goroutines)
	require.Equal(t, uint32(1), got.GCCycles)
	require.Contains(t, got.IntegratedCode, "Integration plan")
	require.True(t, got.StartedAt.Equal(base))
}

func TestRunRepoListLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestDB(t)

	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Insert(ctx, testRun(string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	require.Equal(t, "e", runs[0].ID)
}

func TestRunRepoLatestAndCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestDB(t)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Nil(t, latest)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, testRun("first", base)))
	require.NoError(t, repo.Insert(ctx, testRun("second", base.Add(time.Hour))))

	latest, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, "second", latest.ID)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
