package rest_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/rest"
)

func TestTaskManagerSpawnAndStatus(t *testing.T) {
	m := rest.NewTaskManager(zerolog.Nop())
	defer m.Stop()

	release := make(chan struct{})
	id := m.Spawn("slow", func(context.Context) (any, string) {
		<-release
		return map[string]any{"value": 42}, ""
	})

	status, _ := m.Status(id)
	assert.Equal(t, rest.TaskPending, status)

	close(release)
	m.Stop()

	status, result := m.Status(id)
	assert.Equal(t, rest.TaskCompleted, status)
	assert.Equal(t, map[string]any{"value": 42}, result.Result)
	assert.Empty(t, result.Message)
}

func TestTaskManagerUnknownTask(t *testing.T) {
	m := rest.NewTaskManager(zerolog.Nop())
	defer m.Stop()

	status, result := m.Status(999)
	assert.Equal(t, rest.TaskNotFound, status)
	assert.Nil(t, result.Result)
}

func TestTaskManagerRecordsFailureMessage(t *testing.T) {
	m := rest.NewTaskManager(zerolog.Nop())
	id := m.Spawn("failing", func(context.Context) (any, string) {
		return nil, "exchange query failed"
	})
	m.Stop()

	status, result := m.Status(id)
	assert.Equal(t, rest.TaskCompleted, status)
	assert.Nil(t, result.Result)
	assert.Equal(t, "exchange query failed", result.Message)
}

func TestTaskManagerOutcomes(t *testing.T) {
	m := rest.NewTaskManager(zerolog.Nop())
	defer m.Stop()

	var started sync.WaitGroup
	release := make(chan struct{})

	started.Add(1)
	pendingID := m.Spawn("pending", func(context.Context) (any, string) {
		started.Done()
		<-release
		return nil, ""
	})

	done := make(chan struct{})
	doneID := m.Spawn("done", func(context.Context) (any, string) {
		defer close(done)
		return "ok", ""
	})
	<-done
	started.Wait()

	pending, completed := m.Outcomes()
	assert.Contains(t, pending, pendingID)

	// The completed goroutine may still be between returning and recording,
	// so poll through Status instead of asserting the snapshot directly.
	status, _ := m.Status(doneID)
	for status != rest.TaskCompleted {
		status, _ = m.Status(doneID)
	}
	_, completed = m.Outcomes()
	assert.Contains(t, completed, doneID)

	close(release)
}

func TestTaskManagerIDsAreMonotonic(t *testing.T) {
	m := rest.NewTaskManager(zerolog.Nop())
	ids := make([]int64, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, m.Spawn("n", func(context.Context) (any, string) {
			return nil, ""
		}))
	}
	m.Stop()

	require.True(t, sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] }))
	assert.Equal(t, int64(1), ids[0])
	assert.Equal(t, int64(5), ids[4])
}

func TestTaskManagerStopCancelsContext(t *testing.T) {
	m := rest.NewTaskManager(zerolog.Nop())

	observed := make(chan error, 1)
	m.Spawn("ctx", func(ctx context.Context) (any, string) {
		<-ctx.Done()
		observed <- ctx.Err()
		return nil, ""
	})
	m.Stop()

	assert.ErrorIs(t, <-observed, context.Canceled)
}
