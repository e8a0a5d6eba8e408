// executor_test.go — Bounded executor with overflow queue.
package concurrency_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ffi/api"
	"github.com/momentics/hioload-ffi/core/concurrency"
)

func TestExecutor_RunsAllTasks(t *testing.T) {
	e := concurrency.NewExecutor(4)
	var done atomic.Int64

	// well past the channel buffer, to force the overflow path
	const tasks = 10_000
	for i := 0; i < tasks; i++ {
		err := e.Submit(func() {
			done.Add(1)
		})
		require.NoError(t, err)
	}
	// Close drains both the channel and the overflow queue
	e.Close()

	assert.Equal(t, int64(tasks), done.Load())
	assert.Zero(t, e.Pending())
}

func TestExecutor_SubmitAfterClose(t *testing.T) {
	e := concurrency.NewExecutor(1)
	e.Close()
	err := e.Submit(func() {})
	assert.ErrorIs(t, err, api.ErrExecutorClosed)
}

func TestExecutor_NilTask(t *testing.T) {
	e := concurrency.NewExecutor(1)
	defer e.Close()
	assert.ErrorIs(t, e.Submit(nil), api.ErrInvalidArgument)
}

func TestExecutor_CloseWaitsForQueued(t *testing.T) {
	e := concurrency.NewExecutor(2)
	var done atomic.Int64
	for i := 0; i < 64; i++ {
		require.NoError(t, e.Submit(func() {
			time.Sleep(time.Millisecond)
			done.Add(1)
		}))
	}
	e.Close()
	assert.Equal(t, int64(64), done.Load())

	// repeated close is a no-op
	e.Close()
}

func TestExecutor_DefaultWorkerCount(t *testing.T) {
	e := concurrency.NewExecutor(0)
	defer e.Close()
	var ran atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, e.Submit(func() {
		ran.Store(true)
		wg.Done()
	}))
	wg.Wait()
	assert.True(t, ran.Load())
}
