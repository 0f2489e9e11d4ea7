package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	pool.Stop()

	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
	checker.Check(0)
}

func TestPool_StopDrainsQueue(t *testing.T) {
	// ARRANGE: queue jobs before any worker runs
	var executed int32
	pool := NewPool(1, 50)
	for i := 0; i < 50; i++ {
		require.True(t, pool.Enqueue(&testJob{executed: &executed}))
	}

	// ACT
	pool.Start()
	pool.Stop()

	// ASSERT
	assert.Equal(t, int32(50), atomic.LoadInt32(&executed))
}

func TestPool_FullQueueRunsInline(t *testing.T) {
	var executed int32
	pool := NewPool(1, 0)

	queued := pool.Enqueue(&testJob{executed: &executed})

	assert.False(t, queued)
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_EnqueueAfterStopRunsInline(t *testing.T) {
	var executed int32
	pool := NewPool(1, 10)
	pool.Start()
	pool.Stop()
	pool.Stop()

	queued := pool.Enqueue(&testJob{executed: &executed})

	assert.False(t, queued)
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_FailedJobDoesNotStopWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, 10)
	pool.Start()

	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(&testJob{executed: &executed})
	pool.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

type recordingStore struct {
	mu    sync.Mutex
	names []string
}

func (r *recordingStore) Store(_ context.Context, p *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, p.Name)
	return nil
}

func TestSaveJob(t *testing.T) {
	store := &recordingStore{}
	pool := NewPool(2, 10)
	pool.Start()

	pool.Enqueue(SaveJob{Store: store, Player: domain.NewPlayer("Aria")})
	pool.Enqueue(SaveJob{Store: store, Player: domain.NewPlayer("Bram")})
	pool.Stop()

	assert.ElementsMatch(t, []string{"Aria", "Bram"}, store.names)
}
