package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRegisterAndCancelRequest(t *testing.T) {
	pool := &WorkerPool{
		activeRequests: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterRequest("req-1", cancel)

	// Cancel should succeed for a registered request
	assert.True(t, pool.CancelRequest("req-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for an unknown request
	assert.False(t, pool.CancelRequest("unknown"))
}

func TestPoolUnregisterRequest(t *testing.T) {
	pool := &WorkerPool{
		activeRequests: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterRequest("req-1", cancel)
	assert.True(t, pool.CancelRequest("req-1"))

	pool.UnregisterRequest("req-1")
	assert.False(t, pool.CancelRequest("req-1"))
}

func TestPoolGetActiveRequestIDs(t *testing.T) {
	pool := &WorkerPool{
		activeRequests: make(map[string]context.CancelFunc),
	}

	assert.Empty(t, pool.getActiveRequestIDs())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()

	pool.RegisterRequest("req-1", cancel1)
	pool.RegisterRequest("req-2", cancel2)

	ids := pool.getActiveRequestIDs()
	assert.Len(t, ids, 2)
	assert.ElementsMatch(t, []string{"req-1", "req-2"}, ids)
}
