package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	var (
		mu  sync.Mutex
		got []int
	)
	done := make(chan struct{})
	q := New(10, func(_ context.Context, v int) error {
		mu.Lock()
		got = append(got, v)
		n := len(got)
		mu.Unlock()
		if n == 5 {
			close(done)
		}
		return nil
	}, nil)

	for i := 0; i < 5; i++ {
		require.True(t, q.Offer(i))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = q.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("items were not dispatched")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Eventually(t, func() bool { return q.Pending() == 0 }, time.Second, 10*time.Millisecond)
}

func TestQueueBounded(t *testing.T) {
	q := New(2, func(context.Context, string) error { return nil }, nil)

	assert.True(t, q.Offer("a"))
	assert.True(t, q.Offer("b"))
	assert.False(t, q.Offer("c"))
	assert.Equal(t, int64(2), q.Pending())
	assert.Equal(t, int64(1), q.Dropped())
}

func TestQueueHandlerErrorDoesNotStopDispatch(t *testing.T) {
	handled := make(chan int, 2)
	q := New(4, func(_ context.Context, v int) error {
		handled <- v
		if v == 1 {
			return errors.New("boom")
		}
		return nil
	}, nil)
	q.Offer(1)
	q.Offer(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = q.Run(ctx) }()

	assert.Equal(t, 1, <-handled)
	assert.Equal(t, 2, <-handled)
}

func TestQueueDrainsOnStop(t *testing.T) {
	var drained []int
	q := New(8, func(context.Context, int) error {
		t.Error("handler must not run after cancel")
		return nil
	}, nil, WithDrain(func(ctx context.Context, v int) error {
		assert.NoError(t, ctx.Err())
		drained = append(drained, v)
		return nil
	}))
	for i := 0; i < 3; i++ {
		require.True(t, q.Offer(i))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, q.Run(ctx))

	assert.Equal(t, []int{0, 1, 2}, drained)
	assert.Zero(t, q.Pending())
}
