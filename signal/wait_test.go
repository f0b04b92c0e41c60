package signal_test

import (
	"context"
	"testing"
	"time"

	"github.com/beaconparty/beacon/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should resume a waiter with the next fired pack
func TestWaitResumesWithNextFire(t *testing.T) {
	s := signal.New[int]()

	// a fire before the wait must not satisfy it
	require.NoError(t, s.Fire(1))

	got := make(chan int, 1)
	go func() {
		got <- s.Wait()
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Fire(2))

	select {
	case v := <-got:
		assert.Equal(t, 2, v)
	case <-time.After(time.Second):
		t.Fatal("waiter never resumed")
	}
}

// should resume a waiter exactly once
func TestWaitResumesOnce(t *testing.T) {
	s := signal.New[int]()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	done := make(chan int, 1)
	go func() {
		v, err := s.WaitContext(ctx)
		if err == nil {
			done <- v
		}
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Fire(7))
	require.NoError(t, s.Fire(8))

	select {
	case v := <-done:
		assert.Equal(t, 7, v)
	case <-time.After(time.Second):
		t.Fatal("waiter never resumed")
	}
}

// should abandon a wait on context cancellation
func TestWaitContextCancelled(t *testing.T) {
	s := signal.New[string]()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	v, err := s.WaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, v)

	// the abandoned connection must not resurface on later fires
	require.NoError(t, s.Fire("later"))
}

// should deliver a pack that races the cancellation instead of dropping it
func TestWaitContextRaceDeliversPack(t *testing.T) {
	s := signal.New[int](signal.WithSpawner(signal.Inline()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// registered before the waiter, so it runs second in the same pack:
	// the waiter's once consumes the pack, then the context cancels
	s.Connect(func(int) error {
		cancel()
		return nil
	})

	done := make(chan struct{})
	var (
		got int
		err error
	)
	go func() {
		got, err = s.WaitContext(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Fire(9))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waiter never returned")
	}
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

// should not satisfy a wait with fires that happened before it
func TestWaitIgnoresPriorFires(t *testing.T) {
	s := signal.New[int]()

	require.NoError(t, s.Fire(1))
	require.NoError(t, s.Fire(2))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.WaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
