package signal_test

import (
	"testing"

	"github.com/beaconparty/beacon/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should tolerate repeated disconnects
func TestDisconnectIdempotent(t *testing.T) {
	s := signal.New[int](signal.WithSpawner(signal.Inline()))

	calls := 0
	c := s.Connect(func(int) error {
		calls++
		return nil
	})

	c.Disconnect()
	c.Disconnect()
	assert.False(t, c.Connected())

	require.NoError(t, s.Fire(0))
	assert.Equal(t, 0, calls)
}

// should rewire neighbors when a middle node unlinks
func TestDisconnectMiddleRelinks(t *testing.T) {
	s := signal.New[int](signal.WithSpawner(signal.Inline()))

	order := []string{}
	s.Connect(collect(&order, "a"))
	b := s.Connect(collect(&order, "b"))
	s.Connect(collect(&order, "c"))

	b.Disconnect()
	require.NoError(t, s.Fire(0))
	assert.Equal(t, []string{"c", "a"}, order)
}

// should advance the head when the newest node unlinks
func TestDisconnectHeadAdvances(t *testing.T) {
	s := signal.New[int](signal.WithSpawner(signal.Inline()))

	order := []string{}
	s.Connect(collect(&order, "a"))
	head := s.Connect(collect(&order, "b"))

	head.Disconnect()
	require.NoError(t, s.Fire(0))
	assert.Equal(t, []string{"a"}, order)
}

// should not launch a subscriber disconnected earlier in the same pack
func TestDisconnectBeforeVisitSkips(t *testing.T) {
	s := signal.New[int](signal.WithSpawner(signal.Inline()))

	bRan := false
	b := s.Connect(func(int) error {
		bRan = true
		return nil
	})
	// a connects after b, so a is visited first
	s.Connect(func(int) error {
		b.Disconnect()
		return nil
	})

	require.NoError(t, s.Fire(0))
	assert.False(t, bRan)
	assert.False(t, b.Connected())
}

// should never link a connection disconnected while staged
func TestDisconnectStagedNeverLinks(t *testing.T) {
	s := signal.New[int](signal.WithSpawner(signal.Inline()))

	lateRan := false
	s.Connect(func(int) error {
		late := s.Connect(func(int) error {
			lateRan = true
			return nil
		})
		assert.False(t, late.Connected())
		late.Disconnect()
		return nil
	})

	require.NoError(t, s.Fire(0))
	require.NoError(t, s.Fire(0))
	assert.False(t, lateRan)
}

// should report staged connections as not connected until spliced in
func TestStagedConnectedLifecycle(t *testing.T) {
	s := signal.New[int](signal.WithSpawner(signal.Inline()))

	var late *signal.Connection[int]
	s.Once(func(int) error {
		late = s.Connect(func(int) error { return nil })
		assert.False(t, late.Connected())
		return nil
	})

	require.NoError(t, s.Fire(0))
	require.NotNil(t, late)
	assert.True(t, late.Connected())
}
