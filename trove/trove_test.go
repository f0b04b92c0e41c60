package trove_test

import (
	"testing"

	"github.com/beaconparty/beacon/signal"
	"github.com/beaconparty/beacon/trove"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should disconnect every collected connection on clean
func TestCleanDisconnectsAll(t *testing.T) {
	s := signal.New[int](signal.WithSpawner(signal.Inline()))
	tr := trove.New()

	calls := 0
	c1 := s.Connect(func(int) error { calls++; return nil })
	c2 := s.Connect(func(int) error { calls++; return nil })
	tr.Add(c1)
	tr.Add(c2)
	assert.Equal(t, 2, tr.Len())

	tr.Clean()
	assert.Equal(t, 0, tr.Len())
	assert.False(t, c1.Connected())
	assert.False(t, c2.Connected())

	require.NoError(t, s.Fire(0))
	assert.Equal(t, 0, calls)
}

// should deduplicate repeated adds
func TestAddDeduplicates(t *testing.T) {
	s := signal.New[int]()
	tr := trove.New()

	c := s.Connect(func(int) error { return nil })
	tr.Add(c)
	tr.Add(c)
	assert.Equal(t, 1, tr.Len())
}

// should leave removed connections alone on clean
func TestRemoveKeepsConnection(t *testing.T) {
	s := signal.New[int]()
	tr := trove.New()

	c := s.Connect(func(int) error { return nil })
	tr.Add(c)
	tr.Remove(c)

	tr.Clean()
	assert.True(t, c.Connected())
}

// should stay usable after a clean
func TestReusableAfterClean(t *testing.T) {
	s := signal.New[int]()
	tr := trove.New()

	tr.Add(s.Connect(func(int) error { return nil }))
	tr.Clean()

	c := s.Connect(func(int) error { return nil })
	tr.Add(c)
	assert.Equal(t, 1, tr.Len())

	tr.Clean()
	assert.False(t, c.Connected())
}
