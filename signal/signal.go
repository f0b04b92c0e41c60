package signal

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDestroyed is returned by Fire once a signal has been destroyed.
var ErrDestroyed = errors.New("fire on destroyed signal")

// Handler is a subscriber callback. A returned error is routed to the
// signal's error hook and never interrupts dispatch of other subscribers.
type Handler[T any] func(T) error

type ErrorFunc func(err error)

type config struct {
	spawner Spawner
	onError ErrorFunc
}

type Option func(*config)

// WithSpawner replaces the default goroutine-per-launch spawner.
func WithSpawner(sp Spawner) Option {
	return func(c *config) { c.spawner = sp }
}

// WithErrorFunc installs a hook for handler errors and recovered handler
// panics. Without it failures are dropped.
func WithErrorFunc(fn ErrorFunc) Option {
	return func(c *config) { c.onError = fn }
}

// Signal owns a list of connections and dispatches fired packs to them.
// The list head is the single owning reference; connections hold
// navigation links only. Packs queue FIFO and connections made while a
// pack is dispatching are staged until that pack finishes.
type Signal[T any] struct {
	mu         sync.Mutex
	head       *Connection[T]
	queue      []T
	staged     []*Connection[T]
	firing     bool
	processing bool
	destroyed  bool

	spawner Spawner
	onError ErrorFunc
}

func New[T any](opts ...Option) *Signal[T] {
	cfg := config{spawner: Go()}
	for _, o := range opts {
		o(&cfg)
	}
	return &Signal[T]{
		spawner: cfg.spawner,
		onError: cfg.onError,
	}
}

func (s *Signal[T]) isSignal() {}

// Connect subscribes fn. The connection links at the head of the list
// immediately, unless a pack is mid-dispatch, in which case it stages and
// becomes live only once that pack finishes.
func (s *Signal[T]) Connect(fn Handler[T]) *Connection[T] {
	c := &Connection[T]{signal: s, fn: fn}
	s.attach(c)
	return c
}

// Once subscribes fn for at most one invocation. The connection
// disconnects itself before fn runs, so re-entrant fires from inside fn
// cannot re-trigger it.
func (s *Signal[T]) Once(fn Handler[T]) *Connection[T] {
	c := &Connection[T]{signal: s}
	var once sync.Once
	c.fn = func(v T) error {
		var err error
		once.Do(func() {
			c.Disconnect()
			err = fn(v)
		})
		return err
	}
	s.attach(c)
	return c
}

func (s *Signal[T]) attach(c *Connection[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		c.fn = nil
		return
	}
	if s.firing {
		s.staged = append(s.staged, c)
		return
	}
	s.link(c)
}

// link puts c at the head of the live list. Caller holds mu.
func (s *Signal[T]) link(c *Connection[T]) {
	if c.fn == nil {
		// disconnected while staged, never goes live
		return
	}
	c.next = s.head
	if s.head != nil {
		s.head.prev = c
	}
	s.head = c
	c.connected = true
}

// Fire queues one pack and dispatches it to every live connection. It
// reports ErrDestroyed after Destroy and otherwise never fails. Fire does
// not wait for handlers: each launch is fire-and-forget on the signal's
// spawner. Re-entrant fires from inside a handler queue behind the pack
// already dispatching.
func (s *Signal[T]) Fire(v T) error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return ErrDestroyed
	}
	s.queue = append(s.queue, v)
	if s.processing {
		s.mu.Unlock()
		return nil
	}
	s.processing = true
	s.mu.Unlock()
	s.drain()
	return nil
}

// drain dispatches queued packs until none remain. The caller must have
// set s.processing. The mutex drops around every launch so a handler on an
// inline spawner can re-enter Connect, Disconnect, Fire or Destroy.
func (s *Signal[T]) drain() {
	s.mu.Lock()
	for len(s.queue) > 0 {
		pack := s.queue[0]
		s.queue = s.queue[1:]
		s.firing = true

		// Walk from the head as it stood when the pack came up.
		// Unlinks during the walk take effect in place; a node
		// disconnected under our feet keeps its next pointer, so the
		// walk steps past it and skips it via the connected check.
		node := s.head
		for node != nil {
			fn := node.fn
			live := node.connected
			next := node.next
			s.mu.Unlock()
			if live && fn != nil {
				s.launch(fn, pack)
			}
			s.mu.Lock()
			node = next
		}

		s.firing = false
		for _, c := range s.staged {
			s.link(c)
		}
		s.staged = s.staged[:0]
	}
	if s.queue != nil {
		s.queue = s.queue[:0]
	}
	s.processing = false
	s.mu.Unlock()
}

func (s *Signal[T]) launch(fn Handler[T], v T) {
	s.spawner.Spawn(func() {
		defer func() {
			if r := recover(); r != nil && s.onError != nil {
				s.onError(fmt.Errorf("handler panic: %v", r))
			}
		}()
		if err := fn(v); err != nil && s.onError != nil {
			s.onError(err)
		}
	})
}

// Destroy disconnects every live and staged connection, drops any queued
// packs and marks the signal unusable. Calling it again is a no-op.
func (s *Signal[T]) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	s.destroyed = true
	for node := s.head; node != nil; node = node.next {
		node.connected = false
		node.fn = nil
		node.prev = nil
	}
	s.head = nil
	for _, c := range s.staged {
		c.fn = nil
	}
	s.staged = nil
	s.queue = nil
}

// Destroyed reports whether Destroy has run.
func (s *Signal[T]) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

type anySignal interface{ isSignal() }

type anyConnection interface{ isConnection() }

// IsSignal reports whether v is a *Signal of any payload type. It never
// panics; nil and foreign values report false.
func IsSignal(v any) bool {
	_, ok := v.(anySignal)
	return ok
}

// IsConnection reports whether v is a *Connection of any payload type.
func IsConnection(v any) bool {
	_, ok := v.(anyConnection)
	return ok
}
