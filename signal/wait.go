package signal

import "context"

// Wait blocks until the next Fire after the call and returns that pack.
// It resumes exactly once; fires that happened before the call never
// satisfy it. Wait never returns on a signal that is destroyed before the
// next fire; use WaitContext when that can happen.
func (s *Signal[T]) Wait() T {
	ch := make(chan T, 1)
	s.Once(func(v T) error {
		ch <- v
		return nil
	})
	return <-ch
}

// WaitContext is Wait with an escape hatch: on context cancellation the
// pending connection is disconnected and the context error returned. A
// pack that arrives in the same instant the context is cancelled is still
// delivered, never consumed and dropped.
func (s *Signal[T]) WaitContext(ctx context.Context) (T, error) {
	ch := make(chan T, 1)
	c := s.Once(func(v T) error {
		ch <- v
		return nil
	})
	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		c.Disconnect()
		// the once may have consumed a pack before the disconnect
		select {
		case v := <-ch:
			return v, nil
		default:
		}
		var zero T
		return zero, ctx.Err()
	}
}
