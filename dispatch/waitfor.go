package dispatch

import (
	"context"

	"github.com/trovochat/trovochat/message"
)

// WaitFor blocks until a message of kind has been dispatched, or ctx is
// done. The first call for a given kind subscribes and awaits the next
// matching dispatch; the result is cached in the Dispatcher's single
// slot per kind, so a second WaitFor call for the same kind returns
// immediately without consuming further input — it reads whatever was
// last dispatched for that kind, even if that happened before this call
// was made.
func WaitFor[T message.Message](ctx context.Context, d *Dispatcher, kind message.Kind) (T, error) {
	var zero T

	d.mu.Lock()
	if cached, ok := d.cache[kind]; ok {
		d.mu.Unlock()
		v, ok := cached.(T)
		if !ok {
			return zero, &WrongTypeError{Kind: kind}
		}
		return v, nil
	}
	d.mu.Unlock()

	ch, cancel := subscribePrivate[T](d, kind)
	defer cancel()

	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// WrongTypeError is returned when WaitFor is instantiated with a type
// parameter that does not match the cached value for kind. On the uncached
// path a dispatched value of another type is never delivered, so WaitFor
// keeps waiting until ctx is done.
type WrongTypeError struct {
	Kind message.Kind
}

func (e *WrongTypeError) Error() string {
	return "dispatch: cached value for kind does not match the requested type"
}
