package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	cache "github.com/patrickmn/go-cache"

	"github.com/trovochat/trovochat/dispatch"
	"github.com/trovochat/trovochat/message"
)

// joinConfirmationTTL bounds how long a confirmed channel join is
// remembered before Control.Join will wait on a fresh Join event again.
const joinConfirmationTTL = 2 * time.Minute

// Control is the clonable handle spec 4.8 describes: a Writer, a quit
// signal, an Identity snapshot accessor, and non-blocking Join/Part that
// layer a confirmation wait (and a short-lived cache of already-joined
// channels) over the raw Writer calls.
type Control struct {
	ID         string
	Writer     *Writer
	Dispatcher *dispatch.Dispatcher
	Identity   *Identity
	Status     func() Status

	cancel func()
	joined *cache.Cache
}

// NewControl builds a Control bound to r, tagging it with a fresh
// correlation id so log lines from calls made through this handle can be
// traced back to it even when several Controls share one Runner.
func NewControl(r *Runner, cancel func()) *Control {
	return &Control{
		ID:         uuid.NewString(),
		Writer:     r.Writer,
		Dispatcher: r.Dispatcher,
		Identity:   r.Identity,
		Status:     r.Status,
		cancel:     cancel,
		joined:     cache.New(joinConfirmationTTL, joinConfirmationTTL*2),
	}
}

// Quit signals the Runner to stop by invoking cancel. It is safe to call
// repeatedly: cancel is expected to be a context.CancelFunc or similar,
// which the standard library already makes idempotent.
func (c *Control) Quit() {
	if c.cancel != nil {
		c.cancel()
	}
}

// Join sends a JOIN for channel and, unless a confirmation for this
// channel is still cached, waits for the matching Join event naming the
// connected identity before returning. A successful wait caches the
// confirmation so a repeated Join for the same channel returns as soon
// as the command is sent.
func (c *Control) Join(ctx context.Context, channel string) error {
	if err := c.Writer.Join(ctx, channel); err != nil {
		return fmt.Errorf("client: join %s: %w", channel, err)
	}

	if _, cached := c.joined.Get(channel); cached {
		return nil
	}

	ch, unsubscribe := dispatch.Subscribe[message.Join](c.Dispatcher, message.KindJoin)
	defer unsubscribe()

	nick := c.Identity.Snapshot().Nick
	for {
		select {
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			if m.Name == nick && m.Channel == channel {
				c.joined.Set(channel, struct{}{}, cache.DefaultExpiration)
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Part sends a PART for channel and evicts any cached join confirmation
// for it, so a later Join waits for a fresh confirmation rather than
// trusting stale cache state.
func (c *Control) Part(ctx context.Context, channel string) error {
	c.joined.Delete(channel)
	if err := c.Writer.Part(ctx, channel); err != nil {
		return fmt.Errorf("client: part %s: %w", channel, err)
	}
	return nil
}

// Stop quits the Runner and closes it down via Runner.Close — which also
// clears every dispatcher subscription, including private ones, per spec
// 4.7's quit path. The quit signal is just a cancel and cannot fail, so
// the returned error (built via multierror) carries only Close's error,
// or is nil. Calling
// Stop without Run ever having been called still tears the Runner down
// correctly, since Runner.Close is idempotent.
func (c *Control) Stop(r *Runner) error {
	c.Quit()

	var result *multierror.Error
	if err := r.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("client: close connection: %w", err))
	}
	return result.ErrorOrNil()
}
