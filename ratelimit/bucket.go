// Package ratelimit implements the token bucket that governs outbound
// message pacing (spec 4.4). It is grounded on the teacher's own use of
// golang.org/x/time/rate as a token bucket for its per-IP auth limiter
// (server/oscar/server.go's IPRateLimiter) — the same primitive, turned
// outward onto the Writer's send path instead of inward onto accepted
// connections.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Class selects one of the four preset bucket shapes from spec 4.4.
type Class int

const (
	// Regular is the default, unprivileged chatter bucket.
	Regular Class = iota
	// Moderator is granted to channel moderators.
	Moderator
	// Known is granted to "known" (verified-adjacent) bots.
	Known
	// Verified is granted to Trovo-verified bots.
	Verified
)

// preset is the (capacity, refill period) pair for a Class.
type preset struct {
	capacity int
	period   time.Duration
}

var presets = map[Class]preset{
	Regular:   {capacity: 20, period: 30 * time.Second},
	Moderator: {capacity: 100, period: 30 * time.Second},
	Known:     {capacity: 50, period: 30 * time.Second},
	Verified:  {capacity: 7500, period: 30 * time.Second},
}

// reservedPongTokens is the size of the always-available allotment
// carved out for auto-PONG, per the Open Question decision in
// SPEC_FULL.md: PONG is rate-limited, but never starved by a chatty
// PRIVMSG producer exhausting the main bucket.
const reservedPongTokens = 2

// Bucket is a token bucket with class-based capacity. take either
// decrements immediately or suspends until a refill tick grants enough
// tokens; waiters are served FIFO by the underlying rate.Limiter's
// reservation queue, and a canceled context drops the waiter without
// consuming a token (rate.Reservation.Cancel refunds it).
type Bucket struct {
	limiter     *rate.Limiter
	pongLimiter *rate.Limiter
}

// NewBucket constructs a Bucket for one of the preset classes.
func NewBucket(class Class) *Bucket {
	p := presets[class]
	return NewCustomBucket(p.capacity, p.period)
}

// NewCustomBucket constructs a Bucket with caller-chosen capacity and
// refill period, for callers that don't fit a preset class.
func NewCustomBucket(capacity int, period time.Duration) *Bucket {
	limit := rate.Every(period / time.Duration(capacity))
	return &Bucket{
		limiter:     rate.NewLimiter(limit, capacity),
		pongLimiter: rate.NewLimiter(rate.Every(period/reservedPongTokens), reservedPongTokens),
	}
}

// Take suspends until n tokens are available, then consumes them. It
// returns ctx.Err() if ctx is canceled while waiting; no tokens are
// consumed in that case.
func (b *Bucket) Take(ctx context.Context, n int) error {
	return b.limiter.WaitN(ctx, n)
}

// TakeReserved draws from the small keepalive allotment reserved for
// auto-PONG, independent of the main bucket's state.
func (b *Bucket) TakeReserved(ctx context.Context) error {
	return b.pongLimiter.Wait(ctx)
}

// Tokens reports the current token count, which may be fractional,
// without consuming any. Useful for diagnostics/tests.
func (b *Bucket) Tokens() float64 {
	return b.limiter.Tokens()
}
