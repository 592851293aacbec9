package client

import (
	"bytes"
	"context"
	"fmt"

	"github.com/trovochat/trovochat/command"
	"github.com/trovochat/trovochat/message"
	"github.com/trovochat/trovochat/ratelimit"
	"github.com/trovochat/trovochat/wire"
)

// Writer is the clonable handle spec 4.6 describes: every clone shares
// the same outbound channel into the Runner and the same rate limiter.
// Send awaits a token, encodes cmd into a per-call buffer, then enqueues
// the bytes onto the channel the Runner's mainLoop drains and writes to
// the socket — callers never touch the connection directly. Enqueueing
// onto a Runner that has already shut down surfaces as
// ErrClientDisconnected instead of blocking forever.
type Writer struct {
	out    chan<- []byte
	done   <-chan struct{}
	bucket *ratelimit.Bucket
}

// NewWriter returns a Writer that enqueues encoded commands onto out,
// paced by bucket. done is closed by the owning Runner on shutdown; any
// Send call blocked trying to enqueue at that point unblocks with
// ErrClientDisconnected.
func NewWriter(out chan<- []byte, done <-chan struct{}, bucket *ratelimit.Bucket) *Writer {
	return &Writer{out: out, done: done, bucket: bucket}
}

// Send takes one token (or n, for commands that cost more — none
// currently do) from the rate-limit bucket, encodes cmd, and enqueues the
// result. A canceled ctx aborts before anything is enqueued and before
// any token is consumed, per the rate limiter's cancellation-refund
// invariant.
func (w *Writer) Send(ctx context.Context, cmd wire.Encodable) error {
	if err := w.bucket.Take(ctx, 1); err != nil {
		return err
	}
	return w.enqueue(ctx, cmd)
}

// sendReserved is used for the Runner's auto-PONG and keepalive PING,
// drawing from the bucket's separate keepalive allotment so a saturated
// main bucket never delays them. Unlike Send, it never blocks the caller
// waiting for outbound buffer space: handleFrame calls this from inside
// mainLoop itself, so a full channel would otherwise deadlock the only
// goroutine that drains it. A full buffer (or a gone Runner) just drops
// the reply, the same as any other non-fatal send failure the callers
// already log.
func (w *Writer) sendReserved(ctx context.Context, cmd wire.Encodable) error {
	if err := w.bucket.TakeReserved(ctx); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := cmd.Encode(&buf); err != nil {
		return err
	}
	select {
	case w.out <- buf.Bytes():
		return nil
	default:
		return ErrClientDisconnected
	}
}

func (w *Writer) enqueue(ctx context.Context, cmd wire.Encodable) error {
	var buf bytes.Buffer
	if err := cmd.Encode(&buf); err != nil {
		return err
	}
	select {
	case <-w.done:
		return ErrClientDisconnected
	default:
	}
	select {
	case w.out <- buf.Bytes():
		return nil
	case <-w.done:
		return ErrClientDisconnected
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Privmsg sends text to channel, splitting it across multiple frames via
// command.SplitMessage if it exceeds the practical line-length budget.
func (w *Writer) Privmsg(ctx context.Context, channel, text string) error {
	for _, chunk := range command.SplitMessage(text) {
		if err := w.Send(ctx, command.Privmsg{Channel: channel, Text: chunk}); err != nil {
			return err
		}
	}
	return nil
}

// Whisper sends a private message to nick.
func (w *Writer) Whisper(ctx context.Context, nick, text string) error {
	for _, chunk := range command.SplitMessage(text) {
		if err := w.Send(ctx, command.Whisper{Nick: nick, Text: chunk}); err != nil {
			return err
		}
	}
	return nil
}

// Join requests membership in channel.
func (w *Writer) Join(ctx context.Context, channel string) error {
	return w.Send(ctx, command.Join{Channel: channel})
}

// Part leaves channel.
func (w *Writer) Part(ctx context.Context, channel string) error {
	return w.Send(ctx, command.Part{Channel: channel})
}

// Pong answers a server PING with token directly, for callers that want
// to drive their own ping/pong instead of relying on the Runner's
// auto-PONG.
func (w *Writer) Pong(ctx context.Context, token string) error {
	return w.Send(ctx, command.Pong{Token: token})
}

// Reply sends text to the channel msg was received on, quoting msg's
// sender with an @mention.
func (w *Writer) Reply(ctx context.Context, msg message.Privmsg, text string) error {
	return w.Privmsg(ctx, msg.Channel, fmt.Sprintf("@%s %s", msg.Name, text))
}

// Say sends text to the channel msg was received on, unquoted.
func (w *Writer) Say(ctx context.Context, msg message.Privmsg, text string) error {
	return w.Privmsg(ctx, msg.Channel, text)
}
