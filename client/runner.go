package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trovochat/trovochat/command"
	"github.com/trovochat/trovochat/dispatch"
	"github.com/trovochat/trovochat/message"
	"github.com/trovochat/trovochat/ratelimit"
	"github.com/trovochat/trovochat/transport"
	"github.com/trovochat/trovochat/wire"
)

// handshakeTimeout bounds how long Connect waits for IrcReady before
// giving up, per spec 4.7.
const handshakeTimeout = 30 * time.Second

// readBufferSize is how much is read from the connection per Read call
// before handing the bytes to the frame decoder.
const readBufferSize = 4096

// outboundBufferSize is the outbound channel's depth — generous enough
// that the Runner's own internal sends (auto-PONG, keepalive) essentially
// never contend with a burst of caller-submitted commands for space.
const outboundBufferSize = 64

// Runner owns one live connection: it decodes incoming frames, projects
// them onto typed messages, dispatches them, drains the outbound channel
// every Writer clone feeds, and answers PING with PONG from the rate
// limiter's reserved allotment. Its main loop is grounded on the
// teacher's dispatchIncomingMessages (server/oscar/server.go), a select
// over a background reader's channel, a context's Done channel, and a
// periodic tick — generalized here from OSCAR SNAC frames to IRC lines,
// with an outbound-drain arm added for spec 4.6/4.7's MPSC writer model.
type Runner struct {
	conn       io.ReadWriteCloser
	Dispatcher *dispatch.Dispatcher
	Writer     *Writer
	Identity   *Identity
	logger     *slog.Logger
	status     atomic.Int32

	frames   chan wire.RawMessage
	errs     chan error
	outbound chan []byte
	done     chan struct{}

	readTimeout  time.Duration
	lastActivity atomic.Int64

	closeOnce sync.Once
	closeErr  error
}

// Status reports the Runner's current lifecycle state.
func (r *Runner) Status() Status { return Status(r.status.Load()) }

func (r *Runner) setStatus(s Status) { r.status.Store(int32(s)) }

// Connect dials connector, runs the identity handshake (capability
// requests, PASS/NICK, then waiting for IrcReady), and returns a Runner
// ready for Run. It returns as soon as IrcReady arrives and does not wait
// for GlobalUserState; that message, if sent, is handled by Run. Any
// NOTICE bearing an auth-formatting complaint during the handshake
// surfaces as *InvalidRegistrationError.
func Connect(ctx context.Context, connector transport.Connector, cfg Config, logger *slog.Logger) (*Runner, error) {
	conn, err := connector.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("client: connect: %w", err)
	}

	bucket := ratelimit.NewBucket(cfg.RateLimitClass())
	outbound := make(chan []byte, outboundBufferSize)
	done := make(chan struct{})
	r := &Runner{
		conn:        conn,
		Dispatcher:  dispatch.New(),
		Writer:      NewWriter(outbound, done, bucket),
		Identity:    &Identity{},
		logger:      logger,
		frames:      make(chan wire.RawMessage, readBufferSize/32),
		errs:        make(chan error, 1),
		outbound:    outbound,
		done:        done,
		readTimeout: cfg.ReadTimeout,
	}
	// status's zero value is StatusConnecting (iota 0).
	r.lastActivity.Store(time.Now().UnixNano())

	// A single background goroutine owns conn.Read for the Runner's whole
	// lifetime: handshake and Run share it via r.frames/r.errs, so no two
	// goroutines ever read the same connection concurrently.
	go r.decodeLoop()

	handshakeCtx, cancel := context.WithTimeout(ctx, handshakeTimeout)
	defer cancel()

	if err := r.handshake(handshakeCtx, cfg); err != nil {
		_ = r.Close()
		return nil, err
	}

	return r, nil
}

// handshake writes the capability/PASS/NICK sequence directly to the
// connection rather than through the outbound channel: Run's mainLoop,
// the channel's only drainer, does not exist yet at this point, and the
// handshake is guaranteed to be the connection's only writer so far.
func (r *Runner) handshake(ctx context.Context, cfg Config) error {
	if cfg.Tags {
		if err := r.writeDirect(command.Cap{Capability: "trovo.tv/tags"}); err != nil {
			return err
		}
	}
	if cfg.Commands {
		if err := r.writeDirect(command.Cap{Capability: "trovo.tv/commands"}); err != nil {
			return err
		}
	}
	if cfg.Membership {
		if err := r.writeDirect(command.Cap{Capability: "trovo.tv/membership"}); err != nil {
			return err
		}
	}
	if err := r.writeDirect(command.Pass{Token: cfg.Token}); err != nil {
		return err
	}
	if err := r.writeDirect(command.Nick{Name: cfg.Nick}); err != nil {
		return err
	}

	r.setStatus(StatusAwaitingReady)

	for {
		select {
		case raw, ok := <-r.frames:
			if !ok {
				return ErrEof
			}
			typed, err := message.Project(raw)
			if err != nil {
				continue
			}
			switch m := typed.(type) {
			case message.Notice:
				if looksLikeAuthFailure(m.Text) {
					return &InvalidRegistrationError{Notice: m.Text}
				}
			case message.IrcReady:
				r.Identity.setNick(m.Nickname)
				r.setStatus(StatusRunning)
				r.Dispatcher.Dispatch(typed)
				return nil
			default:
				r.Dispatcher.Dispatch(typed)
			}
		case err := <-r.errs:
			r.setStatus(StatusIo)
			return err
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				r.setStatus(StatusTimeout)
				return ErrTimeout
			}
			r.setStatus(StatusCanceled)
			return ErrCanceled
		}
	}
}

func (r *Runner) writeDirect(cmd wire.Encodable) error {
	return cmd.Encode(r.conn)
}

func looksLikeAuthFailure(text string) bool {
	return text == "Login authentication failed" ||
		text == "Improperly formatted auth" ||
		text == "Invalid NICK"
}

// Run drives the Runner's main loop until ctx is done, the connection
// hits EOF, or an I/O error occurs. The decode loop started by Connect
// keeps feeding r.frames/r.errs in the background; Run projects each
// frame to its typed variant, answers PING with PONG using the rate
// limiter's reserved allotment, drains the outbound channel every Writer
// clone feeds and writes it to the socket, and dispatches everything else
// to r.Dispatcher. A second goroutine, managed alongside the main loop by
// an errgroup (mirroring the teacher's multi-listener startup in
// cmd/server/main.go), watches for read-timeout idleness per spec 5 and
// sends an optional keepalive PING before giving up. On return, Close
// tears the Runner all the way down.
func (r *Runner) Run(ctx context.Context) error {
	defer r.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.mainLoop(ctx, gctx) })
	g.Go(func() error { return r.keepaliveLoop(gctx) })
	return g.Wait()
}

// Close signals every Writer clone blocked trying to enqueue (they
// unblock with ErrClientDisconnected), closes the connection — which
// also unblocks decodeLoop's Read — and clears every dispatcher
// subscription, including private ones, per spec 4.5's "runner shuts
// down" termination condition and spec 4.7's quit-path requirement to
// clear private subscriptions too. Idempotent: only the first call's
// conn.Close error is returned.
func (r *Runner) Close() error {
	r.closeOnce.Do(func() {
		close(r.done)
		r.closeErr = r.conn.Close()
		r.Dispatcher.ClearAllIncludingPrivate()
	})
	return r.closeErr
}

func (r *Runner) mainLoop(ctx, gctx context.Context) error {
	for {
		select {
		case raw, ok := <-r.frames:
			if !ok {
				r.setStatus(StatusEof)
				return ErrEof
			}
			r.handleFrame(gctx, raw)
		case b := <-r.outbound:
			if _, err := r.conn.Write(b); err != nil {
				r.setStatus(StatusIo)
				return err
			}
		case err := <-r.errs:
			r.setStatus(StatusIo)
			return err
		case <-gctx.Done():
			if ctx.Err() == nil {
				// gctx was canceled by keepaliveLoop, which already set
				// the terminal status.
				return ErrTimeout
			}
			if errors.Is(ctx.Err(), context.Canceled) {
				r.setStatus(StatusCanceled)
				return ErrCanceled
			}
			r.setStatus(StatusTimeout)
			return ErrTimeout
		}
	}
}

// keepaliveLoop watches r.lastActivity (refreshed by decodeLoop on every
// socket read) and, once it has gone unrefreshed for half of
// r.readTimeout, sends a keepalive PING; once a full readTimeout has
// passed with no traffic, it gives up with ErrTimeout. A non-positive
// readTimeout disables the watch entirely.
func (r *Runner) keepaliveLoop(ctx context.Context) error {
	if r.readTimeout <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(r.readTimeout / 5)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			idle := time.Since(time.Unix(0, r.lastActivity.Load()))
			if idle >= r.readTimeout {
				r.setStatus(StatusTimeout)
				return ErrTimeout
			}
			if idle >= r.readTimeout/2 {
				if err := r.Writer.sendReserved(ctx, command.Ping{Token: "keepalive"}); err != nil {
					r.logger.WarnContext(ctx, "failed to send keepalive ping", "err", err.Error())
				}
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (r *Runner) handleFrame(ctx context.Context, raw wire.RawMessage) {
	typed, err := message.Project(raw)
	if err != nil {
		r.logger.WarnContext(ctx, "dropping unparseable frame", "command", raw.Command, "err", err.Error())
		typed = message.NewRaw(raw)
	}

	if ping, ok := typed.(message.Ping); ok {
		if err := r.Writer.sendReserved(ctx, command.Pong{Token: ping.Token}); err != nil {
			r.logger.ErrorContext(ctx, "failed to answer ping", "err", err.Error())
		}
	}

	if gus, ok := typed.(message.GlobalUserState); ok {
		r.Identity.applyGlobalUserState(gus)
	}
	if us, ok := typed.(message.UserState); ok {
		r.Identity.applyUserState(us)
	}

	r.Dispatcher.Dispatch(typed)
}

// decodeLoop reads bytes off the connection and publishes decoded frames
// on r.frames until the connection errors or is closed, then closes
// r.frames and reports the terminal error on r.errs. It runs for the
// Runner's entire lifetime, started once from Connect. Only conn.Read
// errors are fatal here: a malformed frame is logged and skipped, per
// spec 4.7's "decode errors are logged and skipped (the connection is
// not dropped)" — Decoder.Next already consumes the offending bytes
// before reporting the error, so the stream is not stuck re-decoding it.
func (r *Runner) decodeLoop() {
	defer close(r.frames)

	decoder := wire.NewDecoder()
	buf := make([]byte, readBufferSize)
	for {
		n, err := r.conn.Read(buf)
		if n > 0 {
			r.lastActivity.Store(time.Now().UnixNano())
			decoder.Feed(buf[:n])
			for {
				msg, ok, derr := decoder.Next()
				if !ok {
					break
				}
				if derr != nil {
					r.logger.Warn("dropping malformed frame", "err", derr.Error())
					continue
				}
				r.frames <- msg.IntoOwned()
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			r.errs <- err
			return
		}
	}
}
