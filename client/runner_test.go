package client

import (
	"bufio"
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trovochat/trovochat/dispatch"
	"github.com/trovochat/trovochat/message"
)

type pipeConnector struct {
	conn io.ReadWriteCloser
}

func (p pipeConnector) Connect(ctx context.Context) (io.ReadWriteCloser, error) {
	return p.conn, nil
}

func newPipePair(t *testing.T) (clientSide net.Conn, serverSide net.Conn) {
	t.Helper()
	a, b := net.Pipe()
	t.Cleanup(func() { _ = a.Close(); _ = b.Close() })
	return a, b
}

func noCapConfig() Config {
	return Config{
		Nick:       "helix",
		Token:      "oauth:abc",
		Membership: false,
		Commands:   false,
		Tags:       false,
	}
}

func TestConnectCompletesHandshakeOnIrcReady(t *testing.T) {
	clientConn, serverConn := newPipePair(t)

	serverLines := make(chan string, 8)
	go func() {
		r := bufio.NewReader(serverConn)
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			serverLines <- strings.TrimRight(line, "\r\n")
		}
	}()

	go func() {
		<-serverLines // PASS
		<-serverLines // NICK
		_, _ = serverConn.Write([]byte("001 helix :Welcome\r\n"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r, err := Connect(ctx, pipeConnector{conn: clientConn}, noCapConfig(), NewLogger("error"))
	require.NoError(t, err)
	require.Equal(t, StatusRunning, r.Status())
	require.Equal(t, "helix", r.Identity.Snapshot().Nick)
}

func TestConnectSurfacesInvalidRegistration(t *testing.T) {
	clientConn, serverConn := newPipePair(t)

	go func() {
		r := bufio.NewReader(serverConn)
		_, _ = r.ReadString('\n') // PASS
		_, _ = r.ReadString('\n') // NICK
		_, _ = serverConn.Write([]byte(":tmi.trovo.tv NOTICE * :Improperly formatted auth\r\n"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := Connect(ctx, pipeConnector{conn: clientConn}, noCapConfig(), NewLogger("error"))
	require.Error(t, err)

	var regErr *InvalidRegistrationError
	require.ErrorAs(t, err, &regErr)
}

func TestRunDispatchesFramesAndAutoPongs(t *testing.T) {
	clientConn, serverConn := newPipePair(t)

	go func() {
		r := bufio.NewReader(serverConn)
		_, _ = r.ReadString('\n') // PASS
		_, _ = r.ReadString('\n') // NICK
		_, _ = serverConn.Write([]byte("001 helix :Welcome\r\n"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r, err := Connect(ctx, pipeConnector{conn: clientConn}, noCapConfig(), NewLogger("error"))
	require.NoError(t, err)

	privmsgs, unsubscribe := dispatch.Subscribe[message.Privmsg](r.Dispatcher, message.KindPrivmsg)
	defer unsubscribe()

	runErr := make(chan error, 1)
	go func() { runErr <- r.Run(ctx) }()

	pongLine := make(chan string, 1)
	go func() {
		br := bufio.NewReader(serverConn)
		line, err := br.ReadString('\n')
		if err == nil {
			pongLine <- strings.TrimRight(line, "\r\n")
		}
	}()

	_, _ = serverConn.Write([]byte("PING :keepalive-token\r\n"))

	select {
	case line := <-pongLine:
		require.Equal(t, "PONG :keepalive-token", line)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for PONG")
	}

	_, _ = serverConn.Write([]byte(":someone!someone@someone.trovo.tv PRIVMSG #somechannel :hello\r\n"))

	select {
	case m := <-privmsgs:
		require.Equal(t, "hello", m.Data)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dispatched PRIVMSG")
	}

	_ = serverConn.Close()

	select {
	case err := <-runErr:
		require.ErrorIs(t, err, ErrEof)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after connection close")
	}
}

func TestDecodeErrorsAreSkippedNotFatal(t *testing.T) {
	clientConn, serverConn := newPipePair(t)

	go func() {
		r := bufio.NewReader(serverConn)
		_, _ = r.ReadString('\n') // PASS
		_, _ = r.ReadString('\n') // NICK
		_, _ = serverConn.Write([]byte("001 helix :Welcome\r\n"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r, err := Connect(ctx, pipeConnector{conn: clientConn}, noCapConfig(), NewLogger("error"))
	require.NoError(t, err)

	privmsgs, unsubscribe := dispatch.Subscribe[message.Privmsg](r.Dispatcher, message.KindPrivmsg)
	defer unsubscribe()

	runErr := make(chan error, 1)
	go func() { runErr <- r.Run(ctx) }()

	// A tag segment with a key-less pair is ErrMalformedTags; decodeLoop
	// must log and skip it rather than treating it as a fatal read error.
	_, _ = serverConn.Write([]byte("@;badges= :someone!someone@someone.trovo.tv PRIVMSG #somechannel :malformed\r\n"))
	_, _ = serverConn.Write([]byte(":someone!someone@someone.trovo.tv PRIVMSG #somechannel :still alive\r\n"))

	select {
	case m := <-privmsgs:
		require.Equal(t, "still alive", m.Data)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dispatch after a malformed frame")
	}

	require.Equal(t, StatusRunning, r.Status())

	_ = serverConn.Close()
	select {
	case err := <-runErr:
		require.ErrorIs(t, err, ErrEof)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after connection close")
	}
}

func TestCloseUnblocksWriterAndClearsDispatcher(t *testing.T) {
	clientConn, serverConn := newPipePair(t)
	defer serverConn.Close()

	go func() {
		r := bufio.NewReader(serverConn)
		_, _ = r.ReadString('\n') // PASS
		_, _ = r.ReadString('\n') // NICK
		_, _ = serverConn.Write([]byte("001 helix :Welcome\r\n"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r, err := Connect(ctx, pipeConnector{conn: clientConn}, noCapConfig(), NewLogger("error"))
	require.NoError(t, err)

	privmsgs, _ := dispatch.Subscribe[message.Privmsg](r.Dispatcher, message.KindPrivmsg)

	require.NoError(t, r.Close())

	_, ok := <-privmsgs
	require.False(t, ok, "subscriptions must be cleared when the Runner closes")

	err = r.Writer.Join(context.Background(), "#somechannel")
	require.ErrorIs(t, err, ErrClientDisconnected)
}

func TestRunSendsKeepaliveThenTimesOutOnIdleConnection(t *testing.T) {
	clientConn, serverConn := newPipePair(t)

	go func() {
		r := bufio.NewReader(serverConn)
		_, _ = r.ReadString('\n') // PASS
		_, _ = r.ReadString('\n') // NICK
		_, _ = serverConn.Write([]byte("001 helix :Welcome\r\n"))
	}()

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer connectCancel()

	cfg := noCapConfig()
	cfg.ReadTimeout = 100 * time.Millisecond
	r, err := Connect(connectCtx, pipeConnector{conn: clientConn}, cfg, NewLogger("error"))
	require.NoError(t, err)

	sawPing := make(chan struct{}, 1)
	go func() {
		br := bufio.NewReader(serverConn)
		for {
			line, err := br.ReadString('\n')
			if err != nil {
				return
			}
			if strings.HasPrefix(line, "PING") {
				select {
				case sawPing <- struct{}{}:
				default:
				}
			}
		}
	}()

	runErr := make(chan error, 1)
	runCtx, runCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer runCancel()
	go func() { runErr <- r.Run(runCtx) }()

	select {
	case <-sawPing:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for keepalive PING")
	}

	select {
	case err := <-runErr:
		require.ErrorIs(t, err, ErrTimeout)
		require.Equal(t, StatusTimeout, r.Status())
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not time out on idle connection")
	}
}
