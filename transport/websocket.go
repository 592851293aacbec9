package transport

import (
	"context"
	"io"

	"golang.org/x/net/websocket"
)

// WebSocket dials one of the ws://.../wss://... endpoints. The
// golang.org/x/net/websocket client predates context-aware dialing, so
// cancellation is only honored up to the point the TCP handshake starts;
// a cancelled ctx after that point relies on the caller closing the
// returned connection.
type WebSocket struct {
	URL    string
	Origin string
}

func (w WebSocket) Connect(ctx context.Context) (io.ReadWriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	conn, err := websocket.Dial(w.URL, "", w.Origin)
	if err != nil {
		return nil, err
	}
	conn.PayloadType = websocket.BinaryFrame
	return conn, nil
}
