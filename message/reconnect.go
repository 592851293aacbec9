package message

import "github.com/trovochat/trovochat/wire"

// Reconnect tells the client the server is about to restart and the
// connection should be dropped and re-established. This package only
// projects the event; the spec's Non-goals exclude implementing a
// reconnection policy, so acting on it is left to the caller.
type Reconnect struct {
	raw wire.RawMessage
}

func (m Reconnect) Kind() Kind           { return KindReconnect }
func (m Reconnect) Raw() wire.RawMessage { return m.raw }

// NewReconnect projects msg onto Reconnect. msg.Command must be
// "RECONNECT".
func NewReconnect(msg wire.RawMessage) (Reconnect, error) {
	if err := requireCommand(msg, "RECONNECT"); err != nil {
		return Reconnect{}, err
	}
	return Reconnect{raw: msg}, nil
}
