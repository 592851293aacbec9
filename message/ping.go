package message

import "github.com/trovochat/trovochat/wire"

// Ping is a keepalive challenge the Runner must answer with a Pong
// carrying the same token, drawn from the reserved rate-limit allotment
// so backpressure on the main bucket never starves it.
type Ping struct {
	raw   wire.RawMessage
	Token string
}

func (m Ping) Kind() Kind           { return KindPing }
func (m Ping) Raw() wire.RawMessage { return m.raw }

// NewPing projects msg onto Ping. msg.Command must be "PING".
func NewPing(msg wire.RawMessage) (Ping, error) {
	if err := requireCommand(msg, "PING"); err != nil {
		return Ping{}, err
	}
	return Ping{raw: msg, Token: msg.Trailing}, nil
}
