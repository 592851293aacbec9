package message

import "github.com/trovochat/trovochat/wire"

// Pong is the server's answer to a Ping the client sent (e.g. a liveness
// probe issued by the caller rather than the Runner's auto-reply).
type Pong struct {
	raw   wire.RawMessage
	Token string
}

func (m Pong) Kind() Kind           { return KindPong }
func (m Pong) Raw() wire.RawMessage { return m.raw }

// NewPong projects msg onto Pong. msg.Command must be "PONG".
func NewPong(msg wire.RawMessage) (Pong, error) {
	if err := requireCommand(msg, "PONG"); err != nil {
		return Pong{}, err
	}
	return Pong{raw: msg, Token: msg.Trailing}, nil
}
