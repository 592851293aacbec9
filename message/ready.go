package message

import "github.com/trovochat/trovochat/wire"

// Ready marks the end of the server's MOTD burst (numeric 376), the
// conventional point at which the handshake considers the connection
// fully usable.
type Ready struct {
	raw      wire.RawMessage
	Nickname string
}

func (m Ready) Kind() Kind           { return KindReady }
func (m Ready) Raw() wire.RawMessage { return m.raw }

// NewReady projects msg onto Ready. msg.Command must be "376".
func NewReady(msg wire.RawMessage) (Ready, error) {
	if err := requireCommand(msg, "376"); err != nil {
		return Ready{}, err
	}
	nick, err := requireArg(msg, 0)
	if err != nil {
		return Ready{}, err
	}
	return Ready{raw: msg, Nickname: nick}, nil
}
