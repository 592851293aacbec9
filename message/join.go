package message

import "github.com/trovochat/trovochat/wire"

// Join reports a user joining channel.
type Join struct {
	raw     wire.RawMessage
	Channel string
	Name    string
}

func (m Join) Kind() Kind           { return KindJoin }
func (m Join) Raw() wire.RawMessage { return m.raw }

// NewJoin projects msg onto Join. msg.Command must be "JOIN".
func NewJoin(msg wire.RawMessage) (Join, error) {
	if err := requireCommand(msg, "JOIN"); err != nil {
		return Join{}, err
	}
	channel, err := requireArg(msg, 0)
	if err != nil {
		return Join{}, err
	}
	return Join{raw: msg, Channel: channel, Name: msg.Prefix.Nick}, nil
}
