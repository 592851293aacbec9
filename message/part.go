package message

import "github.com/trovochat/trovochat/wire"

// Part reports a user leaving channel.
type Part struct {
	raw     wire.RawMessage
	Channel string
	Name    string
}

func (m Part) Kind() Kind           { return KindPart }
func (m Part) Raw() wire.RawMessage { return m.raw }

// NewPart projects msg onto Part. msg.Command must be "PART".
func NewPart(msg wire.RawMessage) (Part, error) {
	if err := requireCommand(msg, "PART"); err != nil {
		return Part{}, err
	}
	channel, err := requireArg(msg, 0)
	if err != nil {
		return Part{}, err
	}
	return Part{raw: msg, Channel: channel, Name: msg.Prefix.Nick}, nil
}
