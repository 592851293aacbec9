package message

import "github.com/trovochat/trovochat/wire"

// Mode reports a channel mode change, e.g. a user gaining or losing
// moderator status ("+o"/"-o").
type Mode struct {
	raw     wire.RawMessage
	Channel string
	Modes   string
	Name    string
}

func (m Mode) Kind() Kind           { return KindMode }
func (m Mode) Raw() wire.RawMessage { return m.raw }

// NewMode projects msg onto Mode. msg.Command must be "MODE".
func NewMode(msg wire.RawMessage) (Mode, error) {
	if err := requireCommand(msg, "MODE"); err != nil {
		return Mode{}, err
	}
	channel, err := requireArg(msg, 0)
	if err != nil {
		return Mode{}, err
	}
	modes, err := requireArg(msg, 1)
	if err != nil {
		return Mode{}, err
	}
	name, _ := msg.Arg(2)
	return Mode{raw: msg, Channel: channel, Modes: modes, Name: name}, nil
}
