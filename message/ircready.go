package message

import "github.com/trovochat/trovochat/wire"

// IrcReady marks a successfully established IRC connection (numeric 001),
// before capability negotiation has necessarily completed. Grounded on
// original_source/src/ng/messages/irc_ready.rs.
type IrcReady struct {
	raw      wire.RawMessage
	Nickname string
}

func (m IrcReady) Kind() Kind           { return KindIrcReady }
func (m IrcReady) Raw() wire.RawMessage { return m.raw }

// NewIrcReady projects msg onto IrcReady. msg.Command must be "001".
func NewIrcReady(msg wire.RawMessage) (IrcReady, error) {
	if err := requireCommand(msg, "001"); err != nil {
		return IrcReady{}, err
	}
	nick, err := requireArg(msg, 0)
	if err != nil {
		return IrcReady{}, err
	}
	return IrcReady{raw: msg, Nickname: nick}, nil
}
