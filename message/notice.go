package message

import "github.com/trovochat/trovochat/wire"

// Notice carries a server-generated informational or error message, keyed
// by the optional msg-id tag (e.g. "msg_banned", "bad_auth"). Channel is
// "*" for connection-scoped notices.
type Notice struct {
	raw     wire.RawMessage
	Channel string
	Text    string
	MsgID   string
}

func (m Notice) Kind() Kind           { return KindNotice }
func (m Notice) Raw() wire.RawMessage { return m.raw }

// NewNotice projects msg onto Notice. msg.Command must be "NOTICE".
func NewNotice(msg wire.RawMessage) (Notice, error) {
	if err := requireCommand(msg, "NOTICE"); err != nil {
		return Notice{}, err
	}
	channel, err := requireArg(msg, 0)
	if err != nil {
		return Notice{}, err
	}
	return Notice{raw: msg, Channel: channel, Text: msg.Trailing, MsgID: optTag(msg, "msg-id")}, nil
}
