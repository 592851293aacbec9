package message

import "github.com/trovochat/trovochat/wire"

// ClearMsg reports a single deleted message (as opposed to ClearChat's
// whole-user purge). Channel is the first arg, Message is the deleted
// text (trailing); login and target-msg-id come from tags.
type ClearMsg struct {
	raw         wire.RawMessage
	Channel     string
	Message     string
	Login       string
	TargetMsgID string
}

func (m ClearMsg) Kind() Kind           { return KindClearMsg }
func (m ClearMsg) Raw() wire.RawMessage { return m.raw }

// NewClearMsg projects msg onto ClearMsg. msg.Command must be "CLEARMSG".
func NewClearMsg(msg wire.RawMessage) (ClearMsg, error) {
	if err := requireCommand(msg, "CLEARMSG"); err != nil {
		return ClearMsg{}, err
	}
	channel, err := requireArg(msg, 0)
	if err != nil {
		return ClearMsg{}, err
	}
	return ClearMsg{
		raw:         msg,
		Channel:     channel,
		Message:     msg.Trailing,
		Login:       optTag(msg, "login"),
		TargetMsgID: optTag(msg, "target-msg-id"),
	}, nil
}
