package message

import "github.com/trovochat/trovochat/wire"

// ClearChat reports a purge of a user's messages, typically after a ban
// or timeout. Name is absent when the whole channel's history was
// cleared. Grounded on original_source/src/ng/messages/clear_chat.rs.
type ClearChat struct {
	raw         wire.RawMessage
	Channel     string
	Name        *string
	BanDuration *int64
}

func (m ClearChat) Kind() Kind           { return KindClearChat }
func (m ClearChat) Raw() wire.RawMessage { return m.raw }

// NewClearChat projects msg onto ClearChat. msg.Command must be
// "CLEARCHAT".
func NewClearChat(msg wire.RawMessage) (ClearChat, error) {
	if err := requireCommand(msg, "CLEARCHAT"); err != nil {
		return ClearChat{}, err
	}
	channel, err := requireArg(msg, 0)
	if err != nil {
		return ClearChat{}, err
	}
	cc := ClearChat{raw: msg, Channel: channel}
	if msg.HasTrail {
		name := msg.Trailing
		cc.Name = &name
	}
	if dur, ok := msg.Tags.Int("ban-duration"); ok {
		cc.BanDuration = &dur
	}
	return cc, nil
}
