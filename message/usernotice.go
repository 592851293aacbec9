package message

import "github.com/trovochat/trovochat/wire"

// UserNotice reports a channel event the server announces on the
// recipient's behalf: subscriptions, resubs, raids, gifted subs and the
// like, distinguished by the msg-id tag. SystemMsg is the server's
// human-readable rendering; Message is the optional user-supplied
// accompanying text (trailing).
type UserNotice struct {
	raw       wire.RawMessage
	Channel   string
	Message   *string
	MsgID     string
	SystemMsg string
	Login     string
	Color     wire.Color
	Badges    []wire.Badge
	Emotes    []wire.EmoteRange
}

func (m UserNotice) Kind() Kind           { return KindUserNotice }
func (m UserNotice) Raw() wire.RawMessage { return m.raw }

// NewUserNotice projects msg onto UserNotice. msg.Command must be
// "USERNOTICE".
func NewUserNotice(msg wire.RawMessage) (UserNotice, error) {
	if err := requireCommand(msg, "USERNOTICE"); err != nil {
		return UserNotice{}, err
	}
	channel, err := requireArg(msg, 0)
	if err != nil {
		return UserNotice{}, err
	}
	color, err := wire.ParseColor(optTag(msg, "color"))
	if err != nil {
		return UserNotice{}, err
	}
	emotes, err := wire.ParseEmotes(optTag(msg, "emotes"))
	if err != nil {
		return UserNotice{}, err
	}
	un := UserNotice{
		raw:       msg,
		Channel:   channel,
		MsgID:     optTag(msg, "msg-id"),
		SystemMsg: optTag(msg, "system-msg"),
		Login:     optTag(msg, "login"),
		Color:     color,
		Badges:    wire.ParseBadges(optTag(msg, "badges")),
		Emotes:    emotes,
	}
	if msg.HasTrail {
		text := msg.Trailing
		un.Message = &text
	}
	return un, nil
}
