package message

import "github.com/trovochat/trovochat/wire"

// RoomState reports a channel's current settings. Every field is
// optional: the server only sends the tags that changed, except on the
// initial join burst where all of them are present.
type RoomState struct {
	raw            wire.RawMessage
	Channel        string
	BroadcasterLang *string
	EmoteOnly      *bool
	FollowersOnly  *int64
	R9K            *bool
	Slow           *int64
	SubsOnly       *bool
}

func (m RoomState) Kind() Kind           { return KindRoomState }
func (m RoomState) Raw() wire.RawMessage { return m.raw }

// NewRoomState projects msg onto RoomState. msg.Command must be
// "ROOMSTATE".
func NewRoomState(msg wire.RawMessage) (RoomState, error) {
	if err := requireCommand(msg, "ROOMSTATE"); err != nil {
		return RoomState{}, err
	}
	channel, err := requireArg(msg, 0)
	if err != nil {
		return RoomState{}, err
	}
	rs := RoomState{raw: msg, Channel: channel}
	rs.BroadcasterLang = optTagPtr(msg, "broadcaster-lang")
	if b, ok := msg.Tags.Bool("emote-only"); ok {
		rs.EmoteOnly = &b
	}
	if n, ok := msg.Tags.Int("followers-only"); ok {
		rs.FollowersOnly = &n
	}
	if b, ok := msg.Tags.Bool("r9k"); ok {
		rs.R9K = &b
	}
	if n, ok := msg.Tags.Int("slow"); ok {
		rs.Slow = &n
	}
	if b, ok := msg.Tags.Bool("subs-only"); ok {
		rs.SubsOnly = &b
	}
	return rs, nil
}
