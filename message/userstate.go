package message

import (
	"strings"

	"github.com/trovochat/trovochat/wire"
)

// UserState is sent alongside each message the connected user posts (and
// on join), describing their standing in channel.
type UserState struct {
	raw         wire.RawMessage
	Channel     string
	DisplayName *string
	Color       wire.Color
	Badges      []wire.Badge
	EmoteSets   []string
	Mod         bool
}

func (m UserState) Kind() Kind           { return KindUserState }
func (m UserState) Raw() wire.RawMessage { return m.raw }

// NewUserState projects msg onto UserState. msg.Command must be
// "USERSTATE".
func NewUserState(msg wire.RawMessage) (UserState, error) {
	if err := requireCommand(msg, "USERSTATE"); err != nil {
		return UserState{}, err
	}
	channel, err := requireArg(msg, 0)
	if err != nil {
		return UserState{}, err
	}
	color, err := wire.ParseColor(optTag(msg, "color"))
	if err != nil {
		return UserState{}, err
	}
	mod, _ := msg.Tags.Bool("mod")
	us := UserState{
		raw:         msg,
		Channel:     channel,
		DisplayName: optTagPtr(msg, "display-name"),
		Color:       color,
		Badges:      wire.ParseBadges(optTag(msg, "badges")),
		Mod:         mod,
	}
	if v := optTag(msg, "emote-sets"); v != "" {
		us.EmoteSets = strings.Split(v, ",")
	} else {
		us.EmoteSets = []string{"0"}
	}
	return us, nil
}
