package message

import (
	"strings"

	"github.com/trovochat/trovochat/wire"
)

// GlobalUserState is sent on successful login when the TAGS capability
// was negotiated. Grounded on
// original_source/src/messages/global_user_state.rs.
type GlobalUserState struct {
	raw         wire.RawMessage
	UserID      string
	DisplayName *string
	Color       wire.Color
}

func (m GlobalUserState) Kind() Kind           { return KindGlobalUserState }
func (m GlobalUserState) Raw() wire.RawMessage { return m.raw }

// EmoteSets returns the available emote set ids from the emote-sets tag,
// or just "0" when the tag is absent or empty.
func (m GlobalUserState) EmoteSets() []string {
	v := optTag(m.raw, "emote-sets")
	if v == "" {
		return []string{"0"}
	}
	return strings.Split(v, ",")
}

// Badges returns the account's badges.
func (m GlobalUserState) Badges() []wire.Badge {
	return wire.ParseBadges(optTag(m.raw, "badges"))
}

// NewGlobalUserState projects msg onto GlobalUserState. msg.Command must
// be "GLOBALUSERSTATE".
func NewGlobalUserState(msg wire.RawMessage) (GlobalUserState, error) {
	if err := requireCommand(msg, "GLOBALUSERSTATE"); err != nil {
		return GlobalUserState{}, err
	}
	userID, err := requireTag(msg, "user-id")
	if err != nil {
		return GlobalUserState{}, err
	}
	color, err := wire.ParseColor(optTag(msg, "color"))
	if err != nil {
		return GlobalUserState{}, err
	}
	return GlobalUserState{
		raw:         msg,
		UserID:      userID,
		DisplayName: optTagPtr(msg, "display-name"),
		Color:       color,
	}, nil
}
