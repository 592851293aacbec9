package message

import (
	"strings"

	"github.com/trovochat/trovochat/wire"
)

const actionPrefix = "\x01ACTION "
const actionSuffix = "\x01"

// Privmsg is a regular chat message. Grounded on spec 4.2's field list:
// channel is the first arg, name is the sender's prefix nick, data is the
// trailing text (with any CTCP ACTION wrapper stripped), and the rest
// come from tags.
type Privmsg struct {
	raw         wire.RawMessage
	Channel     string
	Name        string
	Data        string
	IsAction    bool
	Badges      []wire.Badge
	BadgeInfo   []wire.Badge
	Color       wire.Color
	DisplayName *string
	Emotes      []wire.EmoteRange
	ID          string
	RoomID      string
	UserID      string
	Bits        int64
	CeModerator bool
}

func (m Privmsg) Kind() Kind           { return KindPrivmsg }
func (m Privmsg) Raw() wire.RawMessage { return m.raw }

// NewPrivmsg projects msg onto Privmsg. msg.Command must be "PRIVMSG".
func NewPrivmsg(msg wire.RawMessage) (Privmsg, error) {
	if err := requireCommand(msg, "PRIVMSG"); err != nil {
		return Privmsg{}, err
	}
	channel, err := requireArg(msg, 0)
	if err != nil {
		return Privmsg{}, err
	}
	color, err := wire.ParseColor(optTag(msg, "color"))
	if err != nil {
		return Privmsg{}, err
	}
	emotes, err := wire.ParseEmotes(optTag(msg, "emotes"))
	if err != nil {
		return Privmsg{}, err
	}

	data := msg.Trailing
	isAction := strings.HasPrefix(data, actionPrefix) && strings.HasSuffix(data, actionSuffix)
	if isAction {
		data = strings.TrimSuffix(strings.TrimPrefix(data, actionPrefix), actionSuffix)
	}

	bits, _ := msg.Tags.Int("bits")
	ceMod, _ := msg.Tags.Bool("ce-moderator")

	return Privmsg{
		raw:         msg,
		Channel:     channel,
		Name:        msg.Prefix.Nick,
		Data:        data,
		IsAction:    isAction,
		Badges:      wire.ParseBadges(optTag(msg, "badges")),
		BadgeInfo:   wire.ParseBadges(optTag(msg, "badge-info")),
		Color:       color,
		DisplayName: optTagPtr(msg, "display-name"),
		Emotes:      emotes,
		ID:          optTag(msg, "id"),
		RoomID:      optTag(msg, "room-id"),
		UserID:      optTag(msg, "user-id"),
		Bits:        bits,
		CeModerator: ceMod,
	}, nil
}
