package message

import "github.com/trovochat/trovochat/wire"

// Whisper is a private message from one user to another, tunneled over
// the #jtv pseudo-channel the same way command.Whisper sends one.
type Whisper struct {
	raw         wire.RawMessage
	Name        string
	Data        string
	DisplayName *string
	Color       wire.Color
	Emotes      []wire.EmoteRange
	UserID      string
	ThreadID    string
}

func (m Whisper) Kind() Kind           { return KindWhisper }
func (m Whisper) Raw() wire.RawMessage { return m.raw }

// NewWhisper projects msg onto Whisper. msg.Command must be "WHISPER".
func NewWhisper(msg wire.RawMessage) (Whisper, error) {
	if err := requireCommand(msg, "WHISPER"); err != nil {
		return Whisper{}, err
	}
	color, err := wire.ParseColor(optTag(msg, "color"))
	if err != nil {
		return Whisper{}, err
	}
	emotes, err := wire.ParseEmotes(optTag(msg, "emotes"))
	if err != nil {
		return Whisper{}, err
	}
	return Whisper{
		raw:         msg,
		Name:        msg.Prefix.Nick,
		Data:        msg.Trailing,
		DisplayName: optTagPtr(msg, "display-name"),
		Color:       color,
		Emotes:      emotes,
		UserID:      optTag(msg, "user-id"),
		ThreadID:    optTag(msg, "thread-id"),
	}, nil
}
