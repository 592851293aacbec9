package message

import (
	"strings"

	"github.com/trovochat/trovochat/wire"
)

// Names projects either half of the NAMES reply pair: numeric 353 carries
// a page of the member list, numeric 366 terminates it. Callers that want
// the full roster must coalesce successive Names values for a channel
// until one arrives with End set, per spec 4.2.
type Names struct {
	raw     wire.RawMessage
	Channel string
	Users   []string
	End     bool
}

func (m Names) Kind() Kind           { return KindNames }
func (m Names) Raw() wire.RawMessage { return m.raw }

// NewNames projects msg onto Names. msg.Command must be "353" or "366".
func NewNames(msg wire.RawMessage) (Names, error) {
	if err := requireAnyCommand(msg, "353", "366"); err != nil {
		return Names{}, err
	}
	if msg.Command == "366" {
		channel, err := requireArg(msg, 1)
		if err != nil {
			return Names{}, err
		}
		return Names{raw: msg, Channel: channel, End: true}, nil
	}
	channel, err := requireArg(msg, 2)
	if err != nil {
		return Names{}, err
	}
	var users []string
	if msg.HasTrail && msg.Trailing != "" {
		users = strings.Fields(msg.Trailing)
	}
	return Names{raw: msg, Channel: channel, Users: users}, nil
}
