package message

import (
	"strconv"
	"strings"

	"github.com/trovochat/trovochat/wire"
)

// HostTarget reports a channel starting or stopping a host of another
// channel. The wire command itself is misspelled on some servers
// ("HOSTARGET"); this variant accepts both.
//
// The trailing segment is "<target> [<viewers>]" when hosting starts, or
// "-" when it stops.
type HostTarget struct {
	raw      wire.RawMessage
	Source   string
	Target   *string
	Viewers  *int64
}

func (m HostTarget) Kind() Kind           { return KindHostTarget }
func (m HostTarget) Raw() wire.RawMessage { return m.raw }

// NewHostTarget projects msg onto HostTarget.
func NewHostTarget(msg wire.RawMessage) (HostTarget, error) {
	if err := requireAnyCommand(msg, "HOSTTARGET", "HOSTARGET"); err != nil {
		return HostTarget{}, err
	}
	source, err := requireArg(msg, 0)
	if err != nil {
		return HostTarget{}, err
	}
	h := HostTarget{raw: msg, Source: source}
	if !msg.HasTrail {
		return h, nil
	}
	fields := strings.Fields(msg.Trailing)
	if len(fields) == 0 || fields[0] == "-" {
		return h, nil
	}
	target := fields[0]
	h.Target = &target
	if len(fields) > 1 {
		if n, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
			h.Viewers = &n
		}
	}
	return h, nil
}
