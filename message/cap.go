package message

import "github.com/trovochat/trovochat/wire"

// Cap reports the server's response to a capability request: its second
// argument is "ACK" or "NAK", and the trailing segment names the
// capability. Grounded on original_source/src/ng/messages/cap.rs.
type Cap struct {
	raw          wire.RawMessage
	Capability   string
	Acknowledged bool
}

func (m Cap) Kind() Kind           { return KindCap }
func (m Cap) Raw() wire.RawMessage { return m.raw }

// NewCap projects msg onto Cap. msg.Command must be "CAP".
func NewCap(msg wire.RawMessage) (Cap, error) {
	if err := requireCommand(msg, "CAP"); err != nil {
		return Cap{}, err
	}
	if !msg.HasTrail {
		return Cap{}, &wire.ExpectedArgError{Index: -1}
	}
	verb, err := requireArg(msg, 1)
	if err != nil {
		return Cap{}, err
	}
	return Cap{raw: msg, Capability: msg.Trailing, Acknowledged: verb == "ACK"}, nil
}
