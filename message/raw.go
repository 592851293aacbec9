package message

import "github.com/trovochat/trovochat/wire"

// Raw wraps any decoded frame that did not project onto a more specific
// variant, plus the identity wrapper every frame also receives alongside
// its primary variant (spec 4.1 step 1 / the reference crate's catch-all
// dispatch arm, which always feeds both IrcMessage and AllCommands).
type Raw struct {
	raw wire.RawMessage
}

func NewRaw(m wire.RawMessage) Raw { return Raw{raw: m} }

func (r Raw) Kind() Kind              { return KindRaw }
func (r Raw) Raw() wire.RawMessage    { return r.raw }
func (r Raw) Command() string         { return r.raw.Command }
func (r Raw) Tags() wire.Tags         { return r.raw.Tags }
func (r Raw) Params() []string        { return r.raw.Params }
func (r Raw) Trailing() (string, bool) { return r.raw.Trailing, r.raw.HasTrail }
