package wire

import "strings"

// PrefixKind distinguishes the two shapes a message prefix can take.
type PrefixKind uint8

const (
	// PrefixNone means the frame carried no `:prefix ` segment.
	PrefixNone PrefixKind = iota
	// PrefixServer is a bare `:host` prefix.
	PrefixServer
	// PrefixUser is a `:nick!user@host` prefix.
	PrefixUser
)

// Prefix is the origin of a message: either a server hostname or a
// nick!user@host triplet.
type Prefix struct {
	Kind PrefixKind
	Host string // server{host}.Host, or user{...}.Host
	Nick string // user{...}.Nick
	User string // user{...}.User
}

// parsePrefix splits a prefix token (without the leading ':') into its
// server or user shape. A prefix containing '!' is user{nick!user@host};
// otherwise it is server{host}.
func parsePrefix(tok string) Prefix {
	bang := strings.IndexByte(tok, '!')
	if bang < 0 {
		return Prefix{Kind: PrefixServer, Host: tok}
	}
	nick := tok[:bang]
	rest := tok[bang+1:]
	user, host, _ := strings.Cut(rest, "@")
	return Prefix{Kind: PrefixUser, Nick: nick, User: user, Host: host}
}
