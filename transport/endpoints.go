// Package transport supplies the Connector implementations the client's
// Runner dials through: plain TCP, TLS, and WebSocket, plus the
// well-known Trovo endpoints and the anonymous read-only login, all
// transcribed from original_source/src/lib.rs's top-level constants.
package transport

// Well-known Trovo chat endpoints.
const (
	IRCAddress       = "irc.chat.trovo.tv:6667"
	IRCAddressTLS    = "irc.chat.trovo.tv:6697"
	WebSocketAddress = "ws://irc-ws.chat.trovo.tv:80"
	WebSocketAddressTLS = "wss://irc-ws.chat.trovo.tv:443"

	// TLSDomain is the bare hostname behind IRCAddress and IRCAddressTLS
	// (the WebSocket addresses use irc-ws.chat.trovo.tv), for
	// callers that construct their own tls.Config (e.g. to set
	// ServerName explicitly) rather than dialing IRCAddressTLS directly.
	TLSDomain = "irc.chat.trovo.tv"
)

// AnonymousNick and AnonymousToken form a read-only login: channels can
// be joined and messages observed, but the server rejects anything sent
// under this identity.
const (
	AnonymousNick  = "justinfan1234"
	AnonymousToken = "justinfan1234"
)
