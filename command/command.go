// Package command implements the small Encodable value types the spec's
// Writer renders to bytes and sends (spec 4.3). Every command here is
// grounded on the reference crate's `ng::commands` module
// (original_source/src/ng/commands/*.rs), which defines exactly this
// shape: a borrow-only struct plus a single Encode method.
package command

import (
	"io"
	"strconv"

	"github.com/trovochat/trovochat/wire"
)

// Raw writes s verbatim, appending "\r\n" if absent.
type Raw struct {
	Text string
}

func (c Raw) Encode(w io.Writer) error { return wire.WriteLine(w, c.Text) }

// Ping requests a PONG from the server, carrying token as the trailing
// argument.
type Ping struct {
	Token string
}

func (c Ping) Encode(w io.Writer) error {
	return wire.WriteCommand(w, "PING", nil, c.Token, true)
}

// Pong answers an inbound PING, echoing its token.
type Pong struct {
	Token string
}

func (c Pong) Encode(w io.Writer) error {
	return wire.WriteCommand(w, "PONG", nil, c.Token, true)
}

// Join requests membership in channel.
type Join struct {
	Channel string
}

func (c Join) Encode(w io.Writer) error {
	return wire.WriteCommand(w, "JOIN", []string{c.Channel}, "", false)
}

// Part leaves channel.
type Part struct {
	Channel string
}

func (c Part) Encode(w io.Writer) error {
	return wire.WriteCommand(w, "PART", []string{c.Channel}, "", false)
}

// Privmsg sends text to channel.
type Privmsg struct {
	Channel string
	Text    string
}

func (c Privmsg) Encode(w io.Writer) error {
	return wire.WriteCommand(w, "PRIVMSG", []string{c.Channel}, c.Text, true)
}

// Whisper sends a private message to nick. It is encoded as a PRIVMSG to
// the jtv pseudo-channel carrying a /w command, matching how Trovo-style
// chat servers tunnel whispers over the IRC plumbing.
type Whisper struct {
	Nick string
	Text string
}

func (c Whisper) Encode(w io.Writer) error {
	return wire.WriteCommand(w, "PRIVMSG", []string{"#jtv"}, "/w "+c.Nick+" "+c.Text, true)
}

// Cap requests negotiation of a named capability.
type Cap struct {
	Capability string
}

func (c Cap) Encode(w io.Writer) error {
	return wire.WriteCommand(w, "CAP", []string{"REQ"}, c.Capability, true)
}

// Pass sends the connection's password/oauth token.
type Pass struct {
	Token string
}

func (c Pass) Encode(w io.Writer) error {
	return wire.WriteCommand(w, "PASS", []string{c.Token}, "", false)
}

// Nick assigns the connection's nickname.
type Nick struct {
	Name string
}

func (c Nick) Encode(w io.Writer) error {
	return wire.WriteCommand(w, "NICK", []string{c.Name}, "", false)
}

// itoa is a tiny convenience so moderation.go can avoid importing
// strconv directly in every command literal.
func itoa(n int) string { return strconv.Itoa(n) }
