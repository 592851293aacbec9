package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    RawMessage
		wantErr error
	}{
		{
			name: "ping",
			line: "PING :tmi.trovo.tv",
			want: RawMessage{
				Raw:      "PING :tmi.trovo.tv",
				Command:  "PING",
				Trailing: "tmi.trovo.tv",
				HasTrail: true,
			},
		},
		{
			name: "cap ack",
			line: ":tmi.trovo.tv CAP * ACK :trovo.tv/tags",
			want: RawMessage{
				Raw:      ":tmi.trovo.tv CAP * ACK :trovo.tv/tags",
				Prefix:   Prefix{Kind: PrefixServer, Host: "tmi.trovo.tv"},
				Command:  "CAP",
				Params:   []string{"*", "ACK"},
				Trailing: "trovo.tv/tags",
				HasTrail: true,
			},
		},
		{
			name: "clearchat permanent ban",
			line: ":tmi.trovo.tv CLEARCHAT #museun :shakenbot",
			want: RawMessage{
				Raw:      ":tmi.trovo.tv CLEARCHAT #museun :shakenbot",
				Prefix:   Prefix{Kind: PrefixServer, Host: "tmi.trovo.tv"},
				Command:  "CLEARCHAT",
				Params:   []string{"#museun"},
				Trailing: "shakenbot",
				HasTrail: true,
			},
		},
		{
			name:    "empty command",
			line:    ":tmi.trovo.tv",
			wantErr: ErrEmptyCommand,
		},
		{
			name: "tagged privmsg",
			line: "@badge-info=;badges=;color=#FF69B4;display-name=ShakenBot;id=abc :shakenbot!shakenbot@shakenbot.tmi.trovo.tv PRIVMSG #museun :hello world",
			want: RawMessage{
				Command:  "PRIVMSG",
				Prefix:   Prefix{Kind: PrefixUser, Nick: "shakenbot", User: "shakenbot", Host: "shakenbot.tmi.trovo.tv"},
				Params:   []string{"#museun"},
				Trailing: "hello world",
				HasTrail: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeFrame(tt.line)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Command, got.Command)
			assert.Equal(t, tt.want.Params, got.Params)
			assert.Equal(t, tt.want.Trailing, got.Trailing)
			assert.Equal(t, tt.want.HasTrail, got.HasTrail)
			assert.Equal(t, tt.want.Prefix, got.Prefix)
		})
	}
}

func TestDecodeFrameTags(t *testing.T) {
	msg, err := decodeFrame("@badge-info=;badges=;color=#FF69B4;display-name=ShakenBot;emotes=;id=abc;room-id=1;tmi-sent-ts=1580000000000;user-id=42 :shakenbot!shakenbot@shakenbot.tmi.trovo.tv PRIVMSG #museun :hello world")
	require.NoError(t, err)

	color, ok := msg.Tags.Get("color")
	require.True(t, ok)
	assert.Equal(t, "#FF69B4", color)

	name, ok := msg.Tags.Get("display-name")
	require.True(t, ok)
	assert.Equal(t, "ShakenBot", name)

	userID, ok := msg.Tags.Int("user-id")
	require.True(t, ok)
	assert.EqualValues(t, 42, userID)

	_, ok = msg.Tags.Get("nonexistent")
	assert.False(t, ok)
}

func TestDecodeFrameTagsDuplicateKeyLastWins(t *testing.T) {
	tags, err := parseTags("a=1;b=2;a=3")
	require.NoError(t, err)
	v, ok := tags.Get("a")
	require.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestDecodeFrameMalformedTags(t *testing.T) {
	_, err := decodeFrame("@;badges= PRIVMSG #chan :hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTags)
}

func TestDecoderNextIncremental(t *testing.T) {
	d := NewDecoder()
	d.Feed([]byte("PING :tmi"))
	_, ok, err := d.Next()
	require.NoError(t, err)
	assert.False(t, ok)

	d.Feed([]byte(".trovo.tv\r\nPONG :tmi.trovo.tv\r\n"))

	msg, ok, err := d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PING", msg.Command)
	assert.Equal(t, "tmi.trovo.tv", msg.Trailing)

	msg, ok, err = d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PONG", msg.Command)

	_, ok, err = d.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeOneReportsOffset(t *testing.T) {
	buf := []byte("PING :tmi.trovo.tv\r\nPONG :tmi.trovo.tv\r\n")
	n, msg, err := DecodeOne(buf)
	require.NoError(t, err)
	assert.Equal(t, "PING", msg.Command)

	n2, msg2, err := DecodeOne(buf[n:])
	require.NoError(t, err)
	assert.Equal(t, "PONG", msg2.Command)
	assert.Equal(t, len(buf), n+n2)
}

func TestDecodeOneIncomplete(t *testing.T) {
	_, _, err := DecodeOne([]byte("PING :tmi.trovo.tv"))
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestDecodeAllNeverPanics(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("\r\n"),
		[]byte(":\r\n"),
		[]byte("@\r\n"),
		[]byte("@=\r\n"),
		[]byte("PING\r\nPONG :x\r\n garbage no terminator"),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			_ = DecodeAll(in)
		})
	}
}

func TestIntoOwnedCopiesSource(t *testing.T) {
	buf := []byte("PRIVMSG #chan :hi")
	msg, err := decodeFrame(string(buf))
	require.NoError(t, err)
	owned := msg.IntoOwned()

	buf[0] = 'X' // mutate original source
	assert.Equal(t, "PRIVMSG #chan :hi", owned.Raw)
	assert.Equal(t, "PRIVMSG", owned.Command)
}
