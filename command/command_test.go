package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trovochat/trovochat/wire"
)

func encode(t *testing.T, c wire.Encodable) string {
	t.Helper()
	b, err := wire.EncodeToBytes(c)
	require.NoError(t, err)
	return string(b)
}

func TestBasicCommands(t *testing.T) {
	assert.Equal(t, "PING :tmi.trovo.tv\r\n", encode(t, Ping{Token: "tmi.trovo.tv"}))
	assert.Equal(t, "PONG :tmi.trovo.tv\r\n", encode(t, Pong{Token: "tmi.trovo.tv"}))
	assert.Equal(t, "JOIN #museun\r\n", encode(t, Join{Channel: "#museun"}))
	assert.Equal(t, "PART #museun\r\n", encode(t, Part{Channel: "#museun"}))
	assert.Equal(t, "PRIVMSG #museun :hello world\r\n", encode(t, Privmsg{Channel: "#museun", Text: "hello world"}))
}

func TestRawAppendsTerminatorOnlyWhenMissing(t *testing.T) {
	assert.Equal(t, "PING :x\r\n", encode(t, Raw{Text: "PING :x"}))
	assert.Equal(t, "PING :x\r\n", encode(t, Raw{Text: "PING :x\r\n"}))
}

func TestModerationCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  wire.Encodable
		want string
	}{
		{"slow with duration", Slow("#museun", 42), "PRIVMSG #museun :/slow 42\r\n"},
		{"slow default duration", Slow("#museun", 0), "PRIVMSG #museun :/slow 120\r\n"},
		{"raid", Raid("#museun", "#museun"), "PRIVMSG #museun :/raid #museun\r\n"},
		{"ban", Ban("#museun", "baduser"), "PRIVMSG #museun :/ban baduser\r\n"},
		{"timeout", Timeout("#museun", "baduser", 600), "PRIVMSG #museun :/timeout baduser 600\r\n"},
		{"vips", VIPs("#museun"), "PRIVMSG #museun :/vips\r\n"},
		{"followers no minutes", FollowersOnly("#museun", 0), "PRIVMSG #museun :/followers\r\n"},
		{"followers with minutes", FollowersOnly("#museun", 30), "PRIVMSG #museun :/followers 30\r\n"},
		{"clear", Clear("#museun"), "PRIVMSG #museun :/clear\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encode(t, tt.cmd))
		})
	}
}

func TestSplitMessageWrapsLongText(t *testing.T) {
	long := strings.Repeat("a", 1000)
	chunks := SplitMessage(long)
	assert.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), maxMessageRunes)
	}
}

func TestSplitMessageShortTextIsOneChunk(t *testing.T) {
	chunks := SplitMessage("hello world")
	assert.Equal(t, []string{"hello world"}, chunks)
}
