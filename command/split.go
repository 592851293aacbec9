package command

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// maxMessageRunes is the practical column budget a single PRIVMSG/Whisper
// body is wrapped to before the Writer's say/reply helpers split it
// across multiple outbound frames.
const maxMessageRunes = 450

// SplitMessage wraps text at maxMessageRunes columns using go-wordwrap
// (reused here from the teacher's cmd/config_generator, which wraps
// generated config descriptions the same way) and returns one chunk per
// line, so long PRIVMSG/Whisper bodies don't get silently truncated by a
// server-side line-length limit.
func SplitMessage(text string) []string {
	wrapped := wordwrap.WrapString(text, maxMessageRunes)
	lines := strings.Split(wrapped, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		// wordwrap leaves a single word longer than the limit intact, so
		// cut such lines into maxMessageRunes-sized pieces.
		r := []rune(l)
		for len(r) > maxMessageRunes {
			out = append(out, string(r[:maxMessageRunes]))
			r = r[maxMessageRunes:]
		}
		l = string(r)
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}
