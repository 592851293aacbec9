package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// EmoteRange is one inclusive half-open character range an emote ID
// occupies in the message text, from the `id:a-b,c-d/id:e-f` tag shape.
type EmoteRange struct {
	ID    string
	Start int
	End   int
}

// ParseEmotes parses the emotes tag value into its ranges. An empty
// string yields no emotes.
func ParseEmotes(s string) ([]EmoteRange, error) {
	if s == "" {
		return nil, nil
	}
	var out []EmoteRange
	for _, group := range strings.Split(s, "/") {
		if group == "" {
			continue
		}
		id, ranges, ok := strings.Cut(group, ":")
		if !ok {
			return nil, &CannotParseTagError{Tag: "emotes", Value: s, Inner: fmt.Errorf("missing ':' in group %q", group)}
		}
		for _, r := range strings.Split(ranges, ",") {
			if r == "" {
				continue
			}
			startStr, endStr, ok := strings.Cut(r, "-")
			if !ok {
				return nil, &CannotParseTagError{Tag: "emotes", Value: s, Inner: fmt.Errorf("missing '-' in range %q", r)}
			}
			start, err := strconv.Atoi(startStr)
			if err != nil {
				return nil, &CannotParseTagError{Tag: "emotes", Value: s, Inner: err}
			}
			end, err := strconv.Atoi(endStr)
			if err != nil {
				return nil, &CannotParseTagError{Tag: "emotes", Value: s, Inner: err}
			}
			out = append(out, EmoteRange{ID: id, Start: start, End: end})
		}
	}
	return out, nil
}
