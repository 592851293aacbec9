package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBadges(t *testing.T) {
	assert.Nil(t, ParseBadges(""))
	assert.Equal(t, []Badge{{Kind: "broadcaster", Data: "1"}, {Kind: "subscriber", Data: "12"}},
		ParseBadges("broadcaster/1,subscriber/12"))
	assert.Equal(t, []Badge{{Kind: "sub-bomb", Data: "unknown-kind"}},
		ParseBadges("sub-bomb/unknown-kind"))
}

func TestParseEmotes(t *testing.T) {
	ranges, err := ParseEmotes("25:0-4,6-10/1902:12-16")
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]EmoteRange{
		{ID: "25", Start: 0, End: 4},
		{ID: "25", Start: 6, End: 10},
		{ID: "1902", Start: 12, End: 16},
	}, ranges)

	ranges, err = ParseEmotes("")
	assert.NoError(err)
	assert.Nil(ranges)

	_, err = ParseEmotes("25:bad-range")
	assert.Error(err)
}
