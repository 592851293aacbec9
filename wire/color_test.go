package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Color
		wantErr bool
	}{
		{name: "empty defaults to white", in: "", want: DefaultColor},
		{name: "hex", in: "#FF69B4", want: Color{0xFF, 0x69, 0xB4}},
		{name: "hex lowercase", in: "#ff69b4", want: Color{0xFF, 0x69, 0xB4}},
		{name: "named exact", in: "HotPink", want: Color{0xFF, 0x69, 0xB4}},
		{name: "named lower", in: "hotpink", want: Color{0xFF, 0x69, 0xB4}},
		{name: "named snake", in: "hot_pink", want: Color{0xFF, 0x69, 0xB4}},
		{name: "named space", in: "hot pink", want: Color{0xFF, 0x69, 0xB4}},
		{name: "blue", in: "Blue", want: Color{0x00, 0x00, 0xFF}},
		{name: "unrecognized", in: "not-a-color", wantErr: true},
		{name: "bad hex length", in: "#FFF", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				var cp *CannotParseTagError
				assert.ErrorAs(t, err, &cp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#FF69B4", Color{0xFF, 0x69, 0xB4}.String())
}
