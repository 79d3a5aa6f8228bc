package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"#000000", ColorBlack},
		{"#ffffff", ColorWhite},
		{"#50c878", RGB(80, 200, 120)},
		{"50C878", RGB(80, 200, 120)},
		{"  #50c878 ", RGB(80, 200, 120)},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseHex(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c)
		})
	}
}

func TestParseHexRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := ParseHex(in)
		assert.Error(t, err, "ParseHex(%q)", in)
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := RGB(80, 200, 120)
	assert.Equal(t, "#50c878", c.Hex())

	parsed, err := ParseHex(c.Hex())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestParseColorNames(t *testing.T) {
	c, err := ParseColor("SeaGreen")
	require.NoError(t, err)
	assert.Equal(t, RGB(46, 139, 87), c)

	c, err = ParseColor("#50c878")
	require.NoError(t, err)
	assert.Equal(t, RGB(80, 200, 120), c)

	_, err = ParseColor("not-a-colour")
	assert.Error(t, err)
}
