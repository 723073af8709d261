// internal/models/color_test.go

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#336699")
	require.NoError(t, err)
	assert.Equal(t, "#336699", c.Hex())

	c, err = ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", c.Hex())

	_, err = ParseColor("not-a-color")
	assert.Error(t, err)
}

func TestLegacyRGBRoundTrip(t *testing.T) {
	tests := []struct {
		hex    string
		legacy string
	}{
		// Signed 32-bit ARGB values as the legacy tool writes them.
		{"#000000", "-16777216"},
		{"#ffffff", "-1"},
		{"#ff0000", "-65536"},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c := MustParseColor(tt.hex)
			assert.Equal(t, tt.legacy, c.LegacyRGB())
			assert.Equal(t, tt.hex, ParseLegacyRGB(tt.legacy).Hex())
		})
	}
}

func TestLegacyRGBFallback(t *testing.T) {
	assert.Equal(t, "#000000", ParseLegacyRGB("garbage").Hex())
}

func TestColorRenderEncodings(t *testing.T) {
	c := MustParseColor("#ffffff")
	assert.Equal(t, "rgb:ff/ff/ff", c.XTermSpec())
	assert.Equal(t, "{65535, 65535, 65535}", c.AppleScriptTriple())

	c = MustParseColor("#000000")
	assert.Equal(t, "rgb:00/00/00", c.XTermSpec())
	assert.Equal(t, "{0, 0, 0}", c.AppleScriptTriple())
}
