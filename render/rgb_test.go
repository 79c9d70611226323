package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#5D5FEF")
	require.NoError(t, err)
	assert.Equal(t, RGB{0x5D, 0x5F, 0xEF}, c)
	assert.Equal(t, "#5d5fef", c.Hex())

	_, err = ParseHex("blue")
	assert.Error(t, err)
}

func TestToken_Fallback(t *testing.T) {
	fallback := RGB{1, 2, 3}
	assert.Equal(t, RGB{0xEA, 0x2D, 0x2E}, Token("#EA2D2E", fallback))
	assert.Equal(t, fallback, Token("not-a-colour", fallback))
}

func TestLerp_Endpoints(t *testing.T) {
	a, b := RGB{10, 10, 30}, RGB{245, 245, 247}
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))

	mid := Lerp(a, b, 0.5)
	assert.Greater(t, mid.R, a.R)
	assert.Less(t, mid.R, b.R)
}

func TestBlendHelpers(t *testing.T) {
	assert.Equal(t, RGB{255, 255, 255}, Add(RGB{200, 200, 200}, RGB{100, 100, 100}, 1))
	assert.Equal(t, RGB{10, 20, 30}, Screen(RGB{10, 20, 30}, RGB{}, 1))
	assert.Equal(t, RGB{50, 100, 127}, Scale(RGB{100, 200, 255}, 0.5))
}

func TestBridge(t *testing.T) {
	c := RGB{12, 34, 56}
	assert.Equal(t, c, TcellToRGB(RGBToTcell(c), RGB{}))
	assert.Equal(t, testBg, TcellToRGB(tcell.ColorDefault, testBg))
}
