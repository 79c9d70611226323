package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBg = RGB{10, 10, 30}

func TestRenderBuffer_DepthTest(t *testing.T) {
	buf := NewRenderBuffer(4, 2, testBg)
	red, blue := RGB{255, 0, 0}, RGB{0, 0, 255}

	assert.True(t, buf.Plot(1, 1, 5, 'a', red, red, BlendReplace, 1, AttrNone))
	assert.False(t, buf.Plot(1, 1, 7, 'b', blue, blue, BlendReplace, 1, AttrNone), "farther write rejected")
	assert.True(t, buf.Plot(1, 1, 2, 'c', blue, blue, BlendReplace, 1, AttrNone))

	c, ok := buf.Cell(1, 1)
	require.True(t, ok)
	assert.Equal(t, 'c', c.Rune)
	assert.Equal(t, blue, c.Bg)
	assert.Equal(t, 2.0, buf.Depth(1, 1))

	assert.False(t, buf.Plot(-1, 0, 0, 'x', red, red, BlendReplace, 1, AttrNone))
	assert.False(t, buf.Plot(4, 0, 0, 'x', red, red, BlendReplace, 1, AttrNone))
}

func TestRenderBuffer_ClearAndResize(t *testing.T) {
	buf := NewRenderBuffer(3, 3, testBg)
	buf.Plot(0, 0, 1, 'x', RGB{1, 2, 3}, RGB{1, 2, 3}, BlendReplace, 1, AttrBold)
	buf.Clear()

	c, _ := buf.Cell(0, 0)
	assert.Equal(t, Cell{Fg: testBg, Bg: testBg}, c)
	assert.True(t, math.IsInf(buf.Depth(0, 0), 1))

	buf.Resize(10, 1)
	assert.Equal(t, 10, buf.Width())
	assert.Equal(t, 1, buf.Height())
	_, ok := buf.Cell(9, 0)
	assert.True(t, ok)
	_, ok = buf.Cell(0, 1)
	assert.False(t, ok)
}

func TestRenderBuffer_BlendModes(t *testing.T) {
	buf := NewRenderBuffer(1, 1, RGB{})
	buf.Set(0, 0, 0, RGB{}, RGB{200, 100, 0}, BlendReplace, 1, AttrNone)
	buf.Set(0, 0, 0, RGB{}, RGB{0, 100, 200}, BlendAlphaBg, 0.5, AttrNone)
	c, _ := buf.Cell(0, 0)
	assert.Equal(t, RGB{100, 100, 100}, c.Bg)

	buf.Set(0, 0, 'z', RGB{250, 0, 0}, RGB{}, BlendFgOnly, 1, AttrNone)
	c, _ = buf.Cell(0, 0)
	assert.Equal(t, 'z', c.Rune)
	assert.Equal(t, RGB{250, 0, 0}, c.Fg)
	assert.Equal(t, RGB{100, 100, 100}, c.Bg, "fg-only keeps background")
}

func TestRenderBuffer_PlainText(t *testing.T) {
	buf := NewRenderBuffer(8, 3, testBg)
	DrawText(buf, 4, 1, "ok", RGB{255, 255, 255}, TextOptions{Centered: true}.Resolve())
	assert.Equal(t, "\n   ok\n", buf.PlainText())
}

func TestRenderBuffer_FlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(6, 2)

	buf := NewRenderBuffer(6, 2, testBg)
	fg := RGB{245, 245, 247}
	DrawText(buf, 0, 0, "cup", fg, TextOptions{Emphasis: true}.Resolve())
	buf.FlushToScreen(screen)

	r, _, style, _ := screen.GetContent(1, 0)
	assert.Equal(t, 'u', r)
	gotFg, gotBg, attrs := style.Decompose()
	assert.Equal(t, RGBToTcell(fg), gotFg)
	assert.Equal(t, RGBToTcell(testBg), gotBg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	r, _, _, _ = screen.GetContent(5, 1)
	assert.Equal(t, ' ', r)
}
