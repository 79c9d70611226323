package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextOptions_Resolve(t *testing.T) {
	st := TextOptions{}.Resolve()
	assert.Equal(t, TextStyle{Alpha: 1}, st)

	st = TextOptions{Emphasis: true, Dim: true, Centered: true}.Resolve()
	assert.Equal(t, AttrBold|AttrDim, st.Attrs)
	assert.Less(t, st.Alpha, 1.0)
	assert.True(t, st.Centered)
}

func TestDrawText_WideRunes(t *testing.T) {
	buf := NewRenderBuffer(10, 1, testBg)
	n := DrawText(buf, 0, 0, "日本x", RGB{255, 255, 255}, TextOptions{}.Resolve())
	assert.Equal(t, 5, n)

	c, _ := buf.Cell(2, 0)
	assert.Equal(t, '本', c.Rune)
	c, _ = buf.Cell(4, 0)
	assert.Equal(t, 'x', c.Rune)
	assert.Equal(t, "日本x\n", buf.PlainText())
}

func TestDrawTextDepth_Occlusion(t *testing.T) {
	buf := NewRenderBuffer(10, 1, testBg)
	buf.Plot(5, 0, 1, ' ', RGB{}, RGB{200, 0, 0}, BlendReplace, 1, AttrNone)

	st := TextOptions{Centered: true}.Resolve()
	n := DrawTextDepth(buf, 5, 0, 3, "abc", RGB{255, 255, 255}, 1, st)
	assert.Equal(t, 2, n, "middle glyph hidden behind nearer surface")
	c, _ := buf.Cell(5, 0)
	assert.Equal(t, ' ', c.Rune)
}
