package render

import (
	"fmt"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit terminal colour
type RGB struct {
	R, G, B uint8
}

var RGBBlack = RGB{0, 0, 0}

// ParseHex resolves a theme token such as "#5D5FEF"
func ParseHex(token string) (RGB, error) {
	c, err := colorful.Hex(token)
	if err != nil {
		return RGB{}, fmt.Errorf("colour token %q: %w", token, err)
	}
	return FromColorful(c), nil
}

var (
	tokenMu    sync.RWMutex
	tokenCache = make(map[string]RGB)
)

// Token resolves a theme token through a shared cache, unknown or malformed tokens yield fallback
func Token(token string, fallback RGB) RGB {
	tokenMu.RLock()
	c, ok := tokenCache[token]
	tokenMu.RUnlock()
	if ok {
		return c
	}

	c, err := ParseHex(token)
	if err != nil {
		return fallback
	}
	tokenMu.Lock()
	tokenCache[token] = c
	tokenMu.Unlock()
	return c
}

// FromColorful clamps a colorful.Color into RGB
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Colorful converts to colorful.Color for perceptual operations
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the "#rrggbb" token
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

func clamp(v float64) uint8 {
	return uint8(min(max(v, 0), 255))
}

// channels applies op to each channel pair, then mixes the result over c by alpha
func channels(c, src RGB, alpha float64, op func(dst, src int) int) RGB {
	if alpha <= 0 {
		return c
	}
	out := RGB{
		R: uint8(op(int(c.R), int(src.R))),
		G: uint8(op(int(c.G), int(src.G))),
		B: uint8(op(int(c.B), int(src.B))),
	}
	if alpha >= 1 {
		return out
	}
	return Blend(c, out, alpha)
}

// Blend is straight alpha compositing of src over c
func Blend(c, src RGB, alpha float64) RGB {
	switch {
	case alpha >= 1:
		return src
	case alpha <= 0:
		return c
	}
	mix := func(d, s uint8) uint8 { return uint8(float64(d) + (float64(s)-float64(d))*alpha) }
	return RGB{mix(c.R, src.R), mix(c.G, src.G), mix(c.B, src.B)}
}

// Add is saturating additive light
func Add(c, src RGB, alpha float64) RGB {
	return channels(c, src, alpha, func(d, s int) int { return min(d+s, 255) })
}

// Screen brightens c by src without ever exceeding white
func Screen(c, src RGB, alpha float64) RGB {
	return channels(c, src, alpha, func(d, s int) int { return 255 - (255-d)*(255-s)/255 })
}

// Scale multiplies all channels by factor, clamped
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp interpolates in CIE-L*a*b* so fades keep perceived hue
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return FromColorful(a.Colorful().BlendLab(b.Colorful(), t))
}
