package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds hex colour tokens supplied by the page theme
type Theme struct {
	Background string `yaml:"background"`
	Primary    string `yaml:"primary"`
	Light      string `yaml:"light"`
	Gray       string `yaml:"gray"`
	CupBlue    string `yaml:"cup_blue"`
	CupRed     string `yaml:"cup_red"`
	Steam      string `yaml:"steam"`
	Star       string `yaml:"star"`
}

// Validate checks every token parses as a hex colour
func (t Theme) Validate() error {
	tokens := map[string]string{
		"background": t.Background,
		"primary":    t.Primary,
		"light":      t.Light,
		"gray":       t.Gray,
		"cup_blue":   t.CupBlue,
		"cup_red":    t.CupRed,
		"steam":      t.Steam,
		"star":       t.Star,
	}
	for name, v := range tokens {
		if err := validateToken(v); err != nil {
			return fmt.Errorf("theme.%s: %w", name, err)
		}
	}
	return nil
}

func validateToken(s string) error {
	if _, err := colorful.Hex(s); err != nil {
		return fmt.Errorf("%w: colour %q: %w", ErrInvalid, s, err)
	}
	return nil
}
