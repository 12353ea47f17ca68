package cellart

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// RandomColorConfig controls how per-site colors are picked in palette mode.
// Colors are sampled in HSV space within the configured ranges; the defaults
// give saturated, reasonably bright colors across the whole hue wheel.
type RandomColorConfig struct {
	// Hue range in degrees [0, 360)
	MinHue float64
	MaxHue float64

	// Saturation range [0, 1]
	MinSaturation float64
	MaxSaturation float64

	// Value (brightness) range [0, 1]
	MinValue float64
	MaxValue float64

	rng *rand.Rand
}

// NewRandomColorConfig returns a config with sane defaults seeded by `seed`
func NewRandomColorConfig(seed int64) *RandomColorConfig {
	return &RandomColorConfig{
		MinHue:        0,
		MaxHue:        360,
		MinSaturation: 0.5,
		MaxSaturation: 1.0,
		MinValue:      0.6,
		MaxValue:      1.0,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// SetSeed resets the internal RNG seed
func (c *RandomColorConfig) SetSeed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

// Next returns the next random color
func (c *RandomColorConfig) Next() color.RGBA {
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	h := c.MinHue + c.rng.Float64()*(c.MaxHue-c.MinHue)
	s := c.MinSaturation + c.rng.Float64()*(c.MaxSaturation-c.MinSaturation)
	v := c.MinValue + c.rng.Float64()*(c.MaxValue-c.MinValue)

	r, g, b := colorful.Hsv(h, s, v).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// DefaultGradient returns a reasonable pair of gradient endpoint colors
func DefaultGradient() (color.RGBA, color.RGBA) {
	return colornames.Midnightblue, colornames.Gold
}

// ParseColor resolves an SVG 1.1 color name or a hex string ("#ab12cd")
// into an RGBA color.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unknown color %q: not an SVG name or hex string", s)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
