package labels

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ContrastLightness is the default lightness contrast, on a 0-100 scale, between text and its background.
const ContrastLightness = 75.0

var phi = (1.0 + math.Sqrt(5.0)) / 2.0

// lightnessWithRatio returns the lightness, on a 0-1 scale, that contrasts with a background of lightness bg.
func lightnessWithRatio(bg, contrast float64) float64 {
	d := math.Pow(2.0, -phi/2.0) * math.Pow(contrast+35.0, phi)
	base := math.Pow(bg*100.0, phi)
	if bg < 0.5 {
		base += d
	} else {
		base -= d
	}
	if base <= 0.0 {
		return 0.0
	}
	return math.Pow(base, 1.0/phi) / 100.0
}

// maxChroma returns the largest chroma not above c for which the color with hue h and lightness l is within the sRGB gamut.
func maxChroma(h, c, l float64) float64 {
	if colorful.Hcl(h, c, l).IsValid() {
		return c
	}
	lo, hi := 0.0, c
	for i := 0; i < 32; i++ {
		mid := (lo + hi) / 2.0
		if colorful.Hcl(h, mid, l).IsValid() {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// ContrastWith returns fg with its lightness moved away from the lightness of bg so that text in that color is readable on bg. On a dark background light colors stay unchanged and vice versa. Hue is kept and chroma is reduced where needed to stay in gamut.
func ContrastWith(fg, bg color.Color) color.Color {
	cfg, _ := colorful.MakeColor(fg)
	cbg, _ := colorful.MakeColor(bg)
	_, _, bgL := cbg.Hcl()
	h, c, l := cfg.Hcl()

	target := lightnessWithRatio(bgL, ContrastLightness)
	if bgL < 0.5 {
		l = math.Max(l, target)
	} else {
		l = math.Min(l, target)
	}
	l = math.Max(0.0, math.Min(1.0, l))
	c = maxChroma(h, c, l)

	r, g, b := colorful.Hcl(h, c, l).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
