package colour

import "math"

// HSL is a derived view of an RGB colour used by the search and generation
// code to adjust perceived brightness and colourfulness. Hue is a fraction
// of the colour wheel in [0, 1); saturation and lightness are in [0, 1].
type HSL struct {
	H float64
	S float64
	L float64
}

// RGBToHSL converts an RGB colour to HSL.
// https://en.wikipedia.org/wiki/HSL_and_HSV#From_RGB
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic: hue and saturation are undefined, use zero.
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h /= 6

	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts an HSL colour back to RGB. Round-tripping through
// RGBToHSL reproduces the original channels within +-1.
func HSLToRGB(c HSL) RGB {
	if c.S == 0 {
		// Achromatic (grey).
		v := roundChannel(c.L)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q

	return RGB{
		R: roundChannel(hueToChannel(p, q, c.H+1.0/3.0)),
		G: roundChannel(hueToChannel(p, q, c.H)),
		B: roundChannel(hueToChannel(p, q, c.H-1.0/3.0)),
	}
}

// hueToChannel resolves one channel of the HSL->RGB conversion.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t >= 1 {
		t -= 1
	}

	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// roundChannel converts a normalised [0,1] channel to an 8-bit value.
func roundChannel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255.0))
}

// clamp01 clamps a value to [0, 1].
func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
