package colour

import "math"

// Generator tuning. Hues are fractions of the colour wheel in [0, 1).
const (
	// Hue bands that collapse under red-green colour-vision deficiencies,
	// and the canonical hues they are nudged to.
	ambiguousRedLow    = 0.0
	ambiguousRedHigh   = 0.17
	canonicalRedHue    = 0.05
	ambiguousGreenLow  = 0.25
	ambiguousGreenHigh = 0.42
	canonicalGreenHue  = 0.33

	// Saturation floor applied when colour-blind friendliness is requested.
	minFriendlySaturation = 0.7

	// Lightness extremes for high-contrast generation.
	maxLightnessOnLight = 0.3
	minLightnessOnDark  = 0.7

	// Minimum pairwise ratio before two palette colours are considered
	// distinct, and the lightness shift applied to resolve a collision.
	distinctionRatio     = 2.0
	distinctionLightness = 0.2
)

// GenerateAccessiblePalette derives an accessible palette from a set of base
// colours. The result has the same length and order as baseColours; every
// stage only adjusts hue, saturation, or lightness of individual colours.
//
// Pipeline:
//  1. each base colour runs through the contrast improvement search
//     against the background;
//  2. if colour-blind friendliness is requested, hues in the ambiguous red
//     and green bands are nudged to canonical positions and saturation is
//     floored so hue differences survive the deficiency transforms;
//  3. if high contrast is requested, lightness is pushed to the extreme
//     away from the background;
//  4. a distinctiveness pass separates near-identical pairs.
func GenerateAccessiblePalette(baseColours []RGB, background RGB, req Requirements) []RGB {
	colours := make([]RGB, len(baseColours))
	for i, c := range baseColours {
		colours[i] = ImproveContrast(c, background)
	}

	if req.ColourBlindFriendly {
		for i, c := range colours {
			colours[i] = nudgeForColourBlindness(c)
		}
	}

	if req.HighContrast {
		lightBackground := Luminance(background) > 0.5
		for i, c := range colours {
			colours[i] = pushLightnessExtreme(c, lightBackground)
		}
	}

	return EnsureColourDistinction(colours)
}

// nudgeForColourBlindness moves hues out of the bands that collapse under
// red-green deficiencies and floors saturation for perceptual separation.
func nudgeForColourBlindness(c RGB) RGB {
	hsl := RGBToHSL(c)

	if hsl.H >= ambiguousRedLow && hsl.H <= ambiguousRedHigh {
		hsl.H = canonicalRedHue
	} else if hsl.H >= ambiguousGreenLow && hsl.H <= ambiguousGreenHigh {
		hsl.H = canonicalGreenHue
	}

	hsl.S = math.Max(hsl.S, minFriendlySaturation)

	return HSLToRGB(hsl)
}

// pushLightnessExtreme forces a colour's lightness away from the background:
// dark colours on light backgrounds, light colours on dark backgrounds.
func pushLightnessExtreme(c RGB, lightBackground bool) RGB {
	hsl := RGBToHSL(c)

	if lightBackground {
		hsl.L = math.Min(hsl.L, maxLightnessOnLight)
	} else {
		hsl.L = math.Max(hsl.L, minLightnessOnDark)
	}

	return HSLToRGB(hsl)
}

// EnsureColourDistinction separates palette colours that are too similar to
// tell apart. For every ordered pair with a mutual contrast ratio below 2.0
// the second colour's lightness is shifted by 0.2 (light colours darken,
// dark colours lighten) and the pass moves on.
//
// This is a single forward pass, not a fixed-point iteration: a later
// adjustment can reintroduce a collision with an earlier pair, and the pass
// does not re-check resolved pairs. Callers needing a hard guarantee must
// re-verify pairwise ratios on the result.
func EnsureColourDistinction(colours []RGB) []RGB {
	adjusted := make([]RGB, len(colours))
	copy(adjusted, colours)

	for i := 0; i < len(adjusted); i++ {
		for j := i + 1; j < len(adjusted); j++ {
			if ContrastRatio(adjusted[i], adjusted[j]) >= distinctionRatio {
				continue
			}

			hsl := RGBToHSL(adjusted[j])
			if hsl.L > 0.5 {
				hsl.L = clamp01(hsl.L - distinctionLightness)
			} else {
				hsl.L = clamp01(hsl.L + distinctionLightness)
			}
			adjusted[j] = HSLToRGB(hsl)
		}
	}

	return adjusted
}
