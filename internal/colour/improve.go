package colour

import "fmt"

// Improvement search bounds. The search walks lightness in fixed steps in
// each direction, so a single call costs at most 40 luminance evaluations.
const (
	improveMaxSteps = 20
	improveStepSize = 0.05
)

// Recommendation describes the outcome of a contrast improvement search for
// a single colour. ContrastImprovement may be zero (already compliant, or no
// better variant found within the search bounds).
type Recommendation struct {
	Original            RGB     `json:"original"`
	Recommended         RGB     `json:"recommended"`
	Reason              string  `json:"reason"`
	ContrastImprovement float64 `json:"contrast_improvement"`
}

// ImproveContrast searches near the given colour for a variant with a higher
// contrast ratio against the background, targeting the normal-text AA ratio
// (4.5:1). The result never has a lower ratio than the input.
//
// The search is a bounded local hill-climb over lightness: against a light
// background it tries darkening first, against a dark background lightening
// first, stepping 5% lightness at a time for up to 20 steps per direction.
// It stops at the first candidate that both improves on the best ratio seen
// and meets the AA target. If no candidate reaches the target the best one
// found is returned, which may still fail AA; callers must check
// Passes.NormalAA on the result before treating it as compliant.
func ImproveContrast(c, background RGB) RGB {
	hsl := RGBToHSL(c)

	best := c
	bestRatio := ContrastRatio(c, background)

	// Against a light background a darker variant usually gains contrast
	// fastest, and vice versa.
	directions := []float64{1, -1}
	if Luminance(background) > 0.5 {
		directions = []float64{-1, 1}
	}

	for _, dir := range directions {
		for step := 1; step <= improveMaxSteps; step++ {
			candidate := hsl
			candidate.L = clamp01(hsl.L + dir*improveStepSize*float64(step))

			rgb := HSLToRGB(candidate)
			ratio := ContrastRatio(rgb, background)
			if ratio > bestRatio {
				best = rgb
				bestRatio = ratio
				if ratio >= ThresholdNormalAA {
					return best
				}
			}
		}
	}

	return best
}

// Recommend runs the contrast improvement search and wraps the outcome with
// a human-readable reason and the achieved ratio delta for reporting.
func Recommend(c, background RGB) Recommendation {
	original := ContrastRatio(c, background)

	if original >= ThresholdNormalAA {
		return Recommendation{
			Original:    c,
			Recommended: c,
			Reason:      fmt.Sprintf("colour already meets WCAG AA (%.2f:1)", original),
		}
	}

	improved := ImproveContrast(c, background)
	ratio := ContrastRatio(improved, background)

	reason := fmt.Sprintf("adjusted lightness to reach %.2f:1, meeting WCAG AA", ratio)
	if ratio < ThresholdNormalAA {
		reason = fmt.Sprintf("best variant found reaches %.2f:1, still below the WCAG AA target of %.1f:1", ratio, ThresholdNormalAA)
	}

	return Recommendation{
		Original:            c,
		Recommended:         improved,
		Reason:              reason,
		ContrastImprovement: ratio - original,
	}
}
