package colour

import "math"

// Scoring weights for palette selection. A palette can earn at most 130
// points: the four fixed criteria plus a proportional contrast credit.
const (
	scoreColourCount  = 20.0
	scoreHighContrast = 30.0
	scoreColourBlind  = 30.0
	scoreWCAG         = 20.0
	scoreContrastMax  = 30.0
)

// ScorePalette scores a candidate palette against a requirement set.
//
//   - +20 if the palette has at least the requested number of colours.
//   - +30 if high contrast is requested and the palette provides it.
//   - +30 if colour-blind friendliness is requested and provided.
//   - +20 if the palette is flagged WCAG compliant.
//   - up to +30 proportional to the average, over the palette's colours, of
//     min(1, ratio/target) against the requested background, where target is
//     7.0 for AAA and 4.5 for AA.
func ScorePalette(p Palette, req Requirements) float64 {
	score := 0.0

	if len(p.Colours) >= req.ColourCount {
		score += scoreColourCount
	}
	if req.HighContrast && p.HighContrast {
		score += scoreHighContrast
	}
	if req.ColourBlindFriendly && p.ColourBlindFriendly {
		score += scoreColourBlind
	}
	if p.WCAGCompliant {
		score += scoreWCAG
	}

	score += scoreContrastMax * averageContrastCredit(p.Colours, req.Background, req.WCAGLevel)

	return score
}

// averageContrastCredit returns the mean, over all colours, of how close
// each colour's contrast against the background comes to the target ratio,
// capped at 1 per colour.
func averageContrastCredit(colours []RGB, background RGB, level Level) float64 {
	if len(colours) == 0 {
		return 0
	}

	target := ThresholdNormalAA
	if level == LevelAAA {
		target = ThresholdNormalAAA
	}

	total := 0.0
	for _, c := range colours {
		ratio := ContrastRatio(c, background)
		total += math.Min(1.0, ratio/target)
	}
	return total / float64(len(colours))
}

// Best returns the registry palette with the highest score for the given
// requirements. Ties resolve to the earliest entry in registry order, so
// selection is fully deterministic. An empty registry returns the zero
// Palette.
func (r *Registry) Best(req Requirements) Palette {
	var best Palette
	bestScore := math.Inf(-1)

	for _, p := range r.palettes {
		if score := ScorePalette(p, req); score > bestScore {
			best = p
			bestScore = score
		}
	}
	return best
}
