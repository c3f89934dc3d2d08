package colour

import "math"

// Deficiency identifies a colour-vision deficiency type.
type Deficiency string

const (
	Protanopia   Deficiency = "protanopia"
	Deuteranopia Deficiency = "deuteranopia"
	Tritanopia   Deficiency = "tritanopia"
)

// Deficiencies lists the simulated deficiency types in scoring order.
var Deficiencies = []Deficiency{Protanopia, Deuteranopia, Tritanopia}

// cvdMatrices holds the per-type linear channel recombinations. These are
// the widely used simplified approximations, not colorimetrically rigorous
// models: protanopia and deuteranopia collapse the red/green axis,
// tritanopia the blue/yellow axis. Downstream scoring depends on this
// specific approximation; do not swap in a rigorous model without re-scoping
// the scores.
var cvdMatrices = map[Deficiency][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0.0},
		{0.558, 0.442, 0.0},
		{0.0, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0.0},
		{0.700, 0.300, 0.0},
		{0.0, 0.300, 0.700},
	},
	Tritanopia: {
		{0.950, 0.050, 0.0},
		{0.0, 0.433, 0.567},
		{0.0, 0.475, 0.525},
	},
}

// Pairs of simulated colours with at least this contrast ratio count as
// distinguishable.
const distinguishableRatio = 1.5

// CVDScore reports pairwise distinguishability of a palette under each
// simulated deficiency, each in [0, 100]. Overall is the unweighted mean.
type CVDScore struct {
	Protanopia   float64 `json:"protanopia"`
	Deuteranopia float64 `json:"deuteranopia"`
	Tritanopia   float64 `json:"tritanopia"`
	Overall      float64 `json:"overall"`
}

// SimulateDeficiency approximates how a colour appears under the given
// deficiency by applying its channel-mixing matrix.
func SimulateDeficiency(c RGB, d Deficiency) RGB {
	m, ok := cvdMatrices[d]
	if !ok {
		return c
	}

	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)

	return RGB{
		R: mixChannel(m[0][0]*r + m[0][1]*g + m[0][2]*b),
		G: mixChannel(m[1][0]*r + m[1][1]*g + m[1][2]*b),
		B: mixChannel(m[2][0]*r + m[2][1]*g + m[2][2]*b),
	}
}

// mixChannel rounds and clamps a mixed channel value to 8 bits.
func mixChannel(v float64) uint8 {
	return uint8(math.Round(math.Max(0.0, math.Min(255.0, v))))
}

// TestColourBlindness scores how distinguishable a palette remains under
// each deficiency type: every pair of transformed colours counts as
// distinguishable when its contrast ratio is at least 1.5, and the per-type
// score is the distinguishable fraction scaled to 100. Palettes with fewer
// than two colours are vacuously distinguishable and score 100.
func TestColourBlindness(colours []RGB) CVDScore {
	scores := map[Deficiency]float64{}
	for _, d := range Deficiencies {
		scores[d] = distinguishabilityScore(colours, d)
	}

	return CVDScore{
		Protanopia:   scores[Protanopia],
		Deuteranopia: scores[Deuteranopia],
		Tritanopia:   scores[Tritanopia],
		Overall:      (scores[Protanopia] + scores[Deuteranopia] + scores[Tritanopia]) / 3.0,
	}
}

// distinguishabilityScore computes the per-type pairwise score.
func distinguishabilityScore(colours []RGB, d Deficiency) float64 {
	if len(colours) < 2 {
		return 100.0
	}

	simulated := make([]RGB, len(colours))
	for i, c := range colours {
		simulated[i] = SimulateDeficiency(c, d)
	}

	distinguishable := 0
	total := 0
	for i := 0; i < len(simulated); i++ {
		for j := i + 1; j < len(simulated); j++ {
			total++
			if ContrastRatio(simulated[i], simulated[j]) >= distinguishableRatio {
				distinguishable++
			}
		}
	}

	return 100.0 * float64(distinguishable) / float64(total)
}
