package colour

import "math"

// WCAG 2.0 contrast ratio thresholds.
// https://www.w3.org/TR/WCAG20/#visual-audio-contrast-contrast
const (
	// ThresholdNormalAA is the minimum ratio for normal text at level AA.
	ThresholdNormalAA = 4.5
	// ThresholdNormalAAA is the minimum ratio for normal text at level AAA.
	ThresholdNormalAAA = 7.0
	// ThresholdLargeAA is the minimum ratio for large text at level AA.
	ThresholdLargeAA = 3.0
	// ThresholdLargeAAA is the minimum ratio for large text at level AAA.
	ThresholdLargeAAA = 4.5
)

// Level classifies a contrast ratio against the WCAG compliance levels.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "fail"
)

// PassSet records which of the four WCAG thresholds a ratio satisfies.
type PassSet struct {
	NormalAA  bool `json:"normal_aa"`
	NormalAAA bool `json:"normal_aaa"`
	LargeAA   bool `json:"large_aa"`
	LargeAAA  bool `json:"large_aaa"`
}

// ContrastResult is the full analysis of a foreground/background pair.
// Ratio is symmetric under swapping foreground and background.
type ContrastResult struct {
	Foreground RGB     `json:"foreground"`
	Background RGB     `json:"background"`
	Ratio      float64 `json:"ratio"`
	Level      Level   `json:"level"`
	Passes     PassSet `json:"passes"`
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminance(c RGB) float64 {
	rf := gammaCorrect(float64(c.R) / 255.0)
	gf := gammaCorrect(float64(c.G) / 255.0)
	bf := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect linearises an sRGB colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LuminanceRatio calculates the WCAG contrast ratio from two relative
// luminance values. Returns a value between 1 and 21.
func LuminanceRatio(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(c1, c2 RGB) float64 {
	return LuminanceRatio(Luminance(c1), Luminance(c2))
}

// AnalyzeContrast computes the contrast ratio of a foreground/background
// pair and classifies it against the WCAG thresholds. largeText selects the
// relaxed large-text thresholds for the level classification; whether text
// counts as large (size/weight) is a rendering concern decided by the caller.
func AnalyzeContrast(fg, bg RGB, largeText bool) ContrastResult {
	ratio := ContrastRatio(fg, bg)

	passes := PassSet{
		NormalAA:  ratio >= ThresholdNormalAA,
		NormalAAA: ratio >= ThresholdNormalAAA,
		LargeAA:   ratio >= ThresholdLargeAA,
		LargeAAA:  ratio >= ThresholdLargeAAA,
	}

	return ContrastResult{
		Foreground: fg,
		Background: bg,
		Ratio:      ratio,
		Level:      classify(passes, largeText),
		Passes:     passes,
	}
}

// classify maps a pass set to a compliance level. Large text is held to the
// relaxed thresholds.
func classify(passes PassSet, largeText bool) Level {
	if largeText {
		switch {
		case passes.LargeAAA:
			return LevelAAA
		case passes.LargeAA:
			return LevelAA
		default:
			return LevelFail
		}
	}

	switch {
	case passes.NormalAAA:
		return LevelAAA
	case passes.NormalAA:
		return LevelAA
	default:
		return LevelFail
	}
}
