package colour

import "testing"

func TestGenerateAccessiblePalettePreservesShape(t *testing.T) {
	white := Parse("#ffffff")
	base := []RGB{Parse("#ff0000"), Parse("#00ff00"), Parse("#0000ff"), Parse("#777777")}

	tests := []struct {
		name string
		req  Requirements
	}{
		{name: "plain", req: Requirements{Background: white, WCAGLevel: LevelAA}},
		{name: "colour blind friendly", req: Requirements{Background: white, ColourBlindFriendly: true}},
		{name: "high contrast", req: Requirements{Background: white, HighContrast: true}},
		{name: "everything", req: Requirements{Background: white, ColourBlindFriendly: true, HighContrast: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateAccessiblePalette(base, white, tt.req)
			if len(got) != len(base) {
				t.Fatalf("generated %d colours from %d base colours", len(got), len(base))
			}
		})
	}
}

func TestGenerateAccessiblePaletteImprovesContrast(t *testing.T) {
	white := Parse("#ffffff")
	base := []RGB{Parse("#fdd663"), Parse("#81c995"), Parse("#cccccc")}

	got := GenerateAccessiblePalette(base, white, Requirements{Background: white})
	for i, c := range got {
		before := ContrastRatio(base[i], white)
		after := ContrastRatio(c, white)
		if after < before {
			t.Errorf("colour %d regressed: %.3f -> %.3f", i, before, after)
		}
	}
}

func TestNudgeForColourBlindness(t *testing.T) {
	tests := []struct {
		name    string
		in      HSL
		wantHue float64
	}{
		{
			name:    "ambiguous red band snaps to canonical red",
			in:      HSL{H: 0.10, S: 0.9, L: 0.4},
			wantHue: 0.05,
		},
		{
			name:    "ambiguous green band snaps to canonical green",
			in:      HSL{H: 0.30, S: 0.9, L: 0.4},
			wantHue: 0.33,
		},
		{
			name:    "blue hue untouched",
			in:      HSL{H: 0.60, S: 0.9, L: 0.4},
			wantHue: 0.60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(nudgeForColourBlindness(HSLToRGB(tt.in)))
			if diff := got.H - tt.wantHue; diff > 0.01 || diff < -0.01 {
				t.Errorf("hue = %.3f, want %.3f", got.H, tt.wantHue)
			}
		})
	}
}

func TestNudgeForColourBlindnessFloorsSaturation(t *testing.T) {
	washed := HSLToRGB(HSL{H: 0.6, S: 0.2, L: 0.5})
	got := RGBToHSL(nudgeForColourBlindness(washed))
	if got.S < minFriendlySaturation-0.01 {
		t.Errorf("saturation = %.3f, want >= %.2f", got.S, minFriendlySaturation)
	}
}

func TestPushLightnessExtreme(t *testing.T) {
	mid := HSLToRGB(HSL{H: 0.6, S: 0.8, L: 0.5})

	onLight := RGBToHSL(pushLightnessExtreme(mid, true))
	if onLight.L > maxLightnessOnLight+0.01 {
		t.Errorf("lightness on light background = %.3f, want <= %.2f", onLight.L, maxLightnessOnLight)
	}

	onDark := RGBToHSL(pushLightnessExtreme(mid, false))
	if onDark.L < minLightnessOnDark-0.01 {
		t.Errorf("lightness on dark background = %.3f, want >= %.2f", onDark.L, minLightnessOnDark)
	}

	// Already-extreme colours stay put.
	dark := HSLToRGB(HSL{H: 0.6, S: 0.8, L: 0.15})
	kept := RGBToHSL(pushLightnessExtreme(dark, true))
	if diff := kept.L - 0.15; diff > 0.01 || diff < -0.01 {
		t.Errorf("already-dark colour moved: lightness %.3f", kept.L)
	}
}

// Two nearly identical greys: the pass must push the second one far enough
// apart to clear the 2.0 distinction ratio.
func TestEnsureColourDistinctionSeparatesNearCollision(t *testing.T) {
	got := EnsureColourDistinction([]RGB{Parse("#808080"), Parse("#828282")})

	if len(got) != 2 {
		t.Fatalf("got %d colours, want 2", len(got))
	}
	if got[0] != Parse("#808080") {
		t.Errorf("first colour must not move, got %s", got[0].Hex())
	}
	if ratio := ContrastRatio(got[0], got[1]); ratio < 2.0 {
		t.Errorf("pair ratio = %.3f, want >= 2.0", ratio)
	}
}

func TestEnsureColourDistinctionLeavesDistinctPairsAlone(t *testing.T) {
	in := []RGB{Parse("#000000"), Parse("#ffffff"), Parse("#0072b2")}

	got := EnsureColourDistinction(in)
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("colour %d moved from %s to %s", i, in[i].Hex(), got[i].Hex())
		}
	}
}

func TestEnsureColourDistinctionDoesNotMutateInput(t *testing.T) {
	in := []RGB{Parse("#808080"), Parse("#828282")}
	EnsureColourDistinction(in)

	if in[1] != Parse("#828282") {
		t.Errorf("input slice mutated: %s", in[1].Hex())
	}
}

func TestGenerateAccessiblePaletteHighContrastExtremes(t *testing.T) {
	white := Parse("#ffffff")
	base := []RGB{Parse("#0072b2"), Parse("#c5221f")}

	got := GenerateAccessiblePalette(base, white, Requirements{Background: white, HighContrast: true})
	for i, c := range got {
		if l := RGBToHSL(c).L; l > maxLightnessOnLight+distinctionLightness+0.01 {
			t.Errorf("colour %d lightness %.3f too high for a light background", i, l)
		}
	}
}
