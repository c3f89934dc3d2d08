package colour

import "github.com/google/uuid"

// Palette is an ordered, named set of colours with accessibility metadata.
// Registry palettes are authored once at start-up and never mutated;
// generated palettes are created on demand and owned by the caller.
type Palette struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	Colours             []RGB  `json:"colours"`
	HighContrast        bool   `json:"high_contrast"`
	ColourBlindFriendly bool   `json:"colour_blind_friendly"`
	WCAGCompliant       bool   `json:"wcag_compliant"`
}

// Requirements describes what a caller needs from a palette. It is scorer
// input only and is never persisted.
type Requirements struct {
	ColourCount         int
	Background          RGB
	HighContrast        bool
	ColourBlindFriendly bool
	WCAGLevel           Level
}

// Registry is an immutable catalog of authored palettes. It is plain
// configuration passed explicitly to the scorer rather than hidden
// package-global state, so independent callers can carry independent
// catalogs.
type Registry struct {
	palettes []Palette
}

// NewRegistry creates a registry over the given palettes. Order matters:
// scoring ties resolve to the earliest entry.
func NewRegistry(palettes ...Palette) *Registry {
	return &Registry{palettes: palettes}
}

// Palettes returns the catalog in registry order.
func (r *Registry) Palettes() []Palette {
	return r.palettes
}

// Lookup returns the palette with the given id.
func (r *Registry) Lookup(id string) (Palette, bool) {
	for _, p := range r.palettes {
		if p.ID == id {
			return p, true
		}
	}
	return Palette{}, false
}

// Len returns the number of palettes in the catalog.
func (r *Registry) Len() int {
	return len(r.palettes)
}

// DefaultRegistry returns the built-in palette catalog used by the
// dashboard. Colours are pre-authored against the standard light and dark
// console backgrounds; the metadata flags reflect each set's intent.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Palette{
			ID:          "mission-default",
			Name:        "Mission Default",
			Description: "General-purpose accessible set for telemetry charts on light panels",
			Colours: []RGB{
				Parse("#005a9e"), // blue
				Parse("#a4262c"), // red
				Parse("#0b6a0b"), // green
				Parse("#5c2d91"), // purple
				Parse("#986f0b"), // amber
				Parse("#038387"), // teal
				Parse("#ca5010"), // orange
				Parse("#3b3a39"), // graphite
			},
			WCAGCompliant: true,
		},
		Palette{
			ID:          "high-contrast",
			Name:        "High Contrast",
			Description: "Maximum-contrast set for alarm states and sunlight-readable displays",
			Colours: []RGB{
				Parse("#000000"),
				Parse("#00008b"),
				Parse("#8b0000"),
				Parse("#006400"),
				Parse("#4b0082"),
				Parse("#2f4f4f"),
				Parse("#191970"),
				Parse("#8b4513"),
			},
			HighContrast:  true,
			WCAGCompliant: true,
		},
		Palette{
			ID:          "colour-blind-safe",
			Name:        "Colour Blind Safe",
			Description: "The Okabe-Ito set, distinguishable under the common colour-vision deficiencies",
			Colours: []RGB{
				Parse("#0072b2"), // blue
				Parse("#d55e00"), // vermillion
				Parse("#009e73"), // bluish green
				Parse("#cc79a7"), // reddish purple
				Parse("#e69f00"), // orange
				Parse("#56b4e9"), // sky blue
				Parse("#f0e442"), // yellow
				Parse("#000000"), // black
			},
			ColourBlindFriendly: true,
		},
		Palette{
			ID:          "status-severity",
			Name:        "Status Severity",
			Description: "Nominal through critical severity ramp for rover subsystem status",
			Colours: []RGB{
				Parse("#146c2e"), // nominal
				Parse("#b26a00"), // caution
				Parse("#c5221f"), // warning
				Parse("#7b1fa2"), // critical
				Parse("#01579b"), // info
				Parse("#5f6368"), // offline
			},
			WCAGCompliant: true,
		},
		Palette{
			ID:          "dark-theme",
			Name:        "Dark Theme",
			Description: "Light-on-dark set for the night-operations console theme",
			Colours: []RGB{
				Parse("#8ab4f8"),
				Parse("#f28b82"),
				Parse("#81c995"),
				Parse("#fdd663"),
				Parse("#c58af9"),
				Parse("#78d9ec"),
			},
			WCAGCompliant: true,
		},
	)
}

// NewGeneratedPalette wraps generator output in a Palette owned by the
// caller. The id is a fresh UUID so generated palettes can be referenced in
// reports without colliding with registry ids.
func NewGeneratedPalette(name, description string, colours []RGB, req Requirements) Palette {
	return Palette{
		ID:                  uuid.NewString(),
		Name:                name,
		Description:         description,
		Colours:             colours,
		HighContrast:        req.HighContrast,
		ColourBlindFriendly: req.ColourBlindFriendly,
		WCAGCompliant:       allMeetAA(colours, req.Background),
	}
}

// allMeetAA reports whether every colour meets the normal-text AA ratio
// against the background.
func allMeetAA(colours []RGB, background RGB) bool {
	for _, c := range colours {
		if ContrastRatio(c, background) < ThresholdNormalAA {
			return false
		}
	}
	return true
}
