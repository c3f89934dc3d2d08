// Package colour implements the WCAG colour-accessibility analysis engine
// used by the mission-control dashboard: parsing, contrast analysis,
// contrast improvement search, palette scoring and generation, and
// colour-vision-deficiency simulation.
//
// Every function in this package is pure and total: nothing blocks, nothing
// performs I/O, and unparsable or non-compliant inputs produce best-effort
// values rather than errors. Callers inspect the returned pass flags to
// detect non-compliance.
package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB represents a colour as three 8-bit channels. No alpha is modelled;
// rgba() inputs are accepted by Parse but the alpha component is discarded.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// namedColours is the small fixed table of colour keywords accepted by Parse.
// Values follow the CSS named-colour definitions.
var namedColours = map[string]RGB{
	"black": {R: 0, G: 0, B: 0},
	"white": {R: 255, G: 255, B: 255},
	"red":   {R: 255, G: 0, B: 0},
	"green": {R: 0, G: 128, B: 0},
	"blue":  {R: 0, G: 0, B: 255},
}

// Hex returns the canonical serialisation of the colour: lowercase,
// zero-padded, "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the colour as a CSS-style "rgb(r, g, b)" string.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Parse converts a colour string into an RGB value. Accepted forms:
//
//   - 6-digit hex: "#1a2b3c"
//   - 3-digit hex: "#abc" (channels are duplicated: #abc -> #aabbcc)
//   - "rgb(r, g, b)" and "rgba(r, g, b, a)" (alpha ignored)
//   - the named colours black, white, red, green, blue
//
// Unparsable input resolves to black rather than failing. The dashboard
// treats a missing or malformed colour as "render it in the safest ink";
// callers that need to distinguish bad input should validate upstream.
func Parse(input string) RGB {
	s := strings.ToLower(strings.TrimSpace(input))

	if c, ok := namedColours[s]; ok {
		return c
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBFunc(s)
	}

	return RGB{}
}

// parseHex parses a 3- or 6-digit hex body (no leading "#").
func parseHex(hex string) RGB {
	if len(hex) == 3 {
		// Expand shorthand: each digit is duplicated.
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}
	}
	return RGB{R: r, G: g, B: b}
}

// parseRGBFunc parses "rgb(r,g,b)" / "rgba(r,g,b,a)" forms.
func parseRGBFunc(s string) RGB {
	open := strings.IndexByte(s, '(')
	end := strings.IndexByte(s, ')')
	if open < 0 || end < open {
		return RGB{}
	}

	parts := strings.Split(s[open+1:end], ",")
	if len(parts) < 3 {
		return RGB{}
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return RGB{}
		}
		channels[i] = clampChannel(v)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}
}

// clampChannel clamps an integer channel value to [0, 255].
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
