package colour

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{
			name:  "six digit hex",
			input: "#1a2b3c",
			want:  RGB{R: 0x1a, G: 0x2b, B: 0x3c},
		},
		{
			name:  "six digit hex uppercase",
			input: "#FF00FF",
			want:  RGB{R: 255, G: 0, B: 255},
		},
		{
			name:  "three digit hex expands",
			input: "#abc",
			want:  RGB{R: 0xaa, G: 0xbb, B: 0xcc},
		},
		{
			name:  "rgb function",
			input: "rgb(12, 34, 56)",
			want:  RGB{R: 12, G: 34, B: 56},
		},
		{
			name:  "rgb function no spaces",
			input: "rgb(255,255,255)",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "rgba alpha ignored",
			input: "rgba(10, 20, 30, 0.5)",
			want:  RGB{R: 10, G: 20, B: 30},
		},
		{
			name:  "rgb clamps out of range channels",
			input: "rgb(300, -5, 128)",
			want:  RGB{R: 255, G: 0, B: 128},
		},
		{
			name:  "named black",
			input: "black",
			want:  RGB{R: 0, G: 0, B: 0},
		},
		{
			name:  "named white",
			input: "white",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "named red",
			input: "red",
			want:  RGB{R: 255, G: 0, B: 0},
		},
		{
			name:  "named green",
			input: "green",
			want:  RGB{R: 0, G: 128, B: 0},
		},
		{
			name:  "named blue",
			input: "blue",
			want:  RGB{R: 0, G: 0, B: 255},
		},
		{
			name:  "surrounding whitespace",
			input: "  #ffffff  ",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "mixed case keyword",
			input: "White",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "garbage falls back to black",
			input: "not-a-colour",
			want:  RGB{},
		},
		{
			name:  "empty string falls back to black",
			input: "",
			want:  RGB{},
		},
		{
			name:  "bad hex digits fall back to black",
			input: "#zzzzzz",
			want:  RGB{},
		},
		{
			name:  "wrong length hex falls back to black",
			input: "#abcd",
			want:  RGB{},
		},
		{
			name:  "rgb with missing channels falls back to black",
			input: "rgb(1, 2)",
			want:  RGB{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexCanonical(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want string
	}{
		{name: "black", c: RGB{}, want: "#000000"},
		{name: "white", c: RGB{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "zero padded channels", c: RGB{R: 1, G: 2, B: 3}, want: "#010203"},
		{name: "lowercase", c: RGB{R: 0xab, G: 0xcd, B: 0xef}, want: "#abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

// Parsing the canonical serialisation of a parsed colour must be a fixed
// point for any well-formed hex input.
func TestParseHexRoundTrip(t *testing.T) {
	inputs := []string{
		"#000000", "#ffffff", "#123456", "#0072b2", "#d55e00",
		"#8ab4f8", "#777777", "#f0e442", "#abc",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			once := Parse(s)
			twice := Parse(once.Hex())
			if once != twice {
				t.Errorf("round trip changed colour: %+v -> %+v", once, twice)
			}
		})
	}
}

// Cross-check the hex parser against go-colorful's.
func TestParseMatchesColorful(t *testing.T) {
	inputs := []string{"#1a2b3c", "#ffffff", "#000000", "#d55e00", "#56b4e9"}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			ref, err := colorful.Hex(s)
			if err != nil {
				t.Fatalf("colorful.Hex(%q) error: %v", s, err)
			}
			refR, refG, refB := ref.RGB255()

			got := Parse(s)
			if got.R != refR || got.G != refG || got.B != refB {
				t.Errorf("Parse(%q) = %+v, colorful says (%d, %d, %d)", s, got, refR, refG, refB)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	c := RGB{R: 12, G: 200, B: 7}
	if got, want := c.String(), "rgb(12, 200, 7)"; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}
