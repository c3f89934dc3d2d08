package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wtyler2505/RoverMissionControl-sub002/internal/colour"
	"golang.org/x/term"
)

const swatchWidth = 6

// coloursEnabled reports whether swatch previews should be rendered: stdout
// must be a terminal and --no-colour must not be set.
func coloursEnabled() bool {
	if flagNoColour {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// swatch renders a solid colour block for terminal output. Falls back to
// blanks when colour output is disabled so table columns stay aligned.
func swatch(c colour.RGB) string {
	if !coloursEnabled() {
		return strings.Repeat(" ", swatchWidth)
	}

	style := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
	return style.Render(strings.Repeat(" ", swatchWidth))
}

// swatchStrip renders a row of colour blocks for palette previews.
func swatchStrip(colours []colour.RGB) string {
	parts := make([]string, len(colours))
	for i, c := range colours {
		parts[i] = swatch(c)
	}
	return strings.Join(parts, " ")
}

// labelledSwatch renders a swatch followed by the colour's hex code, using
// ink with readable contrast when colour output is active.
func labelledSwatch(c colour.RGB) string {
	if !coloursEnabled() {
		return c.Hex()
	}

	// Dark ink on light swatches, light ink on dark ones.
	ink := "#ffffff"
	if colour.Luminance(c) > 0.5 {
		ink = "#000000"
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(ink)).
		Padding(0, 1)
	return style.Render(c.Hex())
}

// heading styles a section heading for multi-section command output.
func heading(s string) string {
	if !coloursEnabled() {
		return s
	}
	return lipgloss.NewStyle().Bold(true).Render(s)
}
