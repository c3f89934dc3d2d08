package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wtyler2505/RoverMissionControl-sub002/internal/colour"
)

var (
	// Shared palette command flags.
	paletteCount      int
	paletteBackground string
	paletteHC         bool
	paletteCB         bool
	paletteLevel      colour.Level
	paletteFormat     string
	palettePreview    bool

	// Generate subcommand flags.
	paletteBase []string
	paletteName string
)

// paletteCmd groups the palette subcommands.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Inspect, select, and generate accessible palettes",
}

// paletteListCmd represents the palette list command.
var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in palette catalog",
	RunE:  runPaletteList,
}

// paletteBestCmd represents the palette best command.
var paletteBestCmd = &cobra.Command{
	Use:   "best",
	Short: "Select the catalog palette that best fits a requirement set",
	Long: `Score every catalog palette against the given requirements and print the
best match. Scoring rewards colour count, high-contrast and colour-blind
flags when requested, WCAG compliance, and average contrast against the
requested background. Ties resolve to catalog order, so selection is
deterministic.

Examples:
  # Six high-contrast series colours for charts on a white panel
  rovera11y palette best --count 6 --background "#ffffff" --high-contrast

  # Colour-blind-safe set for the night-ops theme, held to AAA
  rovera11y palette best --background "#1c2833" --colourblind --level AAA`,
	RunE: runPaletteBest,
}

// paletteGenerateCmd represents the palette generate command.
var paletteGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Derive an accessible palette from base colours",
	Long: `Derive a new palette from the given base colours: each colour is first
pushed toward the WCAG AA contrast target against the background, then
optionally adjusted for colour-blind friendliness and high contrast, and
finally separated so series remain tellable apart.

The result has the same length and order as the base colours.

Examples:
  rovera11y palette generate --background "#ffffff" \
    --base "#e57373" --base "#81c995" --base "#fdd663"

  rovera11y palette generate --background "#1c2833" --colourblind \
    --base "#c62828" --base "#2e7d32" --base "#1565c0"`,
	RunE: runPaletteGenerate,
}

func init() {
	for _, cmd := range []*cobra.Command{paletteBestCmd, paletteGenerateCmd} {
		cmd.Flags().StringVarP(&paletteBackground, "background", "b", "#ffffff", "background colour the palette renders against")
		cmd.Flags().BoolVar(&paletteHC, "high-contrast", false, "require high contrast")
		cmd.Flags().BoolVar(&paletteCB, "colourblind", false, "require colour-blind friendliness")
		cmd.Flags().Var(newLevelValue(&paletteLevel), "level", "WCAG level to target (AA, AAA)")
	}

	paletteBestCmd.Flags().IntVarP(&paletteCount, "count", "c", 1, "minimum number of colours required")

	paletteGenerateCmd.Flags().StringArrayVar(&paletteBase, "base", nil, "base colour (repeatable)")
	paletteGenerateCmd.Flags().StringVar(&paletteName, "name", "generated", "name for the derived palette")

	for _, cmd := range []*cobra.Command{paletteListCmd, paletteBestCmd, paletteGenerateCmd} {
		cmd.Flags().StringVarP(&paletteFormat, "format", "f", "text", "output format (text, json)")
		cmd.Flags().BoolVar(&palettePreview, "preview", false, "show colour previews in terminal")
	}

	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteBestCmd)
	paletteCmd.AddCommand(paletteGenerateCmd)
}

// runPaletteList executes the palette list command.
func runPaletteList(cmd *cobra.Command, args []string) error {
	reg := colour.DefaultRegistry()

	if paletteFormat == "json" {
		out, err := json.MarshalIndent(reg.Palettes(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	table := NewTable("ID", "Name", "Colours", "High Contrast", "Colour Blind", "WCAG")
	for _, p := range reg.Palettes() {
		table.AddRow(
			p.ID,
			p.Name,
			fmt.Sprintf("%d", len(p.Colours)),
			yesNo(p.HighContrast),
			yesNo(p.ColourBlindFriendly),
			yesNo(p.WCAGCompliant),
		)
	}
	cmd.Print(table.Render())

	if palettePreview {
		cmd.Println()
		for _, p := range reg.Palettes() {
			cmd.Printf("%-20s %s\n", p.ID, swatchStrip(p.Colours))
		}
	}

	return nil
}

// runPaletteBest executes the palette best command.
func runPaletteBest(cmd *cobra.Command, args []string) error {
	req := colour.Requirements{
		ColourCount:         paletteCount,
		Background:          colour.Parse(paletteBackground),
		HighContrast:        paletteHC,
		ColourBlindFriendly: paletteCB,
		WCAGLevel:           paletteLevel,
	}

	reg := colour.DefaultRegistry()
	best := reg.Best(req)

	if paletteFormat == "json" {
		out, err := json.MarshalIndent(best, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Printf("%s (%s)\n", best.Name, best.ID)
	cmd.Printf("%s\n", best.Description)
	cmd.Printf("score: %.1f\n\n", colour.ScorePalette(best, req))
	printPaletteColours(cmd, best.Colours, req.Background)

	return nil
}

// runPaletteGenerate executes the palette generate command.
func runPaletteGenerate(cmd *cobra.Command, args []string) error {
	if len(paletteBase) == 0 {
		return fmt.Errorf("at least one --base colour is required")
	}

	base := make([]colour.RGB, len(paletteBase))
	for i, s := range paletteBase {
		base[i] = colour.Parse(s)
	}

	req := colour.Requirements{
		ColourCount:         len(base),
		Background:          colour.Parse(paletteBackground),
		HighContrast:        paletteHC,
		ColourBlindFriendly: paletteCB,
		WCAGLevel:           paletteLevel,
	}

	generated := colour.GenerateAccessiblePalette(base, req.Background, req)
	p := colour.NewGeneratedPalette(paletteName, "derived from operator base colours", generated, req)

	if paletteFormat == "json" {
		out, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Printf("%s (%s)\n\n", p.Name, p.ID)
	printPaletteColours(cmd, p.Colours, req.Background)

	return nil
}

// printPaletteColours renders one row per colour with its contrast against
// the background.
func printPaletteColours(cmd *cobra.Command, colours []colour.RGB, bg colour.RGB) {
	table := NewTable("Colour", "Ratio", "Level")
	for _, c := range colours {
		result := colour.AnalyzeContrast(c, bg, false)
		table.AddRow(c.Hex(), fmt.Sprintf("%.2f:1", result.Ratio), string(result.Level))
	}
	cmd.Print(table.Render())

	if palettePreview {
		cmd.Printf("\n%s\n", swatchStrip(colours))
	}
}
