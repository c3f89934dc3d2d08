package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wtyler2505/RoverMissionControl-sub002/internal/colour"
)

var (
	// Simulate command flags.
	simulateFormat  string
	simulatePreview bool
)

// simulateCmd represents the simulate command.
var simulateCmd = &cobra.Command{
	Use:   "simulate <colour>...",
	Short: "Score a palette under simulated colour-vision deficiencies",
	Long: `Approximate how a palette appears under protanopia, deuteranopia and
tritanopia, and score how distinguishable its colours remain under each.

Each pair of transformed colours counts as distinguishable when its contrast
ratio is at least 1.5:1; the per-deficiency score is the distinguishable
fraction of pairs scaled to 100. The transforms are the usual simplified
channel recombinations, not a rigorous colorimetric model.

Examples:
  # How does the status ramp hold up?
  rovera11y simulate "#146c2e" "#b26a00" "#c5221f"

  # JSON scores for CI thresholds
  rovera11y simulate --format json "#ff0000" "#00aa00"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simulateFormat, "format", "f", "text", "output format (text, json)")
	simulateCmd.Flags().BoolVar(&simulatePreview, "preview", false, "show simulated colour previews in terminal")
}

// runSimulate executes the simulate command.
func runSimulate(cmd *cobra.Command, args []string) error {
	colours := make([]colour.RGB, len(args))
	for i, s := range args {
		colours[i] = colour.Parse(s)
	}

	score := colour.TestColourBlindness(colours)

	switch simulateFormat {
	case "json":
		out, err := json.MarshalIndent(score, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode score: %w", err)
		}
		cmd.Println(string(out))
	case "text", "":
		printCVDScore(cmd, colours, score)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", simulateFormat)
	}

	return nil
}

// printCVDScore renders per-deficiency scores, and simulated swatch rows
// when previews are requested.
func printCVDScore(cmd *cobra.Command, colours []colour.RGB, score colour.CVDScore) {
	table := NewTable("Deficiency", "Score")
	table.AddRow(string(colour.Protanopia), fmt.Sprintf("%.1f", score.Protanopia))
	table.AddRow(string(colour.Deuteranopia), fmt.Sprintf("%.1f", score.Deuteranopia))
	table.AddRow(string(colour.Tritanopia), fmt.Sprintf("%.1f", score.Tritanopia))
	table.AddRow("overall", fmt.Sprintf("%.1f", score.Overall))
	cmd.Print(table.Render())

	if simulatePreview {
		cmd.Println()
		cmd.Printf("%-14s %s\n", "original", swatchStrip(colours))
		for _, d := range colour.Deficiencies {
			simulated := make([]colour.RGB, len(colours))
			for i, c := range colours {
				simulated[i] = colour.SimulateDeficiency(c, d)
			}
			cmd.Printf("%-14s %s\n", string(d), swatchStrip(simulated))
		}
	}
}
