package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wtyler2505/RoverMissionControl-sub002/internal/colour"
)

var (
	// Improve command flags.
	improveFormat  string
	improvePreview bool
)

// improveCmd represents the improve command.
var improveCmd = &cobra.Command{
	Use:   "improve <colour> <background>",
	Short: "Search for an accessible variant of a failing colour",
	Long: `Search near the given colour for a lightness variant with better contrast
against the background, targeting the WCAG AA ratio for normal text (4.5:1).

The search is bounded: if no variant reaches the target the best one found
is reported, along with the shortfall. The recommended colour never has a
lower ratio than the original.

Examples:
  # Fix the grey status text on the light telemetry panel
  rovera11y improve "#777777" "#ffffff"

  # Machine-readable recommendation
  rovera11y improve --format json "#fdd663" "#ffffff"`,
	Args: cobra.ExactArgs(2),
	RunE: runImprove,
}

func init() {
	improveCmd.Flags().StringVarP(&improveFormat, "format", "f", "text", "output format (text, json)")
	improveCmd.Flags().BoolVar(&improvePreview, "preview", false, "show colour previews in terminal")
}

// runImprove executes the improve command.
func runImprove(cmd *cobra.Command, args []string) error {
	c := colour.Parse(args[0])
	bg := colour.Parse(args[1])

	rec := colour.Recommend(c, bg)

	switch improveFormat {
	case "json":
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode recommendation: %w", err)
		}
		cmd.Println(string(out))
	case "text", "":
		printRecommendation(cmd, rec, bg)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", improveFormat)
	}

	return nil
}

// printRecommendation renders a recommendation as a table row.
func printRecommendation(cmd *cobra.Command, rec colour.Recommendation, bg colour.RGB) {
	table := NewTable("Original", "Recommended", "Ratio", "Improvement", "Reason")
	table.AddRow(
		rec.Original.Hex(),
		rec.Recommended.Hex(),
		fmt.Sprintf("%.2f:1", colour.ContrastRatio(rec.Recommended, bg)),
		fmt.Sprintf("%+.2f", rec.ContrastImprovement),
		rec.Reason,
	)
	cmd.Print(table.Render())

	if improvePreview {
		cmd.Printf("\n%s -> %s on %s\n", labelledSwatch(rec.Original), labelledSwatch(rec.Recommended), labelledSwatch(bg))
	}
}
