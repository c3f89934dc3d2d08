package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wtyler2505/RoverMissionControl-sub002/internal/colour"
)

var (
	// Contrast command flags.
	contrastLarge   bool
	contrastFormat  string
	contrastPreview bool
)

// contrastCmd represents the contrast command.
var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Analyse the WCAG contrast of a colour pair",
	Long: `Analyse the contrast ratio of a foreground/background colour pair and
classify it against the WCAG AA and AAA thresholds.

The ratio ranges from 1 (no difference) to 21 (black on white). Large text
is held to the relaxed thresholds (3.0 for AA, 4.5 for AAA); pass --large
when the text being checked is at least 18pt, or 14pt bold.

Examples:
  # Telemetry label ink against the panel background
  rovera11y contrast "#777777" "#ffffff"

  # Same pair rated as large text
  rovera11y contrast --large "#777777" "#ffffff"

  # Machine-readable result
  rovera11y contrast --format json "rgb(119,119,119)" white`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().BoolVar(&contrastLarge, "large", false, "rate the pair against the large-text thresholds")
	contrastCmd.Flags().StringVarP(&contrastFormat, "format", "f", "text", "output format (text, json)")
	contrastCmd.Flags().BoolVar(&contrastPreview, "preview", false, "show colour previews in terminal")
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	fg := colour.Parse(args[0])
	bg := colour.Parse(args[1])

	result := colour.AnalyzeContrast(fg, bg, contrastLarge)

	switch contrastFormat {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		cmd.Println(string(out))
	case "text", "":
		printContrastResult(cmd, result)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", contrastFormat)
	}

	return nil
}

// printContrastResult renders a single analysis as a table, optionally with
// swatches.
func printContrastResult(cmd *cobra.Command, result colour.ContrastResult) {
	table := NewTable("Foreground", "Background", "Ratio", "Level", "Normal AA", "Normal AAA", "Large AA", "Large AAA")
	table.AddRow(
		result.Foreground.Hex(),
		result.Background.Hex(),
		fmt.Sprintf("%.2f:1", result.Ratio),
		string(result.Level),
		yesNo(result.Passes.NormalAA),
		yesNo(result.Passes.NormalAAA),
		yesNo(result.Passes.LargeAA),
		yesNo(result.Passes.LargeAAA),
	)
	cmd.Print(table.Render())

	if contrastPreview {
		cmd.Printf("\n%s on %s\n", labelledSwatch(result.Foreground), labelledSwatch(result.Background))
	}
}
