package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/wtyler2505/RoverMissionControl-sub002/internal/colour"
)

var (
	// Audit command flags.
	auditBackground string
	auditLarge      bool
	auditFormat     string
	auditPreview    bool
)

// auditCmd represents the audit command.
var auditCmd = &cobra.Command{
	Use:   "audit <colour>... ",
	Short: "Run a full accessibility audit over a set of dashboard colours",
	Long: `Audit every given colour against the background: contrast analysis and
compliance classification per colour, improvement recommendations for the
failing ones, and a colour-vision-deficiency distinguishability score for
the set as a whole.

The audit never fails outright; inspect the pass flags (or the JSON report)
to decide compliance. This matches the engine's always-succeed policy.

Examples:
  # Audit the telemetry chart inks against the panel background
  rovera11y audit "#777777" "#b26a00" "#0072b2" --background "#ffffff"

  # Full JSON report for the CI accessibility gate
  rovera11y audit --format json --background "#1c2833" "#8ab4f8" "#f28b82"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAudit,
}

// AuditReport is the machine-readable output of the audit command.
type AuditReport struct {
	Background      colour.RGB              `json:"background"`
	Results         []colour.ContrastResult `json:"results"`
	Recommendations []colour.Recommendation `json:"recommendations"`
	CVD             colour.CVDScore         `json:"cvd"`
}

func init() {
	auditCmd.Flags().StringVarP(&auditBackground, "background", "b", "#ffffff", "background colour the set renders against")
	auditCmd.Flags().BoolVar(&auditLarge, "large", false, "rate colours against the large-text thresholds")
	auditCmd.Flags().StringVarP(&auditFormat, "format", "f", "text", "output format (text, json)")
	auditCmd.Flags().BoolVar(&auditPreview, "preview", false, "show colour previews in terminal")
}

// auditLogger builds the audit diagnostics logger based on the verbose flag.
func auditLogger() hclog.Logger {
	if flagVerbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "audit",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "audit",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// runAudit executes the audit command.
func runAudit(cmd *cobra.Command, args []string) error {
	logger := auditLogger()

	bg := colour.Parse(auditBackground)
	logger.Debug("resolved background", "input", auditBackground, "colour", bg.Hex())

	colours := make([]colour.RGB, len(args))
	for i, s := range args {
		colours[i] = colour.Parse(s)
		logger.Debug("resolved colour", "input", s, "colour", colours[i].Hex())
	}

	report := buildAuditReport(colours, bg, auditLarge)
	logger.Debug("audit complete",
		"colours", len(report.Results),
		"recommendations", len(report.Recommendations),
		"cvd_overall", fmt.Sprintf("%.1f", report.CVD.Overall))

	switch auditFormat {
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		cmd.Println(string(out))
	case "text", "":
		printAuditReport(cmd, report)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", auditFormat)
	}

	return nil
}

// buildAuditReport runs the analysis pipeline over a colour set.
// Recommendations are produced only for colours failing the selected
// thresholds.
func buildAuditReport(colours []colour.RGB, bg colour.RGB, largeText bool) AuditReport {
	report := AuditReport{
		Background: bg,
		Results:    make([]colour.ContrastResult, len(colours)),
		CVD:        colour.TestColourBlindness(colours),
	}

	for i, c := range colours {
		result := colour.AnalyzeContrast(c, bg, largeText)
		report.Results[i] = result

		if result.Level == colour.LevelFail {
			report.Recommendations = append(report.Recommendations, colour.Recommend(c, bg))
		}
	}

	return report
}

// printAuditReport renders the report as sectioned tables.
func printAuditReport(cmd *cobra.Command, report AuditReport) {
	cmd.Printf("%s %s\n\n", heading("Contrast against"), report.Background.Hex())

	results := NewTable("Colour", "Ratio", "Level", "Normal AA", "Large AA")
	for _, r := range report.Results {
		results.AddRow(
			r.Foreground.Hex(),
			fmt.Sprintf("%.2f:1", r.Ratio),
			string(r.Level),
			yesNo(r.Passes.NormalAA),
			yesNo(r.Passes.LargeAA),
		)
	}
	cmd.Print(results.Render())

	if len(report.Recommendations) > 0 {
		cmd.Printf("\n%s\n\n", heading("Recommendations"))
		recs := NewTable("Original", "Recommended", "Improvement", "Reason")
		for _, rec := range report.Recommendations {
			recs.AddRow(
				rec.Original.Hex(),
				rec.Recommended.Hex(),
				fmt.Sprintf("%+.2f", rec.ContrastImprovement),
				rec.Reason,
			)
		}
		cmd.Print(recs.Render())
	}

	cmd.Printf("\n%s\n\n", heading("Colour-vision deficiency"))
	cvd := NewTable("Deficiency", "Score")
	cvd.AddRow(string(colour.Protanopia), fmt.Sprintf("%.1f", report.CVD.Protanopia))
	cvd.AddRow(string(colour.Deuteranopia), fmt.Sprintf("%.1f", report.CVD.Deuteranopia))
	cvd.AddRow(string(colour.Tritanopia), fmt.Sprintf("%.1f", report.CVD.Tritanopia))
	cvd.AddRow("overall", fmt.Sprintf("%.1f", report.CVD.Overall))
	cmd.Print(cvd.Render())

	if auditPreview {
		colours := make([]colour.RGB, len(report.Results))
		for i, r := range report.Results {
			colours[i] = r.Foreground
		}
		cmd.Printf("\n%s\n", swatchStrip(colours))
	}
}
