// Package cli provides the rovera11y command-line interface: terminal access
// to the colour-accessibility engine for operators and CI scripts.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wtyler2505/RoverMissionControl-sub002/internal/version"
)

var (
	// Global flags shared by all commands.
	flagVerbose  bool
	flagNoColour bool

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "rovera11y",
		Short: "WCAG colour-accessibility analysis for mission-control dashboards",
		Long: `Rovera11y analyses dashboard colours against the WCAG contrast guidelines.

It computes contrast ratios and compliance levels, searches for accessible
colour variants, selects and generates palettes against requirement sets,
and scores palettes under simulated colour-vision deficiencies.

Colours are accepted as hex strings (#rrggbb or #rgb), rgb()/rgba() strings,
or the keywords black, white, red, green and blue. Unrecognised colours fall
back to black.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// NewRootCmd returns the fully assembled root command. Called once from main.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColour, "no-colour", false, "disable colour previews in terminal output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(improveCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(auditCmd)
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
