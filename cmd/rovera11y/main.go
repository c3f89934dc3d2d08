// rovera11y - WCAG colour accessibility tooling for operator dashboards
//
// rovera11y analyses colour contrast, recommends accessible variants,
// selects and generates chart palettes, and scores palettes under
// simulated colour-vision deficiencies.
package main

import (
	"os"

	"github.com/wtyler2505/RoverMissionControl-sub002/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
