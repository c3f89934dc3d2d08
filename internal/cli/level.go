package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/wtyler2505/RoverMissionControl-sub002/internal/colour"
)

// levelValue is a pflag.Value for WCAG compliance level flags, accepting
// "AA" or "AAA" in any case.
type levelValue struct {
	level *colour.Level
}

var _ pflag.Value = (*levelValue)(nil)

// newLevelValue wraps a Level with AA as the default.
func newLevelValue(target *colour.Level) *levelValue {
	*target = colour.LevelAA
	return &levelValue{level: target}
}

func (v *levelValue) String() string {
	if v.level == nil {
		return string(colour.LevelAA)
	}
	return string(*v.level)
}

func (v *levelValue) Set(s string) error {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AA":
		*v.level = colour.LevelAA
	case "AAA":
		*v.level = colour.LevelAAA
	default:
		return fmt.Errorf("invalid WCAG level %q (valid: AA, AAA)", s)
	}
	return nil
}

func (v *levelValue) Type() string {
	return "level"
}
