package hud

import (
	"fmt"

	"github.com/golangdaddy/cardodge/config"
)

// Rules returns the how-to-play lines for a start screen
func Rules(cfg *config.Config) []string {
	lines := []string{
		fmt.Sprintf("Dodge the traffic, +%d per car passed", cfg.Traffic.PassAward),
		fmt.Sprintf("Grass costs %g points a second", cfg.Penalty.PointsPerSecond),
		"New lanes open as you score",
	}
	if cfg.Shoulder.Enabled {
		lines = append(lines, fmt.Sprintf("The shoulder opens every %gs", cfg.Shoulder.ClosedSeconds+cfg.Shoulder.OpenSeconds))
	}
	return lines
}
