package lanecontroller

import (
	"fmt"
	"image/color"
	"strings"
)

// LoadPalette parses "#RRGGBB" strings into colors
func LoadPalette(hexColors []string) ([]color.RGBA, error) {
	palette := make([]color.RGBA, 0, len(hexColors))
	for _, hex := range hexColors {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// ParseHexColor parses a "#RRGGBB" or "RRGGBB" color
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color '%s': expected 6 hex digits", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%2x%2x%2x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color '%s': %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
