package core

import "fmt"

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for sprites and HUD text.
const (
	ColorDefault Color = iota
	ColorOrange
	ColorGreen
	ColorYellow
	ColorGray
	ColorIvory
	ColorBrightWhite
	ColorDim
)

var colorNames = map[Color]string{
	ColorDefault:     "default",
	ColorOrange:      "orange",
	ColorGreen:       "green",
	ColorYellow:      "yellow",
	ColorGray:        "gray",
	ColorIvory:       "ivory",
	ColorBrightWhite: "white",
	ColorDim:         "dim",
}

// String returns the config name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor resolves a color by the name used in YAML configs.
func ParseColor(name string) (Color, error) {
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
