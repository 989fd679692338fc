package core

import "fmt"

// RGB is a 24-bit foreground color for a screen cell.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as a "#rrggbb" string understood by lipgloss.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Gray returns a neutral color with all channels set to v.
func Gray(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// Predefined colors for HUD and world elements.
var (
	ColorWhite       = RGB{255, 255, 255}
	ColorRed         = RGB{255, 0, 0}
	ColorGreen       = RGB{0, 255, 0}
	ColorBlue        = RGB{0, 0, 255}
	ColorYellow      = RGB{255, 255, 0}
	ColorOrange      = RGB{255, 165, 0}
	ColorPlatform    = RGB{25, 80, 130}
	ColorHighlight   = RGB{52, 152, 219}
	ColorBoostGlow   = RGB{255, 200, 100}
	ColorBodyShine   = RGB{255, 200, 200}
	ColorSky         = RGB{135, 206, 235}
	ColorOverlayText = RGB{200, 200, 200}
)
