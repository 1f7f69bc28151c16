// Package render draws a match State onto a tcell screen
package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBWhite      = RGB{255, 255, 255}
	RGBBackground = RGB{12, 12, 20}
	RGBBorder     = RGB{90, 90, 110}
	RGBText       = RGB{200, 200, 210}
	RGBDim        = RGB{100, 100, 110}
	RGBFood       = RGB{255, 210, 60}
	RGBRevive     = RGB{80, 255, 120}
	RGBPenetrate  = RGB{90, 200, 255}
	RGBAlert      = RGB{255, 80, 80}
)

// agentPalette holds one color per seat
var agentPalette = [...]RGB{
	{230, 60, 60},
	{60, 130, 255},
	{60, 210, 90},
	{240, 200, 50},
	{200, 80, 230},
	{50, 220, 220},
	{255, 140, 40},
	{255, 120, 190},
	{150, 220, 60},
	{140, 140, 255},
	{200, 160, 110},
	{170, 230, 200},
}

// AgentColor returns the seat color for an agent id, wrapping past the palette
func AgentColor(id int) RGB {
	if id < 1 {
		return RGBDim
	}
	return agentPalette[(id-1)%len(agentPalette)]
}

// Lerp blends a toward b by t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	t = min(max(t, 0), 1)
	mix := func(x, y uint8) uint8 {
		return clamp(float64(x) + (float64(y)-float64(x))*t)
	}
	return RGB{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B)}
}

// Scale multiplies every channel by f
func Scale(c RGB, f float64) RGB {
	return RGB{clamp(float64(c.R) * f), clamp(float64(c.G) * f), clamp(float64(c.B) * f)}
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
