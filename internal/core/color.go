package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

// Palette of the game scene.
const (
	ColorDefault Color = iota
	ColorSky
	ColorCloud
	ColorPipe
	ColorPipeCap
	ColorGround
	ColorGroundTop
	ColorBird
	ColorBeak
	ColorWing
	ColorText
	ColorBanner
	ColorHint
)
