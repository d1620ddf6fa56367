package core

// Color represents a foreground color for a screen glyph.
// The platform maps these to ANSI 256-color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorApple
	ColorBomb
	ColorMagnet
	ColorScissor
	ColorObstacle
	ColorBorder
	ColorHUD
	ColorHighlight
	ColorDanger
	ColorMuted
	ColorGold
)
