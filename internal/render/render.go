// Package render draws round snapshots into a character screen.
// It knows nothing about terminals; the platform turns the screen into output.
package render

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used for board contents.
const (
	GlyphHead     = '█'
	GlyphBody     = '▓'
	GlyphApple    = '*'
	GlyphBomb     = 'X'
	GlyphMagnet   = 'U'
	GlyphScissor  = '%'
	GlyphObstacle = '▒'
	GlyphRing     = '·'
)

// hudRows is the number of rows above the board border.
const hudRows = 1

// Layout describes where the board lands on the screen.
type Layout struct {
	CellW   int // Characters per board column (1 or 2)
	OriginX int // Screen column of the first board cell
	OriginY int // Screen row of the first board cell
}

// NewLayout picks the widest cell size the screen allows.
// ok is false when the board does not fit even with single-width cells.
func NewLayout(b core.Board, w, h int) (l Layout, ok bool) {
	cols, rows := b.Cols(), b.Rows()
	if cols <= 0 || rows <= 0 || h < rows+2+hudRows {
		return Layout{}, false
	}

	cellW := 2
	if w < cols*cellW+2 {
		cellW = 1
	}
	if w < cols*cellW+2 {
		return Layout{}, false
	}

	boxW := cols*cellW + 2
	return Layout{
		CellW:   cellW,
		OriginX: (w-boxW)/2 + 1,
		OriginY: hudRows + 1,
	}, true
}

// MinSize returns the smallest screen that can show the board.
func MinSize(b core.Board) (w, h int) {
	return b.Cols() + 2, b.Rows() + 2 + hudRows
}

// Draw renders a full frame: HUD, border, obstacles, items and snake.
// A screen too small for the board gets a resize prompt instead.
func Draw(dst *core.Screen, f core.Frame) {
	dst.Clear()

	l, ok := NewLayout(f.Board, dst.Width(), dst.Height())
	if !ok {
		minW, minH := MinSize(f.Board)
		Overlay(dst, "Window too small", fmt.Sprintf("Resize to at least %dx%d", minW, minH))
		return
	}

	drawHUD(dst, f)

	box := core.NewRect(l.OriginX-1, l.OriginY-1, f.Board.Cols()*l.CellW+2, f.Board.Rows()+2)
	dst.DrawBox(box, core.ColorBorder)

	if f.MagnetActive {
		drawRing(dst, l, f)
	}

	for _, o := range f.Obstacles {
		fill(dst, l, f.Board, o, GlyphObstacle, core.ColorObstacle)
	}

	item(dst, l, f.Board, f.Food, GlyphApple, core.ColorApple)
	item(dst, l, f.Board, f.Bomb, GlyphBomb, core.ColorBomb)
	item(dst, l, f.Board, f.Magnet, GlyphMagnet, core.ColorMagnet)
	item(dst, l, f.Board, f.Scissor, GlyphScissor, core.ColorScissor)

	// Body first so the head stays visible
	for i := len(f.Snake) - 1; i >= 1; i-- {
		fill(dst, l, f.Board, f.Snake[i], GlyphBody, core.ColorSnakeBody)
	}
	if head, ok := f.Head(); ok {
		fill(dst, l, f.Board, head, GlyphHead, core.ColorSnakeHead)
	}
}

// drawHUD writes the status line for the frame's mode.
func drawHUD(dst *core.Screen, f core.Frame) {
	var hud string
	if f.Quota > 0 {
		hud = fmt.Sprintf(" Level %d/%d  Apples: %d/%d  Total Score: %d", f.Level, f.Levels, f.Apples, f.Quota, f.Score)
	} else {
		hud = fmt.Sprintf(" Survival  Score: %d  Length: %d  Speed: %d", f.Score, f.Length(), f.TickRate)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)

	if f.MagnetActive {
		const tag = "MAGNET "
		dst.DrawTextColored(dst.Width()-len(tag), 0, tag, core.ColorMagnet)
	}
}

// drawRing outlines the square the magnet pulls food from.
func drawRing(dst *core.Screen, l Layout, f core.Frame) {
	head, ok := f.Head()
	if !ok || f.Board.Block <= 0 {
		return
	}
	// Food is pulled while strictly inside the radius on both axes
	reach := (f.MagnetRadius + f.Board.Block - 1) / f.Board.Block
	for d := -reach; d <= reach; d++ {
		for _, c := range []core.Cell{
			head.Add(d*f.Board.Block, -reach*f.Board.Block),
			head.Add(d*f.Board.Block, reach*f.Board.Block),
			head.Add(-reach*f.Board.Block, d*f.Board.Block),
			head.Add(reach*f.Board.Block, d*f.Board.Block),
		} {
			if f.Board.Contains(c) {
				x, y := screenPos(l, f.Board, c)
				dst.SetColored(x, y, GlyphRing, core.ColorMagnet)
			}
		}
	}
}

// fill paints a whole board cell with r.
func fill(dst *core.Screen, l Layout, b core.Board, c core.Cell, r rune, color core.Color) {
	x, y := screenPos(l, b, c)
	for i := range l.CellW {
		dst.SetColored(x+i, y, r, color)
	}
}

// item paints a single glyph at the left of a board cell, if present.
func item(dst *core.Screen, l Layout, b core.Board, c *core.Cell, r rune, color core.Color) {
	if c == nil {
		return
	}
	x, y := screenPos(l, b, *c)
	dst.SetColored(x, y, r, color)
}

// screenPos maps a board cell to the screen.
func screenPos(l Layout, b core.Board, c core.Cell) (x, y int) {
	col, row := b.GridPos(c)
	return l.OriginX + col*l.CellW, l.OriginY + row
}

// Overlay draws a centered box with one line of text per entry.
func Overlay(dst *core.Screen, lines ...string) {
	OverlayColored(dst, core.ColorHighlight, lines...)
}

// OverlayColored is Overlay with a custom border color.
func OverlayColored(dst *core.Screen, border core.Color, lines ...string) {
	maxLen := 0
	for _, s := range lines {
		maxLen = max(maxLen, len([]rune(s)))
	}
	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		dst.DrawHLine(r.X+1, y, r.W-2, ' ')
	}
	dst.DrawBox(r, border)

	for i, s := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorHighlight
		}
		dst.DrawTextCentered(boxY+1+i*2, s, color)
	}
}
