package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Reith19/Gaming/tetris"
)

const (
	margin     = 20
	panelWidth = 180
)

var (
	background = color.RGBA{18, 18, 24, 255}
	wellColor  = color.RGBA{30, 30, 40, 255}
	gridColor  = color.RGBA{44, 44, 58, 255}
	ghostColor = color.RGBA{200, 200, 200, 120}
)

var kindColors = map[tetris.Kind]color.RGBA{
	tetris.I: {0, 240, 240, 255},
	tetris.O: {240, 240, 0, 255},
	tetris.T: {160, 0, 240, 255},
	tetris.S: {0, 240, 0, 255},
	tetris.Z: {240, 0, 0, 255},
	tetris.L: {240, 160, 0, 255},
	tetris.J: {0, 0, 240, 255},
}

// screenSize returns the window size for a well of the configured dimensions.
func screenSize(cfg tetris.Config, cellSize int) (int, int) {
	return cfg.Cols*cellSize + panelWidth + 3*margin, cfg.Rows*cellSize + 2*margin
}

func drawGame(screen *ebiten.Image, s tetris.Snapshot, cellSize int, ghost bool) {
	screen.Fill(background)

	cs := float32(cellSize)
	ox, oy := float32(margin), float32(margin)
	vector.DrawFilledRect(screen, ox, oy, float32(s.Cols)*cs, float32(s.Rows)*cs, wellColor, false)

	for y, row := range s.Cells {
		for x, cell := range row {
			px, py := ox+float32(x)*cs, oy+float32(y)*cs
			if cell.Occupied() {
				drawCell(screen, px, py, cs, kindColors[cell.Kind])
			} else {
				vector.StrokeRect(screen, px, py, cs, cs, 1, gridColor, false)
			}
		}
	}

	if ghost {
		for _, p := range s.Ghost() {
			vector.StrokeRect(screen, ox+float32(p.X)*cs+1, oy+float32(p.Y)*cs+1, cs-2, cs-2, 2, ghostColor, false)
		}
	}

	if s.Active != nil {
		for p := range s.Active.Cells() {
			if p.Y >= 0 {
				drawCell(screen, ox+float32(p.X)*cs, oy+float32(p.Y)*cs, cs, kindColors[s.Active.Kind])
			}
		}
	}

	drawPanel(screen, s, ox+float32(s.Cols)*cs+margin, oy, cs)
}

func drawCell(screen *ebiten.Image, x, y, size float32, clr color.RGBA) {
	vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, clr, false)
}

func drawPanel(screen *ebiten.Image, s tetris.Snapshot, x, y, cs float32) {
	px, py := int(x), int(y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE  %d", s.Score), px, py)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES  %d", s.Lines), px, py+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL  %d", s.Level), px, py+40)
	ebitenutil.DebugPrintAt(screen, "NEXT", px, py+80)

	preview := cs * 0.75
	next := tetris.BaseShape(s.Next)
	for off := range next.Cells() {
		drawCell(screen, x+float32(off.X)*preview, y+100+float32(off.Y)*preview, preview, kindColors[s.Next])
	}

	switch {
	case s.State == tetris.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR to restart", px, py+180)
	case s.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED\nP to resume", px, py+180)
	}

	ebitenutil.DebugPrintAt(screen, "arrows  move\nup/x z  rotate\nspace   drop\np       pause\nr       restart\nf1      debug", px, py+240)
}
