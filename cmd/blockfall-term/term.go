package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Reith19/Gaming/config"
	"github.com/Reith19/Gaming/controls"
	"github.com/Reith19/Gaming/tetris"
)

const frameInterval = 16 * time.Millisecond

var kindColors = map[tetris.Kind]tcell.Color{
	tetris.I: tcell.ColorAqua,
	tetris.O: tcell.ColorYellow,
	tetris.T: tcell.ColorPurple,
	tetris.S: tcell.ColorGreen,
	tetris.Z: tcell.ColorRed,
	tetris.L: tcell.ColorOrange,
	tetris.J: tcell.ColorBlue,
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// Term draws one engine into a terminal and feeds it key presses.
type Term struct {
	screen  tcell.Screen
	engine  *tetris.Engine
	limiter *controls.Limiter
	ghost   bool
}

func newTerm(screen tcell.Screen, engine *tetris.Engine, app config.App) *Term {
	return &Term{
		screen:  screen,
		engine:  engine,
		limiter: controls.NewLimiter(app.Input.Cooldown),
		ghost:   app.Display.Ghost,
	}
}

// keyCommand maps a key press onto a command.
func keyCommand(ev *tcell.EventKey) controls.Command {
	switch ev.Key() {
	case tcell.KeyLeft:
		return controls.MoveLeft
	case tcell.KeyRight:
		return controls.MoveRight
	case tcell.KeyDown:
		return controls.SoftDrop
	case tcell.KeyUp:
		return controls.RotateClockwise
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return controls.Quit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'x', 'X':
			return controls.RotateClockwise
		case 'z', 'Z':
			return controls.RotateCounterClockwise
		case ' ':
			return controls.HardDrop
		case 'p', 'P':
			return controls.TogglePause
		case 'r', 'R':
			return controls.Restart
		case 'q', 'Q':
			return controls.Quit
		}
	}
	return controls.None
}

// handle processes one terminal event and reports whether to keep running.
func (t *Term) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := keyCommand(ev)
		switch {
		case cmd == controls.Quit:
			return false
		case cmd == controls.None || !t.limiter.Allow(cmd, now):
		default:
			controls.Apply(t.engine, cmd)
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}

	return true
}

func (t *Term) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	t.draw()
	for {
		select {
		case ev := <-eventChan:
			if !t.handle(ev, time.Now()) {
				return
			}
			t.draw()

		case now := <-ticker.C:
			t.engine.Tick(now.Sub(last))
			last = now
			t.draw()
		}
	}
}

func (t *Term) draw() {
	s := t.engine.Snapshot()
	t.screen.Clear()

	for y := range s.Rows {
		t.screen.SetContent(0, y, '│', nil, borderStyle)
		t.screen.SetContent(2*s.Cols+1, y, '│', nil, borderStyle)
	}
	for x := range 2*s.Cols + 2 {
		t.screen.SetContent(x, s.Rows, '─', nil, borderStyle)
	}
	t.screen.SetContent(0, s.Rows, '└', nil, borderStyle)
	t.screen.SetContent(2*s.Cols+1, s.Rows, '┘', nil, borderStyle)

	for y, row := range s.Cells {
		for x, cell := range row {
			if cell.Occupied() {
				t.putCell(x, y, '█', tcell.StyleDefault.Foreground(kindColors[cell.Kind]))
			}
		}
	}

	if t.ghost {
		for _, p := range s.Ghost() {
			t.putCell(p.X, p.Y, '░', ghostStyle)
		}
	}

	if s.Active != nil {
		style := tcell.StyleDefault.Foreground(kindColors[s.Active.Kind])
		for p := range s.Active.Cells() {
			if p.Y >= 0 {
				t.putCell(p.X, p.Y, '█', style)
			}
		}
	}

	px := 2*s.Cols + 4
	t.print(px, 0, fmt.Sprintf("SCORE %d", s.Score))
	t.print(px, 1, fmt.Sprintf("LINES %d", s.Lines))
	t.print(px, 2, fmt.Sprintf("LEVEL %d", s.Level))
	t.print(px, 4, "NEXT")
	next := tetris.BaseShape(s.Next)
	for off := range next.Cells() {
		t.screen.SetContent(px+2*off.X, 5+off.Y, '█', nil, tcell.StyleDefault.Foreground(kindColors[s.Next]))
		t.screen.SetContent(px+2*off.X+1, 5+off.Y, '█', nil, tcell.StyleDefault.Foreground(kindColors[s.Next]))
	}

	switch {
	case s.State == tetris.GameOver:
		t.print(px, 8, "GAME OVER - r to restart")
	case s.Paused:
		t.print(px, 8, "PAUSED - p to resume")
	}

	t.screen.Show()
}

// putCell fills the two terminal columns of one board cell.
func (t *Term) putCell(x, y int, r rune, style tcell.Style) {
	t.screen.SetContent(1+2*x, y, r, nil, style)
	t.screen.SetContent(2+2*x, y, r, nil, style)
}

func (t *Term) print(x, y int, text string) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, textStyle)
	}
}
