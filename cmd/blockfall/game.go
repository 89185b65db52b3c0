package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Reith19/Gaming/config"
	"github.com/Reith19/Gaming/controls"
	applog "github.com/Reith19/Gaming/log"
	"github.com/Reith19/Gaming/tetris"
	"github.com/Reith19/Gaming/tetris/debugui"
	debugui_ebiten "github.com/Reith19/Gaming/tetris/debugui/ebiten"
)

type binding struct {
	key ebiten.Key
	cmd controls.Command
}

var bindings = []binding{
	{ebiten.KeyLeft, controls.MoveLeft},
	{ebiten.KeyRight, controls.MoveRight},
	{ebiten.KeyDown, controls.SoftDrop},
	{ebiten.KeyUp, controls.RotateClockwise},
	{ebiten.KeyX, controls.RotateClockwise},
	{ebiten.KeyZ, controls.RotateCounterClockwise},
	{ebiten.KeySpace, controls.HardDrop},
	{ebiten.KeyP, controls.TogglePause},
	{ebiten.KeyR, controls.Restart},
	{ebiten.KeyF1, controls.ToggleOverlay},
	{ebiten.KeyEscape, controls.Quit},
	{ebiten.KeyQ, controls.Quit},
}

// Game implements ebiten.Game around one engine.
type Game struct {
	engine  *tetris.Engine
	limiter *controls.Limiter
	backend debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
	log     *log.Logger
	reloads <-chan config.App

	cellSize int
	ghost    bool
}

func newGame(engine *tetris.Engine, app config.App, backend debugui_ebiten.ImguiBackend, overlay *debugui.Overlay, logger *log.Logger) *Game {
	return &Game{
		engine:   engine,
		limiter:  controls.NewLimiter(app.Input.Cooldown),
		backend:  backend,
		overlay:  overlay,
		log:      logger,
		cellSize: app.Display.CellSize,
		ghost:    app.Display.Ghost,
	}
}

func (g *Game) Update() error {
	g.backend.BeginFrame()
	defer g.backend.EndFrame()

	g.applyReloads()

	if g.handleInput(time.Now()) {
		return ebiten.Termination
	}

	g.engine.Tick(time.Second / time.Duration(ebiten.TPS()))
	g.overlay.Execute()
	return nil
}

// handleInput issues commands for pressed keys and reports whether the player
// asked to quit.
func (g *Game) handleInput(now time.Time) bool {
	if g.overlay.Input().WantCaptureKeyboard {
		return false
	}

	for _, b := range bindings {
		pressed := inpututil.IsKeyJustPressed(b.key)
		if b.cmd.Repeats() {
			pressed = ebiten.IsKeyPressed(b.key)
		}
		if !pressed || !g.limiter.Allow(b.cmd, now) {
			continue
		}

		switch b.cmd {
		case controls.Quit:
			return true
		case controls.ToggleOverlay:
			g.log.Debug("overlay", "visible", g.overlay.Toggle())
		default:
			controls.Apply(g.engine, b.cmd)
		}
	}
	return false
}

func (g *Game) applyReloads() {
	select {
	case app := <-g.reloads:
		g.limiter.SetCooldown(app.Input.Cooldown)
		g.log.SetLevel(applog.ParseLevel(app.Log.Level))
		g.ghost = app.Display.Ghost
		g.log.Info("config reloaded", "cooldown", app.Input.Cooldown, "level", app.Log.Level)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawGame(screen, g.engine.Snapshot(), g.cellSize, g.ghost)
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
