package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Reith19/Gaming/audio"
	"github.com/Reith19/Gaming/config"
	applog "github.com/Reith19/Gaming/log"
	"github.com/Reith19/Gaming/tetris/debugui"
	debugui_ebiten "github.com/Reith19/Gaming/tetris/debugui/ebiten"
)

func main() {
	configPath := flag.String("config", "", "Optional config file; BLOCKFALL_* variables override it.")
	flag.Parse()

	loader := config.NewLoader(*configPath)
	app, err := loader.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := applog.Stdout("blockfall", app.Log.Level, app.Log.Caller)

	engine, err := app.NewEngine(logger)
	if err != nil {
		logger.Fatal("create engine", "err", err)
	}

	if app.Audio.Enabled {
		player, err := audio.Open(app.Audio.SampleRate, app.Audio.Volume, logger)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer player.Close()
			player.Attach(engine)
		}
	}

	width, height := screenSize(app.Game, app.Display.CellSize)
	backend := debugui_ebiten.NewImguiBackend(app.Display.Title, width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	overlay := debugui.NewOverlay(app.Debug.Overlay,
		debugui.NewPerformanceStats(engine, 120).Item(),
		debugui.NewEngineState(engine, 20).Item(),
	)

	game := newGame(engine, app, backend, overlay, logger)

	reloads := make(chan config.App, 1)
	loader.Watch(func(next config.App, err error) {
		if err != nil {
			logger.Warn("config reload rejected", "err", err)
			return
		}
		select {
		case reloads <- next:
		default:
		}
	})
	game.reloads = reloads

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop", "err", err)
	}
}
