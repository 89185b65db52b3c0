package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/Reith19/Gaming/audio"
	"github.com/Reith19/Gaming/config"
	applog "github.com/Reith19/Gaming/log"
)

func main() {
	configPath := flag.String("config", "", "Optional config file; BLOCKFALL_* variables override it.")
	logPath := flag.String("log", "", "Write logs to this file. The terminal is owned by the game, so logs are dropped by default.")
	flag.Parse()

	app, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := applog.Discard()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		logger = applog.New(f, "blockfall-term", app.Log.Level, app.Log.Caller)
	}

	if err := run(app, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(app config.App, logger *log.Logger) error {
	engine, err := app.NewEngine(logger)
	if err != nil {
		return err
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	newTerm(screen, engine, app).run()
	return nil
}
