package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Reith19/Gaming/ecs"
	"github.com/Reith19/Gaming/tetris"
)

// frameDelta is the simulated time between two ticks.
const frameDelta = time.Second / 60

type gameResult struct {
	Score int
	Lines int
	Level int
}

type workerResult struct {
	Ticks    int64
	Commands int64
	Games    []gameResult
	TickTime Stats
	Systems  ecs.SchedulerStats
}

// runWorker drives one engine with random input until ctx is done or, when
// maxSteps is positive, after maxSteps frames. A finished game is recorded and
// restarted.
func runWorker(ctx context.Context, id int, cfg tetris.Config, seed uint64, maxSteps int64, logger *log.Logger) (workerResult, error) {
	rng := rand.New(rand.NewPCG(seed, uint64(id)))

	e, err := tetris.New(cfg, tetris.WithRand(rng), tetris.WithLogger(logger.With("worker", id)))
	if err != nil {
		return workerResult{}, err
	}

	var res workerResult
	e.Subscribe(func(ev tetris.Event) {
		res.Games = append(res.Games, gameResult{Score: ev.Score, Lines: e.Snapshot().Lines, Level: ev.Level})
	}, tetris.EventGameOver)

Loop:
	for step := int64(0); maxSteps <= 0 || step < maxSteps; step++ {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		if e.State() == tetris.GameOver {
			e.Restart()
			continue
		}

		if randomCommand(e, rng) {
			res.Commands++
		}

		start := time.Now()
		e.Tick(frameDelta)
		res.TickTime.Add(time.Since(start))
		res.Ticks++
	}

	res.TickTime.Finalize()
	res.Systems = e.Stats()
	return res, nil
}

// randomCommand issues one player command roughly four frames in five.
func randomCommand(e *tetris.Engine, rng *rand.Rand) bool {
	switch rng.IntN(10) {
	case 0, 1:
		return e.MoveLeft()
	case 2, 3:
		return e.MoveRight()
	case 4:
		return e.RotateClockwise()
	case 5:
		return e.RotateCounterClockwise()
	case 6:
		return e.SoftDrop()
	case 7:
		return e.HardDrop()
	default:
		return false
	}
}
