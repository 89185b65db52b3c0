package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Reith19/Gaming/config"
	applog "github.com/Reith19/Gaming/log"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	workers := flag.Int("engines", runtime.NumCPU(), "The number of engines driven concurrently.")
	seed := flag.Uint64("seed", 0, "Seed for piece sequences and input; 0 uses the config seed or a random one.")
	configPath := flag.String("config", "", "Optional config file.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	app, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := applog.New(os.Stderr, "blockfall-stress", app.Log.Level, app.Log.Caller)

	if *seed == 0 {
		*seed = app.Debug.Seed
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	report := &Report{
		Duration:       *duration,
		Workers:        *workers,
		Seed:           *seed,
		Rows:           app.Game.Rows,
		Cols:           app.Game.Cols,
		Randomizer:     app.Game.Randomizer,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running stress test", "duration", *duration, "engines", *workers, "seed", *seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	results := make([]workerResult, *workers)
	g, ctx := errgroup.WithContext(ctx)
	for i := range *workers {
		g.Go(func() error {
			res, err := runWorker(ctx, i, app.Game, *seed, 0, logger)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal("worker failed", "err", err)
	}

	report.TotalTime = time.Since(startTime)
	report.Merge(results)
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished", "ticks", report.TotalTicks, "games", report.Games)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", "err", err)
	}
	fmt.Println("--- End of Report ---")
}
