package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/Reith19/Gaming/ecs"
	"github.com/Reith19/Gaming/tetris"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Workers    int
	Seed       uint64
	Rows, Cols int
	Randomizer tetris.Randomizer

	// Results
	TotalTicks     int64
	TotalCommands  int64
	TotalTime      time.Duration
	TickTime       Stats
	Games          int
	TotalLines     int
	BestScore      int
	AvgScore       float64
	MaxLevel       int
	Systems        []ecs.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats keeps running duration aggregates. Individual samples are not
// retained, so memory stays flat however long the run.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Total time.Duration
	Count int64
}

// Add records one sample.
func (s *Stats) Add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Total += d
	s.Count++
}

// Merge folds o into s.
func (s *Stats) Merge(o Stats) {
	if o.Count == 0 {
		return
	}
	if s.Count == 0 || o.Min < s.Min {
		s.Min = o.Min
	}
	s.Max = max(s.Max, o.Max)
	s.Total += o.Total
	s.Count += o.Count
}

func (s *Stats) Finalize() {
	if s.Count > 0 {
		s.Avg = s.Total / time.Duration(s.Count)
	}
}

// Merge folds worker results into the report.
func (r *Report) Merge(results []workerResult) {
	var ticks Stats
	var scoreSum int
	byName := map[string]int{}

	for _, res := range results {
		r.TotalTicks += res.Ticks
		r.TotalCommands += res.Commands
		ticks.Merge(res.TickTime)

		for _, g := range res.Games {
			r.Games++
			r.TotalLines += g.Lines
			scoreSum += g.Score
			r.BestScore = max(r.BestScore, g.Score)
			r.MaxLevel = max(r.MaxLevel, g.Level)
		}

		for _, p := range res.Systems.Systems {
			i, ok := byName[p.Name]
			if !ok {
				byName[p.Name] = len(r.Systems)
				r.Systems = append(r.Systems, p)
				continue
			}
			merged := &r.Systems[i]
			merged.ExecutionCount += p.ExecutionCount
			merged.TotalDuration += p.TotalDuration
			merged.MinDuration = min(merged.MinDuration, p.MinDuration)
			merged.MaxDuration = max(merged.MaxDuration, p.MaxDuration)
		}
	}

	for i := range r.Systems {
		if p := &r.Systems[i]; p.ExecutionCount > 0 {
			p.AvgDuration = p.TotalDuration / time.Duration(p.ExecutionCount)
		}
	}

	ticks.Finalize()
	r.TickTime = ticks
	if r.Games > 0 {
		r.AvgScore = float64(scoreSum) / float64(r.Games)
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Concurrent Engines:** {{.Workers}}
- **Seed:** {{.Seed}}
- **Board:** {{.Rows}}x{{.Cols}}, {{.Randomizer}} randomizer

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Accepted Commands:** {{.TotalCommands}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Engine Systems
| System | Runs | Avg | Min | Max |
|--------|------|-----|-----|-----|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Games
- **Finished Games:** {{.Games}}
- **Lines Cleared:** {{.TotalLines}}
- **Best Score:** {{.BestScore}}
- **Average Score:** {{printf "%.1f" .AvgScore}}
- **Highest Level:** {{.MaxLevel}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
