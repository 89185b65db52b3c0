package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Reith19/Gaming/ecs"
	"github.com/Reith19/Gaming/tetris"
)

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(frames, 1))}
}

// Push records one frame.
func (h *FrameHistory) Push(d time.Duration) {
	h.samples[h.index] = float32(d.Seconds() * 1000)
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average returns the mean of the recorded frames in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples {
		sum += v
	}
	return sum / float32(h.filled)
}

// Samples returns the ring buffer in storage order.
func (h *FrameHistory) Samples() []float32 { return h.samples }

// SystemRows formats scheduler stats as table rows: name, runs, last, avg, max.
func SystemRows(stats ecs.SchedulerStats) [][5]string {
	rows := make([][5]string, len(stats.Systems))
	for i, p := range stats.Systems {
		rows[i] = [5]string{
			p.Name,
			fmt.Sprintf("%d", p.ExecutionCount),
			p.LastDuration.String(),
			p.AvgDuration.String(),
			p.MaxDuration.String(),
		}
	}
	return rows
}

// PerformanceStats renders the frame time graph and per-system timings of an
// engine's update scheduler.
type PerformanceStats struct {
	engine  *tetris.Engine
	history *FrameHistory
	last    time.Time
}

func NewPerformanceStats(engine *tetris.Engine, historyFrames int) *PerformanceStats {
	return &PerformanceStats{engine: engine, history: NewFrameHistory(historyFrames)}
}

// Item wraps the window for an Overlay.
func (ps *PerformanceStats) Item() Item {
	return Item{Render: ps.Render}
}

func (ps *PerformanceStats) Render() {
	now := time.Now()
	if !ps.last.IsZero() {
		ps.history.Push(now.Sub(ps.last))
	}
	ps.last = now

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(380, 260), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.history.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ps.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	stats := ps.engine.Stats()
	if imgui.TreeNodeStr(fmt.Sprintf("Scheduler (%d systems, %d runs)", stats.SystemCount, stats.TotalExecutions)) {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, row := range SystemRows(stats) {
				imgui.TableNextRow()
				for _, cell := range row {
					imgui.TableNextColumn()
					imgui.Text(cell)
				}
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
