package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Reith19/Gaming/tetris"
)

// StateLines describes a snapshot as label/value pairs.
func StateLines(s tetris.Snapshot) [][2]string {
	active := "none"
	if s.Active != nil {
		active = fmt.Sprintf("%s at (%d, %d), ghost row %d", s.Active.Kind, s.Active.Anchor.X, s.Active.Anchor.Y, s.GhostY)
	}

	return [][2]string{
		{"Session", s.Session},
		{"State", s.State.String()},
		{"Paused", fmt.Sprintf("%t", s.Paused)},
		{"Active", active},
		{"Next", s.Next.String()},
		{"Score", fmt.Sprintf("%d", s.Score)},
		{"Lines", fmt.Sprintf("%d", s.Lines)},
		{"Level", fmt.Sprintf("%d", s.Level)},
		{"Interval", s.Interval.String()},
		{"Ticks", fmt.Sprintf("%d", s.Ticks)},
	}
}

// EngineState renders the engine's state machine and counters, plus the
// most recent events.
type EngineState struct {
	engine *tetris.Engine
	events []string
	keep   int
}

// NewEngineState subscribes to the engine and remembers the last keep events.
func NewEngineState(engine *tetris.Engine, keep int) *EngineState {
	es := &EngineState{engine: engine, keep: max(keep, 1)}
	engine.Subscribe(es.record)
	return es
}

func (es *EngineState) record(ev tetris.Event) {
	line := ev.Kind.String()
	switch ev.Kind {
	case tetris.EventPieceSpawned, tetris.EventPieceLocked:
		line += " " + ev.Piece.String()
	case tetris.EventLinesCleared:
		line += fmt.Sprintf(" %d", ev.Lines)
	case tetris.EventScoreChanged:
		line += fmt.Sprintf(" %d", ev.Score)
	case tetris.EventLevelChanged:
		line += fmt.Sprintf(" %d", ev.Level)
	}

	es.events = append(es.events, line)
	if len(es.events) > es.keep {
		es.events = es.events[len(es.events)-es.keep:]
	}
}

// Events returns the remembered events, oldest first.
func (es *EngineState) Events() []string { return es.events }

func (es *EngineState) Item() Item {
	return Item{Render: es.Render}
}

func (es *EngineState) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(380, 300), imgui.CondOnce)
	if !imgui.BeginV("Engine", nil, 0) {
		imgui.End()
		return
	}

	for _, kv := range StateLines(es.engine.Snapshot()) {
		imgui.Text(fmt.Sprintf("%s: %s", kv[0], kv[1]))
	}

	imgui.Separator()
	if imgui.TreeNodeStr("Recent Events") {
		for i := len(es.events) - 1; i >= 0; i-- {
			imgui.BulletText(es.events[i])
		}
		imgui.TreePop()
	}

	imgui.End()
}
