// Package debugui draws Dear ImGui windows over a running game: scheduler
// timings, the engine's state machine and the frame time graph.
package debugui

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Reith19/Gaming/ecs"
)

// Item holds a Dear ImGui render function drawn once per frame while the
// overlay is visible.
type Item struct {
	Render func()
}

// Items is the singleton list of windows the overlay draws.
type Items struct {
	List    []Item
	Visible bool
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends check it before treating key presses as game commands.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem records Dear ImGui's input capture state and defers every
// item's render function to the end of the frame.
type ImguiSystem struct {
	Items      ecs.Singleton[Items]
	InputState ecs.Singleton[InputState]
}

func (s *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	items := s.Items.Get()
	state := s.InputState.Get()
	if !items.Visible {
		*state = InputState{}
		return
	}

	io := imgui.CurrentIO()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range items.List {
		frame.Commands.Defer(item.Render)
	}
}

// Overlay owns the debug windows and the scheduler that draws them. Call
// Execute between the backend's BeginFrame and EndFrame.
type Overlay struct {
	scheduler *ecs.Scheduler
	items     *Items
	input     *InputState
	last      time.Time
}

func NewOverlay(visible bool, items ...Item) *Overlay {
	storage := ecs.NewStorage()
	o := &Overlay{
		scheduler: ecs.NewScheduler(storage),
		items:     ecs.NewSingleton(storage, Items{List: items, Visible: visible}).Get(),
		input:     ecs.NewSingleton(storage, InputState{}).Get(),
	}
	o.scheduler.Register(&ImguiSystem{})
	return o
}

// Add appends an item.
func (o *Overlay) Add(item Item) {
	o.items.List = append(o.items.List, item)
}

func (o *Overlay) Visible() bool { return o.items.Visible }

// Toggle flips visibility and returns the new value.
func (o *Overlay) Toggle() bool {
	o.items.Visible = !o.items.Visible
	return o.items.Visible
}

// Input returns the capture state recorded by the last Execute.
func (o *Overlay) Input() InputState { return *o.input }

// Stats returns the overlay scheduler's timings.
func (o *Overlay) Stats() ecs.SchedulerStats { return o.scheduler.GetStats() }

// Execute runs one overlay frame.
func (o *Overlay) Execute() {
	now := time.Now()
	var dt time.Duration
	if !o.last.IsZero() {
		dt = now.Sub(o.last)
	}
	o.last = now

	o.scheduler.Once(dt)
}
