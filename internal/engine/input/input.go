// Package input turns SDL2 events into game events and held-key state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/aimlab/internal/engine/camera"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	RelX   int
	RelY   int
	Button uint8
}

// Input collects the events of one frame.
type Input struct {
	events []Event
	keys   []uint8
}

// New creates an input handler.
func New() *Input {
	return &Input{events: make([]Event, 0, 16)}
}

// Update polls pending SDL events. Returns true when the user asked to quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		e, ok := Translate(ev)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		if e.Type == EventQuit {
			quit = true
		}
	}
	i.keys = sdl.GetKeyboardState()
	return quit
}

// Translate converts one SDL event. ok is false for events the game ignores.
func Translate(ev sdl.Event) (Event, bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		t := EventKeyUp
		if e.Type == sdl.KEYDOWN {
			t = EventKeyDown
		}
		return Event{Type: t, Key: e.Keysym.Scancode, Repeat: e.Repeat != 0}, true

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			RelX:   int(e.XRel),
			RelY:   int(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventMouseDown
		}
		return Event{Type: t, MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}, true
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether scancode went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && !e.Repeat && e.Key == scancode {
			return true
		}
	}
	return false
}

// MouseDelta sums relative mouse motion for this frame.
func (i *Input) MouseDelta() (dx, dy float32) {
	for _, e := range i.events {
		if e.Type == EventMouseMove {
			dx += float32(e.RelX)
			dy += float32(e.RelY)
		}
	}
	return dx, dy
}

// Movement returns the held WASD keys.
func (i *Input) Movement() camera.Movement {
	return MovementFromKeys(i.keys)
}

// MovementFromKeys reads WASD from an SDL keyboard state array.
func MovementFromKeys(keys []uint8) camera.Movement {
	held := func(sc sdl.Scancode) bool {
		return int(sc) < len(keys) && keys[sc] != 0
	}
	var m camera.Movement
	if held(sdl.SCANCODE_W) {
		m |= camera.MoveForward
	}
	if held(sdl.SCANCODE_S) {
		m |= camera.MoveBackward
	}
	if held(sdl.SCANCODE_A) {
		m |= camera.MoveLeft
	}
	if held(sdl.SCANCODE_D) {
		m |= camera.MoveRight
	}
	return m
}
