// Package gesture implements the drag and resize state machines for a
// single grid item. Each machine runs Idle -> active -> Idle; the two
// are independent because their underlying event sources are distinct
// (a pointer capture library for drags, a handle widget for resizes).
// Keeping them mutually exclusive per item is the caller's job; each
// machine individually rejects a re-entrant start.
//
// All transitions happen synchronously inside the host's event
// callbacks. There is no internal locking: an item's machines are owned
// by one event loop.
package gesture

import "fmt"

// Phase identifies one event of a gesture: its start, a movement or
// size step, and its stop. Dispatching over Phase is a switch, so an
// unknown value is rejected with a ProtocolError instead of being
// looked up by name and silently dropped.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseStop
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseStop:
		return "stop"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ClientRect is the absolute pixel rectangle of an element as reported
// by the rendering surface.
type ClientRect struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// ParentGeometry describes the positioning ancestor that establishes
// the coordinate origin for an item, including its scroll offsets.
type ParentGeometry struct {
	Rect       ClientRect
	ScrollLeft float64
	ScrollTop  float64
}

// Size is an absolute pixel size as delivered by a resize handle.
type Size struct {
	Width  float64
	Height float64
}
