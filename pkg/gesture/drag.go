package gesture

import (
	"gridlayout"
	"gridlayout/pkg/grid"
)

// DragState is the ephemeral pixel position of an in-progress drag.
// It exists only between Start and Stop.
type DragState struct {
	Top  float64
	Left float64
}

// Drag converts raw pointer deltas into grid coordinates for one item.
// The zero value is an idle machine; configure Config and Direction
// before starting a gesture.
type Drag struct {
	Config    grid.Config
	Direction grid.Direction

	active bool
	pos    DragState
	w, h   int // item span, frozen at start, used for the position clamp
	x, y   int // last computed grid coordinates
}

// Active reports whether a drag gesture is in progress.
func (d *Drag) Active() bool { return d.active }

// Position returns the live pixel position for repainting during the
// gesture. ok is false when idle.
func (d *Drag) Position() (DragState, bool) {
	return d.pos, d.active
}

// Start begins a drag for the item currently occupying rect. The
// baseline position is the element's offset from its positioning
// ancestor, corrected for the ancestor's scroll offset. In RTL the
// offset is anchored from the ancestor's right edge instead, because
// right-to-left layouts measure horizontal position from the right:
//
//	left = -(client.Right - parent.Right - parent.ScrollLeft)
//
// A nil parent means there is no positioning ancestor and the offset
// cannot be computed: InvalidStateError. Starting while already
// dragging is a ProtocolError.
func (d *Drag) Start(client ClientRect, parent *ParentGeometry, rect grid.Rect) (x, y int, err error) {
	if d.active {
		return 0, 0, &ProtocolError{Gesture: "drag", Phase: PhaseStart, State: "dragging"}
	}
	if parent == nil {
		return 0, 0, &InvalidStateError{Reason: "drag start without a positioning ancestor"}
	}

	top := client.Top - parent.Rect.Top + parent.ScrollTop
	var left float64
	if d.Direction == grid.RTL {
		left = -(client.Right - parent.Rect.Right - parent.ScrollLeft)
	} else {
		left = client.Left - parent.Rect.Left + parent.ScrollLeft
	}

	d.active = true
	d.pos = DragState{Top: top, Left: left}
	d.w, d.h = rect.W, rect.H
	d.x, d.y = grid.PixelToGrid(top, left, d.Config, d.w, d.h)

	gridlayout.Logger().Debug("drag start",
		"top", top, "left", left, "x", d.x, "y", d.y, "dir", d.Direction.String())
	return d.x, d.y, nil
}

// Move applies one pointer delta. Deltas accumulate by re-basing: the
// stored position is replaced with the new one, never re-derived from
// the original start. RTL negates the horizontal delta. The new pixel
// position is converted to grid coordinates and clamped so the item
// stays fully inside the grid.
func (d *Drag) Move(dx, dy float64) (x, y int, err error) {
	if !d.active {
		return 0, 0, &ProtocolError{Gesture: "drag", Phase: PhaseMove, State: "idle"}
	}
	if d.Direction == grid.RTL {
		dx = -dx
	}
	d.pos.Left += dx
	d.pos.Top += dy
	d.x, d.y = grid.PixelToGrid(d.pos.Top, d.pos.Left, d.Config, d.w, d.h)
	return d.x, d.y, nil
}

// Stop ends the gesture, returning the final grid coordinates and
// clearing the drag state.
func (d *Drag) Stop() (x, y int, err error) {
	if !d.active {
		return 0, 0, &ProtocolError{Gesture: "drag", Phase: PhaseStop, State: "idle"}
	}
	x, y = d.x, d.y
	d.active = false
	d.pos = DragState{}
	gridlayout.Logger().Debug("drag stop", "x", x, "y", y)
	return x, y, nil
}

// DragEvent carries the payload for one drag phase: the element and
// ancestor geometry for PhaseStart, the deltas for PhaseMove.
type DragEvent struct {
	Client ClientRect
	Parent *ParentGeometry
	DX, DY float64
}

// Handle dispatches one drag event by phase. rect is the item's current
// grid rectangle, consulted only at PhaseStart. An unrecognized phase
// is a ProtocolError.
func (d *Drag) Handle(p Phase, ev DragEvent, rect grid.Rect) (x, y int, err error) {
	switch p {
	case PhaseStart:
		return d.Start(ev.Client, ev.Parent, rect)
	case PhaseMove:
		return d.Move(ev.DX, ev.DY)
	case PhaseStop:
		return d.Stop()
	default:
		return 0, 0, &ProtocolError{Gesture: "drag", Phase: p, State: d.stateName()}
	}
}

func (d *Drag) stateName() string {
	if d.active {
		return "dragging"
	}
	return "idle"
}
