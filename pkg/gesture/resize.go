package gesture

import (
	"gridlayout"
	"gridlayout/pkg/grid"
)

// ResizeState is the ephemeral raw pixel size of an in-progress resize.
// It deliberately tracks the pointer's unclamped size: during the
// gesture the repaint follows the pointer even past the logical clamp
// boundary, so the element never feels stuck against it. The logical
// w/h handed to callbacks is always clamped.
type ResizeState struct {
	Width  float64
	Height float64
}

// Resize converts raw pixel sizes from a resize handle into grid spans
// for one item. The zero value is an idle machine; configure Config
// before starting a gesture.
type Resize struct {
	Config grid.Config

	active   bool
	size     ResizeState
	anchor   grid.Rect   // item rect at start; X/Y anchor the clamp
	bounds   grid.Bounds // item min/max, frozen at start
	min, max Size        // frozen pixel constraints
	w, h     int         // last computed grid span
}

// Active reports whether a resize gesture is in progress.
func (r *Resize) Active() bool { return r.active }

// RawSize returns the live unclamped pixel size for repainting during
// the gesture. ok is false when idle.
func (r *Resize) RawSize() (ResizeState, bool) {
	return r.size, r.active
}

// PixelConstraints returns the frozen pixel bounds computed at Start,
// for handing to the resize-handle widget. Valid only while active.
func (r *Resize) PixelConstraints() (min, max Size) {
	return r.min, r.max
}

// Start begins a resize for the item currently occupying rect, with
// the item's grid-unit bounds b. The pixel constraints are computed
// here, once: width is capped by the smaller of the item's max and the
// columns remaining right of the anchor, height is uncapped. They stay
// frozen for the whole gesture even if the container width changes
// mid-gesture, which avoids constraint jitter under live reflow.
func (r *Resize) Start(size Size, rect grid.Rect, b grid.Bounds) error {
	if r.active {
		return &ProtocolError{Gesture: "resize", Phase: PhaseStart, State: "resizing"}
	}
	maxW, maxH := grid.MaxPixelBounds(r.Config, rect.X, b)
	minW, minH := grid.MinPixelBounds(r.Config, b)

	r.active = true
	r.size = ResizeState{Width: size.Width, Height: size.Height}
	r.anchor = rect
	r.bounds = b
	r.min = Size{Width: minW, Height: minH}
	r.max = Size{Width: maxW, Height: maxH}
	r.w, r.h = rect.W, rect.H

	gridlayout.Logger().Debug("resize start",
		"width", size.Width, "height", size.Height, "maxWpx", maxW, "minWpx", minW)
	return nil
}

// Step applies one size report from the handle: the raw size is kept
// for the repaint, the grid span is recomputed and clamped (remaining
// columns first, then the item bounds, then the one-column floor).
func (r *Resize) Step(size Size) (w, h int, err error) {
	if !r.active {
		return 0, 0, &ProtocolError{Gesture: "resize", Phase: PhaseMove, State: "idle"}
	}
	r.size = ResizeState{Width: size.Width, Height: size.Height}
	w, h = grid.SizeToGrid(size.Width, size.Height, r.anchor.X, r.anchor.Y, r.Config)
	w, h = grid.ClampResize(w, h, r.anchor.X, r.anchor.Y, r.Config, r.bounds)
	r.w, r.h = w, h
	return w, h, nil
}

// Stop ends the gesture with the handle's final size, returning the
// clamped grid span and clearing the resize state.
func (r *Resize) Stop(size Size) (w, h int, err error) {
	if !r.active {
		return 0, 0, &ProtocolError{Gesture: "resize", Phase: PhaseStop, State: "idle"}
	}
	w, h = grid.SizeToGrid(size.Width, size.Height, r.anchor.X, r.anchor.Y, r.Config)
	w, h = grid.ClampResize(w, h, r.anchor.X, r.anchor.Y, r.Config, r.bounds)
	r.active = false
	r.size = ResizeState{}
	gridlayout.Logger().Debug("resize stop", "w", w, "h", h)
	return w, h, nil
}

// ResizeEvent carries the payload for one resize phase: the absolute
// pixel size reported by the handle widget.
type ResizeEvent struct {
	Size Size
}

// Handle dispatches one resize event by phase. rect and b are the
// item's current grid rectangle and bounds, consulted only at
// PhaseStart. An unrecognized phase is a ProtocolError.
func (r *Resize) Handle(p Phase, ev ResizeEvent, rect grid.Rect, b grid.Bounds) (w, h int, err error) {
	switch p {
	case PhaseStart:
		if err := r.Start(ev.Size, rect, b); err != nil {
			return 0, 0, err
		}
		return rect.W, rect.H, nil
	case PhaseMove:
		return r.Step(ev.Size)
	case PhaseStop:
		return r.Stop(ev.Size)
	default:
		return 0, 0, &ProtocolError{Gesture: "resize", Phase: p, State: r.stateName()}
	}
}

func (r *Resize) stateName() string {
	if r.active {
		return "resizing"
	}
	return "idle"
}
