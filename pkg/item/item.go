// Package item ties one grid item together: the durable grid rectangle,
// the gesture machines, the style projection, and the host callbacks.
package item

import (
	"gridlayout/pkg/gesture"
	"gridlayout/pkg/grid"
	"gridlayout/pkg/style"
)

// DragFunc is invoked with the clamped grid coordinates after a drag
// phase, together with the raw event that produced them.
type DragFunc func(itemID string, x, y int, ev gesture.DragEvent)

// ResizeFunc is invoked with the clamped grid span after a resize
// phase, together with the raw event that produced them.
type ResizeFunc func(itemID string, w, h int, ev gesture.ResizeEvent)

// Options configures one item's behavior and rendering.
type Options struct {
	Draggable     bool
	Resizable     bool
	Static        bool // static items ignore both gestures
	UseTransforms bool // place with a translation instead of top/left
	UsePercent    bool // top/left mode only; see style.Descriptor
	Direction     grid.Direction
	Bounds        grid.Bounds
}

// DefaultOptions returns the options a plain interactive item gets:
// draggable, resizable, transform placement, LTR.
func DefaultOptions() Options {
	return Options{
		Draggable:     true,
		Resizable:     true,
		UseTransforms: true,
	}
}

// Item is the composition root for one grid item. Rect is the durable
// source of truth, owned by the surrounding layout: the item never
// commits gesture results into it, it only reports them through the
// callbacks. The pixel rectangle is re-derived on every Render, never
// stored, so rendering is a pure function of (Rect, Config, gesture
// state).
type Item struct {
	ID     string
	Rect   grid.Rect
	Config grid.Config
	Opts   Options

	drag   gesture.Drag
	resize gesture.Resize

	OnDragStart DragFunc
	OnDrag      DragFunc
	OnDragStop  DragFunc

	OnResizeStart ResizeFunc
	OnResize      ResizeFunc
	OnResizeStop  ResizeFunc
}

// New creates an item at rect and wires its gesture machines to cfg.
func New(id string, rect grid.Rect, cfg grid.Config, opts Options) *Item {
	it := &Item{
		ID:     id,
		Rect:   grid.ClampRect(rect, cfg),
		Config: cfg,
		Opts:   opts,
	}
	it.drag.Config = cfg
	it.drag.Direction = opts.Direction
	it.resize.Config = cfg
	return it
}

// Rendered is the output of one render pass: the computed style plus
// the class flags the rendering surface composes onto the element.
type Rendered struct {
	Style   style.Descriptor
	Classes []string
}

// Render recomputes the pixel rectangle from the current grid rect,
// overlays the live gesture state (the drag's pixel position, the
// resize's raw pixel size), and projects the result into a style.
func (it *Item) Render() Rendered {
	px := grid.GridToPixel(it.Rect.X, it.Rect.Y, it.Rect.W, it.Rect.H, it.Config)
	if pos, ok := it.drag.Position(); ok {
		px.Top = pos.Top
		px.Left = pos.Left
	}
	if size, ok := it.resize.RawSize(); ok {
		px.Width = size.Width
		px.Height = size.Height
	}

	mode := style.ModeTopLeft
	if it.Opts.UseTransforms {
		mode = style.ModeTransform
	}
	desc := style.Project(px, mode, it.Opts.Direction, it.Config, it.Opts.UsePercent)
	return Rendered{Style: desc, Classes: it.classes()}
}

// Style returns the computed style merged over the given caller and
// child property layers; the computed placement always wins.
func (it *Item) Style(caller, child map[string]string) map[string]string {
	return style.Merge(caller, child, it.Render().Style.CSS())
}

func (it *Item) classes() []string {
	classes := []string{"grid-item"}
	if it.Opts.Static {
		classes = append(classes, "static")
	}
	if it.draggable() {
		classes = append(classes, "draggable")
	}
	if it.drag.Active() {
		classes = append(classes, "dragging")
	}
	if it.resizable() {
		classes = append(classes, "resizable")
	}
	if it.resize.Active() {
		classes = append(classes, "resizing")
	}
	if it.Opts.UseTransforms {
		classes = append(classes, "css-transforms")
	}
	if it.Opts.Direction == grid.RTL {
		classes = append(classes, "rtl")
	}
	return classes
}

func (it *Item) draggable() bool { return it.Opts.Draggable && !it.Opts.Static }
func (it *Item) resizable() bool { return it.Opts.Resizable && !it.Opts.Static }

// Dragging reports whether a drag gesture is in progress.
func (it *Item) Dragging() bool { return it.drag.Active() }

// Resizing reports whether a resize gesture is in progress.
func (it *Item) Resizing() bool { return it.resize.Active() }

// HandleDrag feeds one drag event to the item. Events on an item that
// is not draggable are ignored. ProtocolError and InvalidStateError
// from the machine propagate to the caller; they indicate caller bugs
// and must not be swallowed.
func (it *Item) HandleDrag(phase gesture.Phase, ev gesture.DragEvent) error {
	if !it.draggable() {
		return nil
	}
	x, y, err := it.drag.Handle(phase, ev, it.Rect)
	if err != nil {
		return err
	}
	switch phase {
	case gesture.PhaseStart:
		it.fireDrag(it.OnDragStart, x, y, ev)
	case gesture.PhaseMove:
		it.fireDrag(it.OnDrag, x, y, ev)
	case gesture.PhaseStop:
		it.fireDrag(it.OnDragStop, x, y, ev)
	}
	return nil
}

// HandleResize feeds one resize event to the item. Events on an item
// that is not resizable are ignored; machine errors propagate.
func (it *Item) HandleResize(phase gesture.Phase, ev gesture.ResizeEvent) error {
	if !it.resizable() {
		return nil
	}
	w, h, err := it.resize.Handle(phase, ev, it.Rect, it.Opts.Bounds)
	if err != nil {
		return err
	}
	switch phase {
	case gesture.PhaseStart:
		it.fireResize(it.OnResizeStart, w, h, ev)
	case gesture.PhaseMove:
		it.fireResize(it.OnResize, w, h, ev)
	case gesture.PhaseStop:
		it.fireResize(it.OnResizeStop, w, h, ev)
	}
	return nil
}

func (it *Item) fireDrag(f DragFunc, x, y int, ev gesture.DragEvent) {
	if f != nil {
		f(it.ID, x, y, ev)
	}
}

func (it *Item) fireResize(f ResizeFunc, w, h int, ev gesture.ResizeEvent) {
	if f != nil {
		f(it.ID, w, h, ev)
	}
}
