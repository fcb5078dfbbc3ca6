// Package layout holds an ordered collection of grid items for one
// container. It validates placements against the grid configuration
// and commits gesture results into the durable item rects. It does not
// rearrange siblings: collision resolution between items is the
// caller's concern.
package layout

import (
	"fmt"

	"gridlayout/pkg/grid"
	"gridlayout/pkg/item"
)

// Layout owns the durable state for a set of items sharing one grid.
type Layout struct {
	Config grid.Config

	items []*item.Item
	byID  map[string]*item.Item
}

// New creates an empty layout over cfg.
func New(cfg grid.Config) *Layout {
	return &Layout{
		Config: cfg,
		byID:   make(map[string]*item.Item),
	}
}

// Add creates an item and appends it to the layout. The rect must
// already satisfy the grid bounds; an out-of-bounds rect or a duplicate
// ID is an error rather than a silent clamp, because layout definitions
// are authored data, not gesture input.
func (l *Layout) Add(id string, rect grid.Rect, opts item.Options) (*item.Item, error) {
	if id == "" {
		return nil, fmt.Errorf("layout: empty item id")
	}
	if _, ok := l.byID[id]; ok {
		return nil, fmt.Errorf("layout: duplicate item id %q", id)
	}
	if err := l.validate(rect); err != nil {
		return nil, fmt.Errorf("layout: item %q: %w", id, err)
	}
	it := item.New(id, rect, l.Config, opts)
	l.items = append(l.items, it)
	l.byID[id] = it
	return it, nil
}

func (l *Layout) validate(r grid.Rect) error {
	if r.W < 1 || r.H < 1 {
		return fmt.Errorf("degenerate size %dx%d", r.W, r.H)
	}
	if r.X < 0 || r.Y < 0 || r.X+r.W > l.Config.Columns || r.Y+r.H > l.Config.MaxRows {
		return fmt.Errorf("rect %+v outside %dx%d grid", r, l.Config.Columns, l.Config.MaxRows)
	}
	return nil
}

// Get returns the item with the given ID, or nil.
func (l *Layout) Get(id string) *item.Item {
	return l.byID[id]
}

// Items returns the items in insertion order. The slice is shared;
// callers must not modify it.
func (l *Layout) Items() []*item.Item {
	return l.items
}

// Len returns the number of items.
func (l *Layout) Len() int {
	return len(l.items)
}

// CommitMove applies a drag result: the item's anchor moves to (x,y),
// clamped to the grid. Commits are the only way durable item state
// changes; gestures themselves never touch it.
func (l *Layout) CommitMove(id string, x, y int) error {
	it := l.byID[id]
	if it == nil {
		return fmt.Errorf("layout: unknown item %q", id)
	}
	r := it.Rect
	r.X, r.Y = x, y
	it.Rect = grid.ClampRect(r, l.Config)
	return nil
}

// CommitResize applies a resize result: the item's span becomes (w,h),
// clamped to the grid and the item's own bounds.
func (l *Layout) CommitResize(id string, w, h int) error {
	it := l.byID[id]
	if it == nil {
		return fmt.Errorf("layout: unknown item %q", id)
	}
	w, h = grid.ClampResize(w, h, it.Rect.X, it.Rect.Y, l.Config, it.Opts.Bounds)
	it.Rect.W, it.Rect.H = w, h
	return nil
}

// BottomRow returns the lowest occupied row edge, in grid units.
func (l *Layout) BottomRow() int {
	bottom := 0
	for _, it := range l.items {
		if edge := it.Rect.Y + it.Rect.H; edge > bottom {
			bottom = edge
		}
	}
	return bottom
}

// Height returns the container's pixel height: the occupied rows plus
// the internal margins and the top/bottom padding.
func (l *Layout) Height() float64 {
	rows := l.BottomRow()
	if rows == 0 {
		return l.Config.MarginY * 2
	}
	return l.Config.RowHeight*float64(rows) + l.Config.MarginY*float64(rows+1)
}
