package grid

import "math"

// Bounds are the per-item size limits in grid units. A zero-value
// Bounds means unbounded: Min defaults to 0 and Max to the grid itself.
type Bounds struct {
	MinW, MinH int
	MaxW, MaxH int
}

// effectiveMax returns the max span, treating 0 as unbounded.
func effectiveMax(max, limit int) int {
	if max <= 0 || max > limit {
		return limit
	}
	return max
}

// ClampRect bounds a grid rectangle to the grid itself: the span is
// limited to the space remaining from the anchor and floored at zero.
// The anchor is clamped into the grid first so a far-out position does
// not produce a negative remaining span.
//
// ClampRect is idempotent: clamping an already-clamped rect is a no-op.
func ClampRect(r Rect, cfg Config) Rect {
	r.X = clampInt(r.X, 0, cfg.Columns)
	r.Y = clampInt(r.Y, 0, cfg.MaxRows)
	r.W = clampInt(r.W, 0, cfg.Columns-r.X)
	r.H = clampInt(r.H, 0, cfg.MaxRows-r.Y)
	return r
}

// ClampResize applies the full size clamp for a resize outcome anchored
// at (x,y): first the remaining grid space, then the item's own min/max
// bounds, and finally a floor of one column. A resized item may never
// degenerate to zero width; only drag-derived spans may pass through
// zero transiently, because a drag solves position rather than size.
func ClampResize(w, h, x, y int, cfg Config, b Bounds) (int, int) {
	w = clampInt(w, 0, cfg.Columns-x)
	h = clampInt(h, 0, cfg.MaxRows-y)
	w = clampInt(w, b.MinW, effectiveMax(b.MaxW, cfg.Columns-x))
	h = clampInt(h, b.MinH, effectiveMax(b.MaxH, cfg.MaxRows-y))
	if w < 1 {
		w = 1
	}
	return w, h
}

// MaxPixelBounds computes the frozen pixel ceiling for a resize gesture
// anchored at column x. Width is bounded by the smaller of the item's
// MaxW and the columns remaining to its right; height is unbounded
// because MaxRows bounds grid units, not pixels.
//
// These bounds are computed once at gesture start and held fixed for
// the whole gesture, even if the container width changes mid-drag.
func MaxPixelBounds(cfg Config, x int, b Bounds) (maxW, maxH float64) {
	colWidth := ColWidth(cfg)
	wUnits := effectiveMax(b.MaxW, cfg.Columns-x)
	return spanPixels(wUnits, colWidth, cfg.MarginX), math.Inf(1)
}

// MinPixelBounds is the matching pixel floor, derived from the item's
// MinW/MinH (at least one cell in each axis).
func MinPixelBounds(cfg Config, b Bounds) (minW, minH float64) {
	colWidth := ColWidth(cfg)
	w := b.MinW
	if w < 1 {
		w = 1
	}
	h := b.MinH
	if h < 1 {
		h = 1
	}
	return spanPixels(w, colWidth, cfg.MarginX), spanPixels(h, cfg.RowHeight, cfg.MarginY)
}
