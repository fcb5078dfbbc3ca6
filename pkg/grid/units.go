package grid

import "math"

// GridToPixel evaluates the placement formula forward: cell (x,y) with
// span (w,h) becomes an absolute pixel rectangle inside the container.
//
//	left   = colWidth*x + MarginX*(x+1)
//	width  = colWidth*w + MarginX*(w-1)
//
// and symmetrically for top/height with RowHeight/MarginY. The width
// spans w columns plus the w-1 internal margins, with no trailing
// margin. A zero span maps to zero pixels.
func GridToPixel(x, y, w, h int, cfg Config) PixelRect {
	colWidth := ColWidth(cfg)
	return PixelRect{
		Left:   colWidth*float64(x) + cfg.MarginX*float64(x+1),
		Top:    cfg.RowHeight*float64(y) + cfg.MarginY*float64(y+1),
		Width:  spanPixels(w, colWidth, cfg.MarginX),
		Height: spanPixels(h, cfg.RowHeight, cfg.MarginY),
	}
}

// spanPixels converts a span of n cells of the given size into pixels,
// including the n-1 internal margins.
func spanPixels(n int, cellSize, margin float64) float64 {
	if n <= 0 {
		return 0
	}
	return cellSize*float64(n) + margin*float64(n-1)
}

// PixelToGrid inverts the placement formula: given an absolute pixel
// position, find the nearest grid cell. Rounding is round half away
// from zero. The result is clamped so that an item of size
// (currentW, currentH) anchored there stays fully inside the grid.
func PixelToGrid(top, left float64, cfg Config, currentW, currentH int) (x, y int) {
	colWidth := ColWidth(cfg)
	x = int(math.Round((left - cfg.MarginX) / (colWidth + cfg.MarginX)))
	y = int(math.Round((top - cfg.MarginY) / (cfg.RowHeight + cfg.MarginY)))
	x = clampInt(x, 0, cfg.Columns-currentW)
	y = clampInt(y, 0, cfg.MaxRows-currentH)
	return x, y
}

// SizeToGrid inverts the span formula: a raw pixel size becomes a span
// in grid units. The result is clamped to the space remaining from the
// anchor (x,y) and floored at zero; item-specific min/max bounds are
// applied afterwards by the caller (see ClampResize).
func SizeToGrid(width, height float64, x, y int, cfg Config) (w, h int) {
	colWidth := ColWidth(cfg)
	w = int(math.Round((width + cfg.MarginX) / (colWidth + cfg.MarginX)))
	h = int(math.Round((height + cfg.MarginY) / (cfg.RowHeight + cfg.MarginY)))
	w = clampInt(w, 0, cfg.Columns-x)
	h = clampInt(h, 0, cfg.MaxRows-y)
	return w, h
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
