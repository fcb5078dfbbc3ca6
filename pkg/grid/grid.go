package grid

// Config describes the geometry of one grid container. It is immutable
// for the duration of a layout pass; the owning layout constructs it and
// passes it down to every item.
type Config struct {
	Columns        int     // number of columns, > 0
	RowHeight      float64 // height of one row in pixels, > 0
	MarginX        float64 // horizontal gap between cells, also the container padding
	MarginY        float64 // vertical gap between cells, also the container padding
	ContainerWidth float64 // measured width of the container in pixels
	MaxRows        int     // vertical bound in grid units, > 0
}

// Rect is the grid-unit position and size of one item. This is the
// durable state: pixel geometry is always re-derived from it.
//
// Invariant after clamping: X+W <= Columns and Y+H <= MaxRows. The
// clamp enforces this; nothing upstream may assume it.
type Rect struct {
	X int // column index, >= 0
	Y int // row index, >= 0
	W int // width in columns
	H int // height in rows
}

// PixelRect is a resolved pixel rectangle. Derived, never the source of
// truth; recomputed from a Rect and a Config on every render.
type PixelRect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Direction selects the horizontal sign convention. It affects only
// horizontal placement and deltas; vertical behavior is identical.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ColWidth returns the pixel width of a single column: the container
// width minus all margins (Columns+1 of them, counting both paddings),
// divided evenly.
func ColWidth(cfg Config) float64 {
	return (cfg.ContainerWidth - cfg.MarginX*float64(cfg.Columns+1)) / float64(cfg.Columns)
}
