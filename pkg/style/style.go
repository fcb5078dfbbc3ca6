package style

import (
	"fmt"

	"gridlayout/pkg/grid"
)

// Mode selects how a pixel rectangle is expressed as a style.
type Mode int

const (
	// ModeTransform places the element with a 2-D translation. This is
	// the default: translations are compositor-accelerated and do not
	// trigger reflow.
	ModeTransform Mode = iota
	// ModeTopLeft places the element with literal top/left offsets.
	ModeTopLeft
)

func (m Mode) String() string {
	if m == ModeTopLeft {
		return "topLeft"
	}
	return "transform"
}

// Descriptor is a renderable description of one positioned element.
//
// In ModeTransform the position is (TranslateX, TranslateY) and the
// size is absolute pixels. In ModeTopLeft the position is (Top, Left).
// When Percent is set (ModeTopLeft only) Left and Width hold fractions
// of the container width in the range 0..1; CSS rendering multiplies
// by 100. Percentages cannot be combined with ModeTransform because a
// percentage translation is resolved against the element's own box,
// not the container's; Project falls back to absolute pixels there.
type Descriptor struct {
	Mode       Mode
	TranslateX float64
	TranslateY float64
	Top        float64
	Left       float64
	Width      float64
	Height     float64
	Percent    bool
}

// Project turns a resolved pixel rectangle into a Descriptor.
//
// For RTL the horizontal translation (or the Left offset) is negated,
// mirroring placement around the container's right edge; width and
// height are never mirrored. Requesting percentages with ModeTransform
// silently falls back to absolute pixels.
func Project(rect grid.PixelRect, mode Mode, dir grid.Direction, cfg grid.Config, usePercent bool) Descriptor {
	left := rect.Left
	if dir == grid.RTL {
		left = -rect.Left
	}

	switch mode {
	case ModeTopLeft:
		d := Descriptor{
			Mode:   ModeTopLeft,
			Top:    rect.Top,
			Left:   left,
			Width:  rect.Width,
			Height: rect.Height,
		}
		if usePercent && cfg.ContainerWidth > 0 {
			d.Percent = true
			d.Left = left / cfg.ContainerWidth
			d.Width = rect.Width / cfg.ContainerWidth
		}
		return d
	default:
		return Descriptor{
			Mode:       ModeTransform,
			TranslateX: left,
			TranslateY: rect.Top,
			Width:      rect.Width,
			Height:     rect.Height,
		}
	}
}

// CSS renders the descriptor as a property map in the shape a DOM-like
// rendering surface consumes. Absolute lengths are emitted in px,
// percent fractions as percentages.
func (d Descriptor) CSS() map[string]string {
	props := map[string]string{"position": "absolute"}
	switch d.Mode {
	case ModeTopLeft:
		if d.Percent {
			props["left"] = pct(d.Left)
			props["width"] = pct(d.Width)
		} else {
			props["left"] = px(d.Left)
			props["width"] = px(d.Width)
		}
		props["top"] = px(d.Top)
		props["height"] = px(d.Height)
	default:
		props["transform"] = fmt.Sprintf("translate(%spx,%spx)", num(d.TranslateX), num(d.TranslateY))
		props["width"] = px(d.Width)
		props["height"] = px(d.Height)
	}
	return props
}

func num(v float64) string {
	return fmt.Sprintf("%g", v)
}

func px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}

func pct(frac float64) string {
	return fmt.Sprintf("%g%%", frac*100)
}
