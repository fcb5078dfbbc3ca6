// Package render paints a layout into an image: a filled rectangle per
// item at its computed pixel position. It exists for snapshot output
// from the CLI and for eyeballing a layout without a windowing stack.
package render

import (
	"image"

	"github.com/fogleman/gg"

	"gridlayout/pkg/grid"
	"gridlayout/pkg/layout"
)

// Colors are RGB in 0..1, the gg convention.
var (
	background = [3]float64{0.96, 0.96, 0.96}
	itemFill   = [3]float64{0.55, 0.70, 0.95}
	staticFill = [3]float64{0.78, 0.78, 0.78}
	itemEdge   = [3]float64{0.25, 0.35, 0.55}
	labelInk   = [3]float64{0.10, 0.10, 0.15}
)

// Snapshot renders the layout at its configured container width. The
// height is the layout's own pixel height, so the image always covers
// every item.
func Snapshot(l *layout.Layout) image.Image {
	width := int(l.Config.ContainerWidth)
	height := int(l.Height())
	if height < 1 {
		height = 1
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(background[0], background[1], background[2])
	dc.Clear()

	for _, it := range l.Items() {
		px := grid.GridToPixel(it.Rect.X, it.Rect.Y, it.Rect.W, it.Rect.H, l.Config)
		left := px.Left
		if it.Opts.Direction == grid.RTL {
			// Mirror around the container's right edge.
			left = l.Config.ContainerWidth - px.Left - px.Width
		}

		fill := itemFill
		if it.Opts.Static {
			fill = staticFill
		}
		dc.DrawRoundedRectangle(left, px.Top, px.Width, px.Height, 3)
		dc.SetRGB(fill[0], fill[1], fill[2])
		dc.FillPreserve()
		dc.SetRGB(itemEdge[0], itemEdge[1], itemEdge[2])
		dc.SetLineWidth(1)
		dc.Stroke()

		dc.SetRGB(labelInk[0], labelInk[1], labelInk[2])
		dc.DrawStringAnchored(it.ID, left+px.Width/2, px.Top+px.Height/2, 0.5, 0.5)
	}

	return dc.Image()
}

// WritePNG renders the layout and writes it to path.
func WritePNG(l *layout.Layout, path string) error {
	return gg.SavePNG(path, Snapshot(l))
}
