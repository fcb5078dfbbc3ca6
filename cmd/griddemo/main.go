// Command griddemo opens a window with a live grid layout: items can
// be dragged by their body and resized by the handle in their corner.
// The fyne drag events are the pointer-gesture source, the handle
// widget is the resize source; both feed the item gesture machines.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gridlayout"
	"gridlayout/pkg/config"
	"gridlayout/pkg/gesture"
	"gridlayout/pkg/grid"
	"gridlayout/pkg/item"
	"gridlayout/pkg/layout"
	"gridlayout/pkg/script"
	"gridlayout/pkg/style"
)

// defaultLayout is used when no -layout file is given.
const defaultLayout = `[
	{i: "a", x: 0, y: 0, w: 2, h: 2},
	{i: "b", x: 2, y: 0, w: 4, h: 1, maxW: 6},
	{i: "c", x: 6, y: 0, w: 2, h: 3, static: true},
	{i: "d", x: 0, y: 2, w: 3, h: 1},
]`

func main() {
	cfgFile := flag.String("config", "", "TOML grid config (defaults apply if omitted)")
	layoutFile := flag.String("layout", "", "JS layout definition (built-in demo layout if omitted)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		gridlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config.Default()
	if *cfgFile != "" {
		var err error
		cfg, err = config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	d := &demo{cfg: cfg}
	if err := d.loadItems(*layoutFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("grid layout demo")
	w.Resize(fyne.NewSize(float32(cfg.ContainerWidth), 640))

	d.board = container.NewWithoutLayout()
	d.rebuildWidgets()
	w.SetContent(d.board)

	if *layoutFile != "" {
		d.watchLayout(*layoutFile)
	}

	w.ShowAndRun()
}

// demo owns the window-side state: the layout (durable rects) and one
// widget per item.
type demo struct {
	cfg     config.Config
	grid    *layout.Layout
	board   *fyne.Container
	widgets []*itemWidget
}

func (d *demo) loadItems(path string) error {
	specs, err := loadSpecs(path)
	if err != nil {
		return err
	}

	l := layout.New(d.cfg.Grid())
	for _, spec := range specs {
		opts := item.DefaultOptions()
		opts.Static = spec.Static
		opts.Bounds = spec.Bounds
		opts.Direction = d.cfg.Dir()
		opts.UseTransforms = d.cfg.UseTransforms
		it, err := l.Add(spec.ID, spec.Rect, opts)
		if err != nil {
			return err
		}
		// Commit gesture results into the durable rects; the gesture
		// machines themselves never touch them.
		it.OnDragStop = func(id string, x, y int, ev gesture.DragEvent) {
			l.CommitMove(id, x, y)
		}
		it.OnResizeStop = func(id string, w, h int, ev gesture.ResizeEvent) {
			l.CommitResize(id, w, h)
		}
	}
	d.grid = l
	return nil
}

func loadSpecs(path string) ([]script.ItemSpec, error) {
	if path == "" {
		return script.Load(defaultLayout)
	}
	return script.LoadFile(path)
}

// rebuildWidgets recreates the widget per item, e.g. after a hot
// reload of the layout file.
func (d *demo) rebuildWidgets() {
	d.board.RemoveAll()
	d.widgets = nil
	for _, it := range d.grid.Items() {
		w := newItemWidget(it, d)
		d.widgets = append(d.widgets, w)
		d.board.Add(w)
	}
	d.refresh()
}

// refresh repositions every widget from its item's computed style.
// Render is a pure function of the durable rect and the live gesture
// state, so this is safe to call after every event.
func (d *demo) refresh() {
	for _, w := range d.widgets {
		left, top, width, height := screenRect(w.it.Render().Style, d.cfg)
		w.Move(fyne.NewPos(float32(left), float32(top)))
		w.Resize(fyne.NewSize(float32(width), float32(height)))
		w.Refresh()
	}
	d.board.Refresh()
}

// screenRect resolves a style descriptor into window coordinates. RTL
// descriptors carry a negated horizontal offset measured from the
// right edge; the window needs it folded back to a left offset.
func screenRect(desc style.Descriptor, cfg config.Config) (left, top, width, height float64) {
	switch desc.Mode {
	case style.ModeTopLeft:
		left, top = desc.Left, desc.Top
		width, height = desc.Width, desc.Height
		if desc.Percent {
			left *= cfg.ContainerWidth
			width *= cfg.ContainerWidth
		}
	default:
		left, top = desc.TranslateX, desc.TranslateY
		width, height = desc.Width, desc.Height
	}
	if left < 0 {
		left = cfg.ContainerWidth + left - width
	}
	return left, top, width, height
}

func (d *demo) watchLayout(path string) {
	w, err := config.Watch(path)
	if err != nil {
		gridlayout.Logger().Warn("watch failed", "err", err)
		return
	}
	go func() {
		for range w.Events {
			if err := d.loadItems(path); err != nil {
				gridlayout.Logger().Warn("reload failed", "err", err)
				continue
			}
			fyne.Do(d.rebuildWidgets)
		}
	}()
}

// itemWidget is the draggable body of one grid item.
type itemWidget struct {
	widget.BaseWidget
	it     *item.Item
	host   *demo
	rect   *canvas.Rectangle
	label  *canvas.Text
	handle *handleWidget
}

func newItemWidget(it *item.Item, host *demo) *itemWidget {
	w := &itemWidget{it: it, host: host}
	fill := color.NRGBA{R: 140, G: 178, B: 242, A: 255}
	if it.Opts.Static {
		fill = color.NRGBA{R: 199, G: 199, B: 199, A: 255}
	}
	w.rect = canvas.NewRectangle(fill)
	w.rect.StrokeColor = color.NRGBA{R: 64, G: 89, B: 140, A: 255}
	w.rect.StrokeWidth = 1
	w.label = canvas.NewText(it.ID, color.Black)
	w.label.TextSize = 12
	w.handle = newHandleWidget(w)
	if !it.Opts.Resizable || it.Opts.Static {
		w.handle.Hide()
	}
	w.ExtendBaseWidget(w)
	return w
}

func (w *itemWidget) CreateRenderer() fyne.WidgetRenderer {
	return &itemRenderer{w: w, objects: []fyne.CanvasObject{w.rect, w.label, w.handle}}
}

// Dragged feeds pointer deltas to the drag machine. The first delta of
// a gesture doubles as the start event: fyne reports no separate
// press-begins-drag notification.
func (w *itemWidget) Dragged(e *fyne.DragEvent) {
	if !w.it.Dragging() {
		pos := w.Position()
		size := w.Size()
		startEv := gesture.DragEvent{
			Client: gesture.ClientRect{
				Top:    float64(pos.Y),
				Left:   float64(pos.X),
				Right:  float64(pos.X + size.Width),
				Bottom: float64(pos.Y + size.Height),
			},
			Parent: &gesture.ParentGeometry{},
		}
		if w.it.Opts.Direction == grid.RTL {
			// The machine measures RTL drags from the right edge of the
			// positioning ancestor.
			startEv.Parent.Rect.Right = w.host.cfg.ContainerWidth
		}
		if err := w.it.HandleDrag(gesture.PhaseStart, startEv); err != nil {
			panic(err)
		}
	}
	ev := gesture.DragEvent{DX: float64(e.Dragged.DX), DY: float64(e.Dragged.DY)}
	if err := w.it.HandleDrag(gesture.PhaseMove, ev); err != nil {
		panic(err)
	}
	w.host.refresh()
}

func (w *itemWidget) DragEnd() {
	if !w.it.Dragging() {
		return
	}
	if err := w.it.HandleDrag(gesture.PhaseStop, gesture.DragEvent{}); err != nil {
		panic(err)
	}
	w.host.refresh()
}

type itemRenderer struct {
	w       *itemWidget
	objects []fyne.CanvasObject
}

func (r *itemRenderer) Layout(size fyne.Size) {
	r.w.rect.Resize(size)
	r.w.label.Move(fyne.NewPos(6, 4))
	const hs float32 = 12
	r.w.handle.Resize(fyne.NewSize(hs, hs))
	r.w.handle.Move(fyne.NewPos(size.Width-hs, size.Height-hs))
}

func (r *itemRenderer) MinSize() fyne.Size           { return fyne.NewSize(16, 16) }
func (r *itemRenderer) Refresh()                     { canvas.Refresh(r.w) }
func (r *itemRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *itemRenderer) Destroy()                     {}

// handleWidget is the resize grip in an item's corner. It reports
// absolute pixel sizes, accumulated from its own drag deltas.
type handleWidget struct {
	widget.BaseWidget
	parent *itemWidget
	size   gesture.Size
}

func newHandleWidget(parent *itemWidget) *handleWidget {
	h := &handleWidget{parent: parent}
	h.ExtendBaseWidget(h)
	return h
}

func (h *handleWidget) CreateRenderer() fyne.WidgetRenderer {
	grip := canvas.NewRectangle(color.NRGBA{R: 64, G: 89, B: 140, A: 255})
	return widget.NewSimpleRenderer(grip)
}

func (h *handleWidget) Dragged(e *fyne.DragEvent) {
	it := h.parent.it
	if !it.Resizing() {
		sz := h.parent.Size()
		h.size = gesture.Size{Width: float64(sz.Width), Height: float64(sz.Height)}
		if err := it.HandleResize(gesture.PhaseStart, gesture.ResizeEvent{Size: h.size}); err != nil {
			panic(err)
		}
	}
	h.size.Width += float64(e.Dragged.DX)
	h.size.Height += float64(e.Dragged.DY)
	if err := it.HandleResize(gesture.PhaseMove, gesture.ResizeEvent{Size: h.size}); err != nil {
		panic(err)
	}
	h.parent.host.refresh()
}

func (h *handleWidget) DragEnd() {
	it := h.parent.it
	if !it.Resizing() {
		return
	}
	if err := it.HandleResize(gesture.PhaseStop, gesture.ResizeEvent{Size: h.size}); err != nil {
		panic(err)
	}
	h.parent.host.refresh()
}
