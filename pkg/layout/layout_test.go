package layout

import (
	"testing"

	"gridlayout/pkg/grid"
	"gridlayout/pkg/item"
)

func testConfig() grid.Config {
	return grid.Config{
		Columns:        12,
		RowHeight:      30,
		MarginX:        10,
		MarginY:        10,
		ContainerWidth: 1200,
		MaxRows:        20,
	}
}

func TestAddAndLookup(t *testing.T) {
	l := New(testConfig())
	if _, err := l.Add("a", grid.Rect{X: 0, Y: 0, W: 2, H: 1}, item.DefaultOptions()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := l.Add("b", grid.Rect{X: 2, Y: 0, W: 2, H: 1}, item.DefaultOptions()); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	if got := l.Get("a"); got == nil || got.ID != "a" {
		t.Errorf("Get(a) = %v", got)
	}
	if l.Get("missing") != nil {
		t.Error("Get(missing) != nil")
	}
	if items := l.Items(); len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		t.Error("Items not in insertion order")
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	l := New(testConfig())
	if _, err := l.Add("", grid.Rect{W: 1, H: 1}, item.Options{}); err == nil {
		t.Error("empty id accepted")
	}
	if _, err := l.Add("a", grid.Rect{X: 11, Y: 0, W: 2, H: 1}, item.Options{}); err == nil {
		t.Error("rect overflowing columns accepted")
	}
	if _, err := l.Add("a", grid.Rect{X: 0, Y: 0, W: 0, H: 1}, item.Options{}); err == nil {
		t.Error("zero-width rect accepted")
	}
	if _, err := l.Add("a", grid.Rect{W: 1, H: 1}, item.Options{}); err != nil {
		t.Fatalf("valid add failed: %v", err)
	}
	if _, err := l.Add("a", grid.Rect{X: 2, W: 1, H: 1}, item.Options{}); err == nil {
		t.Error("duplicate id accepted")
	}
}

func TestCommitMoveClamps(t *testing.T) {
	l := New(testConfig())
	if _, err := l.Add("a", grid.Rect{X: 0, Y: 0, W: 3, H: 1}, item.DefaultOptions()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := l.CommitMove("a", 40, -3); err != nil {
		t.Fatalf("CommitMove: %v", err)
	}
	got := l.Get("a").Rect
	if got.X+got.W > l.Config.Columns || got.Y < 0 {
		t.Errorf("committed rect out of bounds: %+v", got)
	}
	if err := l.CommitMove("missing", 0, 0); err == nil {
		t.Error("unknown id accepted")
	}
}

func TestCommitResizeAppliesItemBounds(t *testing.T) {
	l := New(testConfig())
	opts := item.DefaultOptions()
	opts.Bounds = grid.Bounds{MaxW: 6}
	if _, err := l.Add("a", grid.Rect{X: 8, Y: 0, W: 2, H: 1}, opts); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := l.CommitResize("a", 10, 2); err != nil {
		t.Fatalf("CommitResize: %v", err)
	}
	got := l.Get("a").Rect
	if got.W != 4 {
		t.Errorf("W = %d, want 4", got.W)
	}
	if got.H != 2 {
		t.Errorf("H = %d, want 2", got.H)
	}
}

func TestHeight(t *testing.T) {
	cfg := testConfig()
	l := New(cfg)
	if l.Height() != 20 {
		t.Errorf("empty height = %f, want 20", l.Height())
	}

	if _, err := l.Add("a", grid.Rect{X: 0, Y: 0, W: 2, H: 2}, item.DefaultOptions()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := l.Add("b", grid.Rect{X: 2, Y: 3, W: 2, H: 2}, item.DefaultOptions()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if l.BottomRow() != 5 {
		t.Errorf("BottomRow = %d, want 5", l.BottomRow())
	}
	want := 30.0*5 + 10.0*6
	if l.Height() != want {
		t.Errorf("Height = %f, want %f", l.Height(), want)
	}
}
