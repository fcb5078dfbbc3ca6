package style

import (
	"testing"

	"gridlayout/pkg/grid"
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

func TestProject_TransformDefault(t *testing.T) {
	rect := grid.PixelRect{Top: 40, Left: 109, Width: 188, Height: 30}
	d := Project(rect, ModeTransform, grid.LTR, testConfig(), false)
	if d.Mode != ModeTransform {
		t.Fatalf("mode = %v, want transform", d.Mode)
	}
	if d.TranslateX != 109 || d.TranslateY != 40 {
		t.Errorf("translate = (%f,%f), want (109,40)", d.TranslateX, d.TranslateY)
	}
	if d.Width != 188 || d.Height != 30 {
		t.Errorf("size = %fx%f, want 188x30", d.Width, d.Height)
	}
}

func TestProject_RTLMirrorsTranslation(t *testing.T) {
	rect := grid.PixelRect{Top: 40, Left: 109, Width: 188, Height: 30}
	ltr := Project(rect, ModeTransform, grid.LTR, testConfig(), false)
	rtl := Project(rect, ModeTransform, grid.RTL, testConfig(), false)
	if rtl.TranslateX != -ltr.TranslateX {
		t.Errorf("rtl translateX = %f, want %f", rtl.TranslateX, -ltr.TranslateX)
	}
	if rtl.TranslateY != ltr.TranslateY {
		t.Errorf("rtl translateY changed: %f vs %f", rtl.TranslateY, ltr.TranslateY)
	}
	// Size is never mirrored.
	if rtl.Width != ltr.Width || rtl.Height != ltr.Height {
		t.Errorf("rtl size changed: %fx%f", rtl.Width, rtl.Height)
	}
}

func TestProject_TopLeft(t *testing.T) {
	rect := grid.PixelRect{Top: 40, Left: 109, Width: 188, Height: 30}
	d := Project(rect, ModeTopLeft, grid.LTR, testConfig(), false)
	if d.Top != 40 || d.Left != 109 {
		t.Errorf("position = (%f,%f), want (40,109)", d.Top, d.Left)
	}

	rtl := Project(rect, ModeTopLeft, grid.RTL, testConfig(), false)
	if rtl.Left != -109 {
		t.Errorf("rtl left = %f, want -109", rtl.Left)
	}
}

func TestProject_Percentages(t *testing.T) {
	rect := grid.PixelRect{Top: 40, Left: 300, Width: 600, Height: 30}
	d := Project(rect, ModeTopLeft, grid.LTR, testConfig(), true)
	if !d.Percent {
		t.Fatal("Percent flag not set")
	}
	if d.Left != 0.25 || d.Width != 0.5 {
		t.Errorf("fractions = (%f,%f), want (0.25,0.5)", d.Left, d.Width)
	}
	// Top/height stay absolute: only the horizontal axis depends on a
	// measured container width.
	if d.Top != 40 || d.Height != 30 {
		t.Errorf("vertical axis changed: top=%f height=%f", d.Top, d.Height)
	}
}

func TestProject_PercentagesIgnoredForTransform(t *testing.T) {
	rect := grid.PixelRect{Left: 300, Width: 600}
	d := Project(rect, ModeTransform, grid.LTR, testConfig(), true)
	if d.Percent {
		t.Error("transform mode must not emit percentages")
	}
	if d.TranslateX != 300 {
		t.Errorf("translateX = %f, want 300", d.TranslateX)
	}
}

func TestCSS(t *testing.T) {
	d := Descriptor{Mode: ModeTransform, TranslateX: 10, TranslateY: 20, Width: 100, Height: 50}
	props := d.CSS()
	if props["transform"] != "translate(10px,20px)" {
		t.Errorf("transform = %q", props["transform"])
	}
	if props["width"] != "100px" || props["height"] != "50px" {
		t.Errorf("size = %q x %q", props["width"], props["height"])
	}
	if props["position"] != "absolute" {
		t.Errorf("position = %q", props["position"])
	}

	d = Descriptor{Mode: ModeTopLeft, Top: 20, Left: 0.25, Width: 0.5, Height: 50, Percent: true}
	props = d.CSS()
	if props["left"] != "25%" || props["width"] != "50%" {
		t.Errorf("percent props = %q, %q", props["left"], props["width"])
	}
	if props["top"] != "20px" {
		t.Errorf("top = %q", props["top"])
	}
}

func TestMergePrecedence(t *testing.T) {
	caller := map[string]string{"width": "1px", "color": "red"}
	child := map[string]string{"width": "2px", "border": "thin"}
	computed := map[string]string{"width": "3px"}

	got := Merge(caller, child, computed)
	if got["width"] != "3px" {
		t.Errorf("computed layer must win, got width=%q", got["width"])
	}
	if got["color"] != "red" || got["border"] != "thin" {
		t.Errorf("lower layers lost: %v", got)
	}
	if caller["width"] != "1px" {
		t.Error("Merge mutated its input")
	}
}

func TestMergeNilLayers(t *testing.T) {
	got := Merge(nil, map[string]string{"a": "1"}, nil)
	if len(got) != 1 || got["a"] != "1" {
		t.Errorf("got %v", got)
	}
}
