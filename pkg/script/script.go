// Package script loads layout definitions authored in JavaScript, the
// lingua franca of the grid-layout ecosystem this engine interoperates
// with. A layout script is an ordinary JS program whose final
// expression evaluates to an array of item objects:
//
//	[
//	  {i: "a", x: 0, y: 0, w: 2, h: 1},
//	  {i: "b", x: 2, y: 0, w: 4, h: 2, static: true, maxW: 6},
//	]
//
// Recognized keys: i (string id), x, y, w, h, static, minW, minH,
// maxW, maxH. Scripts may use variables, loops, and console.log.
package script

import (
	"fmt"
	"os"

	"github.com/dop251/goja"

	"gridlayout"
	"gridlayout/pkg/grid"
)

// ItemSpec is one item from a layout script.
type ItemSpec struct {
	ID     string
	Rect   grid.Rect
	Static bool
	Bounds grid.Bounds
}

// Load evaluates a layout script and returns its item specs.
func Load(src string) ([]ItemSpec, error) {
	vm := goja.New()
	registerConsole(vm)

	v, err := vm.RunString(src)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	var raw []map[string]any
	if err := vm.ExportTo(v, &raw); err != nil {
		return nil, fmt.Errorf("script: layout must evaluate to an array of objects: %w", err)
	}

	specs := make([]ItemSpec, 0, len(raw))
	for idx, obj := range raw {
		spec, err := toSpec(obj)
		if err != nil {
			return nil, fmt.Errorf("script: item %d: %w", idx, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// LoadFile evaluates the layout script at path.
func LoadFile(path string) ([]ItemSpec, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return Load(string(src))
}

func toSpec(obj map[string]any) (ItemSpec, error) {
	id, ok := obj["i"].(string)
	if !ok || id == "" {
		return ItemSpec{}, fmt.Errorf("missing string key %q", "i")
	}

	spec := ItemSpec{ID: id}
	for _, field := range []struct {
		key      string
		dst      *int
		required bool
	}{
		{"x", &spec.Rect.X, true},
		{"y", &spec.Rect.Y, true},
		{"w", &spec.Rect.W, true},
		{"h", &spec.Rect.H, true},
		{"minW", &spec.Bounds.MinW, false},
		{"minH", &spec.Bounds.MinH, false},
		{"maxW", &spec.Bounds.MaxW, false},
		{"maxH", &spec.Bounds.MaxH, false},
	} {
		v, present := obj[field.key]
		if !present {
			if field.required {
				return ItemSpec{}, fmt.Errorf("item %q: missing key %q", id, field.key)
			}
			continue
		}
		n, err := toInt(v)
		if err != nil {
			return ItemSpec{}, fmt.Errorf("item %q, key %q: %w", id, field.key, err)
		}
		*field.dst = n
	}

	if v, present := obj["static"]; present {
		b, ok := v.(bool)
		if !ok {
			return ItemSpec{}, fmt.Errorf("item %q: static must be a boolean", id)
		}
		spec.Static = b
	}
	return spec, nil
}

// toInt accepts the numeric representations goja exports: JS numbers
// arrive as int64 when integral and float64 otherwise.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("expected integer, got %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

// registerConsole installs a minimal console API so layout scripts can
// log through the engine's logger.
func registerConsole(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", func(call goja.FunctionCall) goja.Value {
		gridlayout.Logger().Info("layout script", "msg", formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		gridlayout.Logger().Warn("layout script", "msg", formatArgs(call.Arguments))
		return goja.Undefined()
	})
	vm.Set("console", console)
}

func formatArgs(args []goja.Value) string {
	out := ""
	for i, arg := range args {
		if i > 0 {
			out += " "
		}
		out += arg.String()
	}
	return out
}
