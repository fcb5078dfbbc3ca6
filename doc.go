// Package gridlayout is the placement engine for a draggable, resizable
// grid layout. It converts between pixel geometry and discrete grid-cell
// coordinates, enforces min/max and bounds constraints, and drives the
// drag/resize gesture state machines for individual items.
//
// The engine is split into focused packages:
//
//   - pkg/grid: pixel <-> grid-unit conversion and constraint clamping
//   - pkg/style: projection of pixel rectangles into renderable styles
//   - pkg/gesture: the drag and resize state machines
//   - pkg/item: the per-item controller tying the above together
//   - pkg/layout: a multi-item container with bounds validation
//   - pkg/script: layout definitions authored in JavaScript
//   - pkg/config: TOML configuration and file watching
//   - pkg/render: raster snapshots of a layout
//
// The root package only hosts the logger shared by all of them.
package gridlayout
