// Package pkg provides the libraries behind logtrack, a generator for
// synthetic well-log displays.
//
// # Overview
//
// A well log plots measurements (gamma ray, bulk density, neutron porosity)
// against depth, one vertical track per measurement. logtrack samples those
// curves from closed-form functions, lays the tracks out side by side, and
// emits a flat list of drawing primitives that any render host can draw.
// The pkg directory is organised into:
//
//  1. [core] - Domain logic (curve sampling, track layout, primitives, scenes)
//  2. [render] - Sinks and styles that turn primitives into files or text
//  3. [pipeline] - Orchestration (generate → render) with caching
//  4. Infrastructure - [cache], [config], [io], [errors], [observability]
//
// # Architecture
//
//	scene definition (built-in example or TOML file)
//	         ↓
//	    [core/curve] package (sample depth → value)
//	         ↓
//	    [core/track] package (assign horizontal offsets)
//	         ↓
//	    [core/primitive] package (axes, ticks, curves, labels, grid)
//	         ↓
//	    SVG/PNG/PDF/EPS/JSON or terminal braille
//
// # Quick Start
//
//	def, _ := catalog.Lookup("three")
//	scene, _ := def.Build()
//	svg := sink.RenderSVG(scene.Primitives, sink.WithStyle(styles.Paper{}))
//
// The same run through the cached pipeline:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{Example: "three", Formats: []string{"svg", "png"}})
//
// # Main Packages
//
// [core/curve] - Sampling of named log curves over [0, maxDepth] at a fixed
// step, with the range validation shared by the whole module.
//
// [core/track] - Horizontal layout of curves into tracks with per-track
// scale factors.
//
// [core/primitive] - Polylines and labels in draw order, bounds, depth ticks
// and the JSON document format.
//
// [core/catalog] - The built-in scenes and the Definition type that scene
// files decode into.
//
// [render/sink] - SVG, gonum/plot (PNG, PDF, EPS) and JSON output.
//
// [render/terminal] - Braille rendering with rotation about the vertical axis.
//
// [render/scenegraph] - Graphviz view of the primitive hierarchy.
//
// [cache] - File, Redis and MongoDB backends behind one interface.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/...       # Examples only
//	LOGTRACK_REDIS_ADDR=localhost:6379 go test ./pkg/cache/
//
// [core]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/core
// [core/curve]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/core/curve
// [core/track]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/core/track
// [core/primitive]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/core/primitive
// [core/catalog]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/core/catalog
// [render]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/render/sink
// [render/terminal]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/render/terminal
// [render/scenegraph]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/render/scenegraph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/config
// [io]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/observability
package pkg
