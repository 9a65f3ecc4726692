// Package io reads custom scene files and writes primitive documents.
//
// # Scene files
//
// A scene file is TOML describing a [catalog.Definition]. Each curve is a
// [[track]] table with a closed-form wave:
//
//	name = "shale-sand"
//	title = "Shale/Sand Sequence"
//	max_depth = 200
//	step = 1
//	spacing = 120
//	tick_interval = 20
//	ticks = true
//
//	[[track]]
//	name = "GR (API)"
//	color = "#00ff88"
//	tick_interval = 20   # value-axis ticks; defaults to the scene's
//	title_offset = 60    # title x from the track origin; defaults to centred
//	wave = { kind = "sin", base = 60, amplitude = 40, divisor = 12 }
//
//	[[track]]
//	name = "RHOB (g/cc)"
//	color = "#ff6644"
//	scale = 40
//	wave = { kind = "cos", base = 2.4, amplitude = 0.15, divisor = 9 }
//
// Missing scalars are taken from the built-in example named by `base`
// (default "two"), so a file can be as small as a single [[track]] table.
// Unknown keys are rejected to catch typos such as `tick_intervall`.
//
// # Primitive documents
//
// [ExportPrimitives] writes the tagged JSON document produced by
// [primitive.Marshal]; [ImportPrimitives] reads it back. The JSON sink and
// snapshot tests use the same format.
//
// [catalog.Definition]: github.com/matzehuels/logtrack/pkg/core/catalog.Definition
// [primitive.Marshal]: github.com/matzehuels/logtrack/pkg/core/primitive.Marshal
package io
