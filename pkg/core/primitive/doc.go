// Package primitive turns laid-out tracks into an ordered list of drawable
// primitives.
//
// # Overview
//
// The render host (SVG writer, gonum/plot canvas, terminal rasteriser) never
// sees curves or tracks. It receives a flat list of [Primitive] values, each
// either a [Polyline] or a [Label], in world coordinates where x grows to the
// right and y grows upwards. Depth is drawn as -depth, so deeper samples sit
// lower on screen.
//
// # Ordering
//
// [Build] is deterministic. For identical inputs it returns deep-equal lists
// in the same order:
//
//  1. The shared depth axis: axis line, axis title, then one tick polyline
//     and one tick label per depth tick.
//  2. Each track in input order: curve polyline, title label, bounding box,
//     then one tick polyline and one tick label per horizontal tick.
//  3. The optional reference grid ([WithGrid]).
//
// Snapshot tests and render caches rely on this order.
//
// # Ticks
//
// Depth ticks sit at every multiple of the tick interval in [0, maxDepth],
// including 0. When maxDepth is not a multiple of the interval the final
// partial tick is dropped: maxDepth 95 with interval 10 ends at 90. Track
// ticks follow the same rule across the track width, with labels expressed in
// curve units (offset / horizontal scale).
//
// # Serialization
//
// [Marshal] and [Unmarshal] convert a primitive list to and from a tagged
// JSON document so it can be cached or handed to other tools.
package primitive
