// Package polygon defines the Polygon model: an outer ring plus holes,
// bounding boxes, affine rotation, and ingest validation.
//
// A Polygon's outer ring is stored in canonical counter-clockwise
// winding; holes are stored counter-clockwise-when-reversed (i.e.
// clockwise relative to the outer ring), matching the convention used
// throughout the nfp and boolops packages. Once a Polygon is handed to
// the engine it is treated as immutable: every transform here returns a
// new value rather than mutating the receiver in place.
//
// Complexity: unless noted otherwise, operations are O(n) in the number
// of vertices of the receiver.
package polygon
