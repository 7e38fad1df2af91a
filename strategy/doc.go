// Package strategy implements the placement worker's scoring objectives:
// gravity, bounding-box, and convex-hull. Strategy is a small closed
// interface with three unexported implementations dispatched through a
// single Score method, rather than a class hierarchy; callers select one
// of the three exported constructors and never implement the interface
// themselves.
//
// Complexity: Score is O(k) for Gravity/BoundingBox (k = len(placed)+1
// vertices scanned for the bounding box) and O(k log k) for ConvexHull
// (Graham scan).
package strategy
