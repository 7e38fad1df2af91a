// Package point defines the integer 2D coordinate type that every other
// package in nestcore builds on.
//
// The kernel operates in scaled integer units throughout (typical scale:
// 1000 integer units per display unit, chosen so that work-piece
// coordinates and intermediate Minkowski-sum results fit in a signed
// 64-bit integer). Floating-point values enter the kernel only at the
// boundary, via FromReal, and leave it only via ToReal.
//
// Complexity: every operation in this package is O(1).
package point
