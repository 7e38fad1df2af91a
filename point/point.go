package point

import (
	"math"
	"math/bits"
)

// Point is an integer 2D coordinate in scaled kernel units.
type Point struct {
	X int64
	Y int64
}

// Zero is the additive identity.
var Zero = Point{}

// New returns the point (x, y).
//
// Complexity: O(1).
func New(x, y int64) Point {
	return Point{X: x, Y: y}
}

// FromReal scales a real-valued coordinate into kernel integer units using
// the supplied scale factor, rounding half-to-even (banker's rounding) so
// that repeated ingest of boundary values is stable.
//
// Complexity: O(1).
func FromReal(x, y, scale float64) Point {
	return Point{
		X: int64(math.RoundToEven(x * scale)),
		Y: int64(math.RoundToEven(y * scale)),
	}
}

// ToReal rescales a kernel point back to real-valued coordinates, the
// inverse of FromReal for the same scale.
//
// Complexity: O(1).
func (p Point) ToReal(scale float64) (x, y float64) {
	return float64(p.X) / scale, float64(p.Y) / scale
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Dot returns the exact 128-bit-widened dot product p . q, returned as a
// big but still int64-range value for the coordinate ranges the kernel
// promises to support (see package doc). Overflow within that promised
// range is impossible because the multiplication is carried out in full
// 128-bit precision before narrowing.
//
// Complexity: O(1).
func (p Point) Dot(q Point) int64 {
	hi1, lo1 := bits.Mul64(uint64(abs64(p.X)), uint64(abs64(q.X)))
	hi2, lo2 := bits.Mul64(uint64(abs64(p.Y)), uint64(abs64(q.Y)))
	s1 := widen(hi1, lo1, sign(p.X)*sign(q.X))
	s2 := widen(hi2, lo2, sign(p.Y)*sign(q.Y))
	return narrow(add128(s1, s2))
}

// Cross returns the signed 2D cross product (p.X*q.Y - p.Y*q.X), computed
// with 128-bit intermediate precision so it cannot silently overflow for
// any coordinate magnitude the kernel's scale policy allows. A positive
// result means q is counter-clockwise from p about the origin.
//
// Complexity: O(1).
func (p Point) Cross(q Point) int64 {
	hi1, lo1 := bits.Mul64(uint64(abs64(p.X)), uint64(abs64(q.Y)))
	hi2, lo2 := bits.Mul64(uint64(abs64(p.Y)), uint64(abs64(q.X)))
	s1 := widen(hi1, lo1, sign(p.X)*sign(q.Y))
	s2 := widen(hi2, lo2, sign(p.Y)*sign(q.X))
	return narrow(sub128(s1, s2))
}

// CrossOrigin returns (b-a) x (c-a), the signed doubled area of the
// triangle a,b,c. Positive means a->b->c turns counter-clockwise.
//
// Complexity: O(1).
func CrossOrigin(a, b, c Point) int64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// int128 is a minimal two's-complement-style 128-bit signed integer
// represented as (hi, lo) unsigned halves plus an explicit sign, which is
// all the precision Dot/Cross need; it is not a general-purpose bignum.
type int128 struct {
	neg bool
	hi  uint64
	lo  uint64
}

func widen(hi, lo uint64, sgn int) int128 {
	return int128{neg: sgn < 0, hi: hi, lo: lo}
}

func add128(a, b int128) int128 {
	if a.neg == b.neg {
		lo, carry := bits.Add64(a.lo, b.lo, 0)
		hi, _ := bits.Add64(a.hi, b.hi, carry)
		return int128{neg: a.neg, hi: hi, lo: lo}
	}
	return sub128(a, int128{neg: !b.neg, hi: b.hi, lo: b.lo})
}

func sub128(a, b int128) int128 {
	if a.neg != b.neg {
		lo, carry := bits.Add64(a.lo, b.lo, 0)
		hi, _ := bits.Add64(a.hi, b.hi, carry)
		return int128{neg: a.neg, hi: hi, lo: lo}
	}
	// same sign: subtract magnitudes, flipping sign if borrow makes it negative
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, borrow2 := bits.Sub64(a.hi, b.hi, borrow)
	if borrow2 != 0 {
		// a magnitude < b magnitude: result = -(b - a)
		lo2, borrowb := bits.Sub64(b.lo, a.lo, 0)
		hi2, _ := bits.Sub64(b.hi, a.hi, borrowb)
		return int128{neg: !a.neg, hi: hi2, lo: lo2}
	}
	return int128{neg: a.neg, hi: hi, lo: lo}
}

// narrow truncates an int128 known (by the kernel's scale contract) to fit
// in an int64 back down to int64.
func narrow(v int128) int64 {
	if v.neg {
		return -int64(v.lo)
	}
	return int64(v.lo)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int64) int {
	if v < 0 {
		return -1
	}
	return 1
}
