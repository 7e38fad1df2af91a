// Package placement implements the constructive bottom-left packer:
// given an ordered list of sheets and an ordered list of part instances
// (each already carrying the rotation the genetic search chose for it),
// it places parts one by one using inner NFPs for the sheet-containment
// region and the union of outer NFPs against already-placed parts for
// the forbidden region, scoring every feasible candidate with a
// strategy.Strategy and keeping the best.
//
// The three-layer fitness formula (unplaced-parts penalty dominates,
// then sheets used, then arrangement quality) is centralized in Run so
// both the worker and its tests share one definition, rather than being
// duplicated across call sites.
//
// Complexity: O(P^2 * N) per sheet in the worst case, where P is parts
// placed so far on the sheet and N is average polygon vertex count,
// dominated by repeated NFP lookups and boolean unions/differences.
package placement
