// Package nfpcache memoizes no-fit-polygon computations keyed by the
// identity and rotation of the two polygons involved, since the
// placement worker and the genetic search repeatedly ask for the NFP of
// the same (part class, rotation) pairs across many individuals and
// generations. A coarse sharded lock is sufficient: NFP computation
// itself dominates cost by orders of magnitude over lock contention, so
// there is no need for anything more elaborate than a small number of
// independently-locked shards.
package nfpcache
