package engine

import "sort"

// topKList maintains a bounded, ascending-by-fitness results list,
// touched only from the Step() caller's goroutine: results are updated
// only on the main thread, after draining worker completions.
type topKList struct {
	cap     int
	results []RankedResult
}

func newTopKList(cap int) *topKList {
	return &topKList{cap: cap}
}

// insert adds r if it beats the current worst entry or there is still
// room, keeping the list sorted ascending by Fitness and trimmed to
// cap. It reports whether r was actually kept.
func (l *topKList) insert(r RankedResult) bool {
	if l.cap <= 0 {
		return false
	}
	if len(l.results) >= l.cap && r.Fitness >= l.results[len(l.results)-1].Fitness {
		return false
	}
	idx := sort.Search(len(l.results), func(i int) bool { return l.results[i].Fitness >= r.Fitness })
	l.results = append(l.results, RankedResult{})
	copy(l.results[idx+1:], l.results[idx:])
	l.results[idx] = r
	if len(l.results) > l.cap {
		l.results = l.results[:l.cap]
	}
	return true
}

// snapshot returns a copy of the current results, best first.
func (l *topKList) snapshot() []RankedResult {
	out := make([]RankedResult, len(l.results))
	copy(out, l.results)
	return out
}
