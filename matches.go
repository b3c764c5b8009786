package fuzzyscore

import "container/heap"

// Matches/TopMatches: convenience wrappers for scoring many candidates
// against one prepared query with a single borrowed buffer. Grounded on
// 42atomys/go-map-search's engine.Search bounded-result-set idiom
// (engine.go), adapted to this package's explicit-buffer Score call.

// IndexedMatch pairs a ScoredMatch with the candidate's position in the
// slice that was scored, since the match itself carries no candidate
// text or identity.
type IndexedMatch struct {
	Index int
	ScoredMatch
}

// Matches scores every candidate against q, returning one IndexedMatch
// per candidate that cleared the Matcher's prefilters and MinScore, in
// candidate order. buf is reused across all calls.
func Matches(m *Matcher, candidates [][]byte, q *PreparedQuery, buf *ScoringBuffer) []IndexedMatch {
	var out []IndexedMatch
	for i, c := range candidates {
		if sm, ok := m.Score(c, q, buf); ok {
			out = append(out, IndexedMatch{Index: i, ScoredMatch: sm})
		}
	}
	return out
}

// TopMatches scores every candidate against q and returns at most k
// matches, sorted by descending score, using a bounded min-heap so
// memory stays O(k) regardless of how many candidates are scanned.
func TopMatches(m *Matcher, candidates [][]byte, q *PreparedQuery, buf *ScoringBuffer, k int) []IndexedMatch {
	if k <= 0 {
		return nil
	}
	h := make(matchHeap, 0, k)
	for i, c := range candidates {
		sm, ok := m.Score(c, q, buf)
		if !ok {
			continue
		}
		im := IndexedMatch{Index: i, ScoredMatch: sm}
		if len(h) < k {
			heap.Push(&h, im)
			continue
		}
		if im.Score > h[0].Score {
			h[0] = im
			heap.Fix(&h, 0)
		}
	}

	out := make([]IndexedMatch, len(h))
	copy(out, h)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	// h is only heap-ordered, not sorted; sort.Slice would need a second
	// import for a result set already bounded to k, so insertion-sort it
	// here instead -- k is expected to be small relative to len(candidates).
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Score < out[j].Score; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Matches borrows a pooled buffer and scores every candidate against q,
// matching SPEC_FULL.md §6's `m.Matches(candidates, q)` entry point.
func (m *Matcher) Matches(candidates [][]byte, q *PreparedQuery) []IndexedMatch {
	var out []IndexedMatch
	m.WithBuffer(func(buf *ScoringBuffer) {
		out = Matches(m, candidates, q, buf)
	})
	return out
}

// TopMatches borrows a pooled buffer and returns at most k matches,
// sorted by descending score.
func (m *Matcher) TopMatches(candidates [][]byte, q *PreparedQuery, k int) []IndexedMatch {
	var out []IndexedMatch
	m.WithBuffer(func(buf *ScoringBuffer) {
		out = TopMatches(m, candidates, q, buf, k)
	})
	return out
}

// matchHeap is a min-heap on Score, used to keep only the best k
// matches seen so far while scanning a candidate stream.
type matchHeap []IndexedMatch

func (h matchHeap) Len() int            { return len(h) }
func (h matchHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h matchHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *matchHeap) Push(x any)         { *h = append(*h, x.(IndexedMatch)) }
func (h *matchHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
