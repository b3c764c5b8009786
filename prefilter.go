package fuzzyscore

import "math/bits"

// Prefilters: three independent, cheapest-first rejection tests applied
// before any DP table is touched. Grounded on the teacher's
// asciiFuzzyIndex cheap pre-scan (algo.go), generalized from a single
// index skip-scan into the spec's length/bitmask/trigram cascade, and
// cross-checked against 42atomys/go-map-search's 256-entry byte lookup
// table idiom (runtime_search.go's containsAnyQueryBytes).

// lengthPrefilterPass implements spec.md §4.3's length prefilter. dCap
// is the permitted edit count (0 for Smith-Waterman; see editCap for
// edit-distance mode).
func lengthPrefilterPass(qLen, cLen, dCap int, algorithm Algorithm, lengthPenalty, minScore float64) bool {
	if cLen < qLen-dCap {
		return false
	}
	if algorithm == AlgorithmEditDistance {
		if cLen > maxCandidateLen(qLen, lengthPenalty, minScore) {
			return false
		}
	}
	return true
}

// maxCandidateLen resolves Open Question 1: the longest candidate that
// could still clear minScore, derived from the length-penalty term in
// isolation (d=0, no bonuses -- the most optimistic case, so the bound
// never rejects a candidate that could actually clear minScore).
func maxCandidateLen(qLen int, lengthPenalty, minScore float64) int {
	if lengthPenalty <= 0 {
		return 1 << 30
	}
	extra := (1.0 - minScore) / lengthPenalty
	if extra < 0 {
		extra = 0
	}
	return qLen + int(extra+1e-9)
}

// bitmaskPrefilterPass implements spec.md §4.3's bitmask prefilter:
// reject if more than dCap character classes present in the query are
// entirely absent from the candidate.
func bitmaskPrefilterPass(queryBitmask, candidateBitmask uint64, dCap int) bool {
	missing := queryBitmask &^ candidateBitmask
	return bits.OnesCount64(missing) <= dCap
}

// trigramPrefilterPass implements spec.md §4.3's trigram prefilter.
// Skipped by the caller when qLen < 3. Reuses buf.trigramRemaining as
// scratch so repeated calls do not reallocate a fresh map every time.
func trigramPrefilterPass(q *PreparedQuery, candidate []byte, dCap int, buf *ScoringBuffer) bool {
	qLen := len(q.Lower)
	threshold := qLen - 2 - dCap*3
	if threshold < 0 {
		threshold = 0
	}
	if threshold == 0 {
		return true
	}
	if len(candidate) < 3 {
		return false
	}

	remaining := buf.trigramRemaining
	clearTrigramMap(remaining)
	for k, v := range q.Trigrams {
		remaining[k] = v
	}

	intersection := 0
	for i := 0; i+3 <= len(candidate); i++ {
		var k trigramKey
		copy(k[:], candidate[i:i+3])
		if c, ok := remaining[k]; ok && c > 0 {
			remaining[k] = c - 1
			intersection++
			if intersection >= threshold {
				return true
			}
		}
	}
	return intersection >= threshold
}
