package fuzzyscore

import "bytes"

// Edit-distance scorer: the five-phase cascade (exact -> prefix ->
// substring -> subsequence-DP -> acronym). Exact and prefix return as
// soon as they fire; substring, subsequence-DP and acronym are each
// computed when they apply and the highest score is kept (spec.md
// §4.4's "best-of" rule, extended to the acronym phase). Grounded
// on the teacher's own phase-cascade structure (algo.go's
// ExactMatchNaive / PrefixMatch / FuzzyMatchV2 each trying a cheaper
// match before falling back to the DP), adapted from Smith-Waterman
// local alignment to a Damerau-Levenshtein "fit" DP with rolling rows.

// lengthDecaySoft is used by the prefix phase: a gentle decay since a
// prefix match is strong evidence regardless of what follows it.
func lengthDecaySoft(cLen, qLen int, lengthPenalty float64) float64 {
	v := 1.0 - lengthPenalty*float64(cLen-qLen)
	if v < 0 {
		return 0
	}
	return v
}

// lengthDecayRatio is used by the substring phase: the fraction of the
// candidate actually explained by the match, a harsher decay than the
// prefix phase's since a mid-string match carries less information
// about the rest of the candidate.
func lengthDecayRatio(cLen, qLen int) float64 {
	if cLen <= 0 {
		return 0
	}
	return float64(qLen) / float64(cLen)
}

// scoreEditDistance runs the five-phase cascade against an
// already-lowered candidate. boundary must already be filled for
// candidate[0:len(candidate)].
func scoreEditDistance(cfg EdConfig, q *PreparedQuery, candidate []byte, boundary []BoundaryClass, buf *ScoringBuffer) (ScoredMatch, bool) {
	qLen := len(q.Lower)
	cLen := len(candidate)

	if bytes.Equal(candidate, q.Lower) {
		return ScoredMatch{Score: 1.0, Kind: KindExact}, true
	}

	if qLen > 0 && bytes.HasPrefix(candidate, q.Lower) {
		raw := cfg.PrefixWeight * lengthDecaySoft(cLen, qLen, cfg.LengthPenalty)
		rec := alignmentRecord{start: 0, end: qLen, contiguous: true}
		score := clamp01(applyEdBonus(cfg, rec, raw, qLen, cLen, boundary))
		return ScoredMatch{Score: score, Kind: KindPrefix}, true
	}

	var (
		haveSubstring, haveSubseq, haveAcronym    bool
		substringScore, subseqScore, acronymScore float64
	)

	if qLen > 0 {
		if idx := bytes.Index(candidate, q.Lower); idx > 0 {
			raw := cfg.SubstringWeight * lengthDecayRatio(cLen, qLen)
			rec := alignmentRecord{start: idx, end: idx + qLen, contiguous: true}
			substringScore = clamp01(applyEdBonus(cfg, rec, raw, qLen, cLen, boundary))
			haveSubstring = true
		}
	}

	if qLen > 0 {
		dCap := cfg.editCap(qLen)
		if dist, endPos, ok := fitEditDistance(buf, q.Lower, candidate, dCap); ok {
			start := endPos - qLen
			if start < 0 {
				start = 0
			}
			// Same ratio discount as the substring phase (lengthDecayRatio)
			// on top of the edit-count discount: a gapped DP "fit" that
			// happens to land at dist=0 must not outscore a real substring
			// match just because it skipped the length penalty.
			raw := cfg.SubstringWeight * (1.0 - float64(dist)/float64(qLen)) * lengthDecayRatio(cLen, qLen)
			rec := alignmentRecord{start: start, end: endPos, edits: dist}
			subseqScore = clamp01(applyEdBonus(cfg, rec, raw, qLen, cLen, boundary))
			haveSubseq = true
		}
	}

	if qLen > 0 && qLen <= cfg.AcronymMaxLen && isLettersOnly(q.Lower) {
		initials := wordInitialPositions(buf.acronymInitials, boundary, candidate)
		buf.acronymInitials = initials
		allowSkip := cfg.AllowAcronymSkip && cfg.editCap(qLen) >= 1
		if rec, ok := matchAcronym(q.Lower, initials, candidate, allowSkip); ok {
			acronymScore = clamp01(scoreAcronym(rec, edAcronymWeights(cfg), qLen, cLen))
			haveAcronym = true
		}
	}

	// Best-of across every phase that fired past prefix: a clean acronym
	// alignment must be able to beat a merely-permissive subsequence-DP
	// fit (e.g. "bms" landing at edit distance 2 inside "bristol..."),
	// and a true contiguous substring must be able to beat a gapped one.
	best, bestKind, haveAny := 0.0, MatchKind(0), false
	consider := func(score float64, kind MatchKind, have bool) {
		if !have {
			return
		}
		if !haveAny || score > best {
			best, bestKind, haveAny = score, kind, true
		}
	}
	consider(substringScore, KindSubstring, haveSubstring)
	consider(subseqScore, KindSubsequence, haveSubseq)
	consider(acronymScore, KindAcronym, haveAcronym)

	if !haveAny {
		return ScoredMatch{}, false
	}
	return ScoredMatch{Score: best, Kind: bestKind}, true
}

// fitEditDistance computes, via a rolling three-row Damerau-Levenshtein
// DP, the minimum number of edits to turn query into some substring of
// candidate ending at the best position (spec.md §4.4 point 4: D[0][j]=0
// for all j, a free leading candidate skip). Returns ok=false if the
// best distance exceeds dCap.
func fitEditDistance(buf *ScoringBuffer, query, candidate []byte, dCap int) (dist, endPos int, ok bool) {
	q, c := len(query), len(candidate)
	if q == 0 {
		return 0, 0, true
	}
	if cap(buf.rowPrev) < c+1 {
		buf.ensure(c)
	}
	prev2 := buf.rowPrev2[:c+1]
	prev := buf.rowPrev[:c+1]
	curr := buf.rowCurr[:c+1]

	for j := 0; j <= c; j++ {
		prev[j] = 0
		prev2[j] = 0
	}

	for i := 1; i <= q; i++ {
		curr[0] = i
		qi := query[i-1]
		for j := 1; j <= c; j++ {
			cost := 1
			if qi == candidate[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			if i >= 2 && j >= 2 && qi == candidate[j-2] && query[i-2] == candidate[j-1] {
				if t := prev2[j-2] + 1; t < best {
					best = t
				}
			}
			curr[j] = best
		}
		if i < q {
			prev2, prev, curr = prev, curr, prev2
		}
	}

	minVal, minJ := curr[0], 0
	for j := 1; j <= c; j++ {
		if curr[j] < minVal {
			minVal = curr[j]
			minJ = j
		}
	}
	return minVal, minJ, minVal <= dCap
}
