package fuzzyscore

// Smith-Waterman local-alignment scorer: a fixed-point (integer) DP
// rewarding consecutive runs and boundary-adjacent matches, normalized
// to [0,1] only at the very end. Grounded directly on the teacher's
// FuzzyMatchV2 (algo.go): the H/C rolling-row recurrence, the bonus
// table keyed by boundary class, and the first-char bonus multiplier
// are all carried over; generalized here from a rune-indexed, single-
// pass match into a byte-indexed local-alignment DP over the whole
// candidate (spec.md §4.5), plus atom splitting for multi-word queries.
// A match cell extends the previous query row's cell or starts fresh
// from 0, so leading query bytes without an in-order match in the
// candidate do not prevent a positive score.

// bonusAt returns the position bonus for matching candidate[j], keyed
// by the boundary class already computed for that position.
func bonusAt(cfg SwConfig, boundary []BoundaryClass, j int) int {
	switch boundary[j] {
	case BoundaryWhitespace:
		return cfg.BonusBoundaryWhitespace
	case BoundaryDelimiter:
		return cfg.BonusBoundaryDelimiter
	case BoundaryCamel:
		return cfg.BonusCamelCase
	default:
		return 0
	}
}

// swAlign runs the rolling H/C/D DP of query against candidate and
// returns the best local-alignment score and the candidate index one
// past its end. ok is false when no candidate byte equals the last
// query byte, since only a match on that row lifts the final row above 0.
func swAlign(cfg SwConfig, query, candidate []byte, boundary []BoundaryClass, buf *ScoringBuffer) (score, endPos int, ok bool) {
	q, c := len(query), len(candidate)
	if q == 0 || c == 0 {
		return 0, 0, false
	}
	if cap(buf.swHPrev) < c+1 {
		buf.ensure(c)
	}
	hPrev, hCurr := buf.swHPrev[:c+1], buf.swHCurr[:c+1]
	cPrev, cCurr := buf.swCPrev[:c+1], buf.swCCurr[:c+1]
	dCurr := buf.swDCurr[:c+1]

	for j := 0; j <= c; j++ {
		hPrev[j] = 0
		cPrev[j] = 0
	}

	best, bestJ := 0, -1
	for i := 1; i <= q; i++ {
		hCurr[0] = 0
		cCurr[0] = 0
		dCurr[0] = 0
		qi := query[i-1]
		for j := 1; j <= c; j++ {
			if qi == candidate[j-1] {
				bonus := bonusAt(cfg, boundary, j-1)
				if cPrev[j-1] > 0 {
					if cfg.BonusConsecutive > bonus {
						bonus = cfg.BonusConsecutive
					}
				} else if i == 1 {
					bonus *= cfg.BonusFirstCharMultiplier
				}
				h := hPrev[j-1] + cfg.ScoreMatch + bonus
				hCurr[j] = h
				cCurr[j] = cPrev[j-1] + 1
				dCurr[j] = 0
			} else {
				dOpen := hCurr[j-1] - cfg.PenaltyGapStart
				dExtend := dCurr[j-1] - cfg.PenaltyGapExtend
				d := dOpen
				if dExtend > d {
					d = dExtend
				}
				if d < 0 {
					d = 0
				}
				hCurr[j] = d
				cCurr[j] = 0
				dCurr[j] = d
			}
			if i == q && hCurr[j] > best {
				best = hCurr[j]
				bestJ = j
			}
		}
		hPrev, hCurr = hCurr, hPrev
		cPrev, cCurr = cCurr, cPrev
	}

	return best, bestJ, bestJ >= 0
}

// maxPossibleScore returns the highest score an n-byte query could
// ever achieve, used to normalize a raw alignment score into [0,1]
// (resolves Open Question 3: swNormalizationK = 3).
func maxPossibleScore(cfg SwConfig, n int) int {
	return n * cfg.ScoreMatch * swNormalizationK
}

// scoreSmithWaterman runs the local-alignment scorer against an
// already-lowered candidate, honoring atom splitting when the query
// was prepared with Matcher.Prepare and contains whitespace. Per
// spec.md §4.5, the acronym matcher is always tried alongside the main
// alignment and the higher of the two is kept -- not just as a fallback
// when the alignment fails outright, since a main score that is
// positive but weak must still lose to a strong acronym hit before the
// dispatcher applies min_score.
func scoreSmithWaterman(cfg SwConfig, q *PreparedQuery, candidate []byte, boundary []BoundaryClass, buf *ScoringBuffer) (ScoredMatch, bool) {
	var (
		mainScore float64
		haveMain  bool
	)

	if len(q.Atoms) > 1 {
		var rawSum, maxSum int
		atomsOK := true
		for i := range q.Atoms {
			atom := &q.Atoms[i]
			raw, _, ok := swAlign(cfg, atom.Lower, candidate, boundary, buf)
			if !ok || raw <= 0 {
				atomsOK = false
				break
			}
			rawSum += raw
			maxSum += maxPossibleScore(cfg, len(atom.Lower))
		}
		if atomsOK && maxSum > 0 {
			mainScore = clamp01(float64(rawSum) / float64(maxSum))
			haveMain = true
		}
	} else if len(q.Lower) > 0 {
		raw, _, ok := swAlign(cfg, q.Lower, candidate, boundary, buf)
		if ok && raw > 0 {
			mainScore = clamp01(float64(raw) / float64(maxPossibleScore(cfg, len(q.Lower))))
			haveMain = true
		}
	}

	acronymResult, haveAcronym := scoreSwAcronymFallback(cfg, q, candidate, boundary, buf)

	switch {
	case haveMain && haveAcronym:
		if mainScore >= acronymResult.Score {
			return ScoredMatch{Score: mainScore, Kind: KindAlignment}, true
		}
		return acronymResult, true
	case haveMain:
		return ScoredMatch{Score: mainScore, Kind: KindAlignment}, true
	case haveAcronym:
		return acronymResult, true
	}

	return ScoredMatch{}, false
}

// swAcronymMaxLen mirrors EdConfig.AcronymMaxLen's default for the SW
// fallback, which has no config field of its own to carry it.
const swAcronymMaxLen = 8

func scoreSwAcronymFallback(cfg SwConfig, q *PreparedQuery, candidate []byte, boundary []BoundaryClass, buf *ScoringBuffer) (ScoredMatch, bool) {
	if len(q.Lower) == 0 || len(q.Lower) > swAcronymMaxLen || !isLettersOnly(q.Lower) {
		return ScoredMatch{}, false
	}
	initials := wordInitialPositions(buf.acronymInitials, boundary, candidate)
	buf.acronymInitials = initials
	if rec, ok := matchAcronym(q.Lower, initials, candidate, true); ok {
		score := clamp01(scoreAcronym(rec, swAcronymWeights(cfg), len(q.Lower), len(candidate)))
		return ScoredMatch{Score: score, Kind: KindAcronym}, true
	}
	return ScoredMatch{}, false
}
