package fuzzyscore

// Bonus scoring for the edit-distance phases: a pure function of an
// alignmentRecord plus the candidate's boundary-class array, per
// spec.md §9's "Multiple phase matchers that share bookkeeping"
// strategy note. Grounded on the teacher's bonusFor/bonusMatrix/
// bonusConsecutive bonus table (algo.go), restructured out of the DP
// loop into a standalone function operating on a small plain record.

// alignmentRecord is the common handoff between a phase matcher and the
// bonus scorer: where the match starts and ends in the candidate, how
// many edits it took, and whether the matched span is one contiguous
// run (true for exact/prefix/substring) or may contain gaps (subsequence
// DP).
type alignmentRecord struct {
	start      int
	end        int
	edits      int
	contiguous bool
}

// applyEdBonus adds word-boundary, consecutive-match, gap-penalty,
// first-match, and length-penalty adjustments to a phase's raw score.
// The caller clamps the result to [0,1].
func applyEdBonus(cfg EdConfig, rec alignmentRecord, raw float64, qLen, cLen int, boundary []BoundaryClass) float64 {
	score := raw

	if rec.start >= 0 && rec.start < len(boundary) && boundary[rec.start] != BoundaryNone {
		score += cfg.WordBoundaryBonus
	}

	var consecutivePairs, gapBytes, numGaps int
	if rec.contiguous {
		span := rec.end - rec.start
		if span > 1 {
			consecutivePairs = span - 1
		}
	} else {
		matchedLen := qLen - rec.edits
		if matchedLen > 1 {
			consecutivePairs = matchedLen - 1 - rec.edits
			if consecutivePairs < 0 {
				consecutivePairs = 0
			}
		}
		span := rec.end - rec.start
		gapBytes = span - matchedLen
		if gapBytes < 0 {
			gapBytes = 0
		}
		numGaps = minInt(rec.edits, gapBytes)
	}
	score += cfg.ConsecutiveBonus * float64(consecutivePairs)

	if gapBytes > 0 {
		switch cfg.GapPenalty.Kind {
		case GapPenaltyLinear:
			score -= cfg.GapPenalty.Per * float64(gapBytes)
		case GapPenaltyAffine:
			score -= cfg.GapPenalty.Open*float64(numGaps) + cfg.GapPenalty.Extend*float64(gapBytes-numGaps)
		}
	}

	if rec.start >= 0 && rec.start < cfg.FirstMatchBonusRange {
		score += cfg.FirstMatchBonus * (1 - float64(rec.start)/float64(cfg.FirstMatchBonusRange))
	}

	score -= cfg.LengthPenalty * float64(maxInt(0, cLen-qLen))

	return score
}
