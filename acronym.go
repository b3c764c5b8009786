package fuzzyscore

// Acronym matcher: letter-by-letter matching of a short, letters-only
// query against the word-initial bytes of a candidate. Shared by the
// edit-distance cascade, where it competes with the substring and
// subsequence-DP phases (spec.md §4.4 point 5), and by the Smith-Waterman
// scorer, where it is compared with the main alignment (spec.md §4.5).
// Grounded on the boundary
// detection already built for classify.go -- the same whitespace/
// delimiter/camel transitions that drive bonus scoring also mark a
// byte as "word-initial".

// wordInitialPositions appends to dst (reset first) every index in
// candidate that starts a word, using the precomputed boundary classes.
func wordInitialPositions(dst []int, boundary []BoundaryClass, candidate []byte) []int {
	dst = dst[:0]
	for i := range candidate {
		if i == 0 || boundary[i] != BoundaryNone {
			dst = append(dst, i)
		}
	}
	return dst
}

// isLettersOnly reports whether every byte in s is an ASCII letter.
func isLettersOnly(s []byte) bool {
	for _, b := range s {
		if !IsLetter(b) {
			return false
		}
	}
	return true
}

// acronymMatch describes a successful acronym alignment.
type acronymMatch struct {
	start int // candidate index of the first matched initial
	end   int // one past the candidate index of the last matched initial
	skips int // word-initials skipped between the first and last match
}

// matchAcronym tries every possible starting word-initial and returns
// the first full match found (left-to-right), optionally permitting one
// skipped initial per spec.md §4.4 point 5 / Open Question 2.
func matchAcronym(query []byte, initials []int, candidate []byte, allowSkip bool) (acronymMatch, bool) {
	for start := 0; start < len(initials); start++ {
		if rec, ok := tryAcronymFrom(query, initials, candidate, start, allowSkip); ok {
			return rec, true
		}
	}
	return acronymMatch{}, false
}

func tryAcronymFrom(query []byte, initials []int, candidate []byte, start int, allowSkip bool) (acronymMatch, bool) {
	qi := 0
	skipped := false
	skips := 0
	firstIdx, lastIdx := -1, -1
	for ii := start; ii < len(initials); ii++ {
		if qi >= len(query) {
			break
		}
		pos := initials[ii]
		if candidate[pos] == query[qi] {
			if firstIdx == -1 {
				firstIdx = ii
			}
			lastIdx = ii
			qi++
			continue
		}
		if firstIdx != -1 && allowSkip && !skipped {
			skipped = true
			skips++
			continue
		}
		break
	}
	if qi != len(query) {
		return acronymMatch{}, false
	}
	return acronymMatch{
		start: initials[firstIdx],
		end:   initials[lastIdx] + 1,
		skips: skips,
	}, true
}

// acronymWeights bundles the tunables scoreAcronym needs without tying
// it to EdConfig specifically, so both the ED cascade and the SW
// fallback can share one scoring routine.
type acronymWeights struct {
	weight               float64
	wordBoundaryBonus    float64
	firstMatchBonus      float64
	firstMatchBonusRange int
	lengthPenalty        float64
}

func edAcronymWeights(cfg EdConfig) acronymWeights {
	return acronymWeights{
		weight:               cfg.AcronymWeight,
		wordBoundaryBonus:    cfg.WordBoundaryBonus,
		firstMatchBonus:      cfg.FirstMatchBonus,
		firstMatchBonusRange: cfg.FirstMatchBonusRange,
		lengthPenalty:        cfg.LengthPenalty,
	}
}

// swAcronymWeights gives the SW fallback a fixed, sensible set of
// tunables (SwConfig has no equivalent fields of its own); BonusBoundary
// is SwConfig's one otherwise-unused generic boundary constant, reused
// here since every acronym letter sits at a word-initial.
func swAcronymWeights(cfg SwConfig) acronymWeights {
	return acronymWeights{
		weight:               1.0,
		wordBoundaryBonus:    float64(cfg.BonusBoundary) / float64(cfg.ScoreMatch*swNormalizationK),
		firstMatchBonus:      0.15,
		firstMatchBonusRange: 10,
		lengthPenalty:        0.003,
	}
}

// scoreAcronym derives a raw [0,1]-ish score from a successful acronym
// alignment: density (fewer skipped initials -> higher), a leading-match
// bonus, and the global length penalty. Caller clamps to [0,1].
func scoreAcronym(rec acronymMatch, w acronymWeights, qLen, cLen int) float64 {
	density := 1.0
	if rec.skips > 0 {
		density = 1.0 - 0.15*float64(rec.skips)
		if density < 0 {
			density = 0
		}
	}
	raw := w.weight*density + w.wordBoundaryBonus*float64(qLen)
	if rec.start < w.firstMatchBonusRange {
		raw += w.firstMatchBonus * (1 - float64(rec.start)/float64(w.firstMatchBonusRange))
	}
	raw -= w.lengthPenalty * float64(maxInt(0, cLen-qLen))
	return raw
}
