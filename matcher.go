package fuzzyscore

import (
	"fmt"
	"sync"
)

// Matcher is the top-level, immutable entry point: one Matcher per
// MatchConfig, reusable across any number of queries and candidates.
// Grounded on the teacher's package-level exported match functions
// (algo.go's ExactMatchNaive/FuzzyMatchV2/...), wrapped in a small
// stateful type per spec.md §2's "should not force allocation" goal and
// 42atomys/go-map-search's engine-with-pool convenience (engine.go).
type Matcher struct {
	cfg  MatchConfig
	pool sync.Pool
}

// NewMatcher builds a Matcher from cfg without validating it; callers
// confident in a hand-built MatchConfig can skip NewMatcherSafe's checks.
func NewMatcher(cfg MatchConfig) *Matcher {
	m := &Matcher{cfg: cfg}
	m.pool.New = func() any { return NewBuffer() }
	return m
}

// NewMatcherSafe validates cfg before building the Matcher, per spec.md
// §7's configuration-validation requirement.
func NewMatcherSafe(cfg MatchConfig) (*Matcher, error) {
	if err := validateMatchConfig(cfg); err != nil {
		return nil, err
	}
	return NewMatcher(cfg), nil
}

func validateMatchConfig(cfg MatchConfig) error {
	if cfg.MinScore < 0 || cfg.MinScore > 1 {
		return fmt.Errorf("fuzzyscore: MinScore must be in [0,1], got %v", cfg.MinScore)
	}
	switch cfg.Algorithm {
	case AlgorithmEditDistance:
		return validateEdConfig(cfg.Ed)
	case AlgorithmSmithWaterman:
		return validateSwConfig(cfg.Sw)
	default:
		return fmt.Errorf("fuzzyscore: unknown Algorithm %v", cfg.Algorithm)
	}
}

func validateEdConfig(c EdConfig) error {
	if c.MaxEditDistance < 0 {
		return fmt.Errorf("fuzzyscore: MaxEditDistance must be >= 0, got %d", c.MaxEditDistance)
	}
	if c.LongQueryMaxEditDistance < c.MaxEditDistance {
		return fmt.Errorf("fuzzyscore: LongQueryMaxEditDistance must be >= MaxEditDistance")
	}
	if c.LongQueryThreshold < 0 {
		return fmt.Errorf("fuzzyscore: LongQueryThreshold must be >= 0, got %d", c.LongQueryThreshold)
	}
	if c.LengthPenalty < 0 {
		return fmt.Errorf("fuzzyscore: LengthPenalty must be >= 0, got %v", c.LengthPenalty)
	}
	switch c.GapPenalty.Kind {
	case GapPenaltyLinear, GapPenaltyAffine:
	default:
		return fmt.Errorf("fuzzyscore: unknown GapPenalty.Kind %v", c.GapPenalty.Kind)
	}
	return nil
}

func validateSwConfig(c SwConfig) error {
	if c.ScoreMatch <= 0 {
		return fmt.Errorf("fuzzyscore: ScoreMatch must be > 0, got %d", c.ScoreMatch)
	}
	if c.PenaltyGapStart < 0 || c.PenaltyGapExtend < 0 {
		return fmt.Errorf("fuzzyscore: gap penalties must be >= 0")
	}
	if c.BonusFirstCharMultiplier < 1 {
		return fmt.Errorf("fuzzyscore: BonusFirstCharMultiplier must be >= 1, got %d", c.BonusFirstCharMultiplier)
	}
	return nil
}

// NewBuffer allocates a fresh ScoringBuffer for use with this Matcher.
// Prefer WithBuffer in hot loops to avoid the allocation entirely.
func (m *Matcher) NewBuffer() *ScoringBuffer {
	return NewBuffer()
}

// WithBuffer borrows a pooled ScoringBuffer for the duration of fn,
// returning it to the pool afterward regardless of panic.
func (m *Matcher) WithBuffer(fn func(*ScoringBuffer)) {
	buf := m.pool.Get().(*ScoringBuffer)
	defer m.pool.Put(buf)
	fn(buf)
}

// Prepare builds a PreparedQuery for this Matcher's configuration,
// splitting into whitespace-delimited atoms when running Smith-Waterman
// with SplitSpaces enabled.
func (m *Matcher) Prepare(query []byte) PreparedQuery {
	splitAtoms := m.cfg.Algorithm == AlgorithmSmithWaterman && m.cfg.Sw.SplitSpaces
	return prepareQuery(query, splitAtoms)
}

// acronymEligible reports whether q is short and plain enough for either
// scorer's acronym fallback to ever fire, using each algorithm's own
// length cap.
func acronymEligible(cfg MatchConfig, q *PreparedQuery) bool {
	qLen := len(q.Lower)
	if qLen == 0 || !isLettersOnly(q.Lower) {
		return false
	}
	if cfg.Algorithm == AlgorithmSmithWaterman {
		return qLen <= swAcronymMaxLen
	}
	return qLen <= cfg.Ed.AcronymMaxLen
}

// Score scores one candidate against an already-prepared query, using
// buf for all scratch memory. It returns ok=false if the candidate was
// rejected by a prefilter, no phase matched, or the final score fell
// below MinScore. buf must not be shared with a concurrently in-flight
// Score call; doing so panics.
func (m *Matcher) Score(candidate []byte, q *PreparedQuery, buf *ScoringBuffer) (ScoredMatch, bool) {
	buf.mustAcquire()
	defer buf.release()

	lower := buf.ensure(len(candidate))
	var candidateBitmask uint64
	for i, b := range candidate {
		lb := ToLower(b)
		lower[i] = lb
		candidateBitmask |= 1 << bitClassOf(lb)
	}

	boundary := buf.boundaryClass[:len(candidate)]
	fillBoundaryClasses(boundary, candidate)

	qLen := len(q.Lower)
	var dCap int
	if m.cfg.Algorithm == AlgorithmEditDistance {
		dCap = m.cfg.Ed.editCap(qLen)
	}

	if !lengthPrefilterPass(qLen, len(candidate), dCap, m.cfg.Algorithm, m.cfg.Ed.LengthPenalty, m.cfg.MinScore) {
		return ScoredMatch{}, false
	}
	// An atom-split query is aligned atom by atom, so the whitespace
	// between atoms, and the trigrams that span it, need not occur in the
	// candidate: check the atoms' combined bitmask and skip the trigram
	// prefilter.
	queryBitmask := q.Bitmask
	atomSplit := len(q.Atoms) > 1
	if atomSplit {
		queryBitmask = 0
		for i := range q.Atoms {
			queryBitmask |= q.Atoms[i].Bitmask
		}
	}
	if !bitmaskPrefilterPass(queryBitmask, candidateBitmask, dCap) {
		return ScoredMatch{}, false
	}
	// The trigram prefilter assumes a match needs some contiguous-ish
	// overlap, which holds for the ED/SW main alignments but not for the
	// acronym fallback (spec.md §4.4 point 5 / §4.5): "bms" against
	// "bristol myers squibb" shares zero trigrams with its candidate by
	// design. Skip the trigram check for any query that could still win
	// via acronym so that fallback never gets prefiltered away before it
	// runs.
	if qLen >= 3 && !atomSplit && !acronymEligible(m.cfg, q) && !trigramPrefilterPass(q, lower, dCap, buf) {
		return ScoredMatch{}, false
	}

	var (
		result ScoredMatch
		ok     bool
	)
	switch m.cfg.Algorithm {
	case AlgorithmEditDistance:
		result, ok = scoreEditDistance(m.cfg.Ed, q, lower, boundary, buf)
	case AlgorithmSmithWaterman:
		result, ok = scoreSmithWaterman(m.cfg.Sw, q, lower, boundary, buf)
	}
	if !ok || result.Score < m.cfg.MinScore {
		return ScoredMatch{}, false
	}
	return result, true
}
