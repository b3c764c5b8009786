package fuzzyscore

// Config types: a tagged union of EdConfig | SwConfig wrapped in
// MatchConfig, generalizing the teacher's `type Algo func(...)`
// dispatch-by-value idiom (algo.go) into an explicit enum discriminant
// plus embedded sub-configs, per spec.md §9's "Configuration variants"
// strategy note.

// Algorithm selects which scorer MatchConfig.Algorithm dispatches to.
type Algorithm uint8

const (
	AlgorithmEditDistance Algorithm = iota
	AlgorithmSmithWaterman
)

// GapPenaltyKind selects between a flat per-byte gap cost and an
// affine open+extend cost for the edit-distance bonus scorer.
type GapPenaltyKind uint8

const (
	GapPenaltyLinear GapPenaltyKind = iota
	GapPenaltyAffine
)

// GapPenalty configures the edit-distance bonus scorer's gap cost.
type GapPenalty struct {
	Kind GapPenaltyKind

	// Per is the per-byte cost when Kind == GapPenaltyLinear.
	Per float64

	// Open and Extend are the affine gap-open/gap-extend costs when
	// Kind == GapPenaltyAffine.
	Open   float64
	Extend float64
}

// DefaultGapPenalty returns the affine default from spec.md §3:
// open=0.03, extend=0.005.
func DefaultGapPenalty() GapPenalty {
	return GapPenalty{Kind: GapPenaltyAffine, Open: 0.03, Extend: 0.005}
}

// EdConfig configures the edit-distance scorer (spec.md §3, §4.4).
type EdConfig struct {
	MaxEditDistance          int
	LongQueryMaxEditDistance int
	LongQueryThreshold       int

	PrefixWeight    float64
	SubstringWeight float64
	AcronymWeight   float64

	WordBoundaryBonus float64
	ConsecutiveBonus  float64
	GapPenalty        GapPenalty

	FirstMatchBonus      float64
	FirstMatchBonusRange int
	LengthPenalty        float64

	// AcronymMaxLen caps how long a query may be to attempt acronym
	// matching (spec.md §4.4 point 5, "~8" suggested default).
	AcronymMaxLen int

	// AllowAcronymSkip permits one missing word-initial when
	// MaxEditDistance >= 1 (resolves Open Question 2).
	AllowAcronymSkip bool
}

// DefaultEdConfig returns spec.md §3's documented defaults.
func DefaultEdConfig() EdConfig {
	return EdConfig{
		MaxEditDistance:          2,
		LongQueryMaxEditDistance: 3,
		LongQueryThreshold:       13,
		PrefixWeight:             1.5,
		SubstringWeight:          1.0,
		AcronymWeight:            1.0,
		WordBoundaryBonus:        0.1,
		ConsecutiveBonus:         0.05,
		GapPenalty:               DefaultGapPenalty(),
		FirstMatchBonus:          0.15,
		FirstMatchBonusRange:     10,
		LengthPenalty:            0.003,
		AcronymMaxLen:            8,
		AllowAcronymSkip:         true,
	}
}

// editCap returns the permitted edit-distance cap for a query of the
// given length, applying the long-query relaxation.
func (c EdConfig) editCap(qLen int) int {
	if qLen >= c.LongQueryThreshold {
		return c.LongQueryMaxEditDistance
	}
	return c.MaxEditDistance
}

// SwConfig configures the Smith-Waterman scorer (spec.md §3, §4.5).
// All score/bonus/penalty fields are integers; SW runs in fixed-point
// arithmetic until final normalization (spec.md §7).
type SwConfig struct {
	ScoreMatch       int
	PenaltyGapStart  int
	PenaltyGapExtend int

	BonusConsecutive        int
	BonusBoundary           int
	BonusBoundaryWhitespace int
	BonusBoundaryDelimiter  int
	BonusCamelCase          int

	BonusFirstCharMultiplier int

	SplitSpaces bool
}

// DefaultSwConfig returns spec.md §3's documented defaults.
func DefaultSwConfig() SwConfig {
	return SwConfig{
		ScoreMatch:               16,
		PenaltyGapStart:          3,
		PenaltyGapExtend:         1,
		BonusConsecutive:         4,
		BonusBoundary:            8,
		BonusBoundaryWhitespace:  10,
		BonusBoundaryDelimiter:   9,
		BonusCamelCase:           5,
		BonusFirstCharMultiplier: 2,
		SplitSpaces:              true,
	}
}

// swNormalizationK is the calibration constant k in max_possible(n) = n
// * score_match * k (resolves Open Question 3; spec.md §9 allows k in
// [2,4]).
const swNormalizationK = 3

// MatchConfig is the top-level, immutable configuration passed to
// NewMatcher.
type MatchConfig struct {
	MinScore  float64
	Algorithm Algorithm
	Ed        EdConfig
	Sw        SwConfig
}

// DefaultEditDistanceConfig returns a ready-to-use edit-distance
// MatchConfig with spec.md defaults and MinScore 0.3.
func DefaultEditDistanceConfig() MatchConfig {
	return MatchConfig{MinScore: 0.3, Algorithm: AlgorithmEditDistance, Ed: DefaultEdConfig()}
}

// DefaultSmithWatermanConfig returns a ready-to-use Smith-Waterman
// MatchConfig with spec.md defaults and MinScore 0.3.
func DefaultSmithWatermanConfig() MatchConfig {
	return MatchConfig{MinScore: 0.3, Algorithm: AlgorithmSmithWaterman, Sw: DefaultSwConfig()}
}
