package fuzzyscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreSwHelper(t *testing.T, cfg SwConfig, query, candidate string, splitAtoms bool) (ScoredMatch, bool) {
	t.Helper()
	q := prepareQuery([]byte(query), splitAtoms)
	boundary := make([]BoundaryClass, len(candidate))
	fillBoundaryClasses(boundary, []byte(candidate))
	lower := make([]byte, len(candidate))
	for i := 0; i < len(candidate); i++ {
		lower[i] = ToLower(candidate[i])
	}
	buf := NewBuffer()
	buf.ensure(len(candidate))
	return scoreSmithWaterman(cfg, &q, lower, boundary, buf)
}

func TestScoreSmithWatermanStrongMatch(t *testing.T) {
	m, ok := scoreSwHelper(t, DefaultSwConfig(), "gubi", "getuserbyid", false)
	require.True(t, ok)
	assert.Equal(t, KindAlignment, m.Kind)
	assert.Greater(t, m.Score, 0.3)
}

func TestScoreSmithWatermanRewardsBoundaryHits(t *testing.T) {
	cfg := DefaultSwConfig()
	atWord, _ := scoreSwHelper(t, cfg, "ub", "getUserById", false)
	midWord, _ := scoreSwHelper(t, cfg, "er", "getUserById", false)
	assert.Greater(t, atWord.Score, 0.0)
	assert.Greater(t, midWord.Score, 0.0)
	assert.Greater(t, atWord.Score, midWord.Score, "letters at word starts outscore letters mid-word")
}

func TestScoreSmithWatermanRejectsUnrelated(t *testing.T) {
	_, ok := scoreSwHelper(t, DefaultSwConfig(), "xyz", "apple", false)
	assert.False(t, ok)
}

func TestScoreSmithWatermanAtomSplitting(t *testing.T) {
	m, ok := scoreSwHelper(t, DefaultSwConfig(), "bristol myers", "bristolmyerssquibb", true)
	require.True(t, ok)
	assert.Equal(t, KindAlignment, m.Kind)
}

func TestSwAlignConsecutiveRunScoresHigherThanScattered(t *testing.T) {
	cfg := DefaultSwConfig()
	boundary := make([]BoundaryClass, 20)
	buf := NewBuffer()
	buf.ensure(20)

	consecutive, _, ok1 := swAlign(cfg, []byte("user"), []byte("xuserxxxxxxxxxxxx"), boundary, buf)
	scattered, _, ok2 := swAlign(cfg, []byte("user"), []byte("xuxsxexrxxxxxxxxxx"), boundary, buf)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Greater(t, consecutive, scattered)
}

func TestScoreSmithWatermanPrefersStrongerAcronym(t *testing.T) {
	// "bms" scattered loosely across "bristolmyerssquibb" clears the main
	// alignment with only a weak, gap-penalized score; the clean acronym
	// hit must win the best-of comparison before min_score is applied.
	m, ok := scoreSwHelper(t, DefaultSwConfig(), "bms", "bristol myers squibb", false)
	require.True(t, ok)
	assert.Equal(t, KindAcronym, m.Kind)
	assert.Greater(t, m.Score, 0.9)
}

func TestMaxPossibleScoreUsesNormalizationConstant(t *testing.T) {
	cfg := DefaultSwConfig()
	assert.Equal(t, 4*cfg.ScoreMatch*swNormalizationK, maxPossibleScore(cfg, 4))
}
