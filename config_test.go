package fuzzyscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEdConfigValues(t *testing.T) {
	c := DefaultEdConfig()
	assert.Equal(t, 2, c.MaxEditDistance)
	assert.Equal(t, 3, c.LongQueryMaxEditDistance)
	assert.Equal(t, 13, c.LongQueryThreshold)
	assert.Equal(t, 1.5, c.PrefixWeight)
	assert.Equal(t, GapPenaltyAffine, c.GapPenalty.Kind)
	assert.Equal(t, 0.03, c.GapPenalty.Open)
	assert.Equal(t, 0.005, c.GapPenalty.Extend)
}

func TestEditCapRelaxesForLongQueries(t *testing.T) {
	c := DefaultEdConfig()
	assert.Equal(t, 2, c.editCap(5))
	assert.Equal(t, 3, c.editCap(13))
	assert.Equal(t, 3, c.editCap(20))
}

func TestDefaultSwConfigValues(t *testing.T) {
	c := DefaultSwConfig()
	assert.Equal(t, 16, c.ScoreMatch)
	assert.Equal(t, 3, c.PenaltyGapStart)
	assert.Equal(t, 1, c.PenaltyGapExtend)
	assert.True(t, c.SplitSpaces)
}

func TestDefaultConfigsWireMinScore(t *testing.T) {
	ed := DefaultEditDistanceConfig()
	assert.Equal(t, AlgorithmEditDistance, ed.Algorithm)
	assert.Equal(t, 0.3, ed.MinScore)

	sw := DefaultSmithWatermanConfig()
	assert.Equal(t, AlgorithmSmithWaterman, sw.Algorithm)
	assert.Equal(t, 0.3, sw.MinScore)
}
