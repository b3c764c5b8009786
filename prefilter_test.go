package fuzzyscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthPrefilterPassRejectsShortCandidate(t *testing.T) {
	ok := lengthPrefilterPass(10, 5, 2, AlgorithmEditDistance, 0.003, 0.3)
	assert.False(t, ok, "candidate shorter than qLen-dCap can never match")
}

func TestLengthPrefilterPassRejectsOverlongCandidateForEd(t *testing.T) {
	ok := lengthPrefilterPass(4, 10000, 2, AlgorithmEditDistance, 0.003, 0.3)
	assert.False(t, ok)
}

func TestLengthPrefilterPassSmithWatermanSkipsMaxBound(t *testing.T) {
	ok := lengthPrefilterPass(4, 10000, 0, AlgorithmSmithWaterman, 0.003, 0.3)
	assert.True(t, ok, "Smith-Waterman has no candidate-length upper bound")
}

func TestMaxCandidateLenMonotonic(t *testing.T) {
	small := maxCandidateLen(4, 0.003, 0.9)
	large := maxCandidateLen(4, 0.003, 0.1)
	assert.Less(t, small, large, "a laxer MinScore must permit longer candidates")
}

func TestBitmaskPrefilterPass(t *testing.T) {
	q := uint64(1<<0 | 1<<1 | 1<<2)
	c := uint64(1<<0 | 1<<1)
	assert.True(t, bitmaskPrefilterPass(q, c, 1), "one missing class is within dCap")
	assert.False(t, bitmaskPrefilterPass(q, c, 0))
}

func TestTrigramPrefilterPass(t *testing.T) {
	buf := NewBuffer()
	q := Prepare([]byte("user"))

	assert.True(t, trigramPrefilterPass(&q, []byte("getuserbyid"), 0, buf))
	assert.False(t, trigramPrefilterPass(&q, []byte("xyzxyzxyzxyz"), 0, buf))
}

func TestTrigramPrefilterPassToleratesEdits(t *testing.T) {
	buf := NewBuffer()
	q := Prepare([]byte("users"))
	// one substitution away: "usirs" shares fewer trigrams but should
	// still clear the threshold once dCap allows for it.
	assert.True(t, trigramPrefilterPass(&q, []byte("usirs"), 1, buf))
}
