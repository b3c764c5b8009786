package fuzzyscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoringBufferEnsureGrowsGeometrically(t *testing.T) {
	buf := NewBuffer()
	first := buf.ensure(10)
	assert.Len(t, first, 10)
	assert.GreaterOrEqual(t, cap(buf.lowerCandidate), 10)

	firstCap := cap(buf.lowerCandidate)
	buf.ensure(5)
	assert.Equal(t, firstCap, cap(buf.lowerCandidate), "buffer must never shrink")

	buf.ensure(1000)
	assert.GreaterOrEqual(t, cap(buf.lowerCandidate), 1000)
}

func TestScoringBufferReentrancyGuard(t *testing.T) {
	buf := NewBuffer()
	require.True(t, buf.tryAcquire())
	assert.False(t, buf.tryAcquire(), "a second acquire must fail while the first is held")
	buf.release()
	assert.True(t, buf.tryAcquire())
	buf.release()
}

func TestScoringBufferMustAcquirePanics(t *testing.T) {
	buf := NewBuffer()
	buf.tryAcquire()
	assert.Panics(t, func() { buf.mustAcquire() })
	buf.release()
}

func TestClearTrigramMap(t *testing.T) {
	m := map[trigramKey]int{{'a', 'b', 'c'}: 3}
	clearTrigramMap(m)
	assert.Empty(t, m)
}
