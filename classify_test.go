package fuzzyscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLower(t *testing.T) {
	assert.Equal(t, byte('a'), ToLower('A'))
	assert.Equal(t, byte('z'), ToLower('z'))
	assert.Equal(t, byte('9'), ToLower('9'))
	assert.Equal(t, byte('_'), ToLower('_'))
}

func TestIsWordByte(t *testing.T) {
	assert.True(t, IsWordByte('a'))
	assert.True(t, IsWordByte('Z'))
	assert.True(t, IsWordByte('5'))
	assert.True(t, IsWordByte('_'))
	assert.False(t, IsWordByte('-'))
	assert.False(t, IsWordByte(' '))
}

func TestBoundaryClassAt(t *testing.T) {
	assert.Equal(t, BoundaryWhitespace, boundaryClassAt(' ', 'a'))
	assert.Equal(t, BoundaryDelimiter, boundaryClassAt('-', 'a'))
	assert.Equal(t, BoundaryCamel, boundaryClassAt('a', 'B'))
	assert.Equal(t, BoundaryCamel, boundaryClassAt('a', '2'))
	assert.Equal(t, BoundaryNone, boundaryClassAt('a', 'b'))
}

func TestFillBoundaryClasses(t *testing.T) {
	dst := make([]BoundaryClass, len("getUserById"))
	fillBoundaryClasses(dst, []byte("getUserById"))

	assert.Equal(t, BoundaryWhitespace, dst[0], "position 0 is always the strongest boundary")
	assert.Equal(t, BoundaryCamel, dst[3], "U in getUser")
	assert.Equal(t, BoundaryCamel, dst[7], "B in UserBy")
}

func TestBitClassOf(t *testing.T) {
	assert.Equal(t, bitClassOf('a'), bitClassOf('a'))
	assert.NotEqual(t, bitClassOf('a'), bitClassOf('b'))
	assert.Equal(t, classOther, bitClassOf('-'))
	assert.Equal(t, charClass(26), bitClassOf('0'))
}
