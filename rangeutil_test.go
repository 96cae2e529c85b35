package rill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIndexRewritesNegative(t *testing.T) {
	i, ok := NormalizeIndex(-2, 5)
	assert.True(t, ok)
	assert.Equal(t, 3, i)
}

func TestNormalizeIndexRejectsOutOfRange(t *testing.T) {
	_, ok := NormalizeIndex(5, 5)
	assert.False(t, ok)
	_, ok2 := NormalizeIndex(-6, 5)
	assert.False(t, ok2)
}

func TestNormalizeRangeInclusiveBothEnds(t *testing.T) {
	start, end, ok := NormalizeRange(5, RangeBounds{HasStart: true, Start: -2, HasEnd: true, End: -1})
	assert.True(t, ok)
	assert.Equal(t, 3, start)
	assert.Equal(t, 4, end)
	assert.Equal(t, 2, end-start+1)
}

func TestNormalizeRangeDefaultsToWholeCollection(t *testing.T) {
	start, end, ok := NormalizeRange(5, RangeBounds{})
	assert.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)
}

func TestNormalizeRangeRejectsDescending(t *testing.T) {
	_, _, ok := NormalizeRange(5, RangeBounds{HasStart: true, Start: 3, HasEnd: true, End: 1})
	assert.False(t, ok)
}

func TestNormalizeRangeRejectsOutOfRangeBound(t *testing.T) {
	_, _, ok := NormalizeRange(5, RangeBounds{HasStart: true, Start: 0, HasEnd: true, End: 10})
	assert.False(t, ok)
}
