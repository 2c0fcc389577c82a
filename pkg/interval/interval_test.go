package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeEmpty(t *testing.T) {
	assert.Empty(t, Merge(nil))
	assert.Empty(t, Merge([]Span{}))
}

func TestMergeTouching(t *testing.T) {
	got := Merge([]Span{{0, 30}, {30, 60}})
	assert.Equal(t, []Span{{0, 60}}, got)
}

func TestMergeGapPreserved(t *testing.T) {
	got := Merge([]Span{{0, 10}, {20, 30}})
	assert.Equal(t, []Span{{0, 10}, {20, 30}}, got)
}

func TestMergeContainmentAbsorbed(t *testing.T) {
	got := Merge([]Span{{0, 100}, {10, 20}})
	assert.Equal(t, []Span{{0, 100}}, got)
}

func TestMergeIdentical(t *testing.T) {
	got := Merge([]Span{{10, 20}, {10, 20}})
	assert.Equal(t, []Span{{10, 20}}, got)
}

func TestMergeUnsortedInput(t *testing.T) {
	input := []Span{{50, 70}, {0, 10}, {60, 90}, {5, 8}}
	got := Merge(input)
	assert.Equal(t, []Span{{0, 10}, {50, 90}}, got)
	// Input order is preserved.
	assert.Equal(t, []Span{{50, 70}, {0, 10}, {60, 90}, {5, 8}}, input)
}

func TestMergeNegativeAndOverflowBounds(t *testing.T) {
	// Guard windows may extend past midnight on either side.
	got := Merge([]Span{{-15, 30}, {1430, 1455}})
	assert.Equal(t, []Span{{-15, 30}, {1430, 1455}}, got)
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Span{690, 720}.Overlaps(Span{680, 700}))
	assert.False(t, Span{690, 720}.Overlaps(Span{660, 690}))
	assert.False(t, Span{690, 720}.Overlaps(Span{720, 750}))
}
