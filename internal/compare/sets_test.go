package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func set(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func TestUniquePair(t *testing.T) {
	uniqueA, uniqueB := UniquePair(set("a", "b"), set("b", "c"))
	assert.Equal(t, set("a"), uniqueA)
	assert.Equal(t, set("c"), uniqueB)
}

func TestUniquePair_DisjointSets(t *testing.T) {
	uniqueA, uniqueB := UniquePair(set("a"), set("b"))
	assert.Equal(t, set("a"), uniqueA)
	assert.Equal(t, set("b"), uniqueB)
}

func TestUniquePair_IdenticalSets(t *testing.T) {
	uniqueA, uniqueB := UniquePair(set("a", "b"), set("a", "b"))
	assert.Empty(t, uniqueA)
	assert.Empty(t, uniqueB)
}

func TestUniquePair_EmptySides(t *testing.T) {
	uniqueA, uniqueB := UniquePair(set(), set("a"))
	assert.Empty(t, uniqueA)
	assert.Equal(t, set("a"), uniqueB)
}

func TestDuplicatesAcrossOlder_SingleOlder(t *testing.T) {
	dups := DuplicatesAcrossOlder(set("a", "b", "c"), set("b", "c", "d"))
	assert.Equal(t, set("b", "c"), dups)
}

func TestDuplicatesAcrossOlder_UnionOfIntersections(t *testing.T) {
	dups := DuplicatesAcrossOlder(set("a", "b", "c"), set("a"), set("c", "x"))
	assert.Equal(t, set("a", "c"), dups)
}

func TestDuplicatesAcrossOlder_NoOlder(t *testing.T) {
	dups := DuplicatesAcrossOlder(set("a"))
	assert.Empty(t, dups)
}

func TestSorted(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Sorted(set("c", "a", "b")))
	assert.Empty(t, Sorted(set()))
}
