// Package compare provides the set algebra used to diff note-file sets
// across snapshots.
package compare

import "sort"

// Set is a set of note filenames.
type Set = map[string]struct{}

// UniquePair returns the filenames unique to a and the filenames unique to
// b (two-way set difference).
func UniquePair(a, b Set) (uniqueA, uniqueB Set) {
	uniqueA = make(Set)
	uniqueB = make(Set)
	for name := range a {
		if _, ok := b[name]; !ok {
			uniqueA[name] = struct{}{}
		}
	}
	for name := range b {
		if _, ok := a[name]; !ok {
			uniqueB[name] = struct{}{}
		}
	}
	return uniqueA, uniqueB
}

// DuplicatesAcrossOlder returns the filenames present in newest and in at
// least one of the older sets (union of pairwise intersections).
func DuplicatesAcrossOlder(newest Set, older ...Set) Set {
	dups := make(Set)
	for _, old := range older {
		for name := range newest {
			if _, ok := old[name]; ok {
				dups[name] = struct{}{}
			}
		}
	}
	return dups
}

// Sorted returns the set's members in ascending order, for deterministic
// iteration and logging.
func Sorted(s Set) []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
