// ABOUTME: ExclusionSet domain model holds the app ids a host never wants to see
// ABOUTME: The set is copied on construction and never mutated afterwards

package domain

import "sort"

// ExclusionSet is an immutable set of app ids. The zero value is the empty set
// and is safe for concurrent use, as is any set built with NewExclusionSet.
type ExclusionSet struct {
	ids map[int64]struct{}
}

// NewExclusionSet builds a set from ids; duplicates collapse
func NewExclusionSet(ids ...int64) ExclusionSet {
	if len(ids) == 0 {
		return ExclusionSet{}
	}

	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return ExclusionSet{ids: set}
}

// Contains reports whether id is excluded
func (s ExclusionSet) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of distinct ids
func (s ExclusionSet) Len() int {
	return len(s.ids)
}

// IDs returns a sorted copy of the excluded ids
func (s ExclusionSet) IDs() []int64 {
	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
