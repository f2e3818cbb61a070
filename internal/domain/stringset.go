package domain

import "slices"

// StringSet is an ordered collection of unique strings. Membership uses exact
// string equality. Mutating methods return a new set and leave the receiver
// untouched.
type StringSet []string

// NewStringSet builds a set from items, keeping the first occurrence of each.
func NewStringSet(items ...string) StringSet {
	set := make(StringSet, 0, len(items))
	for _, item := range items {
		if !slices.Contains(set, item) {
			set = append(set, item)
		}
	}
	return set
}

func (s StringSet) Contains(item string) bool {
	return slices.Contains(s, item)
}

// Add appends item if absent. The bool reports whether the set changed.
func (s StringSet) Add(item string) (StringSet, bool) {
	if s.Contains(item) {
		return s.Clone(), false
	}
	return append(s.Clone(), item), true
}

// Remove drops item if present. Removing an absent item is a no-op.
func (s StringSet) Remove(item string) (StringSet, bool) {
	idx := slices.Index(s, item)
	if idx < 0 {
		return s.Clone(), false
	}
	return slices.Delete(s.Clone(), idx, idx+1), true
}

// Equal compares membership only; order is ignored.
func (s StringSet) Equal(other StringSet) bool {
	if len(s) != len(other) {
		return false
	}
	for _, item := range s {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

func (s StringSet) Clone() StringSet {
	if s == nil {
		return StringSet{}
	}
	return slices.Clone(s)
}

func (s StringSet) Items() []string {
	return []string(s.Clone())
}

func (s StringSet) Len() int {
	return len(s)
}
