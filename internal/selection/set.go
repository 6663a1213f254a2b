// Package selection provides the toggle-membership set shared by interest
// tags, calendar dates and time slots.
package selection

// Set is a duplicate-free collection that remembers the order keys were
// added in. The zero value is an empty set.
//
// Sets are values: every mutating operation returns a new Set and leaves
// the receiver untouched.
type Set[K comparable] struct {
	items []K
}

// Of builds a set from keys, dropping repeats.
func Of[K comparable](keys ...K) Set[K] {
	var s Set[K]
	for _, k := range keys {
		if !s.Contains(k) {
			s.items = append(s.items, k)
		}
	}
	return s
}

// Toggle returns a new set with key removed if present, appended if absent.
func Toggle[K comparable](s Set[K], key K) Set[K] {
	out := make([]K, 0, len(s.items)+1)
	found := false
	for _, k := range s.items {
		if k == key {
			found = true
			continue
		}
		out = append(out, k)
	}
	if !found {
		out = append(out, key)
	}
	return Set[K]{items: out}
}

// Toggle is the method form of the package-level Toggle.
func (s Set[K]) Toggle(key K) Set[K] {
	return Toggle(s, key)
}

// Contains reports whether key is a member.
func (s Set[K]) Contains(key K) bool {
	for _, k := range s.items {
		if k == key {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s Set[K]) Len() int {
	return len(s.items)
}

// Empty reports whether the set has no members.
func (s Set[K]) Empty() bool {
	return len(s.items) == 0
}

// Items returns the members in insertion order. The slice is a copy.
func (s Set[K]) Items() []K {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]K, len(s.items))
	copy(out, s.items)
	return out
}

// Equal reports whether both sets hold the same members, ignoring order.
func (s Set[K]) Equal(other Set[K]) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for _, k := range s.items {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}
