// Package bag provides the set type used as the node weight of a clique
// graph and of a tree decomposition: an unordered collection of vertex IDs
// from the input graph.
//
// Bags only ever grow during path-filling (core/methods_clone.go-style deep
// copies are how callers snapshot a decomposition before growth begins); no
// operation in this package mutates a Bag shared by two callers without an
// explicit Clone.
package bag

import "sort"

// Bag is an unordered set of vertex IDs (the string IDs of package graph).
//
// Complexity note: all set operations are O(len(b)) or O(len(b)+len(other)).
type Bag map[string]struct{}

// New returns an empty Bag, optionally seeded with ids.
func New(ids ...string) Bag {
	b := make(Bag, len(ids))
	for _, id := range ids {
		b[id] = struct{}{}
	}

	return b
}

// Add inserts id into b (idempotent).
func (b Bag) Add(id string) { b[id] = struct{}{} }

// AddAll inserts every id of other into b (idempotent, grows b only).
func (b Bag) AddAll(other Bag) {
	for id := range other {
		b[id] = struct{}{}
	}
}

// Contains reports whether id is a member of b.
func (b Bag) Contains(id string) bool {
	_, ok := b[id]

	return ok
}

// Len returns the number of members.
func (b Bag) Len() int { return len(b) }

// Clone returns an independent deep copy of b.
func (b Bag) Clone() Bag {
	out := make(Bag, len(b))
	for id := range b {
		out[id] = struct{}{}
	}

	return out
}

// CloneValue implements the (graph.Vertex).Metadata deep-clone hook, so that
// graph.Graph.Clone never lets two decomposition trees share a mutable Bag.
func (b Bag) CloneValue() interface{} { return b.Clone() }

// Sorted returns the members of b in ascending lexicographic order, for
// deterministic logging and testing.
func (b Bag) Sorted() []string {
	out := make([]string, 0, len(b))
	for id := range b {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Equal reports whether a and b contain exactly the same members.
func Equal(a, b Bag) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}

	return true
}

// Intersection returns the members present in both a and b. Never mutates
// its arguments.
func Intersection(a, b Bag) Bag {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	out := make(Bag, len(small))
	for id := range small {
		if _, ok := big[id]; ok {
			out[id] = struct{}{}
		}
	}

	return out
}

// Union returns the members present in either a or b. Never mutates its
// arguments.
func Union(a, b Bag) Bag {
	out := make(Bag, len(a)+len(b))
	for id := range a {
		out[id] = struct{}{}
	}
	for id := range b {
		out[id] = struct{}{}
	}

	return out
}

// SymmetricDifference returns the members present in exactly one of a, b.
// Never mutates its arguments.
func SymmetricDifference(a, b Bag) Bag {
	out := make(Bag, len(a)+len(b))
	for id := range a {
		if _, ok := b[id]; !ok {
			out[id] = struct{}{}
		}
	}
	for id := range b {
		if _, ok := a[id]; !ok {
			out[id] = struct{}{}
		}
	}

	return out
}
