// Package sparse provides a sparse set data structure for efficient
// membership testing over a bounded universe of uint32 values.
//
// A sparse set supports O(1) insertion, removal, and membership testing
// while keeping a dense slice of its members for iteration. It is the
// backing store for leaf-position sets (firstpos/lastpos/followpos),
// NFA state sets (ε-closures), and DFA state-set interning during subset
// construction — anywhere the pipeline needs a small set of bounded
// integers plus fast set-equality for state deduplication.
package sparse

import (
	"sort"
	"strconv"
	"strings"
)

// Set is a set of uint32 values drawn from [0, capacity).
type Set struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32 // the actual members
	size   uint32
}

// New creates an empty Set over the universe [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. No-op if already present.
// Panics if value >= capacity.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is a member of the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Remove deletes value from the set. No-op if absent.
func (s *Set) Remove(value uint32) {
	if !s.Contains(value) {
		return
	}
	idx := s.sparse[value]
	last := s.dense[s.size-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.size--
	s.dense = s.dense[:s.size]
}

// Clear empties the set in O(1) time.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Size returns the number of members.
func (s *Set) Size() int { return int(s.size) }

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool { return s.size == 0 }

// Values returns the members in unspecified order. The slice is valid until
// the next mutation of s.
func (s *Set) Values() []uint32 { return s.dense[:s.size] }

// Iter calls f for every member, in unspecified order.
func (s *Set) Iter(f func(uint32)) {
	for i := uint32(0); i < s.size; i++ {
		f(s.dense[i])
	}
}

// Union adds every member of other into s.
func (s *Set) Union(other *Set) {
	other.Iter(s.Insert)
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := &Set{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, len(s.dense)),
		size:   s.size,
	}
	copy(c.sparse, s.sparse)
	copy(c.dense, s.dense)
	return c
}

// Sorted returns the members in ascending order. Used wherever a
// deterministic iteration order is required (canonical keys, diagnostics).
func (s *Set) Sorted() []uint32 {
	out := make([]uint32, s.size)
	copy(out, s.dense[:s.size])
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether s and other contain exactly the same members,
// independent of insertion order.
func (s *Set) Equal(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	a, b := s.Sorted(), other.Sorted()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Key returns a canonical string representation of the set's contents,
// suitable for use as a map key when interning state sets (subset
// construction, direct DFA construction). Two sets with the same members
// produce the same key regardless of insertion order.
func (s *Set) Key() string {
	sorted := s.Sorted()
	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	return b.String()
}
