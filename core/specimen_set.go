package core

import "math/bits"

// SpecimenSet is a dense bitset of individual indices, keyed by the
// integer index assigned at allele-matrix load time. It is the working
// representation of Node.Specimens: intersection, union, and difference are
// a few machine words per operation instead of O(n) set-theoretic calls, per
// the system's design notes on transient per-node specimen tables.
//
// The zero value is an empty set, ready to use.
type SpecimenSet struct {
	words []uint64
}

// NewSpecimenSet returns an empty set with room for individuals [0, n).
func NewSpecimenSet(n int) SpecimenSet {
	if n <= 0 {
		return SpecimenSet{}
	}
	return SpecimenSet{words: make([]uint64, (n+63)/64)}
}

// SpecimenSetOf returns a set containing exactly the given individuals.
func SpecimenSetOf(individuals ...int) SpecimenSet {
	var s SpecimenSet
	for _, i := range individuals {
		s.Add(i)
	}
	return s
}

func (s *SpecimenSet) ensure(word int) {
	if word < len(s.words) {
		return
	}
	grown := make([]uint64, word+1)
	copy(grown, s.words)
	s.words = grown
}

// Add inserts individual i into the set.
func (s *SpecimenSet) Add(i int) {
	if i < 0 {
		return
	}
	w, b := i/64, uint(i%64)
	s.ensure(w)
	s.words[w] |= 1 << b
}

// Remove deletes individual i from the set, if present.
func (s *SpecimenSet) Remove(i int) {
	if i < 0 || i/64 >= len(s.words) {
		return
	}
	w, b := i/64, uint(i%64)
	s.words[w] &^= 1 << b
}

// Contains reports whether individual i is a member.
func (s SpecimenSet) Contains(i int) bool {
	if i < 0 {
		return false
	}
	w, b := i/64, uint(i%64)
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<b) != 0
}

// Len returns the number of members.
func (s SpecimenSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Clone returns a deep copy: mutating the clone never bleeds into s. This
// guards against the aliasing bug the design notes call out as a frequent
// source of simplifier bugs.
func (s SpecimenSet) Clone() SpecimenSet {
	if len(s.words) == 0 {
		return SpecimenSet{}
	}
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return SpecimenSet{words: words}
}

func maxLen(a, b []uint64) int {
	if len(a) > len(b) {
		return len(a)
	}
	return len(b)
}

// Intersect returns a new set of individuals present in both s and other.
func (s SpecimenSet) Intersect(other SpecimenSet) SpecimenSet {
	n := len(s.words)
	if len(other.words) < n {
		n = len(other.words)
	}
	if n == 0 {
		return SpecimenSet{}
	}
	words := make([]uint64, n)
	for i := 0; i < n; i++ {
		words[i] = s.words[i] & other.words[i]
	}
	return SpecimenSet{words: words}
}

// Union returns a new set of individuals present in s or other.
func (s SpecimenSet) Union(other SpecimenSet) SpecimenSet {
	n := maxLen(s.words, other.words)
	if n == 0 {
		return SpecimenSet{}
	}
	words := make([]uint64, n)
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(s.words) {
			a = s.words[i]
		}
		if i < len(other.words) {
			b = other.words[i]
		}
		words[i] = a | b
	}
	return SpecimenSet{words: words}
}

// Difference returns a new set of individuals present in s but not other.
func (s SpecimenSet) Difference(other SpecimenSet) SpecimenSet {
	if len(s.words) == 0 {
		return SpecimenSet{}
	}
	words := make([]uint64, len(s.words))
	for i := range words {
		a := s.words[i]
		var b uint64
		if i < len(other.words) {
			b = other.words[i]
		}
		words[i] = a &^ b
	}
	return SpecimenSet{words: words}
}

// Equal reports whether s and other contain exactly the same individuals.
func (s SpecimenSet) Equal(other SpecimenSet) bool {
	n := maxLen(s.words, other.words)
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(s.words) {
			a = s.words[i]
		}
		if i < len(other.words) {
			b = other.words[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

// Slice returns the set's members in ascending order.
func (s SpecimenSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for w, word := range s.words {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, w*64+b)
			word &= word - 1
		}
	}
	return out
}
