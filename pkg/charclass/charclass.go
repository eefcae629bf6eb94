// Package charclass provides a fixed-capacity code point membership set used
// by the parsers to recognize special and delimiter characters in O(1).
package charclass

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ASCII is the capacity used for sets of Markdown punctuation.
const ASCII = 128

// Set is a fixed-capacity bit vector over the code points 0..Len()-1.
// A Set is not safe for concurrent mutation; derive per-consumer copies
// with Clone instead of mutating a shared set.
type Set struct {
	bits *bitset.BitSet
	size uint
}

// New returns an empty set able to hold code points 0..size-1.
func New(size int) *Set {
	if size < 0 {
		panic(fmt.Sprintf("charclass: negative size %d", size))
	}
	return &Set{bits: bitset.New(uint(size)), size: uint(size)}
}

// Of returns a set of the given capacity with chars already set.
func Of(size int, chars ...rune) *Set {
	set := New(size)
	for _, char := range chars {
		set.Set(char)
	}
	return set
}

// Len returns the capacity of the set.
func (s *Set) Len() int {
	return int(s.size)
}

// Count returns the number of members.
func (s *Set) Count() int {
	return int(s.bits.Count())
}

// Test reports whether r is a member. Code points outside the capacity are
// never members.
func (s *Set) Test(r rune) bool {
	if r < 0 || uint(r) >= s.size {
		return false
	}
	return s.bits.Test(uint(r))
}

// TestByte reports whether the byte b is a member.
func (s *Set) TestByte(b byte) bool {
	return s.Test(rune(b))
}

// Set adds r to the set. It panics if r is outside the capacity.
func (s *Set) Set(r rune) *Set {
	s.check(r)
	s.bits.Set(uint(r))
	return s
}

// SetTo adds r to the set when value is true and removes it otherwise.
// It panics if r is outside the capacity.
func (s *Set) SetTo(r rune, value bool) *Set {
	s.check(r)
	s.bits.SetTo(uint(r), value)
	return s
}

// Clone returns an independent deep copy.
func (s *Set) Clone() *Set {
	return &Set{bits: s.bits.Clone(), size: s.size}
}

// Runes returns the members in ascending order.
func (s *Set) Runes() []rune {
	runes := make([]rune, 0, s.Count())
	for i, ok := s.bits.NextSet(0); ok && i < s.size; i, ok = s.bits.NextSet(i + 1) {
		runes = append(runes, rune(i))
	}
	return runes
}

func (s *Set) check(r rune) {
	if r < 0 || uint(r) >= s.size {
		panic(fmt.Sprintf("charclass: code point %U outside set capacity %d", r, s.size))
	}
}
