// Package answers tallies customs declaration forms: lines of lowercase
// letters, one letter per question answered "yes".
package answers

import "math/bits"

// A LetterSet is a set of the letters a-z, one bit per letter.
type LetterSet uint32

// Full contains every letter.
const Full LetterSet = 1<<26 - 1

// Add returns s with c added. Bytes outside a-z are ignored.
func (s LetterSet) Add(c byte) LetterSet {
	if c >= 'a' && c <= 'z' {
		s |= 1 << (c - 'a')
	}
	return s
}

// Of returns the set of letters a-z appearing in str.
func Of(str string) LetterSet {
	var s LetterSet
	for i := 0; i < len(str); i++ {
		s = s.Add(str[i])
	}
	return s
}

// Has reports whether c is in s.
func (s LetterSet) Has(c byte) bool {
	if c < 'a' || c > 'z' {
		return false
	}
	return s&(1<<(c-'a')) != 0
}

// Len is the number of letters in s.
func (s LetterSet) Len() int { return bits.OnesCount32(uint32(s)) }

// Union returns the letters in s or s1.
func (s LetterSet) Union(s1 LetterSet) LetterSet { return s | s1 }

// Intersect returns the letters in both s and s1.
func (s LetterSet) Intersect(s1 LetterSet) LetterSet { return s & s1 }

// String lists the letters of s in alphabetical order.
func (s LetterSet) String() string {
	b := make([]byte, 0, s.Len())
	for c := byte('a'); c <= 'z'; c++ {
		if s.Has(c) {
			b = append(b, c)
		}
	}
	return string(b)
}
