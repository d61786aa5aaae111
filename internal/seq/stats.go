package seq

import "strings"

// Counts is a tally of symbols that remembers the order in which each
// symbol was first seen.
type Counts struct {
	order  []rune
	counts map[rune]int
}

// NewCounts returns an empty tally.
func NewCounts() Counts {
	return Counts{counts: make(map[rune]int)}
}

// Inc adds one occurrence of r.
func (c *Counts) Inc(r rune) {
	if c.counts == nil {
		c.counts = make(map[rune]int)
	}
	if _, seen := c.counts[r]; !seen {
		c.order = append(c.order, r)
	}
	c.counts[r]++
}

// Count returns the number of times r was seen.
func (c Counts) Count(r rune) int {
	return c.counts[r]
}

// Symbols returns the symbols in first-occurrence order.
func (c Counts) Symbols() []rune {
	return append([]rune(nil), c.order...)
}

// Map returns the tally as a plain map.
func (c Counts) Map() map[rune]int {
	m := make(map[rune]int, len(c.counts))
	for r, n := range c.counts {
		m[r] = n
	}
	return m
}

// Len is the number of distinct symbols.
func (c Counts) Len() int {
	return len(c.order)
}

// CountBases counts each distinct (upper-cased) symbol in seq.
func CountBases(seq string) Counts {
	counts := NewCounts()
	for _, c := range strings.ToUpper(seq) {
		counts.Inc(c)
	}
	return counts
}

// GC returns the percentage (0-100) of bases in seq that are G or C.
// An empty sequence has a GC content of 0.
func GC(seq string) float64 {
	total, gc := 0, 0
	for _, c := range seq {
		total++
		switch c {
		case 'G', 'g', 'C', 'c':
			gc++
		}
	}

	if gc == 0 {
		return 0
	}
	return 100 * float64(gc) / float64(total)
}

// Hamming returns the number of positions at which a and b differ. When
// the lengths differ, every position past the end of the shorter sequence
// counts as a mismatch.
func Hamming(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) < len(br) {
		ar, br = br, ar
	}

	dist := len(ar) - len(br)
	for i := range br {
		if ar[i] != br[i] {
			dist++
		}
	}
	return dist
}
