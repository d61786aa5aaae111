// Package consensus is for finding the consensus of aligned sequences
// using a profile matrix of per-column base counts.
package consensus

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jjtimmons/rosalind/internal/seq"
)

// ErrUnequalLength is returned when the sequences of a profile are not all
// the same length.
var ErrUnequalLength = errors.New("sequences are not of equal length")

// Profile is a column-indexed table of symbol counts across a set of
// equal-length sequences.
type Profile struct {
	columns []seq.Counts
}

// NewProfile tallies the (upper-cased) symbols at each column of seqs.
func NewProfile(seqs []string) (*Profile, error) {
	rows := make([][]rune, len(seqs))
	for i, s := range seqs {
		rows[i] = []rune(strings.ToUpper(s))
		if len(rows[i]) != len(rows[0]) {
			return nil, fmt.Errorf("sequence %d has length %d, sequence 0 has length %d: %w", i, len(rows[i]), len(rows[0]), ErrUnequalLength)
		}
	}

	p := &Profile{}
	if len(rows) == 0 {
		return p, nil
	}

	p.columns = make([]seq.Counts, len(rows[0]))
	for col := range p.columns {
		p.columns[col] = seq.NewCounts()
		for _, row := range rows {
			p.columns[col].Inc(row[col])
		}
	}

	return p, nil
}

// Len is the number of columns.
func (p *Profile) Len() int {
	return len(p.columns)
}

// Column returns the symbol counts at column i.
func (p *Profile) Column(i int) seq.Counts {
	return p.columns[i]
}

// Alphabet returns every symbol seen in the profile, sorted.
func (p *Profile) Alphabet() []rune {
	seen := make(map[rune]bool)
	var alphabet []rune
	for _, col := range p.columns {
		for _, r := range col.Symbols() {
			if !seen[r] {
				seen[r] = true
				alphabet = append(alphabet, r)
			}
		}
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })
	return alphabet
}

// Row returns the count of symbol r at each column.
func (p *Profile) Row(r rune) []int {
	row := make([]int, len(p.columns))
	for i, col := range p.columns {
		row[i] = col.Count(r)
	}
	return row
}

// Consensus returns the most frequent symbol of each column. When symbols
// tie, the one that sorts first wins.
func (p *Profile) Consensus() string {
	var consensus strings.Builder
	for _, col := range p.columns {
		symbols := col.Symbols()
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

		best := symbols[0]
		for _, r := range symbols[1:] {
			if col.Count(r) > col.Count(best) {
				best = r
			}
		}
		consensus.WriteRune(best)
	}
	return consensus.String()
}

// Find returns the consensus sequence of seqs.
func Find(seqs []string) (string, error) {
	p, err := NewProfile(seqs)
	if err != nil {
		return "", err
	}
	return p.Consensus(), nil
}
