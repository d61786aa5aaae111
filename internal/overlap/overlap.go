// Package overlap builds overlap graphs: directed graphs between sequences
// where the suffix of one sequence matches the prefix of another.
package overlap

import (
	"errors"
	"fmt"

	"github.com/jjtimmons/rosalind/internal/seq"
)

// ErrInvalidOverlap is returned for an overlap length below 1.
var ErrInvalidOverlap = errors.New("overlap length must be at least 1")

// Edge is a directed edge between two sequence IDs.
type Edge struct {
	// From is the ID of the sequence whose suffix overlaps
	From string

	// To is the ID of the sequence whose prefix overlaps
	To string
}

// Graph is an overlap graph.
type Graph struct {
	edges []Edge
	k     int
}

// end is the prefix and suffix of a single sequence.
type end struct {
	id     string
	prefix string
	suffix string
}

// List returns the overlap graph of the sequences in c for an overlap of
// length k. There is an edge from i to j (i != j) when the last k bases of i
// equal the first k bases of j. Edges are ordered by the position of their
// source, then target, in c.
//
// A sequence shorter than k overlaps with its whole length.
func List(c *seq.Collection, k int) (*Graph, error) {
	if k < 1 {
		return nil, fmt.Errorf("overlap of %d: %w", k, ErrInvalidOverlap)
	}

	ends := make([]end, 0, c.Len())
	for _, id := range c.IDs() {
		s, _ := c.Get(id)
		n := k
		if n > len(s) {
			n = len(s)
		}
		ends = append(ends, end{id: id, prefix: s[:n], suffix: s[len(s)-n:]})
	}

	g := &Graph{k: k}
	for i, from := range ends {
		for j, to := range ends {
			if i != j && from.suffix == to.prefix {
				g.edges = append(g.edges, Edge{From: from.id, To: to.id})
			}
		}
	}

	return g, nil
}

// Edges returns a copy of the graph's edges.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Len is the number of edges.
func (g *Graph) Len() int {
	return len(g.edges)
}

// Overlap is the overlap length the graph was built with.
func (g *Graph) Overlap() int {
	return g.k
}

// Has returns whether there is an edge from one ID to another.
func (g *Graph) Has(from, to string) bool {
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			return true
		}
	}
	return false
}
