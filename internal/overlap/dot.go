package overlap

import (
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// node is a sequence in a DOT rendering of the graph.
type node struct {
	id   int64
	name string
}

func (n node) ID() int64 { return n.id }

// DOTID names the node with its sequence ID.
func (n node) DOTID() string { return n.name }

// DOT renders the graph in the Graphviz DOT language. Only sequences with
// at least one edge are drawn.
func (g *Graph) DOT(name string) ([]byte, error) {
	directed := simple.NewDirectedGraph()

	nodes := make(map[string]node)
	nodeOf := func(seqID string) node {
		if n, ok := nodes[seqID]; ok {
			return n
		}
		n := node{id: int64(len(nodes)), name: seqID}
		nodes[seqID] = n
		directed.AddNode(n)
		return n
	}

	for _, e := range g.edges {
		from, to := nodeOf(e.From), nodeOf(e.To)
		directed.SetEdge(directed.NewEdge(from, to))
	}

	return dot.Marshal(directed, name, "", "  ")
}
