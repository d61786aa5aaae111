// Package seq is for working with nucleic acid sequences: validating
// their alphabet, counting bases, transcribing, translating and finding motifs.
package seq

// Collection is an ordered mapping from sequence ID to sequence.
// Iteration follows insertion order. Re-adding an ID replaces its
// sequence without moving it.
type Collection struct {
	ids  []string
	seqs map[string]string
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{seqs: make(map[string]string)}
}

// Add stores seq under id
func (c *Collection) Add(id, seq string) {
	if c.seqs == nil {
		c.seqs = make(map[string]string)
	}
	if _, ok := c.seqs[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.seqs[id] = seq
}

// Merge adds every entry of other to c, in other's order.
func (c *Collection) Merge(other *Collection) {
	if other == nil {
		return
	}
	for _, id := range other.ids {
		c.Add(id, other.seqs[id])
	}
}

// Get returns the sequence stored under id.
func (c *Collection) Get(id string) (string, bool) {
	s, ok := c.seqs[id]
	return s, ok
}

// IDs returns a copy of the IDs in insertion order.
func (c *Collection) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Seqs returns the sequences in ID order.
func (c *Collection) Seqs() []string {
	seqs := make([]string, 0, len(c.ids))
	for _, id := range c.ids {
		seqs = append(seqs, c.seqs[id])
	}
	return seqs
}

// Len is the number of sequences.
func (c *Collection) Len() int {
	return len(c.ids)
}
