package seq

// Kmers returns every substring of length k in seq, left to right.
func Kmers(seq string, k int) []string {
	if k < 1 || k > len(seq) {
		return []string{}
	}

	kmers := make([]string, 0, len(seq)-k+1)
	for i := 0; i+k <= len(seq); i++ {
		kmers = append(kmers, seq[i:i+k])
	}
	return kmers
}

// FindMotif returns the 0-based index of every occurrence of motif in seq,
// overlapping occurrences included. An empty motif is never found.
func FindMotif(seq, motif string) []int {
	indices := []int{}
	if motif == "" {
		return indices
	}

	for i, kmer := range Kmers(seq, len(motif)) {
		if kmer == motif {
			indices = append(indices, i)
		}
	}
	return indices
}
