package seq

import "strings"

const (
	dnaBases = "ACGT"
	rnaBases = "ACGU"
	naBases  = "ACGTU"
)

// IsDNA returns whether every base in seq is one of A, C, G or T (any case).
// An empty sequence is DNA.
func IsDNA(seq string) bool {
	return onlyBases(seq, dnaBases)
}

// IsRNA returns whether every base in seq is one of A, C, G or U (any case).
func IsRNA(seq string) bool {
	return onlyBases(seq, rnaBases)
}

// IsNA returns whether seq is DNA, RNA or a mix of both alphabets.
func IsNA(seq string) bool {
	return onlyBases(seq, naBases)
}

func onlyBases(seq, bases string) bool {
	for _, c := range strings.ToUpper(seq) {
		if !strings.ContainsRune(bases, c) {
			return false
		}
	}
	return true
}
