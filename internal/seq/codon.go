package seq

// Stop is the symbol translation emits for a stop codon.
const Stop = '*'

// Unknown is emitted for a codon with a symbol outside of ACGU.
const Unknown = 'X'

// codonTable is the standard genetic code, indexed by codonIndex. The bases
// of each codon position run in U, C, A, G order.
const codonTable = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"

// baseIndex maps an upper-case RNA base to its position in codonTable.
var baseIndex = [256]int8{}

func init() {
	for i := range baseIndex {
		baseIndex[i] = -1
	}
	for i, b := range []byte("UCAG") {
		baseIndex[b] = int8(i)
	}
}

// AminoAcid returns the amino acid encoded by an upper-case RNA codon.
// Stop codons return Stop and codons that are not three RNA bases
// return Unknown.
func AminoAcid(codon string) byte {
	if len(codon) != 3 {
		return Unknown
	}

	i := 0
	for j := 0; j < 3; j++ {
		b := baseIndex[codon[j]]
		if b < 0 {
			return Unknown
		}
		i = i*4 + int(b)
	}
	return codonTable[i]
}
