// Package protein is for properties of amino acid sequences.
package protein

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownResidue is returned for a symbol that isn't one of the 20
// standard amino acids.
var ErrUnknownResidue = errors.New("unknown amino acid")

// residueMasses are monoisotopic masses, in daltons, of each amino acid
// residue.
var residueMasses = map[rune]float64{
	'A': 71.03711, 'C': 103.00919, 'D': 115.02694, 'E': 129.04259,
	'F': 147.06841, 'G': 57.02146, 'H': 137.05891, 'I': 113.08406,
	'K': 128.09496, 'L': 113.08406, 'M': 131.04049, 'N': 114.04293,
	'P': 97.05276, 'Q': 128.05858, 'R': 156.10111, 'S': 87.03203,
	'T': 101.04768, 'V': 99.06841, 'W': 186.07931, 'Y': 163.06333,
}

// Mass returns the summed monoisotopic residue mass of a protein.
func Mass(protein string) (float64, error) {
	mass := 0.0
	for i, aa := range strings.ToUpper(protein) {
		m, ok := residueMasses[aa]
		if !ok {
			return 0, fmt.Errorf("%q at index %d: %w", aa, i, ErrUnknownResidue)
		}
		mass += m
	}
	return mass, nil
}

// IsProtein returns whether every symbol of seq is a standard amino acid.
func IsProtein(seq string) bool {
	for _, aa := range strings.ToUpper(seq) {
		if _, ok := residueMasses[aa]; !ok {
			return false
		}
	}
	return true
}
