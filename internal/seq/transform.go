package seq

import (
	"strings"
)

// Transcribe replaces each T with U (and t with u), leaving every other
// symbol as it was.
func Transcribe(seq string) string {
	return strings.NewReplacer("T", "U", "t", "u").Replace(seq)
}

// complements is the case-preserving DNA complement of each base.
var complements = map[rune]rune{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
	'a': 't', 't': 'a', 'g': 'c', 'c': 'g',
}

// RevComp returns the reverse complement of a DNA sequence. The case of each
// base is kept. A symbol other than A, C, G or T returns an
// *InvalidSequenceError.
func RevComp(seq string) (string, error) {
	runes := []rune(seq)
	revComp := make([]rune, len(runes))

	for i, c := range runes {
		comp, ok := complements[c]
		if !ok {
			return "", &InvalidSequenceError{Symbol: c, Index: i}
		}
		revComp[len(runes)-1-i] = comp
	}

	return string(revComp), nil
}

// translateOpts are the settings for Translate.
type translateOpts struct {
	stop  bool
	shift int
}

// TranslateOption changes how Translate reads a sequence.
type TranslateOption func(*translateOpts)

// WithStop ends translation at the first stop codon.
func WithStop() TranslateOption {
	return func(o *translateOpts) { o.stop = true }
}

// WithShift starts reading codons at the given offset.
func WithShift(shift int) TranslateOption {
	return func(o *translateOpts) {
		if shift > 0 {
			o.shift = shift
		}
	}
}

// Translate returns the amino acid sequence of a DNA or RNA sequence. DNA
// is transcribed first. Codons are read from the shift offset (0 by default)
// and a trailing partial codon is dropped. Stop codons are written as '*'
// unless WithStop is set, in which case the result ends before the first one.
func Translate(seq string, opts ...TranslateOption) string {
	o := translateOpts{}
	for _, opt := range opts {
		opt(&o)
	}

	seq = strings.ToUpper(seq)
	if strings.Contains(seq, "T") {
		seq = Transcribe(seq)
	}

	var aas strings.Builder
	for i := o.shift; i+3 <= len(seq); i += 3 {
		aa := AminoAcid(seq[i : i+3])
		if aa == Stop && o.stop {
			break
		}
		aas.WriteByte(aa)
	}

	return aas.String()
}
