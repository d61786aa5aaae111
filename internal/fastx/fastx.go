// Package fastx reads and writes FASTA and FASTQ files as sequence
// collections.
package fastx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"

	"github.com/jjtimmons/rosalind/internal/seq"
)

// ErrUnknownFormat is returned for a file whose extension is neither a
// FASTA nor a FASTQ extension.
var ErrUnknownFormat = errors.New("unrecognized file type")

// Format is a sequence file format.
type Format int

const (
	// Unknown is any file that isn't FASTA or FASTQ
	Unknown Format = iota

	// FASTA files: .fasta, .fa, .fna and .faa
	FASTA

	// FASTQ files: .fastq and .fq
	FASTQ
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case FASTQ:
		return "fastq"
	default:
		return ""
	}
}

// GuessFormat returns the format of a file from its extension.
func GuessFormat(path string) Format {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "fasta", "fa", "fna", "faa":
		return FASTA
	case "fastq", "fq":
		return FASTQ
	default:
		return Unknown
	}
}

// Read parses a FASTA or FASTQ file into a collection keyed by record ID.
// A record ID seen more than once keeps its last sequence.
func Read(path string) (*seq.Collection, error) {
	c := seq.NewCollection()
	if err := scanFile(path, c.Add); err != nil {
		return nil, err
	}
	return c, nil
}

// scanFile calls fn with the ID and sequence of every record in a FASTA or
// FASTQ file, in file order.
func scanFile(path string, fn func(id, s string)) error {
	format := GuessFormat(path)
	if format == Unknown {
		return fmt.Errorf("failed to parse %s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := scan(f, format, strings.EqualFold(filepath.Ext(path), ".faa"), fn); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// ReadFiles reads every file in paths into one collection. A record ID
// seen in more than one file keeps the sequence from the last file.
func ReadFiles(paths []string) (*seq.Collection, error) {
	c := seq.NewCollection()
	for _, path := range paths {
		fileSeqs, err := Read(path)
		if err != nil {
			return nil, err
		}
		c.Merge(fileSeqs)
	}
	return c, nil
}

// scan reads all records of r, calling fn with each.
func scan(r io.Reader, format Format, protein bool, fn func(id, s string)) error {
	var alpha alphabet.Alphabet = alphabet.DNA
	if protein {
		alpha = alphabet.Protein
	}

	var reader seqio.Reader
	switch format {
	case FASTA:
		reader = fasta.NewReader(r, linear.NewSeq("", nil, alpha))
	case FASTQ:
		reader = fastq.NewReader(r, linear.NewQSeq("", nil, alpha, alphabet.Sanger))
	default:
		return ErrUnknownFormat
	}

	sc := seqio.NewScanner(reader)
	for sc.Next() {
		switch s := sc.Seq().(type) {
		case *linear.Seq:
			fn(s.Name(), lettersToString(s.Seq))
		case *linear.QSeq:
			fn(s.Name(), qLettersToString(s.Seq))
		}
	}

	return sc.Error()
}

func lettersToString(letters alphabet.Letters) string {
	b := make([]byte, len(letters))
	for i, l := range letters {
		b[i] = byte(l)
	}
	return string(b)
}

func qLettersToString(letters alphabet.QLetters) string {
	b := make([]byte, len(letters))
	for i, ql := range letters {
		b[i] = byte(ql.L)
	}
	return string(b)
}
