package fastx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/jjtimmons/rosalind/internal/seq"
)

// lineWidth is the number of bases per line in written FASTA files
const lineWidth = 60

// Write writes the collection to dir/name.fasta, creating dir if it doesn't
// exist. It returns the path of the written file.
func Write(c *seq.Collection, name, dir string) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path = filepath.Join(dir, name+".fasta")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			path, err = "", fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	w := fasta.NewWriter(f, lineWidth)
	for _, id := range c.IDs() {
		s, _ := c.Get(id)
		record := linear.NewSeq(id, alphabet.BytesToLetters([]byte(s)), alphabet.DNA)
		if _, err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write %s to %s: %w", id, path, err)
		}
	}

	return path, nil
}
