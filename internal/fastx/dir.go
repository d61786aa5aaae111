package fastx

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// ListDir returns the paths of the FASTA and FASTQ files in dir, sorted by
// file name. Subdirectories are not searched.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %v", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || GuessFormat(entry.Name()) == Unknown {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// Info summarizes the sequences of a single file.
type Info struct {
	// Name is the file's base name
	Name string

	// Count is the number of sequences in the file
	Count int

	// MeanLength is the average sequence length
	MeanLength float64

	// MinLength is the length of the shortest sequence
	MinLength int

	// MaxLength is the length of the longest sequence
	MaxLength int
}

// Stats reads a file and summarizes its sequence lengths. Every record
// counts, including records that share an ID. A file without sequences has
// all-zero stats.
func Stats(path string) (Info, error) {
	info := Info{Name: filepath.Base(path)}

	total := 0
	info.MinLength = math.MaxInt
	err := scanFile(path, func(_, s string) {
		info.Count++
		total += len(s)
		if len(s) < info.MinLength {
			info.MinLength = len(s)
		}
		if len(s) > info.MaxLength {
			info.MaxLength = len(s)
		}
	})
	if err != nil {
		return Info{Name: info.Name}, err
	}
	if info.Count == 0 {
		return Info{Name: info.Name}, nil
	}

	info.MeanLength = float64(total) / float64(info.Count)
	return info, nil
}

// Summarize returns the Stats of each file in paths.
func Summarize(paths []string) ([]Info, error) {
	infos := make([]Info, 0, len(paths))
	for _, path := range paths {
		info, err := Stats(path)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
