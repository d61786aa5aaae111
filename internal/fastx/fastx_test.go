package fastx

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jjtimmons/rosalind/internal/seq"
)

// writeFile writes contents to name in dir and returns its path
func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGuessFormat(t *testing.T) {
	tests := map[string]Format{
		"seqs.fasta":          FASTA,
		"seqs.fa":             FASTA,
		"genome.fna":          FASTA,
		"proteins.faa":        FASTA,
		"READS.FQ":            FASTQ,
		"reads.fastq":         FASTQ,
		"notes.txt":           Unknown,
		"archive.fasta.gz":    Unknown,
		"no_extension":        Unknown,
		"dir.with.dots/fasta": Unknown,
	}
	for path, want := range tests {
		if got := GuessFormat(path); got != want {
			t.Errorf("GuessFormat(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()

	fa := writeFile(t, dir, "seqs.fa", ">Rosalind_6404 first\nCCTGCGGAAG\nATCGGCACTA\n>Rosalind_5959\nCCATCGGTAG\n")
	c, err := Read(fa)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.IDs(), []string{"Rosalind_6404", "Rosalind_5959"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Read() IDs = %v, want %v", got, want)
	}
	if s, _ := c.Get("Rosalind_6404"); s != "CCTGCGGAAGATCGGCACTA" {
		t.Errorf("Read() joined sequence = %q", s)
	}

	fq := writeFile(t, dir, "reads.fq", "@read1\nACGT\n+\nIIII\n@read2\nGGCC\n+\nIIII\n")
	c, err = Read(fq)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.Seqs(), []string{"ACGT", "GGCC"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Read() FASTQ sequences = %v, want %v", got, want)
	}

	txt := writeFile(t, dir, "notes.txt", "ACGT")
	if _, err := Read(txt); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Read() error = %v, want ErrUnknownFormat", err)
	}

	if _, err := Read(filepath.Join(dir, "missing.fa")); err == nil {
		t.Error("Read() of a missing file did not fail")
	}
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.fasta", ">x\nAAAA\n>y\nCCCC\n")
	second := writeFile(t, dir, "b.fasta", ">z\nGGGG\n>x\nTTTT\n")

	c, err := ReadFiles([]string{first, second})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.IDs(), []string{"x", "y", "z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ReadFiles() IDs = %v, want %v", got, want)
	}
	if s, _ := c.Get("x"); s != "TTTT" {
		t.Errorf("ReadFiles() x = %q, want the later file's TTTT", s)
	}
}

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.fq", "")
	writeFile(t, dir, "a.fasta", "")
	writeFile(t, dir, "readme.md", "")
	if err := os.Mkdir(filepath.Join(dir, "nested.fa"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := ListDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "a.fasta"), filepath.Join(dir, "b.fq")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListDir() = %v, want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	dir := t.TempDir()
	seqs := writeFile(t, dir, "seqs.fa", ">a\nACGT\n>b\nACGTACGT\n>c\nACGTAC\n")
	empty := writeFile(t, dir, "empty.fa", "")
	dupes := writeFile(t, dir, "dupes.fa", ">r\nAC\n>r\nACGTACGT\n>s\nACGTAC\n")

	got, err := Summarize([]string{seqs, empty, dupes})
	if err != nil {
		t.Fatal(err)
	}
	want := []Info{
		{Name: "seqs.fa", Count: 3, MeanLength: 6, MinLength: 4, MaxLength: 8},
		{Name: "empty.fa"},
		{Name: "dupes.fa", Count: 3, MeanLength: 16.0 / 3, MinLength: 2, MaxLength: 8},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	c, err := Read(writeFile(t, dir, "in.fa", ">one\nACGTACGT\n>two\nGGGGCCCC\n"))
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "temp")
	path, err := Write(c, "copy", out)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(out, "copy.fasta") {
		t.Errorf("Write() path = %s", path)
	}

	back, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back.IDs(), c.IDs()) || !reflect.DeepEqual(back.Seqs(), c.Seqs()) {
		t.Errorf("Write() round trip = %v %v, want %v %v", back.IDs(), back.Seqs(), c.IDs(), c.Seqs())
	}
}

func TestWrite_notADirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "taken", "")

	c := seq.NewCollection()
	c.Add("one", "ACGT")

	path, err := Write(c, "copy", file)
	if err == nil {
		t.Fatalf("Write() into a file = %s, want an error", path)
	}
	if path != "" {
		t.Errorf("Write() path = %q on error, want empty", path)
	}
}
