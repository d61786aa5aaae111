package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jjtimmons/rosalind/internal/protein"
	"github.com/jjtimmons/rosalind/internal/seq"
)

// countCmd is for counting each base in a sequence
var countCmd = &cobra.Command{
	Use:     "count [sequence]",
	Short:   "Count each base in a nucleic acid sequence",
	Args:    cobra.ExactArgs(1),
	RunE:    runCount,
	Example: "  rosalind count AGCTTTTCATTCTGACTGCAACGGGCAATATGTCTCTGTGTGGATTAAAAAAAGAGTGTCTGATAGCAGC",
	Long: `Count each base in a DNA or RNA sequence (https://rosalind.info/problems/dna/).
Bases are listed in the order they first appear.`,
}

// transcribeCmd is for transcribing DNA to RNA
var transcribeCmd = &cobra.Command{
	Use:     "transcribe [sequence]",
	Short:   "Transcribe DNA into RNA",
	Args:    cobra.ExactArgs(1),
	RunE:    runTranscribe,
	Example: "  rosalind transcribe GATGGAACTTGACTACGTAAATT",
	Long:    "Transcribe DNA into RNA, replacing each T with a U (https://rosalind.info/problems/rna/)",
}

// revcCmd is for reverse complementing DNA
var revcCmd = &cobra.Command{
	Use:     "revc [sequence]",
	Short:   "Reverse complement a DNA sequence",
	Args:    cobra.ExactArgs(1),
	RunE:    runRevc,
	Example: "  rosalind revc AAAACCCGGT",
	Long:    "Reverse complement a DNA sequence (https://rosalind.info/problems/revc/)",
	Aliases: []string{"revcomp"},
}

// gcCmd is for the GC content of a sequence
var gcCmd = &cobra.Command{
	Use:     "gc [sequence]",
	Short:   "Calculate the GC content of a sequence",
	Args:    cobra.ExactArgs(1),
	RunE:    runGC,
	Example: "  rosalind gc CCACCCTCGTGGTATGGCTAGGCATTCAGGAACCGGAGAACGCTTCAGACCAGCCCGGACTGGGAACCTGCGGGCAGTAGGTGGAAT",
	Long:    "Calculate the percentage of bases that are G or C (https://rosalind.info/problems/gc/)",
}

// translateCmd is for translating a sequence to protein
var translateCmd = &cobra.Command{
	Use:     "translate [sequence]",
	Short:   "Translate a DNA or RNA sequence into protein",
	Args:    cobra.ExactArgs(1),
	RunE:    runTranslate,
	Example: "  rosalind translate --stop AUGGCCAUGGCGCCCAGAACUGAGAUCAAUAGUACCCGUAUUAACGGGUGA",
	Long: `Translate a DNA or RNA sequence, irrespective of ORF, start, or stop
(https://rosalind.info/problems/prot/).

Stop codons are written as '*' unless --stop is set, in which case
translation ends at the first stop codon.`,
}

// hammingCmd is for counting point mutations between two sequences
var hammingCmd = &cobra.Command{
	Use:     "hamming [sequence] [sequence]",
	Short:   "Count the point mutations between two sequences",
	Args:    cobra.ExactArgs(2),
	RunE:    runHamming,
	Example: "  rosalind hamming GAGCCTACTAACGGGAT CATCGTAATGACGGCCT",
	Long: `Count the positions at which two sequences differ (https://rosalind.info/problems/hamm/).
If one sequence is longer, each of its extra bases counts as a difference.`,
	Aliases: []string{"hamm"},
}

// kmersCmd is for listing the k-mers of a sequence
var kmersCmd = &cobra.Command{
	Use:     "kmers [sequence] [k]",
	Short:   "List every substring of length k",
	Args:    cobra.ExactArgs(2),
	RunE:    runKmers,
	Example: "  rosalind kmers ACGTTGCA 3",
}

// massCmd is for the mass of a protein
var massCmd = &cobra.Command{
	Use:     "mass [protein]",
	Short:   "Calculate the monoisotopic mass of a protein",
	Args:    cobra.ExactArgs(1),
	RunE:    runMass,
	Example: "  rosalind mass SKADYEK",
	Long:    "Sum the monoisotopic mass of each residue in a protein (https://rosalind.info/problems/prtm/)",
	Aliases: []string{"prtm"},
}

// set flags
func init() {
	translateCmd.Flags().Bool("stop", false, "end translation at the first stop codon")
	translateCmd.Flags().Int("shift", 0, "offset of the first codon (reading frame)")

	viper.BindPFlag("translate.stop", translateCmd.Flags().Lookup("stop"))
	viper.BindPFlag("translate.shift", translateCmd.Flags().Lookup("shift"))

	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(transcribeCmd)
	rootCmd.AddCommand(revcCmd)
	rootCmd.AddCommand(gcCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(hammingCmd)
	rootCmd.AddCommand(kmersCmd)
	rootCmd.AddCommand(massCmd)
}

// nucleicAcid trims an input sequence and checks that it's DNA or RNA
func nucleicAcid(arg string) (string, error) {
	s := strings.TrimSpace(arg)
	if !seq.IsNA(s) {
		return "", fmt.Errorf("not a valid nucleic acid sequence: %q", s)
	}
	return s, nil
}

func runCount(cmd *cobra.Command, args []string) error {
	s, err := nucleicAcid(args[0])
	if err != nil {
		return err
	}

	counts := seq.CountBases(s)
	if counts.Len() == 0 {
		logger.Warn("empty sequence, nothing to count")
		return nil
	}
	writeCounts(cmd.OutOrStdout(), counts)
	return nil
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	s, err := nucleicAcid(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), seq.Transcribe(s))
	return nil
}

func runRevc(cmd *cobra.Command, args []string) error {
	s, err := nucleicAcid(args[0])
	if err != nil {
		return err
	}

	revc, err := seq.RevComp(s)
	if err != nil {
		return fmt.Errorf("failed to reverse complement: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), revc)
	return nil
}

func runGC(cmd *cobra.Command, args []string) error {
	s, err := nucleicAcid(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", seq.GC(s))
	return nil
}

func runTranslate(cmd *cobra.Command, args []string) error {
	s, err := nucleicAcid(args[0])
	if err != nil {
		return err
	}

	opts := []seq.TranslateOption{seq.WithShift(conf.Translate.Shift)}
	if conf.Translate.Stop {
		opts = append(opts, seq.WithStop())
	}
	logger.Debug("translating", "length", len(s), "stop", conf.Translate.Stop, "shift", conf.Translate.Shift)

	fmt.Fprintln(cmd.OutOrStdout(), seq.Translate(s, opts...))
	return nil
}

func runHamming(cmd *cobra.Command, args []string) error {
	a, b := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
	if len(a) != len(b) {
		logger.Warn("sequences differ in length, counting the extra bases as mismatches", "first", len(a), "second", len(b))
	}

	fmt.Fprintln(cmd.OutOrStdout(), seq.Hamming(a, b))
	return nil
}

func runKmers(cmd *cobra.Command, args []string) error {
	k, err := strconv.Atoi(args[1])
	if err != nil || k < 1 {
		return fmt.Errorf("k must be a positive integer, got %q", args[1])
	}

	for _, kmer := range seq.Kmers(strings.TrimSpace(args[0]), k) {
		fmt.Fprintln(cmd.OutOrStdout(), kmer)
	}
	return nil
}

func runMass(cmd *cobra.Command, args []string) error {
	p := strings.TrimSpace(args[0])
	if !protein.IsProtein(p) {
		return fmt.Errorf("not a valid protein sequence: %q", p)
	}

	mass, err := protein.Mass(p)
	if err != nil {
		return fmt.Errorf("failed to weigh protein: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%.3f\n", mass)
	return nil
}
