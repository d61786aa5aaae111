package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jjtimmons/rosalind/internal/consensus"
	"github.com/jjtimmons/rosalind/internal/fastx"
	"github.com/jjtimmons/rosalind/internal/seq"
)

// fastaCmd groups the commands that work on FASTA/FASTQ files.
var fastaCmd = &cobra.Command{
	Use:   "fasta",
	Short: "Find motifs and consensus sequences in FASTA/FASTQ files",
	Long: `Operations on multiple sequences read from FASTA or FASTQ files.
Each [path] is either a file or a directory. Every FASTA (.fasta, .fa, .fna, .faa)
and FASTQ (.fastq, .fq) file in a directory is read.`,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"fastx"},
}

// fastaInfoCmd is for summarizing sequence files
var fastaInfoCmd = &cobra.Command{
	Use:     "info [path...]",
	Short:   "Summarize the number and length of sequences in each file",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runFastaInfo,
	Example: "  rosalind fasta info ./sequences",
	Aliases: []string{"stats"},
}

// fastaMotifCmd is for finding a motif in each sequence
var fastaMotifCmd = &cobra.Command{
	Use:     "motif [motif] [path...]",
	Short:   "Find the start indexes of a motif in every sequence",
	Args:    cobra.MinimumNArgs(2),
	RunE:    runFastaMotif,
	Example: "  rosalind fasta motif ATAT ./sequences",
	Long: `Find the 0-based start index of each occurrence of the motif in every sequence
(https://rosalind.info/problems/subs/)`,
	Aliases: []string{"subs"},
}

// fastaConsensusCmd is for the consensus of equal length sequences
var fastaConsensusCmd = &cobra.Command{
	Use:     "consensus [path...]",
	Short:   "Find the consensus of sequences of equal length",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runFastaConsensus,
	Example: "  rosalind fasta consensus --profile ./aligned.fa",
	Long: `Find the consensus string of sequences of equal length
(https://rosalind.info/problems/cons/). Ties are broken alphabetically.`,
	Aliases: []string{"cons"},
}

// fastaWriteCmd is for merging sequence files into one FASTA file
var fastaWriteCmd = &cobra.Command{
	Use:     "write [name] [path...]",
	Short:   "Write the sequences of every file to a single FASTA file",
	Args:    cobra.MinimumNArgs(2),
	RunE:    runFastaWrite,
	Example: "  rosalind fasta write merged ./reads --out-dir results",
}

// set flags
func init() {
	fastaConsensusCmd.Flags().BoolP("profile", "p", false, "also write the profile matrix")
	fastaWriteCmd.Flags().StringP("out-dir", "o", "temp", "directory to write the FASTA file to")

	viper.BindPFlag("out-dir", fastaWriteCmd.Flags().Lookup("out-dir"))

	fastaCmd.AddCommand(fastaInfoCmd)
	fastaCmd.AddCommand(fastaMotifCmd)
	fastaCmd.AddCommand(fastaConsensusCmd)
	fastaCmd.AddCommand(fastaWriteCmd)

	rootCmd.AddCommand(fastaCmd)
}

// fastxFiles expands directories in paths to the sequence files within them
func fastxFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !stat.IsDir() {
			if fastx.GuessFormat(path) == fastx.Unknown {
				return nil, fmt.Errorf("%s: %w", path, fastx.ErrUnknownFormat)
			}
			files = append(files, path)
			continue
		}

		dirFiles, err := fastx.ListDir(path)
		if err != nil {
			return nil, err
		}
		if len(dirFiles) == 0 {
			logger.Warn("no FASTA/FASTQ files in directory", "dir", path)
		}
		files = append(files, dirFiles...)
	}
	return files, nil
}

// readSeqs reads every sequence in paths
func readSeqs(paths []string) (*seq.Collection, error) {
	files, err := fastxFiles(paths)
	if err != nil {
		return nil, err
	}

	c, err := fastx.ReadFiles(files)
	if err != nil {
		return nil, err
	}
	logger.Debug("read sequences", "files", len(files), "sequences", c.Len())

	if c.Len() == 0 {
		return nil, fmt.Errorf("no sequences found in %s", strings.Join(paths, ", "))
	}
	return c, nil
}

func runFastaInfo(cmd *cobra.Command, args []string) error {
	files, err := fastxFiles(args)
	if err != nil {
		return err
	}

	infos, err := fastx.Summarize(files)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			info.Name,
			strconv.Itoa(info.Count),
			strconv.FormatFloat(info.MeanLength, 'f', 2, 64),
			strconv.Itoa(info.MinLength),
			strconv.Itoa(info.MaxLength),
		})
	}
	writeTable(cmd.OutOrStdout(), []string{"name", "num_seqs", "avg_len", "min_len", "max_len"}, rows)
	return nil
}

func runFastaMotif(cmd *cobra.Command, args []string) error {
	motif := strings.TrimSpace(args[0])
	if motif == "" {
		logger.Warn("empty motif, no sequence will have a match")
	}

	c, err := readSeqs(args[1:])
	if err != nil {
		return err
	}

	rows := make([][]string, 0, c.Len())
	for _, id := range c.IDs() {
		s, _ := c.Get(id)

		var indexes []string
		for _, i := range seq.FindMotif(s, motif) {
			indexes = append(indexes, strconv.Itoa(i))
		}
		rows = append(rows, []string{id, strings.Join(indexes, ", ")})
	}
	writeTable(cmd.OutOrStdout(), []string{"id", fmt.Sprintf("start indexes of %q", motif)}, rows)
	return nil
}

func runFastaConsensus(cmd *cobra.Command, args []string) error {
	c, err := readSeqs(args)
	if err != nil {
		return err
	}

	profile, err := consensus.NewProfile(c.Seqs())
	if err != nil {
		return fmt.Errorf("failed to build profile matrix: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), profile.Consensus())

	if withProfile, _ := cmd.Flags().GetBool("profile"); withProfile {
		var rows [][]string
		for _, r := range profile.Alphabet() {
			row := []string{string(r)}
			for _, n := range profile.Row(r) {
				row = append(row, strconv.Itoa(n))
			}
			rows = append(rows, row)
		}

		headers := []string{""}
		for i := 1; i <= profile.Len(); i++ {
			headers = append(headers, strconv.Itoa(i))
		}
		writeTable(cmd.OutOrStdout(), headers, rows)
	}
	return nil
}

func runFastaWrite(cmd *cobra.Command, args []string) error {
	c, err := readSeqs(args[1:])
	if err != nil {
		return err
	}

	path, err := fastx.Write(c, args[0], conf.OutDir)
	if err != nil {
		return err
	}

	logger.Info("wrote sequences", "path", path, "sequences", c.Len())
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
