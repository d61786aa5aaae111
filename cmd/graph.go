package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jjtimmons/rosalind/internal/overlap"
)

// graphCmd is for building an overlap graph from a sequence file
var graphCmd = &cobra.Command{
	Use:   "graph [path...]",
	Short: "Build an overlap graph of the sequences in FASTA/FASTQ files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGraph,
	Example: `  rosalind graph seqs.fa --overlap 3
  rosalind graph seqs.fa --out overlaps.dot && dot -Tpng overlaps.dot -o overlaps.png`,
	Long: `Create an overlap graph from the sequences in FASTA/FASTQ files
(https://rosalind.info/problems/grph/).

There is an edge from s to t if the suffix of s, of length --overlap, is the
prefix of t. The graph is written in the Graphviz DOT language to --out, or
to stdout, and can be rendered with Graphviz. Use --edges to list the edges
one per line instead.`,
	Aliases: []string{"grph"},
}

// set flags
func init() {
	graphCmd.Flags().IntP("overlap", "k", 3, "length of the suffix/prefix overlap")
	graphCmd.Flags().StringP("out", "o", "", "path to write the DOT file to (default stdout)")
	graphCmd.Flags().BoolP("edges", "e", false, "list edges as 'from to' lines instead of DOT")

	viper.BindPFlag("overlap.length", graphCmd.Flags().Lookup("overlap"))
	viper.BindPFlag("graph.out", graphCmd.Flags().Lookup("out"))

	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	c, err := readSeqs(args)
	if err != nil {
		return err
	}

	g, err := overlap.List(c, conf.Overlap.Length)
	if err != nil {
		return err
	}
	logger.Debug("built overlap graph", "sequences", c.Len(), "edges", g.Len(), "overlap", g.Overlap())

	if edges, _ := cmd.Flags().GetBool("edges"); edges {
		for _, e := range g.Edges() {
			fmt.Fprintln(cmd.OutOrStdout(), e.From, e.To)
		}
		return nil
	}

	dot, err := g.DOT(conf.Graph.Name)
	if err != nil {
		return fmt.Errorf("failed to render overlap graph: %w", err)
	}

	if conf.Graph.Out == "" {
		_, err = cmd.OutOrStdout().Write(dot)
		return err
	}

	if err := os.WriteFile(conf.Graph.Out, dot, 0o644); err != nil {
		return fmt.Errorf("failed to write overlap graph: %w", err)
	}
	logger.Info("wrote overlap graph", "path", conf.Graph.Out, "edges", g.Len())
	return nil
}
