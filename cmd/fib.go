package cmd

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jjtimmons/rosalind/internal/combo"
)

// engine memoizes rabbit recurrences for the life of the process
var engine = combo.New(combo.NewCache())

// fibCmd is for counting rabbit pairs after some generations
var fibCmd = &cobra.Command{
	Use:   "fib [generations]",
	Short: "Count rabbit pairs after a number of months",
	Args:  cobra.ExactArgs(1),
	RunE:  runFib,
	Example: `  rosalind fib 5 --litter 3
  rosalind fib 6 --months 3 --table`,
	Long: `Calculate the number of rabbit pairs after n months, supposing each pair takes one month
to mature, can mate once a month and always produces a litter of the same size
(https://rosalind.info/problems/fib/).

With --months, rabbits die after that many months (https://rosalind.info/problems/fibd/).`,
	Aliases: []string{"fibd"},
}

// domCmd is for the probability of a dominant phenotype
var domCmd = &cobra.Command{
	Use:     "dom [k] [m] [n]",
	Short:   "Probability of offspring with a dominant allele",
	Args:    cobra.ExactArgs(3),
	RunE:    runDom,
	Example: "  rosalind dom 2 2 2",
	Long: `Calculate the probability that two random organisms produce offspring with a
dominant allele, from a population of k homozygous dominant, m heterozygous and
n homozygous recessive organisms (https://rosalind.info/problems/iprb/).`,
	Aliases: []string{"iprb"},
}

// set flags
func init() {
	fibCmd.Flags().IntP("litter", "l", 1, "pairs in each litter")
	fibCmd.Flags().IntP("months", "m", 0, "months each rabbit lives (0 is immortal)")
	fibCmd.Flags().BoolP("table", "t", false, "list the last generations in a table")

	viper.BindPFlag("fib.litter", fibCmd.Flags().Lookup("litter"))
	viper.BindPFlag("fib.months", fibCmd.Flags().Lookup("months"))

	rootCmd.AddCommand(fibCmd)
	rootCmd.AddCommand(domCmd)
}

// naturals parses each argument as a non-negative integer
func naturals(args []string) ([]int, error) {
	ns := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("please enter only natural numbers, got %q", arg)
		}
		ns[i] = n
	}
	return ns, nil
}

// rabbits returns the number of living rabbit pairs in a generation
func rabbits(generation, litter, months int) *big.Int {
	if months > 0 {
		alive, _ := engine.Fibd(generation, months, litter)
		return alive
	}
	return engine.Fib(generation, litter)
}

func runFib(cmd *cobra.Command, args []string) error {
	ns, err := naturals(args)
	if err != nil {
		return err
	}
	generation, litter, months := ns[0], conf.Fib.Litter, conf.Fib.Months

	if err := conf.CheckFib(generation, litter, months); err != nil {
		return err
	}
	logger.Debug("counting rabbits", "generation", generation, "litter", litter, "months", months)

	if asTable, _ := cmd.Flags().GetBool("table"); asTable {
		var rows [][]string
		first := generation - conf.Fib.Window + 1
		if first < 1 {
			first = 1
		}
		for g := first; g <= generation; g++ {
			rows = append(rows, []string{strconv.Itoa(g), rabbits(g, litter, months).String()})
		}
		writeTable(cmd.OutOrStdout(), []string{"gen", "rabbits"}, rows)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), rabbits(generation, litter, months))
	return nil
}

func runDom(cmd *cobra.Command, args []string) error {
	ns, err := naturals(args)
	if err != nil {
		return err
	}

	p, err := combo.DomProb(ns[0], ns[1], ns[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%.5f\n", p)
	return nil
}
