package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pborges/cdnf"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cdnf",
	Short: "Boolean canonical forms and Quine-McCluskey minimization.",
	Long: `cdnf converts truth-table integers to canonical disjunctive normal form,
expands minimized expressions back to canonical coverings, and minimizes
Boolean functions with the Quine-McCluskey algorithm.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var canonicalCmd = &cobra.Command{
	Use:   "canonical <value>",
	Short: "print the canonical form of a truth-table integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid truth-table integer %q", args[0])
		}
		prefix, _ := cmd.Flags().GetBool("prefix")
		fmt.Println(cdnf.Canonical(value, bitOrder(cmd), prefix))
		return nil
	},
}

var minimizeCmd = &cobra.Command{
	Use:   "minimize <value | expression>",
	Short: "minimize a Boolean function",
	Long: `Minimize a Boolean function given as a truth-table integer or as a
canonical sum-of-products expression, e.g.

  cdnf minimize 2078
  cdnf minimize "ABC + A'BC + AB'C + A'B'C + ABC'"
  cdnf minimize --dont-care 4 --dont-care 5 1,2,3,4,5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := parseInput(cmd, args)
		if err != nil {
			return err
		}
		if dc, _ := cmd.Flags().GetIntSlice("dont-care"); len(dc) > 0 {
			in = in.WithDontCares(dc...)
		}
		if dcT, _ := cmd.Flags().GetStringSlice("dont-care-term"); len(dcT) > 0 {
			in = in.WithDontCareTerms(dcT...)
		}

		details, _ := cmd.Flags().GetBool("details")
		if !details {
			result, err := cdnf.Minimize(in)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		}

		r, err := cdnf.MinimizeFull(in)
		if err != nil {
			return err
		}
		printDetails(os.Stdout, r)
		return nil
	},
}

var expandCmd = &cobra.Command{
	Use:   "expand <expression>",
	Short: "expand a minimized expression to a canonical covering",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ranged, _ := cmd.Flags().GetBool("ranged")
		result, err := cdnf.ToCanonicalForm(strings.Join(args, " "), ranged)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the cdnf version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cdnf.Version())
	},
}

// parseInput picks the input shape: a bare unsigned integer, a comma list of
// minterm indexes, or a sum-of-products expression.
func parseInput(cmd *cobra.Command, args []string) (cdnf.Input, error) {
	joined := strings.Join(args, " ")
	if value, err := strconv.ParseUint(joined, 10, 64); err == nil {
		return cdnf.ByInteger(value).WithOrder(bitOrder(cmd)), nil
	}
	if indexes, ok := parseIntList(joined); ok {
		return cdnf.ByMinterms(indexes...).WithOrder(bitOrder(cmd)), nil
	}
	return cdnf.ByExpression(joined), nil
}

func parseIntList(s string) ([]int, bool) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return nil, false
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

func bitOrder(cmd *cobra.Command) cdnf.BitOrder {
	if low, _ := cmd.Flags().GetBool("low-order"); low {
		return cdnf.LowOrderA
	}
	return cdnf.HighOrderA
}

func printDetails(w io.Writer, r *cdnf.Result) {
	fmt.Fprintln(w, r.Expression)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-4s %-4s %-12s %-6s %-9s %-8s %s\n",
		"row", "gen", "term", "ones", "final", "covered", "source")
	for _, t := range r.Terms {
		term := t.String()
		if term == "" {
			term = "(empty)"
		}
		flags := ""
		if t.DontCare {
			flags = " dc"
		}
		fmt.Fprintf(w, "%-4d %-4d %-12s %-6d %-9s %-8v %v%s\n",
			t.Row, t.Generation, term, t.Ones, t.Final, t.Covered, t.Source, flags)
	}
	// A non-empty Alternatives means the combination search ran; show the
	// result even when it found a single completion.
	if len(r.Alternatives) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "equally-minimal alternatives:")
		for _, alt := range cdnf.Alternatives(r.Terms, r.Alternatives) {
			fmt.Fprintln(w, " ", alt)
		}
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	canonicalCmd.Flags().Bool("low-order", false, "map A to the low-order bit")
	canonicalCmd.Flags().Bool("prefix", false, "prepend \"f(value) = \"")

	minimizeCmd.Flags().Bool("low-order", false, "map A to the low-order bit")
	minimizeCmd.Flags().Bool("details", false, "print the reduction arena and alternatives")
	minimizeCmd.Flags().IntSlice("dont-care", nil, "truth-table row whose value is unconstrained")
	minimizeCmd.Flags().StringSlice("dont-care-term", nil, "don't-care row given as a minterm string")

	expandCmd.Flags().Bool("ranged", false, "widen the alphabet to a contiguous letter span")

	rootCmd.AddCommand(canonicalCmd, minimizeCmd, expandCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
