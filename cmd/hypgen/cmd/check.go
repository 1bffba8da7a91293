package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/hypgen/pkg/hyp/lint"
)

var checkCmd = &cobra.Command{
	Use:   "check <hyp-file>",
	Short: "Read a board description back and report its structure",
	Long: `Parse a HyperLynx board description at the syntax level and report its
sections, padstacks and per-net record counts. The check fails on bracket
errors, sections out of order, a missing {END}, duplicate names, unknown
padstack or device references and voids of undefined polygons.

Examples:
  hypgen check test00.hyp
  hypgen check -v test00.hyp`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if verbose {
		fmt.Printf("Checking board file: %s\n\n", filename)
	}

	parser, err := lint.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	file, err := parser.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse file: %w", err)
	}
	s := lint.Summarize(file)

	fmt.Printf("Version:     %s\n", s.Version)
	fmt.Printf("Units:       %v\n", s.Units)
	fmt.Printf("Board edges: %d\n", s.BoardEdges)
	fmt.Printf("Devices:     %d\n", len(s.Devices))
	fmt.Printf("Padstacks:   %d\n", len(s.Padstacks))
	fmt.Printf("Nets:        %d\n", len(s.Nets))

	if verbose {
		fmt.Println()
		for _, n := range s.Nets {
			fmt.Printf("  %s", n.Name)
			if n.PlaneSeparation != "" {
				fmt.Printf(" (PS=%s)", n.PlaneSeparation)
			}
			fmt.Println()
			keys := make([]string, 0, len(n.Records))
			for k := range n.Records {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("    %-9s %d\n", k, n.Records[k])
			}
		}
	}

	if len(s.Problems) > 0 {
		fmt.Printf("\nProblems:\n")
		for _, p := range s.Problems {
			fmt.Printf("  %s\n", p)
		}
		return fmt.Errorf("%s: %d problem(s)", filename, len(s.Problems))
	}
	fmt.Println("\nOK")
	return nil
}
