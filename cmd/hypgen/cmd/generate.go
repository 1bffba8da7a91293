package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/hypgen/pkg/fixture"
	"github.com/OpenTraceLab/hypgen/pkg/hyp"
	"github.com/OpenTraceLab/hypgen/pkg/hyp/writer"
)

var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the reference board description",
	Long: `Build the reference board (outline with cutouts, stackup, padstacks and
one net per record type) and write it as HyperLynx text.

Without --output the document goes to stdout. Nothing is written when the
board fails validation, and a partially written output file is removed.

Examples:
  hypgen generate > test00.hyp
  hypgen generate -o test00.hyp --fan-steps 24 --precision 4`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file (default: stdout)")
	addFixtureFlags(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := fixtureConfig()
	doc, err := fixture.Build(cfg)
	if err != nil {
		return fmt.Errorf("failed to build board: %w", err)
	}

	if generateOutput == "" {
		return write(os.Stdout, doc, cfg)
	}

	f, err := os.Create(generateOutput)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(f, doc, cfg); err != nil {
		f.Close()
		os.Remove(generateOutput)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(generateOutput)
		return fmt.Errorf("failed to close output: %w", err)
	}

	stats := doc.Stats()
	fmt.Printf("Wrote %s\n", generateOutput)
	fmt.Printf("  Contours:  %d (%d edges)\n", stats.Contours, stats.Edges)
	fmt.Printf("  Padstacks: %d\n", stats.Padstacks)
	fmt.Printf("  Nets:      %d\n", stats.Nets)
	if verbose {
		for _, kw := range []string{"SEG", "ARC", "VIA", "PIN", "PAD", "USEG", "POLYGON", "POLYVOID", "POLYLINE"} {
			fmt.Printf("    %-9s %d\n", kw, stats.Primitives[kw])
		}
	}
	return nil
}

func write(w io.Writer, doc *hyp.Document, cfg *fixture.Config) error {
	sink := writer.NewSink(w)
	if err := writer.Serialize(doc, sink, cfg.WriterOptions()); err != nil {
		return err
	}
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
