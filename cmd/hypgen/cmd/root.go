package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/hypgen/pkg/fixture"
	"github.com/OpenTraceLab/hypgen/pkg/hyp"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hypgen",
	Short: "HyperLynx board description fixture generator",
	Long: `Generate the reference HyperLynx (.hyp) board used to exercise board
importers, read generated files back, and render PNG previews.

Examples:
  hypgen generate -o test00.hyp        # Write the reference board
  hypgen check test00.hyp              # Check structure and references
  hypgen preview -o test00.png         # Render the reference board`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		hyp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// fixture flags shared by generate and preview
var (
	fanSteps       int
	arcGrid        int
	precision      int
	noNestingChain bool
)

func addFixtureFlags(cmd *cobra.Command) {
	def := fixture.DefaultConfig()
	cmd.Flags().IntVar(&fanSteps, "fan-steps", def.FanSteps, "spokes in the segtst radial fan")
	cmd.Flags().IntVar(&arcGrid, "arc-grid", def.ArcGrid, "arcs per side in the arctst grid (max 10)")
	cmd.Flags().IntVar(&precision, "precision", def.Precision, "decimals written for lengths")
	cmd.Flags().BoolVar(&noNestingChain, "no-nesting-chain", false, "omit the nesting_poly_3 net")
}

func fixtureConfig() *fixture.Config {
	cfg := fixture.DefaultConfig()
	cfg.FanSteps = fanSteps
	cfg.ArcGrid = arcGrid
	cfg.Precision = precision
	cfg.NestingChain = !noNestingChain
	return cfg
}

func resetFixtureFlags() {
	def := fixture.DefaultConfig()
	fanSteps, arcGrid, precision = def.FanSteps, def.ArcGrid, def.Precision
	noNestingChain = false
}
