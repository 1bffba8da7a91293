package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/hypgen/pkg/fixture"
	"github.com/OpenTraceLab/hypgen/pkg/hyp/preview"
)

var (
	previewOutput string
	previewWidth  int
	previewHeight int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the reference board to a PNG image",
	Long: `Build the reference board and draw it: substrate with cutouts, copper
per layer, polygons with their voids, vias, pins and pads.

Examples:
  hypgen preview -o test00.png
  hypgen preview -o big.png --width 2400 --height 1200`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "output PNG file (required)")
	previewCmd.Flags().IntVar(&previewWidth, "width", 1200, "image width in pixels")
	previewCmd.Flags().IntVar(&previewHeight, "height", 600, "image height in pixels")
	previewCmd.MarkFlagRequired("output")
	addFixtureFlags(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, err := fixture.Build(fixtureConfig())
	if err != nil {
		return fmt.Errorf("failed to build board: %w", err)
	}

	f, err := os.Create(previewOutput)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	opts := preview.DefaultOptions()
	opts.Width, opts.Height = previewWidth, previewHeight
	if err := preview.WritePNG(f, doc, opts); err != nil {
		f.Close()
		os.Remove(previewOutput)
		return fmt.Errorf("failed to render preview: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", previewOutput, opts.Width, opts.Height)
	return nil
}
