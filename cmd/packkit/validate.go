package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <pack-file>",
	Short: "Validate a pack file (bare pack or export envelope)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		p, warnings, err := loadPack(args[0])
		if err != nil {
			printWarnings(warnings)
			return err
		}

		fmt.Printf("%s: valid pack %q (version %s)\n", args[0], p.ID, p.Version)
		fmt.Printf("  %d semantic types, %d indicators, %d metrics, %d funnels\n",
			len(p.SemanticTypes), len(p.DetectionIndicators), len(p.Metrics), len(p.Funnels))
		printWarnings(warnings)
		return nil
	},
}
