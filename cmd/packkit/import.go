package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/efeecllk/game-insights-sub001/export"
)

var importCmd = &cobra.Command{
	Use:   "import <pack-file>",
	Short: "Parse and validate an exported pack file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		doc, err := export.ReadPackFile(args[0])
		if err != nil {
			return err
		}

		result := export.Import(doc)
		printWarnings(result.Warnings)
		if !result.IsValid {
			for _, e := range result.Errors {
				fmt.Println("  error:", e)
			}
			return fmt.Errorf("%s: import failed", args[0])
		}

		p := result.Pack
		fmt.Printf("%s: imported pack %q (version %s)\n", args[0], p.ID, p.Version)
		fmt.Printf("  %d semantic types, %d indicators, %d metrics, %d funnels\n",
			len(p.SemanticTypes), len(p.DetectionIndicators), len(p.Metrics), len(p.Funnels))
		return nil
	},
}
