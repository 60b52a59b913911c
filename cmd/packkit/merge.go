package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/efeecllk/game-insights-sub001/export"
)

var mergeOut string

var mergeCmd = &cobra.Command{
	Use:   "merge <base-file> <overlay-file>",
	Short: "Merge an overlay pack into a base pack (base wins on id collision)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		base, baseWarnings, err := loadPack(args[0])
		if err != nil {
			printWarnings(baseWarnings)
			return err
		}
		overlay, overlayWarnings, err := loadPack(args[1])
		if err != nil {
			printWarnings(overlayWarnings)
			return err
		}

		merged := export.MergePacks(base, overlay)
		doc, err := export.Export(merged, nil)
		if err != nil {
			return err
		}

		out := mergeOut
		if out == "" {
			out = string(merged.ID) + "-merged.pack.json"
		}
		if err := export.WritePackFile(out, doc); err != nil {
			return err
		}

		fmt.Printf("merged %s + %s -> %s\n", args[0], args[1], out)
		fmt.Printf("  %d semantic types, %d metrics, %d funnels\n",
			len(merged.SemanticTypes), len(merged.Metrics), len(merged.Funnels))
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "", "output file (default <id>-merged.pack.json)")
}
