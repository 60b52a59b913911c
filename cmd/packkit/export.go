package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/efeecllk/game-insights-sub001/export"
	"github.com/efeecllk/game-insights-sub001/pack"
)

var (
	exportOut    string
	exportAuthor string
	exportTags   []string
)

var exportCmd = &cobra.Command{
	Use:   "export <industry>",
	Short: "Export a registered pack to the shareable transport format",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		reg, cleanup, err := newRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		id := pack.Industry(args[0])
		p, ok := reg.GetPack(id)
		if !ok {
			return fmt.Errorf("no registered pack for industry %q (try: %v)", id, reg.RegisteredIndustries())
		}

		doc, err := export.Export(p, &export.Options{Author: exportAuthor, Tags: exportTags})
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = string(id) + ".pack.json"
		}
		if err := export.WritePackFile(out, doc); err != nil {
			return err
		}
		fmt.Printf("exported %q to %s\n", id, out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default <industry>.pack.json)")
	exportCmd.Flags().StringVar(&exportAuthor, "author", "", "author recorded in export metadata")
	exportCmd.Flags().StringSliceVar(&exportTags, "tag", nil, "tags recorded in export metadata")
}
