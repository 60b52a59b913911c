package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/efeecllk/game-insights-sub001/pack"
)

var listCmd = &cobra.Command{
	Use:   "list [industry]",
	Short: "List registered packs, or show one pack in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		reg, cleanup, err := newRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		if len(args) == 0 {
			for _, p := range reg.AllPacks() {
				fmt.Printf("%-12s %-16s v%-8s %d metrics, %d funnels\n",
					p.ID, p.Name, p.Version, len(p.Metrics), len(p.Funnels))
			}
			return nil
		}

		id := pack.Industry(args[0])
		p, ok := reg.GetPack(id)
		if !ok {
			return fmt.Errorf("no registered pack for industry %q", id)
		}

		fmt.Printf("%s (%s) v%s\n%s\n", p.Name, p.ID, p.Version, p.Description)
		fmt.Println("sub-categories:")
		for _, sc := range p.SubCategories {
			fmt.Printf("  %-16s %s\n", sc.ID, sc.Name)
		}
		fmt.Println("metrics:")
		for _, m := range p.Metrics {
			scope := "all"
			if len(m.SubCategories) > 0 {
				scope = fmt.Sprint(m.SubCategories)
			}
			fmt.Printf("  %-24s %-12s [%s]\n", m.ID, m.Category, scope)
		}
		fmt.Println("funnels:")
		for _, f := range p.Funnels {
			fmt.Printf("  %-24s %d steps\n", f.ID, len(f.Steps))
		}
		return nil
	},
}
