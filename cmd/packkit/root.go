package main

import (
	"fmt"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/efeecllk/game-insights-sub001/config"
	"github.com/efeecllk/game-insights-sub001/natsbridge"
	"github.com/efeecllk/game-insights-sub001/packs"
	"github.com/efeecllk/game-insights-sub001/registry"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "packkit",
	Short: "packkit: author, share, and test industry packs",
	Long: `packkit manages industry packs for the analytics platform:
validate pack files, export them to the shareable .pack.json format,
import and merge community packs, and run industry detection against a
dataset's columns.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML, optional)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(listCmd)
}

func loadConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		c, _ = config.Load("")
	}
	cfg = c
}

// newRegistry builds a registry with all built-in packs registered.
// When the event bridge is enabled the bridge attaches before
// registration so pack events are forwarded from the first register on.
func newRegistry() (*registry.Registry, func(), error) {
	reg := registry.New()
	cleanup := func() {}

	if cfg != nil && cfg.Bridge.Enabled {
		conn, err := nats.Connect(cfg.Bridge.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("bridge connect: %w", err)
		}
		bridge := natsbridge.New(reg, natsbridge.NATSPublisher(conn),
			natsbridge.WithSubjectPrefix(cfg.Bridge.SubjectPrefix))
		if err := bridge.Start(); err != nil {
			conn.Close()
			return nil, nil, err
		}
		cleanup = func() {
			bridge.Stop()
			conn.Close()
		}
	}

	if err := packs.RegisterAll(reg); err != nil {
		cleanup()
		return nil, nil, err
	}
	return reg, cleanup, nil
}
