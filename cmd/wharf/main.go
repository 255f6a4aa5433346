package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wharfd/wharf/pkg/config"
	"github.com/wharfd/wharf/pkg/log"
	"github.com/wharfd/wharf/pkg/metrics"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// cfg is the resolved agent configuration shared by all subcommands.
var cfg *config.AgentConfig

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wharf",
	Short: "Wharf - edge module runtime for Docker engines",
	Long: `Wharf manages edge workloads ("modules") by delegating their
lifecycle to a remote Docker engine. It pulls images, creates containers
from module manifests, and tracks the modules it owns through an
ownership label.`,
	Version:           Version,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Wharf version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("config", "", "Agent configuration file")
	rootCmd.PersistentFlags().String("engine", "", "Engine endpoint (overrides config)")
	rootCmd.PersistentFlags().String("network", "", "Network id to attach created modules to (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit JSON logs")

	rootCmd.AddCommand(moduleCmd)
	rootCmd.AddCommand(imageCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	} else {
		cfg = config.Default()
	}

	if engine, _ := cmd.Flags().GetString("engine"); engine != "" {
		cfg.Engine.Endpoint = engine
	}
	if networkID, _ := cmd.Flags().GetString("network"); networkID != "" {
		cfg.Engine.NetworkID = networkID
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if jsonLog, _ := cmd.Flags().GetBool("log-json"); jsonLog {
		cfg.Log.JSON = true
	}

	log.Init(log.Config{
		Level:      log.Level(cfg.Log.Level),
		JSONOutput: cfg.Log.JSON,
		Output:     os.Stderr,
	})

	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.Serve(cfg.Metrics.Address); err != nil {
				log.Errorf("metrics server failed", err)
			}
		}()
	}
	return nil
}
