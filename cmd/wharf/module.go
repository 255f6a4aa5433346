package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wharfd/wharf/pkg/config"
	"github.com/wharfd/wharf/pkg/runtime"
)

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "Manage modules on the engine",
}

func init() {
	moduleCreateCmd.Flags().StringP("file", "f", "", "Module manifest to create (required)")
	_ = moduleCreateCmd.MarkFlagRequired("file")

	moduleCmd.AddCommand(moduleCreateCmd)
	moduleCmd.AddCommand(moduleStartCmd)
	moduleCmd.AddCommand(moduleStopCmd)
	moduleCmd.AddCommand(moduleRestartCmd)
	moduleCmd.AddCommand(moduleRemoveCmd)
	moduleCmd.AddCommand(moduleListCmd)
}

// newRuntime builds the engine-bound runtime from the resolved config.
func newRuntime() (*runtime.DockerRuntime, error) {
	rt, err := runtime.NewDockerRuntime(cfg.Engine.Endpoint)
	if err != nil {
		return nil, err
	}
	if cfg.Engine.NetworkID != "" {
		rt = rt.WithNetworkID(cfg.Engine.NetworkID)
	}
	return rt, nil
}

var moduleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a module from a manifest",
	Long: `Create a module on the engine from a YAML manifest.

Examples:
  # Create a module described by module.yaml
  wharf module create -f module.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filename, _ := cmd.Flags().GetString("file")

		spec, err := config.LoadModuleManifest(filename)
		if err != nil {
			return err
		}
		if spec.Name == "" {
			spec.Name = "module-" + uuid.NewString()[:8]
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.Create(cmd.Context(), *spec); err != nil {
			return err
		}
		fmt.Printf("✓ Module created: %s (image=%s)\n", spec.Name, spec.Config.Image)
		return nil
	},
}

// lifecycleCommand builds a start/stop/restart/remove command; they differ
// only in the operation invoked.
func lifecycleCommand(use, short, done string,
	op func(*runtime.DockerRuntime, *cobra.Command, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <module>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := op(rt, cmd, args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Module %s: %s\n", done, args[0])
			return nil
		},
	}
}

var moduleStartCmd = lifecycleCommand("start", "Start a module", "started",
	func(rt *runtime.DockerRuntime, cmd *cobra.Command, id string) error {
		return rt.Start(cmd.Context(), id)
	})

var moduleStopCmd = lifecycleCommand("stop", "Stop a module", "stopped",
	func(rt *runtime.DockerRuntime, cmd *cobra.Command, id string) error {
		return rt.Stop(cmd.Context(), id)
	})

var moduleRestartCmd = lifecycleCommand("restart", "Restart a module", "restarted",
	func(rt *runtime.DockerRuntime, cmd *cobra.Command, id string) error {
		return rt.Restart(cmd.Context(), id)
	})

var moduleRemoveCmd = lifecycleCommand("remove", "Remove a module", "removed",
	func(rt *runtime.DockerRuntime, cmd *cobra.Command, id string) error {
		return rt.Remove(cmd.Context(), id)
	})

var moduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules owned by Wharf",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		modules, err := rt.List(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%-30s %-10s %s\n", "NAME", "TYPE", "IMAGE")
		for _, module := range modules {
			fmt.Printf("%-30s %-10s %s\n", module.Name(), module.Type(), module.Config().Image)
		}
		return nil
	},
}
