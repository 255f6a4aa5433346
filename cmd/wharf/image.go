package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wharfd/wharf/pkg/types"
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Manage images on the engine",
}

func init() {
	imagePullCmd.Flags().String("username", "", "Registry username")
	imagePullCmd.Flags().String("password", "", "Registry password")
	imagePullCmd.Flags().String("email", "", "Registry account email")
	imagePullCmd.Flags().String("server", "", "Registry server address")

	imageCmd.AddCommand(imagePullCmd)
	imageCmd.AddCommand(imageRemoveCmd)
}

var imagePullCmd = &cobra.Command{
	Use:   "pull <image>",
	Short: "Pull an image from its registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		email, _ := cmd.Flags().GetString("email")
		server, _ := cmd.Flags().GetString("server")

		var credentials *types.RegistryCredentials
		if username != "" || password != "" || email != "" || server != "" {
			credentials = &types.RegistryCredentials{
				Username:      username,
				Password:      password,
				Email:         email,
				ServerAddress: server,
			}
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.Registry().Pull(cmd.Context(), args[0], credentials); err != nil {
			return err
		}
		fmt.Printf("✓ Image pulled: %s\n", args[0])
		return nil
	},
}

var imageRemoveCmd = &cobra.Command{
	Use:   "remove <image>",
	Short: "Remove an image from the engine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.Registry().RemoveImage(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Image removed: %s\n", args[0])
		return nil
	},
}
