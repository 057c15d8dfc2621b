package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var testConnectionCmd = &cobra.Command{
	Use:   "test-connection",
	Short: "Fetch one video with the configured credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.videoUsecase.TestConnection(cmd.Context()); err != nil {
			return fmt.Errorf("connection failed: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok: Bunny Stream reachable")
		return err
	},
}
