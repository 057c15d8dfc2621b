// Package cmd wires the bunny-video command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bunny-video/infrastructure/configuration"
	"bunny-video/infrastructure/logger"
)

var cfg *configuration.Config

var rootCmd = &cobra.Command{
	Use:           "bunny-video",
	Short:         "Bunny Stream video browser and embed service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configuration.LoadEnvFromFile("config.env", ".env")
		loaded, err := configuration.LoadConfig()
		if err != nil {
			return err
		}
		logger.Configure(loaded.Logger.Level, loaded.Logger.Format)
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, testConnectionCmd, settingsCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Command failed")
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
