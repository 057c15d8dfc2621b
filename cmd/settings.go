package cmd

import (
	"encoding/json"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"bunny-video/domain/dto"
	"bunny-video/infrastructure/logger"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the stored Stream credentials",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored settings with the access key masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.settingsUsecase.Get(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the library id and/or access key",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.SettingsRequest
		if cmd.Flags().Changed("library-id") {
			req.LibraryID = lo.ToPtr(lo.Must(cmd.Flags().GetString("library-id")))
		}
		if cmd.Flags().Changed("access-key") {
			req.AccessKey = lo.ToPtr(lo.Must(cmd.Flags().GetString("access-key")))
		}
		if cfg.Settings.Backend == "" || cfg.Settings.Backend == "memory" {
			logger.GetLogger().Warn("Settings backend is memory; values are not persisted after this command")
		}

		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.settingsUsecase.Save(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	},
}

func init() {
	settingsSetCmd.Flags().String("library-id", "", "Numeric Stream library id")
	settingsSetCmd.Flags().String("access-key", "", "Stream library AccessKey")
	settingsSetCmd.MarkFlagsOneRequired("library-id", "access-key")
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
