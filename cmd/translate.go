package cmd

import (
	"github.com/spf13/cobra"

	"github.com/niriutils/nirictl/internal/config"
	"github.com/niriutils/nirictl/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate the current selection and show it in a popup",
	Long: `Read the primary selection through copyq, run it through the configured
translator, and present the translation in a rofi popup with a copy
action. Failures raise desktop notifications instead of terminal
output, so the command can sit behind a keybinding:

  Mod+T { spawn "nirictl" "translate"; }

The translator command, its arguments and the popup prompt come from
the [translate] section of the config file.`,
	SilenceUsage: true,
	RunE:         runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}
	return translate.New(cfg.Translate, logger).Execute()
}
