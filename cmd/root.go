package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/niriutils/nirictl/internal/output"
	"github.com/niriutils/nirictl/internal/util"
	"github.com/niriutils/nirictl/internal/version"
)

// logger is shared by all subcommands; --log-level and --debug adjust
// its level before any RunE executes.
var logger = util.NewLogger(util.LevelInfo)

var rootCmd = &cobra.Command{
	Use:   "nirictl",
	Short: "Contextual navigation and desktop glue for the niri compositor",
	Long: `nirictl bundles the desktop glue around the niri compositor: a
contextual navigation helper meant to sit behind keybindings, a swaybg
wallpaper manager with rofi/fzf pickers, a selection translator, and an
MCP server exposing all of it to agents.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "auto", "Output format: auto, yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		logger.SetLevel(util.ParseLogLevel(level))
		if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
			logger.SetLevel(util.LevelDebug)
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		resolved, err := output.ResolveFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = resolved

		if pretty, _ := rootCmd.PersistentFlags().GetBool("pretty"); pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
