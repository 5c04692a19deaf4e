package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var wallpaperRofiScriptCmd = &cobra.Command{
	Use:   "rofi-script [selection]",
	Short: "Rofi script-mode protocol endpoint",
	Long: `Implements the rofi script-mode protocol for wallpaper selection with
live preview. Wire it into rofi as a modi:

  rofi -show wallpaper -modi "wallpaper:nirictl wallpaper rofi-script"

rofi drives the protocol through ROFI_RETV: 0 lists the wallpapers, 1
applies and remembers the selected entry, 10 and up preview the
highlighted entry without remembering it. The entry's path travels in
the info field and comes back as ROFI_INFO.`,
	Hidden: true,
	Args:   cobra.ArbitraryArgs,
	RunE:   runWallpaperRofiScript,
}

var wallpaperFzfPreviewCmd = &cobra.Command{
	Use:    "fzf-preview <name>",
	Short:  "Apply a wallpaper by display name for the fzf preview",
	Hidden: true,
	Args:   cobra.ExactArgs(1),
	RunE:   runWallpaperFzfPreview,
}

func init() {
	wallpaperCmd.AddCommand(wallpaperRofiScriptCmd)
	wallpaperCmd.AddCommand(wallpaperFzfPreviewCmd)
}

func runWallpaperRofiScript(cmd *cobra.Command, args []string) error {
	m, err := wallpaperManager()
	if err != nil {
		return err
	}

	retv, _ := strconv.Atoi(os.Getenv("ROFI_RETV"))
	info := os.Getenv("ROFI_INFO")

	switch {
	case retv == 1:
		if info == "" {
			logger.Debugf("entry selected but ROFI_INFO is empty")
			return nil
		}
		return m.Set(info, true)
	case retv >= 10:
		if info == "" {
			return nil
		}
		return m.Set(info, false)
	case retv == 0:
		return m.ScriptList(os.Stdout)
	}
	// Custom keys (2-9) are not bound to anything.
	return nil
}

func runWallpaperFzfPreview(cmd *cobra.Command, args []string) error {
	m, err := wallpaperManager()
	if err != nil {
		return err
	}
	return m.FzfPreview(args[0])
}
