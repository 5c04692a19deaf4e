package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/niriutils/nirictl/internal/config"
	"github.com/niriutils/nirictl/internal/output"
	"github.com/niriutils/nirictl/internal/wallpaper"
)

var wallpaperCmd = &cobra.Command{
	Use:   "wallpaper",
	Short: "Manage the desktop wallpaper through swaybg",
	Long: `Manage the desktop wallpaper: list the wallpaper directory, set and
restore the background, and pick one interactively with rofi or fzf.

The wallpaper directory comes from $WALL_DIR, the [wallpaper] section
of the config file, or ~/.config/niri/wallpaper, in that order. The
chosen wallpaper is remembered so it can be restored on compositor
startup:

  spawn-at-startup "nirictl" "wallpaper" "restore"`,
}

var wallpaperListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wallpapers with the current selection marked",
	RunE:  runWallpaperList,
}

var wallpaperSetCmd = &cobra.Command{
	Use:   "set <path>",
	Short: "Set the wallpaper and remember the selection",
	Args:  cobra.ExactArgs(1),
	RunE:  runWallpaperSet,
}

var wallpaperRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the remembered wallpaper",
	Long: `Restore the remembered wallpaper, falling back to the first image in
the wallpaper directory when nothing is remembered or the remembered
file is gone.`,
	RunE: runWallpaperRestore,
}

var wallpaperCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the remembered and the running wallpaper",
	RunE:  runWallpaperCurrent,
}

var wallpaperSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick a wallpaper interactively",
	Long: `Pick a wallpaper with rofi (icon grid) or, with --fzf, with fzf and a
live preview that applies each highlighted wallpaper. Cancelling the
fzf picker puts the remembered wallpaper back.`,
	RunE: runWallpaperSelect,
}

func init() {
	rootCmd.AddCommand(wallpaperCmd)
	wallpaperCmd.AddCommand(wallpaperListCmd)
	wallpaperCmd.AddCommand(wallpaperSetCmd)
	wallpaperCmd.AddCommand(wallpaperRestoreCmd)
	wallpaperCmd.AddCommand(wallpaperCurrentCmd)
	wallpaperCmd.AddCommand(wallpaperSelectCmd)

	wallpaperListCmd.Flags().Bool("long", false, "Probe and show pixel dimensions")
	wallpaperSelectCmd.Flags().Bool("fzf", false, "Use fzf with live preview instead of rofi")
}

// wallpaperManager loads the config and builds the manager every
// command here starts from.
func wallpaperManager() (*wallpaper.Manager, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, err
	}
	return wallpaper.NewManager(cfg.Wallpaper, logger), nil
}

func runWallpaperList(cmd *cobra.Command, args []string) error {
	m, err := wallpaperManager()
	if err != nil {
		return err
	}

	entries, err := m.Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no wallpapers found in %s", m.Dir)
	}

	if long, _ := cmd.Flags().GetBool("long"); long {
		wallpaper.ProbeEntries(entries)
	}
	return output.Print(entries)
}

func runWallpaperSet(cmd *cobra.Command, args []string) error {
	m, err := wallpaperManager()
	if err != nil {
		return err
	}
	if err := m.Set(args[0], true); err != nil {
		return err
	}
	return output.Print(m.Status())
}

// restoredResult is the output of the restore command.
type restoredResult struct {
	Restored string `yaml:"restored" json:"restored"`
}

func runWallpaperRestore(cmd *cobra.Command, args []string) error {
	m, err := wallpaperManager()
	if err != nil {
		return err
	}
	path, err := m.Restore()
	if err != nil {
		return err
	}
	return output.Print(restoredResult{Restored: path})
}

func runWallpaperCurrent(cmd *cobra.Command, args []string) error {
	m, err := wallpaperManager()
	if err != nil {
		return err
	}
	st := m.Status()
	if st.Configured == "" && st.Running == "" {
		return fmt.Errorf("no wallpaper is set or remembered")
	}
	return output.Print(st)
}

func runWallpaperSelect(cmd *cobra.Command, args []string) error {
	m, err := wallpaperManager()
	if err != nil {
		return err
	}
	useFzf, _ := cmd.Flags().GetBool("fzf")
	return m.Select(useFzf)
}
