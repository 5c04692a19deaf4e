// Package config loads the nirictl configuration file. Only the
// wallpaper and translation pipelines are configurable; the nav
// command takes everything from flags and reads no config.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration.
type Config struct {
	Wallpaper WallpaperConfig `toml:"wallpaper"`
	Translate TranslateConfig `toml:"translate"`
}

// WallpaperConfig holds wallpaper directory and display settings.
type WallpaperConfig struct {
	Dir       string `toml:"dir"`        // Wallpaper image directory
	StateFile string `toml:"state_file"` // Where the current selection is remembered
	Mode      string `toml:"mode"`       // swaybg scaling mode (fill, fit, center, ...)
}

// TranslateConfig holds the selection translation pipeline settings.
type TranslateConfig struct {
	Command string   `toml:"command"` // Translator binary, reads source text on stdin
	Args    []string `toml:"args"`    // Arguments passed to the translator
	Prompt  string   `toml:"prompt"`  // Popup prompt label
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nirictl", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "nirictl", "config.toml")
}

// DefaultWallpaperDir returns the wallpaper directory, honoring the
// WALL_DIR environment variable.
func DefaultWallpaperDir() string {
	if dir := os.Getenv("WALL_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "niri", "wallpaper")
}

// DefaultStateFile returns where the current wallpaper path is remembered.
func DefaultStateFile() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "niri", "current-wallpaper")
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Wallpaper: WallpaperConfig{
			Dir:       DefaultWallpaperDir(),
			StateFile: DefaultStateFile(),
			Mode:      "fill",
		},
		Translate: TranslateConfig{
			Command: "crow",
			Args:    []string{"--brief", "--stdin"},
			Prompt:  "Translation",
		},
	}
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// Load loads configuration from a file, falling back to defaults when
// the file does not exist. An empty path means DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults for missing values
	def := Default()
	if cfg.Wallpaper.Dir == "" {
		cfg.Wallpaper.Dir = def.Wallpaper.Dir
	}
	if cfg.Wallpaper.StateFile == "" {
		cfg.Wallpaper.StateFile = def.Wallpaper.StateFile
	}
	if cfg.Wallpaper.Mode == "" {
		cfg.Wallpaper.Mode = def.Wallpaper.Mode
	}
	if cfg.Translate.Command == "" {
		cfg.Translate.Command = def.Translate.Command
		if cfg.Translate.Args == nil {
			cfg.Translate.Args = def.Translate.Args
		}
	}
	if cfg.Translate.Prompt == "" {
		cfg.Translate.Prompt = def.Translate.Prompt
	}

	// Environment variable override for the wallpaper directory
	if dir := os.Getenv("WALL_DIR"); dir != "" {
		cfg.Wallpaper.Dir = dir
	}

	cfg.Wallpaper.Dir = ExpandHome(cfg.Wallpaper.Dir)
	cfg.Wallpaper.StateFile = ExpandHome(cfg.Wallpaper.StateFile)

	return &cfg, nil
}

// CreateDefault creates a default config file.
func CreateDefault() (string, error) {
	path := DefaultPath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Print(Default(), f); err != nil {
		return "", err
	}

	return path, nil
}

// Print writes config to a writer in TOML format.
func Print(cfg *Config, w io.Writer) error {
	fmt.Fprintln(w, "# nirictl configuration")
	fmt.Fprintln(w, "# The nav command takes everything from flags and never reads this file.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[wallpaper]")
	fmt.Fprintln(w, "# Wallpaper image directory (the WALL_DIR environment variable wins if set)")
	fmt.Fprintf(w, "dir = %q\n", cfg.Wallpaper.Dir)
	fmt.Fprintf(w, "state_file = %q\n", cfg.Wallpaper.StateFile)
	fmt.Fprintf(w, "mode = %q  # swaybg scaling mode: fill, fit, center, stretch, tile\n", cfg.Wallpaper.Mode)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[translate]")
	fmt.Fprintln(w, "# Translator command, reads the source text on stdin")
	fmt.Fprintf(w, "command = %q\n", cfg.Translate.Command)
	args := make([]string, 0, len(cfg.Translate.Args))
	for _, a := range cfg.Translate.Args {
		args = append(args, fmt.Sprintf("%q", a))
	}
	fmt.Fprintf(w, "args = [%s]\n", strings.Join(args, ", "))
	fmt.Fprintf(w, "prompt = %q\n", cfg.Translate.Prompt)

	return nil
}
