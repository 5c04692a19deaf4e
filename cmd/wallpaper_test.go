package cmd

import (
	"testing"
)

func TestWallpaperCommand_HasSubcommands(t *testing.T) {
	expected := []string{"list", "set", "restore", "current", "select", "rofi-script", "fzf-preview"}

	found := make(map[string]bool)
	for _, c := range wallpaperCmd.Commands() {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected wallpaper subcommand %q not found", name)
		}
	}
}

func TestWallpaperCommand_ProtocolCommandsHidden(t *testing.T) {
	for _, c := range wallpaperCmd.Commands() {
		switch c.Name() {
		case "rofi-script", "fzf-preview":
			if !c.Hidden {
				t.Errorf("protocol command %q should be hidden", c.Name())
			}
		}
	}
}
