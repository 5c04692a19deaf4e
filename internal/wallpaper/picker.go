package wallpaper

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// rofi draws entries as a thumbnail grid; names stay hidden and the
// image itself is the label.
const rofiGridTheme = `
 window { width: 70%; height: 85%; }
 listview { columns: 5; lines: 4; spacing: 0px; }
 element { orientation: vertical; padding: 16px; }
 element-icon { size: 8em; }
 element-text { enabled: false; }
`

// Select runs an interactive wallpaper picker. The rofi thumbnail grid
// is the default; useFzf switches to fzf with live preview when fzf is
// installed.
func (m *Manager) Select(useFzf bool) error {
	if useFzf {
		if _, err := exec.LookPath("fzf"); err == nil {
			return m.selectFzf()
		}
	}
	return m.selectRofi()
}

func (m *Manager) selectRofi() error {
	if _, err := exec.LookPath("rofi"); err != nil {
		return fmt.Errorf("rofi not found")
	}

	paths, err := m.Wallpapers()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no wallpapers found in %s", m.Dir)
	}
	m.Log.Debugf("rofi picker: %d wallpapers", len(paths))

	saved, _ := m.Saved()
	lines := make([]string, 0, len(paths))
	byID := make(map[string]string, len(paths)*2)
	for idx, p := range paths {
		id := strconv.Itoa(idx)
		display := id
		if saved != "" && p == saved {
			display = id + "*"
		}
		// display\0icon\x1fpath makes rofi render the image itself
		lines = append(lines, fmt.Sprintf("%s\x00icon\x1f%s", display, p))
		byID[id] = p
		byID[display] = p
	}

	out, err := m.Run.InputOutput(strings.Join(lines, "\n"),
		"rofi",
		"-dmenu",
		"-p", "Wallpaper",
		"-i",
		"-format", "s",
		"-no-custom",
		"-show-icons",
		"-theme-str", rofiGridTheme,
	)
	selected := strings.TrimSpace(out)
	if err != nil || selected == "" {
		// Dismissed without choosing.
		m.Log.Debugf("rofi picker: canceled")
		return nil
	}

	path, ok := byID[selected]
	if !ok {
		return fmt.Errorf("unknown selection %q", selected)
	}
	return m.Set(path, true)
}

func (m *Manager) selectFzf() error {
	paths, err := m.Wallpapers()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no wallpapers found in %s", m.Dir)
	}
	m.Log.Debugf("fzf picker: %d wallpapers", len(paths))

	saved, _ := m.Saved()
	lines := make([]string, 0, len(paths))
	byName := make(map[string]string, len(paths))
	for _, p := range paths {
		display := filepath.Base(p)
		if saved != "" && p == saved {
			display += " *"
		}
		lines = append(lines, display)
		byName[display] = p
	}

	// The preview callback re-enters this binary so each highlighted
	// entry is applied live.
	exe, err := os.Executable()
	if err != nil {
		exe = "nirictl"
	}

	out, err := m.Run.InputOutput(strings.Join(lines, "\n"),
		"fzf",
		"--prompt", "Wallpaper> ",
		"--preview", fmt.Sprintf("%s wallpaper fzf-preview {}", exe),
		"--preview-window", "hidden",
		"--bind", "change:reload:sleep 0.1",
		"--no-multi",
		"--cycle",
	)
	selected := strings.TrimSpace(out)
	if err != nil || selected == "" {
		// Canceled: the live preview may have left a different
		// wallpaper showing.
		m.Log.Debugf("fzf picker: canceled")
		return m.CancelRestore()
	}

	path, ok := byName[selected]
	if !ok {
		return fmt.Errorf("unknown selection %q", selected)
	}
	return m.Set(path, true)
}

// FzfPreview applies the highlighted entry without saving it. Invoked
// by fzf with the display name, marker included.
func (m *Manager) FzfPreview(displayName string) error {
	name := strings.TrimRight(displayName, " *")

	paths, err := m.Wallpapers()
	if err != nil {
		return err
	}
	for _, p := range paths {
		if filepath.Base(p) == name {
			return m.Set(p, false)
		}
	}
	return fmt.Errorf("wallpaper not found for %q", name)
}

// ScriptList writes the rofi script-mode listing: one entry per
// wallpaper with the full path in the info field, the saved selection
// marked with an asterisk.
func (m *Manager) ScriptList(w io.Writer) error {
	paths, err := m.Wallpapers()
	if err != nil {
		return err
	}
	saved, _ := m.Saved()
	for _, p := range paths {
		marker := ""
		if saved != "" && p == saved {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s\x00info\x1f%s\n", filepath.Base(p), marker, p)
	}
	return nil
}
