// Package wallpaper manages the desktop background through swaybg:
// picking images from a wallpaper directory, remembering the selection
// in a state file, and restoring it on compositor startup.
package wallpaper

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/niriutils/nirictl/internal/config"
	"github.com/niriutils/nirictl/internal/util"
)

// Runner abstracts process control so tests can fake swaybg, pkill and
// pgrep.
type Runner interface {
	// Run executes a command and waits, discarding its output.
	Run(name string, args ...string) error
	// Output executes a command and returns its stdout.
	Output(name string, args ...string) (string, error)
	// InputOutput executes a command with input on stdin and returns
	// its stdout.
	InputOutput(input string, name string, args ...string) (string, error)
	// Start spawns a command detached from our stdio and does not wait.
	Start(name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

func (execRunner) Output(name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %v: %s", name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func (execRunner) InputOutput(input string, name string, args ...string) (string, error) {
	var stdout bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return stdout.String(), err
	}
	return stdout.String(), nil
}

func (execRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the process when a later Set kills it; without this the
	// long-running agent server would collect zombies.
	go cmd.Wait()
	return nil
}

// Manager owns the wallpaper directory, the state file, and the swaybg
// process.
type Manager struct {
	Dir       string
	StateFile string
	Mode      string
	Run       Runner
	Log       *util.Logger
}

// NewManager builds a manager from wallpaper configuration.
func NewManager(cfg config.WallpaperConfig, log *util.Logger) *Manager {
	return &Manager{
		Dir:       cfg.Dir,
		StateFile: cfg.StateFile,
		Mode:      cfg.Mode,
		Run:       execRunner{},
		Log:       log,
	}
}

// Entry is one wallpaper listing row.
type Entry struct {
	Name    string `yaml:"name"              json:"name"`
	Path    string `yaml:"path"              json:"path"`
	Current bool   `yaml:"current,omitempty" json:"current,omitempty"`
	Width   int    `yaml:"width,omitempty"   json:"width,omitempty"`
	Height  int    `yaml:"height,omitempty"  json:"height,omitempty"`
}

// Status describes the configured and running wallpaper.
type Status struct {
	Configured string `yaml:"configured,omitempty" json:"configured,omitempty"`
	Running    string `yaml:"running,omitempty"    json:"running,omitempty"`
	InSync     bool   `yaml:"in_sync"              json:"in_sync"`
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

func isImage(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range imageExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// Wallpapers returns the full paths of all images in the wallpaper
// directory, sorted by file name. A missing directory is not an error;
// it just has no wallpapers.
func (m *Manager) Wallpapers() ([]string, error) {
	entries, err := os.ReadDir(m.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading wallpaper dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !isImage(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(m.Dir, e.Name()))
	}
	return paths, nil
}

// Entries returns the wallpaper listing with the saved selection marked.
func (m *Manager) Entries() ([]Entry, error) {
	paths, err := m.Wallpapers()
	if err != nil {
		return nil, err
	}
	saved, _ := m.Saved()

	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, Entry{
			Name:    filepath.Base(p),
			Path:    p,
			Current: saved != "" && p == saved,
		})
	}
	return entries, nil
}

// Saved returns the wallpaper path remembered in the state file. It
// reports false when the file is missing or the image it points to is
// gone.
func (m *Manager) Saved() (string, bool) {
	data, err := os.ReadFile(m.StateFile)
	if err != nil {
		return "", false
	}
	path := strings.TrimSpace(string(data))
	if path == "" {
		return "", false
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// Save remembers path in the state file.
func (m *Manager) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(m.StateFile), 0755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	return os.WriteFile(m.StateFile, []byte(path+"\n"), 0644)
}

// Running returns the wallpaper the current swaybg process is showing,
// or "" when none is running.
func (m *Manager) Running() string {
	out, err := m.Run.Output("pgrep", "-a", "swaybg")
	if err != nil {
		return ""
	}
	parts := strings.Fields(out)
	for i, part := range parts {
		if part == "-i" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// Status reports the saved and running wallpaper together.
func (m *Manager) Status() Status {
	saved, _ := m.Saved()
	running := m.Running()
	return Status{
		Configured: saved,
		Running:    running,
		InSync:     saved != "" && saved == running,
	}
}

// Set replaces the running swaybg instance with one showing path. When
// save is true the selection is also remembered for restore.
func (m *Manager) Set(path string, save bool) error {
	if path == "" {
		return fmt.Errorf("no wallpaper path provided")
	}
	path = config.ExpandHome(path)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return fmt.Errorf("wallpaper file not found: %s", path)
	}

	// An already-dead swaybg is fine.
	_ = m.Run.Run("pkill", "swaybg")

	if err := m.Run.Start("swaybg", "-i", path, "-m", m.Mode); err != nil {
		return fmt.Errorf("starting swaybg: %w", err)
	}

	if save {
		if err := m.Save(path); err != nil {
			return err
		}
	}
	m.Log.Debugf("wallpaper set to %s (save=%t)", path, save)
	return nil
}

// Restore brings back the remembered wallpaper, falling back to the
// first image in the wallpaper directory. Meant to run on compositor
// startup. Returns the path that was applied.
func (m *Manager) Restore() (string, error) {
	if saved, ok := m.Saved(); ok {
		if err := m.Set(saved, false); err == nil {
			return saved, nil
		}
	}

	paths, err := m.Wallpapers()
	if err != nil {
		return "", err
	}
	if len(paths) > 0 {
		if err := m.Set(paths[0], true); err != nil {
			return "", err
		}
		m.Log.Infof("using default wallpaper: %s", paths[0])
		return paths[0], nil
	}

	return "", fmt.Errorf("no wallpapers found in %s", m.Dir)
}

// CancelRestore puts the remembered wallpaper back if a preview left a
// different one showing. Used when an interactive picker is dismissed.
func (m *Manager) CancelRestore() error {
	saved, ok := m.Saved()
	if !ok {
		return nil
	}
	running := m.Running()
	if running == "" || running == saved {
		return nil
	}
	return m.Set(saved, false)
}
