// Package translate implements the selection translation popup: grab
// the primary selection from copyq, run it through a translator, and
// offer the result in a rofi popup with a copy action.
package translate

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/niriutils/nirictl/internal/config"
	"github.com/niriutils/nirictl/internal/notify"
	"github.com/niriutils/nirictl/internal/util"
)

// Runner abstracts process execution so tests can fake copyq, the
// translator and rofi.
type Runner interface {
	Run(name string, args ...string) error
	Output(name string, args ...string) (string, error)
	InputOutput(input string, name string, args ...string) (string, error)
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
		return "", fmt.Errorf("%s: %v", name, err)
	}
	return stdout.String(), nil
}

const popupChoices = "Copy translation\nClose\n"

// Pipeline runs one selection-to-popup translation round trip.
type Pipeline struct {
	Command string
	Args    []string
	Prompt  string
	Run     Runner
	Notify  func(title, message string) error
	Log     *util.Logger
}

// New builds a pipeline from translate configuration.
func New(cfg config.TranslateConfig, log *util.Logger) *Pipeline {
	return &Pipeline{
		Command: cfg.Command,
		Args:    cfg.Args,
		Prompt:  cfg.Prompt,
		Run:     execRunner{},
		Notify:  notify.Send,
		Log:     log,
	}
}

// Selection returns the current primary selection text.
func (p *Pipeline) Selection() (string, error) {
	out, err := p.Run.Output("copyq", "selection")
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(out)
	if text == "" {
		return "", fmt.Errorf("no selection text found")
	}
	return text, nil
}

// Translate runs text through the translator command.
func (p *Pipeline) Translate(text string) (string, error) {
	out, err := p.Run.InputOutput(text, p.Command, p.Args...)
	if err != nil {
		return "", err
	}
	translation := strings.TrimSpace(out)
	if translation == "" {
		return "", fmt.Errorf("%s returned no translation", p.Command)
	}
	return translation, nil
}

// CopyToClipboard stores text on the clipboard.
func (p *Pipeline) CopyToClipboard(text string) error {
	return p.Run.Run("copyq", "copy", text)
}

// ShowPopup presents the translation in a rofi message box with a copy
// action.
func (p *Pipeline) ShowPopup(translation string) error {
	out, err := p.Run.InputOutput(popupChoices,
		"rofi",
		"-dmenu",
		"-no-custom",
		"-p", p.Prompt,
		"-mesg", translation,
	)
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) == "Copy translation" {
		return p.CopyToClipboard(translation)
	}
	return nil
}

// Execute runs the whole pipeline. Each failure leg raises a desktop
// notification, since the keybinding that triggers this has no
// terminal to report to.
func (p *Pipeline) Execute() error {
	text, err := p.Selection()
	if err != nil {
		p.Notify(p.Prompt, "No selection text found.")
		return err
	}
	p.Log.Debugf("translating %d bytes of selection", len(text))

	translation, err := p.Translate(text)
	if err != nil {
		p.Notify(p.Prompt, fmt.Sprintf("%s returned no translation.", p.Command))
		return err
	}

	if err := p.ShowPopup(translation); err != nil {
		p.Notify(p.Prompt, "Failed to show popup.")
		return err
	}
	return nil
}
