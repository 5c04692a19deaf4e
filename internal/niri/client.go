package niri

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Client shells out to the niri binary. Every call is one synchronous
// process invocation with no internal retries; callers decide what a
// failure means for them.
type Client struct {
	Binary string
}

// NewClient returns a client using the niri binary on PATH.
func NewClient() *Client {
	return &Client{Binary: "niri"}
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("niri %s: %v: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

func (c *Client) queryJSON(ctx context.Context, topic string) ([]byte, error) {
	return c.run(ctx, "msg", "-j", topic)
}

// Windows returns the current window list. An error means the state is
// unavailable: the process failed, or the payload was malformed or of
// an unexpected shape.
func (c *Client) Windows(ctx context.Context) ([]Window, error) {
	data, err := c.queryJSON(ctx, "windows")
	if err != nil {
		return nil, err
	}
	return parseWindows(data)
}

// OverviewOpen reports whether the compositor overview is open. Only an
// object with a boolean is_open field counts; anything else is an
// error, which callers treat as "not known to be open".
func (c *Client) OverviewOpen(ctx context.Context) (bool, error) {
	data, err := c.queryJSON(ctx, "overview-state")
	if err != nil {
		return false, err
	}
	return parseOverviewState(data)
}

// RunAction dispatches a named compositor action. Output is discarded;
// only the exit status matters.
func (c *Client) RunAction(ctx context.Context, name string) error {
	_, err := c.run(ctx, "msg", "action", name)
	return err
}

var errWindowsShape = errors.New("unexpected windows payload shape")

// parseWindows accepts either a bare JSON array of window objects or an
// object wrapping such an array under "windows". Non-object entries are
// dropped rather than rejected.
func parseWindows(data []byte) ([]Window, error) {
	payload, err := decodeAny(data)
	if err != nil {
		return nil, fmt.Errorf("decode windows: %w", err)
	}
	switch v := payload.(type) {
	case []any:
		return windowsFromList(v), nil
	case map[string]any:
		if list, ok := v["windows"].([]any); ok {
			return windowsFromList(list), nil
		}
	}
	return nil, errWindowsShape
}

func windowsFromList(items []any) []Window {
	windows := make([]Window, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			windows = append(windows, Window(m))
		}
	}
	return windows
}

func parseOverviewState(data []byte) (bool, error) {
	payload, err := decodeAny(data)
	if err != nil {
		return false, fmt.Errorf("decode overview-state: %w", err)
	}
	state, ok := payload.(map[string]any)
	if !ok {
		return false, errors.New("unexpected overview-state payload shape")
	}
	isOpen, ok := state["is_open"].(bool)
	if !ok {
		return false, errors.New("overview-state missing boolean is_open")
	}
	return isOpen, nil
}
