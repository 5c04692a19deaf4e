package output

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

type sampleResult struct {
	Action  string `yaml:"action"            json:"action"`
	Outcome string `yaml:"outcome,omitempty" json:"outcome,omitempty"`
	Count   int    `yaml:"count"             json:"count"`
}

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	ferr := fn()
	w.Close()
	os.Stdout = old

	if ferr != nil {
		t.Fatal(ferr)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	out := captureStdout(t, func() error {
		return PrintYAML(sampleResult{Action: "focus-column-left", Outcome: "focus-moved", Count: 3})
	})

	// YAML output should be multi-line
	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	var decoded sampleResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Action != "focus-column-left" {
		t.Errorf("action: got %q, want %q", decoded.Action, "focus-column-left")
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	out := captureStdout(t, func() error {
		return PrintJSON(sampleResult{Action: "focus-column-left", Count: 3})
	})

	// Compact output should be a single line (plus newline from Encode)
	if bytes.Count([]byte(out), []byte("\n")) > 1 {
		t.Errorf("compact output should be single line, got:\n%s", out)
	}

	var decoded sampleResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 3 {
		t.Errorf("count: got %d, want 3", decoded.Count)
	}
}

func TestPrintPrettyJSON(t *testing.T) {
	out := captureStdout(t, func() error {
		return PrintPrettyJSON(sampleResult{Action: "move-column-right", Count: 1})
	})

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", out)
	}
	var decoded sampleResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestResolveFormat(t *testing.T) {
	if f, err := ResolveFormat("yaml"); err != nil || f != FormatYAML {
		t.Errorf("yaml: got %q, %v", f, err)
	}
	if f, err := ResolveFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("json: got %q, %v", f, err)
	}
	if f, err := ResolveFormat("auto"); err != nil || (f != FormatYAML && f != FormatJSON) {
		t.Errorf("auto must resolve to a concrete format: got %q, %v", f, err)
	}
	if _, err := ResolveFormat("toml"); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestIsInteractive_NonFileWriter(t *testing.T) {
	if IsInteractive(&bytes.Buffer{}) {
		t.Error("a plain buffer is not a terminal")
	}
}

func TestIsInteractive_DevNull(t *testing.T) {
	f, err := os.Open(os.DevNull)
	if err != nil {
		t.Skipf("open %s: %v", os.DevNull, err)
	}
	defer f.Close()
	if IsInteractive(f) {
		t.Errorf("%s is not a terminal", os.DevNull)
	}
}
