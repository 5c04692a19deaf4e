package niri

import (
	"encoding/json"
	"testing"
)

func TestParseWindows_BareArray(t *testing.T) {
	data := []byte(`[{"id": 1, "title": "term"}, {"id": 2, "title": "web"}]`)
	windows, err := parseWindows(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	if windows[1]["title"] != "web" {
		t.Errorf("expected title web, got %v", windows[1]["title"])
	}
}

func TestParseWindows_WrappedObject(t *testing.T) {
	data := []byte(`{"windows": [{"id": 7}]}`)
	windows, err := parseWindows(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
}

func TestParseWindows_DropsNonObjectEntries(t *testing.T) {
	data := []byte(`[{"id": 1}, "noise", 42, null, {"id": 2}]`)
	windows, err := parseWindows(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows after filtering, got %d", len(windows))
	}
}

func TestParseWindows_MalformedJSON(t *testing.T) {
	if _, err := parseWindows([]byte(`{"windows": [`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestParseWindows_UnexpectedShape(t *testing.T) {
	cases := [][]byte{
		[]byte(`"just a string"`),
		[]byte(`17`),
		[]byte(`{"clients": []}`),
		[]byte(`{"windows": {"id": 1}}`),
	}
	for _, data := range cases {
		if _, err := parseWindows(data); err == nil {
			t.Errorf("expected shape error for %s", data)
		}
	}
}

func TestParseWindows_PreservesLargeIDs(t *testing.T) {
	data := []byte(`[{"id": 18446744073709551615}]`)
	windows, err := parseWindows(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	n, ok := windows[0]["id"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number id, got %T", windows[0]["id"])
	}
	if n.String() != "18446744073709551615" {
		t.Errorf("large id rounded: %s", n)
	}
}

func TestParseOverviewState_Open(t *testing.T) {
	open, err := parseOverviewState([]byte(`{"is_open": true}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !open {
		t.Error("expected open=true")
	}
}

func TestParseOverviewState_Closed(t *testing.T) {
	open, err := parseOverviewState([]byte(`{"is_open": false}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if open {
		t.Error("expected open=false")
	}
}

func TestParseOverviewState_MissingOrMistyped(t *testing.T) {
	cases := [][]byte{
		[]byte(`{}`),
		[]byte(`{"is_open": "yes"}`),
		[]byte(`{"is_open": 1}`),
		[]byte(`[true]`),
		[]byte(`true`),
	}
	for _, data := range cases {
		if _, err := parseOverviewState(data); err == nil {
			t.Errorf("expected error for %s", data)
		}
	}
}
