package niri

import (
	"encoding/json"
	"testing"
)

func TestWindowFocused_OnlyBoolTrue(t *testing.T) {
	if !(Window{"is_focused": true}).Focused() {
		t.Error("expected focused for is_focused=true")
	}
	for _, w := range []Window{
		{"is_focused": false},
		{"is_focused": "true"},
		{"is_focused": json.Number("1")},
		{},
	} {
		if w.Focused() {
			t.Errorf("expected not focused for %v", w)
		}
	}
}

func TestWindowFloating(t *testing.T) {
	if !(Window{"is_floating": true}).Floating() {
		t.Error("expected floating")
	}
	if (Window{"is_floating": nil}).Floating() {
		t.Error("null is_floating should read as not floating")
	}
}

func TestWindowScalar_AcceptsStringsAndIntegers(t *testing.T) {
	w := Window{
		"app_id": "kitty",
		"id":     json.Number("42"),
	}
	if v, ok := w.Scalar("app_id"); !ok || v != "kitty" {
		t.Errorf("string scalar: got %v, %v", v, ok)
	}
	if v, ok := w.Scalar("id"); !ok || v != json.Number("42") {
		t.Errorf("integer scalar: got %v, %v", v, ok)
	}
}

func TestWindowScalar_RejectsNonIdentifiers(t *testing.T) {
	w := Window{
		"ratio":   json.Number("0.5"),
		"exp":     json.Number("1e3"),
		"flag":    true,
		"nothing": nil,
		"nested":  map[string]any{"id": json.Number("1")},
	}
	for _, key := range []string{"ratio", "exp", "flag", "nothing", "nested", "absent"} {
		if _, ok := w.Scalar(key); ok {
			t.Errorf("expected %q to be rejected as scalar", key)
		}
	}
}
