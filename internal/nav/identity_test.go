package nav

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/niriutils/nirictl/internal/niri"
)

func decodeWindow(t *testing.T, raw string) niri.Window {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var w niri.Window
	if err := dec.Decode(&w); err != nil {
		t.Fatalf("decode window %s: %v", raw, err)
	}
	return w
}

func TestIdentityOf_UsesFirstScalarIdentifier(t *testing.T) {
	w := decodeWindow(t, `{"persistent_id": 11, "id": 7, "title": "term"}`)
	id := IdentityOf(w)
	if !strings.Contains(string(id), "persistent_id") {
		t.Errorf("expected persistent_id to win, got %s", id)
	}
	if strings.Contains(string(id), `"id"`) {
		t.Errorf("lower-priority field leaked into identity: %s", id)
	}
}

func TestIdentityOf_SkipsNonScalarCandidates(t *testing.T) {
	w := decodeWindow(t, `{"persistent_id": null, "window_id": 1.5, "id": 7}`)
	id := IdentityOf(w)
	if !strings.Contains(string(id), `["id",7]`) {
		t.Errorf("expected id=7 after skipping null and float candidates, got %s", id)
	}
}

func TestIdentityOf_DistinguishesIntFromString(t *testing.T) {
	a := decodeWindow(t, `{"id": 7}`)
	b := decodeWindow(t, `{"id": "7"}`)
	if IdentityOf(a) == IdentityOf(b) {
		t.Error("integer and string ids should not compare equal")
	}
}

func TestIdentityOf_CompositeFallback(t *testing.T) {
	w := decodeWindow(t, `{"app_id": "kitty", "title": "scratch", "pid": 4242}`)
	id := IdentityOf(w)
	if id == "" {
		t.Fatal("composite identity must be non-empty")
	}
	if id != IdentityOf(w) {
		t.Error("identity not stable across calls")
	}
	for _, key := range []string{"workspace_id", "app_id", "title", "pid"} {
		if !strings.Contains(string(id), key) {
			t.Errorf("composite identity missing %q: %s", key, id)
		}
	}
}

func TestIdentityOf_CompositeIncludesAbsentFields(t *testing.T) {
	a := IdentityOf(decodeWindow(t, `{}`))
	b := IdentityOf(decodeWindow(t, `{"workspace_id": null}`))
	if a == "" || a != b {
		t.Errorf("windows with no usable fields should share one composite identity: %s vs %s", a, b)
	}
}

func TestIdentityOf_PreservesLargeIDs(t *testing.T) {
	w := decodeWindow(t, `{"id": 18446744073709551615}`)
	if !strings.Contains(string(IdentityOf(w)), "18446744073709551615") {
		t.Errorf("large id mangled: %s", IdentityOf(w))
	}
}

func TestFindByIdentity_FirstMatch(t *testing.T) {
	ws := []niri.Window{
		decodeWindow(t, `{"id": 1, "title": "a"}`),
		decodeWindow(t, `{"id": 2, "title": "b"}`),
		decodeWindow(t, `{"id": 2, "title": "c"}`),
	}
	got, ok := FindByIdentity(ws, IdentityOf(ws[2]))
	if !ok {
		t.Fatal("expected a match")
	}
	if got["title"] != "b" {
		t.Errorf("expected first structural match (b), got %v", got["title"])
	}
}

func TestFindByIdentity_None(t *testing.T) {
	ws := []niri.Window{decodeWindow(t, `{"id": 1}`)}
	if _, ok := FindByIdentity(ws, IdentityOf(decodeWindow(t, `{"id": 9}`))); ok {
		t.Error("expected no match")
	}
}
