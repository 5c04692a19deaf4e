package nav

import "testing"

func TestSnapshotOf_IgnoresNonLayoutFields(t *testing.T) {
	a := SnapshotOf(decodeWindow(t, `{"workspace_id": 3, "column_index": 1, "title": "before"}`))
	b := SnapshotOf(decodeWindow(t, `{"workspace_id": 3, "column_index": 1, "title": "after"}`))
	if a != b {
		t.Errorf("title change should not affect snapshot: %s vs %s", a, b)
	}
}

func TestSnapshotOf_DetectsColumnChange(t *testing.T) {
	a := SnapshotOf(decodeWindow(t, `{"workspace_id": 3, "column_index": 1}`))
	b := SnapshotOf(decodeWindow(t, `{"workspace_id": 3, "column_index": 2}`))
	if a == b {
		t.Error("column move should change the snapshot")
	}
}

func TestSnapshotOf_DetectsWorkspaceChange(t *testing.T) {
	a := SnapshotOf(decodeWindow(t, `{"workspace_id": 3}`))
	b := SnapshotOf(decodeWindow(t, `{"workspace_id": 4}`))
	if a == b {
		t.Error("workspace move should change the snapshot")
	}
}

func TestSnapshotOf_KeyOrderIndependent(t *testing.T) {
	a := SnapshotOf(decodeWindow(t, `{"workspace_id": 1, "layout": {"pos_in_scrolling_layout": [1, 2], "tile_size": [600, 400]}, "column_display": "normal"}`))
	b := SnapshotOf(decodeWindow(t, `{"column_display": "normal", "layout": {"tile_size": [600, 400], "pos_in_scrolling_layout": [1, 2]}, "workspace_id": 1}`))
	if a != b {
		t.Errorf("snapshot must not depend on document key order:\n%s\n%s", a, b)
	}
}

func TestSnapshotOf_MissingFieldsStable(t *testing.T) {
	a := SnapshotOf(decodeWindow(t, `{"title": "x"}`))
	b := SnapshotOf(decodeWindow(t, `{"title": "y"}`))
	if a == "" || a != b {
		t.Errorf("windows without layout fields should share one snapshot: %s vs %s", a, b)
	}
}
