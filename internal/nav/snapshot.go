package nav

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/niriutils/nirictl/internal/niri"
)

// LayoutSnapshot is a fingerprint of the position-relevant state of one
// window: its workspace, layout descriptor, and every column-related
// field. Equal snapshots before and after an action mean the action had
// no layout effect.
type LayoutSnapshot string

// SnapshotOf serializes the layout-relevant fields of w. Map key order
// never leaks into the result, so equal field sets always produce equal
// snapshots.
func SnapshotOf(w niri.Window) LayoutSnapshot {
	workspace, _ := w.Field("workspace_id")
	layout, _ := w.Field("layout")
	fields := map[string]any{
		"workspace_id": workspace,
		"layout":       layout,
	}
	for key, value := range w {
		if strings.Contains(key, "column") {
			fields[key] = value
		}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return LayoutSnapshot(fmt.Sprintf("%v", fields))
	}
	return LayoutSnapshot(data)
}
