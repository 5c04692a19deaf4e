package nav

import (
	"encoding/json"
	"fmt"

	"github.com/niriutils/nirictl/internal/niri"
)

// identityKeys are the unique-identifier fields tried in order, most
// stable first. New compositor versions can add fields here without
// touching the comparison logic.
var identityKeys = []string{
	"persistent_id",
	"window_id",
	"id",
	"surface_id",
	"toplevel_id",
	"wayland_id",
}

// fallbackKeys form a composite identity for windows carrying none of
// the identifier fields. Absent values are included as nulls so two
// such windows still compare, at reduced reliability.
var fallbackKeys = []string{"workspace_id", "app_id", "title", "pid"}

// Identity is the canonical encoding of ordered (field, value) pairs
// derived from one window. It exists purely to compare a window against
// a later snapshot of the window list; it is never handed back to the
// compositor.
type Identity string

// IdentityOf derives the best-effort identity for w: the first
// identifier field holding a scalar value, or the composite fallback.
func IdentityOf(w niri.Window) Identity {
	for _, key := range identityKeys {
		if v, ok := w.Scalar(key); ok {
			return encodePairs([][2]any{{key, v}})
		}
	}
	pairs := make([][2]any, 0, len(fallbackKeys))
	for _, key := range fallbackKeys {
		v, _ := w.Field(key)
		pairs = append(pairs, [2]any{key, v})
	}
	return encodePairs(pairs)
}

// FindByIdentity returns the first window in ws whose identity equals
// id. Identical identities on distinct windows are accepted
// imprecision, so first match wins.
func FindByIdentity(ws []niri.Window, id Identity) (niri.Window, bool) {
	for _, w := range ws {
		if IdentityOf(w) == id {
			return w, true
		}
	}
	return nil, false
}

func encodePairs(pairs [][2]any) Identity {
	data, err := json.Marshal(pairs)
	if err != nil {
		return Identity(fmt.Sprintf("%v", pairs))
	}
	return Identity(data)
}
