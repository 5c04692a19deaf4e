// Package niri wraps the niri compositor's msg interface: JSON state
// queries and action dispatch via the niri binary.
package niri

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Window is one window as reported by `niri msg -j windows`. The
// compositor's schema varies between versions, so the full payload is
// kept as-is and the fields the tool consumes are read through
// accessors that treat missing or mistyped values as absent.
type Window map[string]any

// Focused reports whether the compositor marks this window focused.
func (w Window) Focused() bool {
	return w.boolField("is_focused")
}

// Floating reports whether this window is floating rather than tiled.
func (w Window) Floating() bool {
	return w.boolField("is_floating")
}

func (w Window) boolField(key string) bool {
	v, ok := w[key].(bool)
	return ok && v
}

// Field returns the raw value for key and whether it is present.
func (w Window) Field(key string) (any, bool) {
	v, ok := w[key]
	return v, ok
}

// Scalar returns the value for key when it is a string or an integer
// number. Floats, booleans, nulls, and structured values do not
// qualify, matching what can safely serve as a window identifier.
func (w Window) Scalar(key string) (any, bool) {
	switch v := w[key].(type) {
	case string:
		return v, true
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return nil, false
		}
		return v, true
	}
	return nil, false
}

// decodeAny decodes JSON preserving numbers as json.Number so large
// window ids survive without float rounding.
func decodeAny(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}
