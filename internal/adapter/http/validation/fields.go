package validation

import (
	"bytes"
	"encoding/json"
	"strings"
)

// fields is a request body kept as raw JSON so that an explicit null can be
// told apart from an absent field.
type fields map[string]json.RawMessage

func (f fields) has(name string) bool {
	_, ok := f[name]
	return ok
}

func (f fields) sentNull(name string) bool {
	value, ok := f[name]
	return ok && bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func (f fields) anyOf(names ...string) bool {
	for _, name := range names {
		if f.has(name) {
			return true
		}
	}
	return false
}

// nullInRequired reports whether one of names, which only accept values, was
// sent as null.
func (f fields) nullInRequired(names ...string) bool {
	for _, name := range names {
		if f.sentNull(name) {
			return true
		}
	}
	return false
}

func emptyToNil(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	value := strings.TrimSpace(*v)
	return &value
}
