package query

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	json "github.com/goccy/go-json"
)

// KindKey is the discriminator key present on every compiled descriptor.
const KindKey = "find"

// ErrMissingKind is returned when decoding a payload without a discriminator.
var ErrMissingKind = errors.New("query: descriptor has no find key")

// Descriptor is an immutable flat query mapping.
type Descriptor struct {
	values map[string]any
}

// New copies values into a Descriptor. Callers keep ownership of the input map.
func New(values map[string]any) Descriptor {
	clone := make(map[string]any, len(values))
	for k, v := range values {
		clone[k] = v
	}
	return Descriptor{values: clone}
}

// Kind returns the discriminator tag, or "" for the zero Descriptor.
func (d Descriptor) Kind() string {
	kind, _ := d.values[KindKey].(string)
	return kind
}

// Get returns the value stored under key.
func (d Descriptor) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d Descriptor) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// String returns the string stored under key, or "" when absent or not a string.
func (d Descriptor) String(key string) string {
	s, _ := d.values[key].(string)
	return s
}

// Int returns the integer stored under key.
func (d Descriptor) Int(key string) (int, bool) {
	switch typed := d.values[key].(type) {
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case float64:
		if typed == float64(int(typed)) {
			return int(typed), true
		}
	}
	return 0, false
}

// Keys returns the present keys in lexical order.
func (d Descriptor) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of keys.
func (d Descriptor) Len() int {
	return len(d.values)
}

// IsZero reports whether the descriptor carries no keys.
func (d Descriptor) IsZero() bool {
	return len(d.values) == 0
}

// Map returns a copy of the underlying mapping.
func (d Descriptor) Map() map[string]any {
	out := make(map[string]any, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// Equal reports whether both descriptors hold the same keys and values.
func (d Descriptor) Equal(other Descriptor) bool {
	if len(d.values) != len(other.values) {
		return false
	}
	for k, v := range d.values {
		ov, ok := other.values[k]
		if !ok || !reflect.DeepEqual(ov, v) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the descriptor as a flat object with sorted keys.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	if d.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.values)
}

// UnmarshalJSON decodes a flat object. Whole-number values decode as int so a
// decoded descriptor compares equal to a compiled one.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("query: decode descriptor: %w", err)
	}
	for k, v := range raw {
		if f, ok := v.(float64); ok && f == float64(int(f)) {
			raw[k] = int(f)
		}
	}
	d.values = raw
	if d.values == nil {
		d.values = make(map[string]any)
	}
	return nil
}

// ParseJSON decodes data and requires the discriminator key.
func ParseJSON(data []byte) (Descriptor, error) {
	var d Descriptor
	if err := d.UnmarshalJSON(data); err != nil {
		return Descriptor{}, err
	}
	if d.Kind() == "" {
		return Descriptor{}, ErrMissingKind
	}
	return d, nil
}

// Label formats the display summary for a descriptor kind, e.g. Terms(host).
func Label(kindName, primary string) string {
	return kindName + "(" + primary + ")"
}
