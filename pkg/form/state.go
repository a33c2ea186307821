package form

import (
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// State holds the raw value of every field keyed by field name. Numeric
// fields stay strings so exact user input (including "") survives until
// compilation.
type State struct {
	values map[string]string
}

// NewState seeds a State with the spec defaults and overlays prior, a sparse
// descriptor-style mapping keyed by descriptor keys. The discriminator and
// keys that no field declares are ignored.
func NewState(spec Spec, prior map[string]any) State {
	values := spec.Defaults()
	for _, def := range spec.Fields {
		raw, ok := prior[def.DescriptorKey()]
		if !ok {
			continue
		}
		if value, ok := priorValue(def, raw); ok {
			values[def.Name] = value
		}
	}
	return State{values: values}
}

// StateOf builds a State directly from raw values. Missing fields read as
// their defaults during compilation.
func StateOf(values map[string]string) State {
	clone := make(map[string]string, len(values))
	for k, v := range values {
		clone[k] = v
	}
	return State{values: clone}
}

// Get returns the raw value stored for name.
func (s State) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Values returns a copy of the raw values.
func (s State) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *State) set(name, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[name] = value
}

func (s State) value(def FieldDef) string {
	if v, ok := s.values[def.Name]; ok {
		return v
	}
	return def.Default
}

// priorValue renders a prior descriptor value as raw field input. Integer
// fields treat nil and zero as unset.
func priorValue(def FieldDef, raw any) (string, bool) {
	if def.Type == FieldTypeInteger {
		return priorInteger(raw), true
	}
	switch typed := raw.(type) {
	case nil:
		return "", false
	case string:
		return typed, true
	default:
		return fmt.Sprint(typed), true
	}
}

func priorInteger(raw any) string {
	switch typed := raw.(type) {
	case nil:
		return ""
	case string:
		return typed
	case int:
		return formatNonZero(int64(typed))
	case int32:
		return formatNonZero(int64(typed))
	case int64:
		return formatNonZero(typed)
	case float64:
		if typed == 0 || math.IsNaN(typed) {
			return ""
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case json.Number:
		if f, err := typed.Float64(); err == nil && f == 0 {
			return ""
		}
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}

func formatNonZero(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}
