package form

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-queryform/pkg/query"
)

// Compile turns state into a descriptor and label. It reports false, and
// produces nothing, while the primary field still holds its default.
func Compile(spec Spec, state State) (query.Descriptor, string, bool) {
	primary, ok := spec.Field(spec.Primary)
	if !ok {
		return query.Descriptor{}, "", false
	}
	selected := state.value(primary)
	if selected == primary.Default {
		return query.Descriptor{}, "", false
	}

	out := map[string]any{query.KindKey: spec.Tag}
	out[primary.DescriptorKey()] = selected
	for _, def := range spec.Fields {
		if def.Name == primary.Name {
			continue
		}
		raw := state.value(def)
		if raw == def.Default {
			continue
		}
		if value, ok := Convert(def, raw); ok {
			out[def.DescriptorKey()] = value
		}
	}

	return query.New(out), query.Label(spec.KindName, selected), true
}

// Convert maps a raw field value onto its descriptor value. Integer fields
// use leading-integer parsing; empty or unparseable input reports false so the
// key is omitted.
func Convert(def FieldDef, raw string) (any, bool) {
	if def.Type != FieldTypeInteger {
		return raw, true
	}
	if raw == "" {
		return nil, false
	}
	n, ok := ParseLeadingInt(raw)
	if !ok {
		return nil, false
	}
	return n, true
}

// ParseLeadingInt parses the base-10 integer at the start of raw after
// skipping leading whitespace: "500" -> 500, " -3" -> -3, "12abc" -> 12.
// Input without leading digits, or that overflows int, reports false.
func ParseLeadingInt(raw string) (int, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
