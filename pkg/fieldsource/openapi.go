package fieldsource

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrSchemaNotFound is returned when the requested component schema is absent.
var ErrSchemaNotFound = errors.New("fieldsource: schema not found")

// FromOpenAPI loads raw (JSON or YAML) with kin-openapi and lists the
// properties of components.schemas[name]. Nested object properties flatten
// into dotted paths; arrays contribute their item type. Options are sorted by
// value and narrowed by filters.
func FromOpenAPI(ctx context.Context, raw []byte, name string, filters ...Filter) (Options, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("fieldsource: openapi document is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("fieldsource: load openapi document: %w", err)
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}

	var out Options
	collectProperties(ref.Value, "", &out, make(map[*openapi3.Schema]struct{}))
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out.Apply(filters...), nil
}

func collectProperties(schema *openapi3.Schema, prefix string, out *Options, visiting map[*openapi3.Schema]struct{}) {
	if _, seen := visiting[schema]; seen {
		return
	}
	visiting[schema] = struct{}{}
	defer delete(visiting, schema)

	for name, prop := range schema.Properties {
		if prop == nil || prop.Value == nil {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		value := prop.Value
		kind := schemaType(value)
		if kind == "array" && value.Items != nil && value.Items.Value != nil {
			value = value.Items.Value
			kind = schemaType(value)
		}

		if (kind == "object" || kind == "") && len(value.Properties) > 0 {
			collectProperties(value, path, out, visiting)
			continue
		}
		*out = append(*out, Option{Value: path, Label: value.Title, Type: kind})
	}
}

func schemaType(schema *openapi3.Schema) string {
	if schema == nil || schema.Type == nil {
		return ""
	}
	for _, t := range schema.Type.Slice() {
		if t != "null" {
			return t
		}
	}
	return ""
}
