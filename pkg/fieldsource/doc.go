// Package fieldsource supplies the selectable field names offered by query
// forms. Option lists come from JSON/YAML files grouped by index or from the
// properties of an OpenAPI component schema, flattened into dotted paths.
package fieldsource
