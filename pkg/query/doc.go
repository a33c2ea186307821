// Package query defines the immutable descriptor produced by query forms. A
// Descriptor is a flat mapping with a fixed discriminator key (`find`) plus
// kind-specific keys; only values that differ from a form's defaults are
// present. Descriptors never change after construction: accessors return
// copies and JSON encoding goes through goccy/go-json so the output matches
// what datasource clients consume.
package query
