package fieldsource

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/goliatone/go-queryform/pkg/form"
)

// Option is one selectable field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

// DisplayLabel returns Label, falling back to Value.
func (o Option) DisplayLabel() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// Options is an ordered option list.
type Options []Option

// Find returns the option whose value matches exactly.
func (o Options) Find(value string) (Option, bool) {
	for _, opt := range o {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// Values returns the option values in order.
func (o Options) Values() []string {
	out := make([]string, len(o))
	for i, opt := range o {
		out[i] = opt.Value
	}
	return out
}

// SelectOptions converts the list for use as form select options.
func (o Options) SelectOptions() []form.SelectOption {
	out := make([]form.SelectOption, len(o))
	for i, opt := range o {
		out[i] = form.SelectOption{Value: opt.Value, Label: opt.DisplayLabel()}
	}
	return out
}

// Closest returns up to limit option values within maxDistance edits of
// value, nearest first. Comparison is case-insensitive.
func (o Options) Closest(value string, maxDistance, limit int) []string {
	type candidate struct {
		value    string
		distance int
	}

	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" || limit <= 0 {
		return nil
	}

	var candidates []candidate
	for _, opt := range o {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(opt.Value))
		if d <= maxDistance {
			candidates = append(candidates, candidate{value: opt.Value, distance: d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.value
	}
	return out
}

// Filter decides whether an option should be kept.
type Filter func(Option) bool

// TermsFilter keeps fields that can back a terms aggregation.
func TermsFilter(opt Option) bool {
	switch opt.Type {
	case "string", "integer", "number", "boolean", "keyword", "":
		return true
	default:
		return false
	}
}

// Apply returns the options accepted by every filter.
func (o Options) Apply(filters ...Filter) Options {
	if len(filters) == 0 {
		return append(Options(nil), o...)
	}
	out := make(Options, 0, len(o))
next:
	for _, opt := range o {
		for _, keep := range filters {
			if keep != nil && !keep(opt) {
				continue next
			}
		}
		out = append(out, opt)
	}
	return out
}
