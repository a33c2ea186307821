package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-queryform/pkg/fieldsource"
	"github.com/goliatone/go-queryform/pkg/form"
	"github.com/goliatone/go-queryform/pkg/query"
)

// Editor drives a form.Synchronizer from terminal prompts. Select prompts map
// to select-style commits; a submitted input prompt acts as the blur commit of
// a free text field.
type Editor struct {
	driver   PromptDriver
	fields   fieldsource.Options
	theme    Theme
	pageSize int
}

// New constructs an editor backed by the survey driver unless overridden.
func New(options ...Option) *Editor {
	e := &Editor{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.driver == nil {
		e.driver = newSurveyDriver()
	}
	return e
}

// Edit prompts for every field of the synchronizer's spec in declaration
// order and returns the last emitted descriptor.
func (e *Editor) Edit(ctx context.Context, sync *form.Synchronizer) (query.Descriptor, string, error) {
	if ctx == nil {
		return query.Descriptor{}, "", errors.New("tui: context is required")
	}
	if sync == nil {
		return query.Descriptor{}, "", errors.New("tui: synchronizer is nil")
	}

	spec := sync.Spec()
	for _, def := range spec.Fields {
		if err := ctx.Err(); err != nil {
			return query.Descriptor{}, "", err
		}

		options := def.Options
		if def.Name == spec.Primary && len(e.fields) > 0 {
			options = e.fields.SelectOptions()
		}

		var err error
		if def.Commit == form.CommitOnSelect && len(options) > 0 {
			err = e.promptSelect(ctx, sync, def, options)
		} else {
			err = e.promptInput(ctx, sync, def)
		}
		if err != nil {
			return query.Descriptor{}, "", err
		}
	}

	desc, label, ok := sync.Last()
	if !ok {
		return query.Descriptor{}, "", ErrIncomplete
	}
	return desc, label, nil
}

func (e *Editor) promptSelect(ctx context.Context, sync *form.Synchronizer, def form.FieldDef, options []form.SelectOption) error {
	current, _ := sync.State().Get(def.Name)

	labels := optionLabels(options)
	defaultIdx := -1
	for i, opt := range options {
		if opt.Value == current {
			defaultIdx = i
		}
	}

	idx, err := e.driver.Select(ctx, SelectConfig{
		Message:      fieldLabel(def),
		Options:      labels,
		DefaultIndex: defaultIdx,
		Help:         def.Placeholder,
		PageSize:     e.pageSize,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(options) {
		return fmt.Errorf("tui: selection %d out of range for %s", idx, def.Name)
	}
	return sync.SetField(def.Name, options[idx].Value)
}

func (e *Editor) promptInput(ctx context.Context, sync *form.Synchronizer, def form.FieldDef) error {
	current, _ := sync.State().Get(def.Name)

	response, err := e.driver.Input(ctx, InputConfig{
		Message: fieldLabel(def),
		Default: current,
		Help:    def.Placeholder,
	})
	if err != nil {
		return err
	}

	if err := sync.SetField(def.Name, response); err != nil {
		return err
	}
	if def.Commit == form.CommitOnBlur {
		if err := sync.CommitField(def.Name); err != nil {
			return err
		}
	}

	if response != def.Default {
		if _, ok := form.Convert(def, response); !ok {
			_ = e.driver.Info(ctx, fmt.Sprintf("%s%s: %q is not a number and will be ignored", e.theme.InfoPrefix, def.Name, response))
		}
	}
	return nil
}

// optionLabels returns one display label per option. Labels shared by more
// than one option get the value appended so every entry is distinct.
func optionLabels(options []form.SelectOption) []string {
	labels := make([]string, len(options))
	counts := make(map[string]int, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
		if labels[i] == "" {
			labels[i] = opt.Value
		}
		counts[labels[i]]++
	}
	for i, opt := range options {
		if counts[labels[i]] > 1 && labels[i] != opt.Value {
			labels[i] = fmt.Sprintf("%s (%s)", labels[i], opt.Value)
		}
	}
	return labels
}

func fieldLabel(def form.FieldDef) string {
	if def.Label != "" {
		return def.Label
	}
	return def.Name
}
