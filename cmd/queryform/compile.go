package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-queryform/pkg/fieldsource"
	"github.com/goliatone/go-queryform/pkg/form"
)

func newCompileCommand(a *app) *cobra.Command {
	var (
		prior string
		sets  []string
	)
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Apply field edits and print the compiled query",
		Example: `  queryform compile --set field=host --set size=500
  queryform compile --prior '{"find":"terms","field":"host"}' --set orderBy=_count`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCompile(cmd.Context(), prior, sets)
		},
	}
	cmd.Flags().StringVar(&prior, "prior", "", "prior query descriptor as JSON")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field edit as name=value (repeatable, applied in order)")
	return cmd
}

func (a *app) runCompile(ctx context.Context, prior string, sets []string) error {
	spec, err := a.spec()
	if err != nil {
		return err
	}

	priorValues, err := decodePrior(prior)
	if err != nil {
		return err
	}

	options, err := a.fieldOptions(ctx)
	if err != nil {
		return err
	}

	sync, err := form.New(spec, form.WithPrior(priorValues), form.WithLogger(a.logger))
	if err != nil {
		return err
	}

	fieldNames := make(fieldsource.Options, 0, len(spec.Fields))
	for _, def := range spec.Fields {
		fieldNames = append(fieldNames, fieldsource.Option{Value: def.Name})
	}

	for _, raw := range sets {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("compile: --set %q must be name=value", raw)
		}
		name = strings.TrimSpace(name)
		def, ok := spec.Field(name)
		if !ok {
			return fmt.Errorf("compile: unknown field %q%s", name, suggestion(fieldNames, name))
		}
		if name == spec.Primary && len(options) > 0 {
			if _, ok := options.Find(value); !ok {
				return fmt.Errorf("compile: %q is not a selectable %s%s", value, name, suggestion(options, value))
			}
		}

		if err := sync.SetField(name, value); err != nil {
			return err
		}
		if def.Commit == form.CommitOnBlur {
			if err := sync.CommitField(name); err != nil {
				return err
			}
		}
	}

	desc, label, ok := sync.Compile()
	if !ok {
		return fmt.Errorf("compile: no query compiled; set %s first", spec.Primary)
	}
	return a.writeResult(desc, label)
}
