package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-queryform/pkg/form"
	"github.com/goliatone/go-queryform/pkg/query"
	"github.com/goliatone/go-queryform/pkg/renderers/tui"
)

func newEditCommand(a *app) *cobra.Command {
	var prior string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a query interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			spec, err := a.spec()
			if err != nil {
				return err
			}
			options, err := a.fieldOptions(ctx)
			if err != nil {
				return err
			}

			priorValues, err := decodePrior(prior)
			if err != nil {
				return err
			}

			sync, err := form.New(spec,
				form.WithPrior(priorValues),
				form.WithLogger(a.logger),
				form.WithListener(func(_ query.Descriptor, label string) {
					a.logger.Info("query.changed", "label", label)
				}),
			)
			if err != nil {
				return err
			}

			editor := tui.New(
				tui.WithPromptDriver(a.driver),
				tui.WithFieldOptions(options),
				tui.WithTheme(tui.Theme{InfoPrefix: "! "}),
			)
			desc, label, err := editor.Edit(ctx, sync)
			if err != nil {
				return err
			}
			return a.writeResult(desc, label)
		},
	}
	cmd.Flags().StringVar(&prior, "prior", "", "prior query descriptor as JSON")
	return cmd
}
