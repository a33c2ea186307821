package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newFieldsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the selectable fields of an index or schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options, err := a.fieldOptions(cmd.Context())
			if err != nil {
				return err
			}
			if options == nil {
				return errors.New("fields: configure --fields/--index or --openapi/--schema")
			}

			if a.v.GetString(keyOutput) == "json" {
				body, err := json.Marshal(options)
				if err != nil {
					return fmt.Errorf("fields: encode: %w", err)
				}
				_, err = fmt.Fprintf(a.stdout, "%s\n", body)
				return err
			}

			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, opt := range options {
				fmt.Fprintf(w, "%s\t%s\t%s\n", opt.Value, opt.Type, opt.DisplayLabel())
			}
			return w.Flush()
		},
	}
}
