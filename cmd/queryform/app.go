package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-queryform"
	"github.com/goliatone/go-queryform/pkg/fieldsource"
	"github.com/goliatone/go-queryform/pkg/form"
	"github.com/goliatone/go-queryform/pkg/form/terms"
	"github.com/goliatone/go-queryform/pkg/query"
	"github.com/goliatone/go-queryform/pkg/renderers/tui"
)

// Config keys shared by flags, environment (QUERYFORM_*) and config files.
const (
	keyConfig   = "config"
	keyKind     = "kind"
	keyFields   = "fields"
	keyIndex    = "index"
	keyOpenAPI  = "openapi"
	keySchema   = "schema"
	keyOutput   = "output"
	keyLogLevel = "log-level"
)

type app struct {
	v        *viper.Viper
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
	registry *form.Registry
	driver   tui.PromptDriver
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		v:        viper.New(),
		stdout:   stdout,
		stderr:   stderr,
		logger:   slog.New(slog.DiscardHandler),
		registry: queryform.DefaultRegistry(),
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "queryform",
		Short:             "Compile query editor forms into query descriptors",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "config file (defaults to ./queryform.yaml when present)")
	flags.String(keyKind, terms.Tag, "query kind")
	flags.String(keyFields, "", "directory holding field option files")
	flags.String(keyIndex, "", "index whose fields are offered")
	flags.String(keyOpenAPI, "", "OpenAPI document providing field options")
	flags.String(keySchema, "", "component schema inside the OpenAPI document")
	flags.String(keyOutput, "json", "output format (json, pretty)")
	flags.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newCompileCommand(a), newEditCommand(a), newFieldsCommand(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(a.v, cmd.Root().PersistentFlags(), cmd.LocalFlags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix("QUERYFORM")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
	} else {
		a.v.SetConfigName("queryform")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("queryform: read config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("queryform: invalid log level %q", a.v.GetString(keyLogLevel))
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func bindFlags(v *viper.Viper, sets ...*pflag.FlagSet) error {
	for _, set := range sets {
		if err := v.BindPFlags(set); err != nil {
			return fmt.Errorf("queryform: bind flags: %w", err)
		}
	}
	return nil
}

func (a *app) spec() (form.Spec, error) {
	kind := a.v.GetString(keyKind)
	spec, err := a.registry.Get(kind)
	if err != nil {
		return form.Spec{}, fmt.Errorf("queryform: unknown kind %q (available: %s)", kind, strings.Join(a.registry.List(), ", "))
	}
	return spec, nil
}

// fieldOptions resolves the selectable primary values from --openapi/--schema
// or --fields/--index. Neither configured yields nil (free text).
func (a *app) fieldOptions(ctx context.Context) (fieldsource.Options, error) {
	if path := a.v.GetString(keyOpenAPI); path != "" {
		schema := a.v.GetString(keySchema)
		if schema == "" {
			return nil, errors.New("queryform: --schema is required with --openapi")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("queryform: read openapi document: %w", err)
		}
		return fieldsource.FromOpenAPI(ctx, data, schema, fieldsource.TermsFilter)
	}

	dir := a.v.GetString(keyFields)
	if dir == "" {
		return nil, nil
	}
	store, err := fieldsource.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, err
	}
	index := a.v.GetString(keyIndex)
	opts, ok := store.Options(index)
	if !ok {
		return nil, fmt.Errorf("queryform: index %q not found (available: %s)", index, strings.Join(store.Indices(), ", "))
	}
	a.logger.Debug("fields.loaded", "index", index, "count", len(opts))
	return opts, nil
}

// decodePrior parses a --prior descriptor. An empty flag yields no prior; a
// payload without the find key is rejected.
func decodePrior(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	desc, err := query.ParseJSON([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("queryform: decode --prior: %w", err)
	}
	return desc.Map(), nil
}

func (a *app) writeResult(desc query.Descriptor, label string) error {
	switch a.v.GetString(keyOutput) {
	case "pretty":
		body, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return fmt.Errorf("queryform: encode descriptor: %w", err)
		}
		_, err = fmt.Fprintf(a.stdout, "%s\n%s\n", label, body)
		return err
	case "json", "":
		payload := struct {
			Query query.Descriptor `json:"query"`
			Label string           `json:"label"`
		}{Query: desc, Label: label}
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("queryform: encode descriptor: %w", err)
		}
		_, err = fmt.Fprintf(a.stdout, "%s\n", body)
		return err
	default:
		return fmt.Errorf("queryform: unsupported output %q", a.v.GetString(keyOutput))
	}
}

func suggestion(opts fieldsource.Options, value string) string {
	matches := opts.Closest(value, 3, 3)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %s?)", strings.Join(matches, ", "))
}
