package tui

import "github.com/goliatone/go-queryform/pkg/fieldsource"

// Theme captures optional message prefixes applied by the editor.
type Theme struct {
	InfoPrefix string
}

// Option configures the terminal editor.
type Option func(*Editor)

// WithPromptDriver overrides the prompt driver used by the editor.
func WithPromptDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithFieldOptions sets the selectable values for the primary field.
func WithFieldOptions(options fieldsource.Options) Option {
	return func(e *Editor) {
		e.fields = options
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(e *Editor) {
		e.theme = theme
	}
}

// WithPageSize caps the number of options a select prompt shows at once.
// Zero keeps the driver default.
func WithPageSize(size int) Option {
	return func(e *Editor) {
		if size > 0 {
			e.pageSize = size
		}
	}
}
