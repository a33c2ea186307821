package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrIncomplete is returned when an editing session ends without any
	// descriptor being emitted, typically because no field was chosen.
	ErrIncomplete = errors.New("tui: no query compiled")
)
