package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no book matches the requested year.
	ErrNotFound = errors.New("no matching book")

	ErrMissingFile   = errors.New("dataset file does not exist")
	ErrMissingHeader = errors.New("dataset has no header row")
	ErrMissingColumn = errors.New("dataset header is missing a required column")
)

// DataSourceError reports a dataset that could not be loaded.
type DataSourceError struct {
	Path string
	Line int // 0 when the failure is not tied to a line
	Err  error
}

func (e *DataSourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("dataset %s line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("dataset %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// InputError reports user text that is not a year.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid year %q: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
