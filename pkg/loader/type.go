package loader

import (
	"errors"
	"fmt"
)

// ErrNoEnergyColumns means the header had a timestamp but not a single
// energy column, so there is nothing to aggregate.
var ErrNoEnergyColumns = errors.New("no energy columns found in header")

// LoadError means the input file is missing or unreadable.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed timestamp or numeric field. Malformed
// rows fail the whole load rather than being silently dropped.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: column %q: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
