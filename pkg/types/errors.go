package types

import "fmt"

// MissingColumnError reports a column the configuration requires but the
// input file (or a caller's selection) does not provide. It is raised
// before any aggregation happens so a misconfigured schema fails early
// and deterministically.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q is missing", e.Column)
}
