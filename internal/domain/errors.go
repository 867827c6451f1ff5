package domain

import "fmt"

// LoadError means the source file could not be located or parsed as tabular
// data. It is fatal to every query of the session but must not crash the
// calling shell.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ValidationError means one user-supplied input was malformed. It aborts the
// current operation only; the session continues.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
