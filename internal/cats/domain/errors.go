package domain

import "fmt"

// ValidationError indicates a cat field that failed validation at
// construction time. Cats that fail validation are never registered.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid cat: %s %s", e.Field, e.Reason)
}

// PersistenceError indicates the store rejected or could not complete a
// write (missing table, I/O failure, closed handle).
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
