package config

import (
	"errors"
	"fmt"
)

// ErrNoHome is returned when no directory is given and HOME is unset.
var ErrNoHome = errors.New("HOME is not set")

// UsageError marks a bad command line. The CLI prints usage text for it and
// exits with status 2 before touching any file.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Usage wraps err as a UsageError.
func Usage(err error) error {
	return &UsageError{Err: err}
}

func usagef(format string, args ...interface{}) error {
	return Usage(fmt.Errorf(format, args...))
}
