package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDirectory is returned when the output path exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrInvalidConfig is returned for unreadable or inconsistent configuration.
	ErrInvalidConfig = errors.New("invalid config")
)

// PrepError wraps a failure of one preparation step with the path it touched.
type PrepError struct {
	Op   string
	Path string
	Err  error
}

func (e *PrepError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PrepError) Unwrap() error { return e.Err }
