package oerror

import "fmt"

// SkitterError is the error type returned by skitter packages for failures that are not
// simple wrapped errors.
type SkitterError struct {
	Err string
}

// New formats a new SkitterError.
func New(format string, args ...any) *SkitterError {
	if len(args) == 0 {
		return &SkitterError{Err: format}
	}
	return &SkitterError{Err: fmt.Sprintf(format, args...)}
}

func (e *SkitterError) Error() string {
	return e.Err
}
