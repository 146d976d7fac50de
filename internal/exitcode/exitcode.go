// Package exitcode maps errors to process exit codes so CI wrappers can
// distinguish configuration problems from filesystem failures.
package exitcode

import (
	"errors"
	"strings"
)

const (
	OK         = 0
	Generic    = 1
	Validation = 2
	Render     = 3
	IO         = 4
)

type Error struct {
	Code  int
	Cause error
}

func (e *Error) Error() string {
	return e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Cause: err}
}

func Of(err error) int {
	if err == nil {
		return OK
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}

	// Fallback: string-based classification for errors not yet wrapped with
	// typed codes. Each case here is a candidate for a typed error.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rendering") || strings.Contains(msg, "template"):
		return Render
	case strings.Contains(msg, "validation") || strings.Contains(msg, "invalid"):
		return Validation
	case strings.Contains(msg, "writing") || strings.Contains(msg, "creating"):
		return IO
	default:
		return Generic
	}
}
