// Package multierr collects several errors into one.
package multierr

import (
	"errors"
	"fmt"
	"strings"
)

type Error []error

func (e Error) Error() string {
	switch len(e) {
	case 0:
		return "<nil>"
	case 1:
		return e[0].Error()
	default:
		sb := new(strings.Builder)
		fmt.Fprintf(sb, "%d errors occurred:", len(e))
		for _, err := range e {
			fmt.Fprintf(sb, "\n\t* %v", err)
		}
		return sb.String()
	}
}

// Append mutates e, adding err. Appending nil is a no-op.
func (e *Error) Append(err error) {
	if e == nil || err == nil {
		return
	}
	*e = append(*e, err)
}

// ErrOrNil converts e into a plain error: nil when empty, the sole member
// when there is exactly one, e itself otherwise. Needed because a typed nil
// Error still compares non-nil as an error value.
func (e Error) ErrOrNil() error {
	switch len(e) {
	case 0:
		return nil
	case 1:
		return e[0]
	default:
		return e
	}
}

// Append combines err1 and err2 without mutating either, dropping nils.
func Append(err1, err2 error) error {
	switch {
	case err1 == nil:
		return err2
	case err2 == nil:
		return err1
	}
	if merr, ok := err1.(Error); ok {
		return append(merr, err2)
	}
	return Error{err1, err2}
}

func (e Error) Unwrap() error {
	switch len(e) {
	case 0:
		return nil
	case 1:
		return e[0]
	default:
		return e[1:]
	}
}

func (e Error) Is(target error) bool {
	for _, err := range e {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (e Error) As(target interface{}) bool {
	for _, err := range e {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}
