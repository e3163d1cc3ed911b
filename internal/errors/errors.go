// Package errors mirrors the standard errors API with pkg/errors stack
// annotations, so callers need a single import for both.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with message and the caller's stack. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

//nolint:wrapcheck // returns the original cause untouched
func Cause(err error) error {
	return pkgerrors.Cause(err)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Describe renders err for developer-facing output: the full message chain
// followed by the deepest recorded stack, which is the one closest to where
// the failure started.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var deepest stackTracer
	for cur := err; cur != nil; cur = stderrors.Unwrap(cur) {
		if st, ok := cur.(stackTracer); ok {
			deepest = st
		}
	}

	if deepest == nil {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(err.Error())
	for _, frame := range deepest.StackTrace() {
		fmt.Fprintf(&b, "\n%+v", frame)
	}

	return b.String()
}
