// Package errors is the error toolkit for infrastructure code that starts or
// stops the service. Matching goes through the standard library; every error
// created or wrapped here records a stack trace for the start-up logs.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with message and a stack trace. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack records a stack trace on err. A nil err stays nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
