// Package errs funnels error wrapping through cockroachdb/errors so every
// layer marks failures the same way.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg while keeping the original chain intact for
// errors.Is checks.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches a sentinel to err so handlers can map low-level store and
// domain failures onto HTTP outcomes without losing the cause.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
