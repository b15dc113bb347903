// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package itest

import (
	"errors"

	"github.com/ezrec/gvasm/translate"
)

var f = translate.From

var (
	ErrNoMatch = errors.New(f("no self tests match the given filters"))
)

// ErrCheck is a failed expectation inside a self test.
type ErrCheck string

func (err ErrCheck) Error() string {
	return string(err)
}

// ErrFailed is the number of failing checks in a run.
type ErrFailed int

func (err ErrFailed) Error() string {
	return f("%v self test(s) failed", int(err))
}
