// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package build

import (
	"errors"

	"github.com/ezrec/gvasm/translate"
)

var f = translate.From

var (
	ErrNoEngine  = errors.New(f("no assembler engine is linked into this build"))
	ErrNoWatcher = errors.New(f("watch mode needs a file watcher, and none is linked into this build"))
)

// ErrExecuteSyntax is a -x template that does not split into a command.
type ErrExecuteSyntax string

func (err ErrExecuteSyntax) Error() string {
	return f("cannot parse execute command '%v'", string(err))
}

// ErrExecute is a post-build command that failed.
type ErrExecute struct {
	Command string
	Err     error
}

func (err *ErrExecute) Error() string {
	return f("execute '%v': %v", err.Command, err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}
