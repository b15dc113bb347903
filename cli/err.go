// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cli

import (
	"errors"

	"github.com/ezrec/gvasm/translate"
)

var f = translate.From

var (
	// ErrHelp marks an invocation that asked for help text. It is not a
	// failure; the dispatcher exits 0 after printing the usage.
	ErrHelp = errors.New(f("help requested"))
)

// ErrUnknownCommand is a first token that names no subcommand.
type ErrUnknownCommand string

func (err ErrUnknownCommand) Error() string {
	return f("Unknown command: %v", string(err))
}

// ErrUnknownFlag is a flag token no schema entry recognizes.
type ErrUnknownFlag string

func (err ErrUnknownFlag) Error() string {
	return f("unknown flag: %v", string(err))
}

// ErrOperands reports the wrong number of positional file arguments.
type ErrOperands struct {
	Command string
	Count   int
}

func (err ErrOperands) Error() string {
	return f("%v expects exactly one file argument, got %v", err.Command, err.Count)
}

// ErrTooLong is a field value over its length limit.
type ErrTooLong struct {
	Field string
	Value string
	Limit int
}

func (err ErrTooLong) Error() string {
	return f("%v '%v' is longer than %v characters", err.Field, err.Value, err.Limit)
}

// ErrExactLength is a field value missing its exact length.
type ErrExactLength struct {
	Field string
	Value string
	Want  int
}

func (err ErrExactLength) Error() string {
	return f("%v '%v' must be exactly %v character(s)", err.Field, err.Value, err.Want)
}

// ErrVersionRange is a version value outside 0..255.
type ErrVersionRange string

func (err ErrVersionRange) Error() string {
	return f("version '%v' must be an integer between 0 and 255", string(err))
}

// ErrFormat is a disassembly format other than gba or bin.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("invalid format '%v', expecting 'gba' or 'bin'", string(err))
}

// ErrDefine is a -d token that does not satisfy the NAME=value grammar.
type ErrDefine string

func (err ErrDefine) Error() string {
	return f("invalid define '%v', expecting NAME=value", string(err))
}
