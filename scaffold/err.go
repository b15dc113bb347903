// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package scaffold

import (
	"github.com/ezrec/gvasm/translate"
)

var f = translate.From

// ErrExists is an output path that already has a file.
type ErrExists string

func (err ErrExists) Error() string {
	return f("'%v' already exists (use --overwrite to replace it)", string(err))
}
