// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cli

import (
	"regexp"
	"strconv"
	"strings"
)

// Define is one NAME=value pair passed with -d, injected as a global
// constant into the assembled source.
type Define struct {
	Name  string
	Value any // int or string
}

// A value is numeric only for a plain base-10 literal. An optional leading
// '+', hex, whitespace, and anything else stay strings.
var defineNumber = regexp.MustCompile(`^-?[0-9]+$`)

// ParseDefine splits a NAME=value token at the first '='. The value is
// stored as an int when it is a base-10 literal that fits, otherwise as the
// verbatim string. Duplicate names are not this layer's concern.
func ParseDefine(tok string) (def Define, err error) {
	name, value, found := strings.Cut(tok, "=")
	if !found || name == "" {
		err = ErrDefine(tok)
		return
	}

	def.Name = name
	if defineNumber.MatchString(value) {
		if number, nerr := strconv.Atoi(value); nerr == nil {
			def.Value = number
			return
		}
		// Textually numeric but unrepresentable; keep the literal.
	}
	def.Value = value

	return
}

// parseDefines converts the collected -d tokens, preserving order and
// stopping at the first malformed token.
func parseDefines(toks []string) (defs []Define, err error) {
	for _, tok := range toks {
		var def Define
		def, err = ParseDefine(tok)
		if err != nil {
			return
		}
		defs = append(defs, def)
	}

	return
}
