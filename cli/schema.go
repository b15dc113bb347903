// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cli

import (
	"strings"
)

// FlagKind selects how a recognized flag stores its occurrences.
type FlagKind int

//go:generate go tool stringer -type=FlagKind
const (
	FLAG_STRING  = FlagKind(0) // Takes the next token (or inline =value) as its value.
	FLAG_BOOL    = FlagKind(1) // Presence sets true; takes no value.
	FLAG_COLLECT = FlagKind(2) // Repeated occurrences accumulate in order.
)

// FlagSpec declares one recognized flag of a subcommand.
type FlagSpec struct {
	Name  string // Canonical long name.
	Alias string // Optional short form, without the dash.
	Kind  FlagKind
}

// Schema is the declarative flag table of one subcommand.
type Schema struct {
	Flags []FlagSpec
	// StopEarly ends flag recognition at the first positional operand, so
	// that later tokens shaped like flags stay positional.
	StopEarly bool
}

// RawArgs is the untyped parse result, keyed by canonical flag name.
// A key is present only if the flag occurred. Non-collect flags are
// last-occurrence-wins; collect flags preserve encounter order.
type RawArgs struct {
	Strings map[string]string
	Bools   map[string]bool
	Lists   map[string][]string
	Pos     []string
}

// lookup resolves a long name or short alias to its schema entry.
func (sch *Schema) lookup(name string) (spec *FlagSpec) {
	if name == "" {
		return
	}

	for n := range sch.Flags {
		if sch.Flags[n].Name == name || (sch.Flags[n].Alias != "" && sch.Flags[n].Alias == name) {
			spec = &sch.Flags[n]
			break
		}
	}

	return
}

// Parse tokenizes args against the schema. It always returns the raw
// arguments it could assemble, plus the list of unrecognized flag tokens in
// encounter order; an unrecognized flag is dropped, never made positional.
func (sch *Schema) Parse(args []string) (raw *RawArgs, unknown []string) {
	raw = &RawArgs{
		Strings: map[string]string{},
		Bools:   map[string]bool{},
		Lists:   map[string][]string{},
	}

	flags := true
	for n := 0; n < len(args); n++ {
		tok := args[n]
		if !flags || tok == "-" || !strings.HasPrefix(tok, "-") {
			raw.Pos = append(raw.Pos, tok)
			if sch.StopEarly {
				flags = false
			}
			continue
		}

		name := strings.TrimLeft(tok, "-")
		name, inline, hasInline := strings.Cut(name, "=")

		spec := sch.lookup(name)
		if spec == nil {
			unknown = append(unknown, tok)
			continue
		}

		switch spec.Kind {
		case FLAG_BOOL:
			raw.Bools[spec.Name] = true
		case FLAG_STRING, FLAG_COLLECT:
			value := inline
			if !hasInline {
				if n+1 < len(args) {
					n++
					value = args[n]
				}
			}
			if spec.Kind == FLAG_COLLECT {
				raw.Lists[spec.Name] = append(raw.Lists[spec.Name], value)
			} else {
				raw.Strings[spec.Name] = value
			}
		}
	}

	return
}

// helpFlag is shared by every subcommand schema.
var helpFlag = FlagSpec{Name: "help", Alias: "h", Kind: FLAG_BOOL}

var initSchema = &Schema{
	Flags: []FlagSpec{
		helpFlag,
		{Name: "title", Alias: "t", Kind: FLAG_STRING},
		{Name: "initials", Alias: "i", Kind: FLAG_STRING},
		{Name: "maker", Alias: "m", Kind: FLAG_STRING},
		{Name: "version", Alias: "v", Kind: FLAG_STRING},
		{Name: "region", Alias: "r", Kind: FLAG_STRING},
		{Name: "code", Alias: "c", Kind: FLAG_STRING},
		{Name: "overwrite", Kind: FLAG_BOOL},
	},
}

var makeSchema = &Schema{
	Flags: []FlagSpec{
		helpFlag,
		{Name: "output", Alias: "o", Kind: FLAG_STRING},
		{Name: "define", Alias: "d", Kind: FLAG_COLLECT},
		{Name: "watch", Alias: "w", Kind: FLAG_BOOL},
		{Name: "execute", Alias: "x", Kind: FLAG_STRING},
	},
}

var runSchema = &Schema{
	Flags: []FlagSpec{
		helpFlag,
		{Name: "define", Alias: "d", Kind: FLAG_COLLECT},
		{Name: "watch", Alias: "w", Kind: FLAG_BOOL},
	},
}

var disSchema = &Schema{
	Flags: []FlagSpec{
		helpFlag,
		{Name: "output", Alias: "o", Kind: FLAG_STRING},
		{Name: "format", Alias: "f", Kind: FLAG_STRING},
	},
}

// itest filters may contain arbitrary substrings, so flag recognition stops
// at the first positional.
var itestSchema = &Schema{
	Flags:     []FlagSpec{helpFlag},
	StopEarly: true,
}
