// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cli

import (
	"errors"
	"fmt"
	"io"
)

// subcommand binds one command's schema, help text, and validator.
type subcommand struct {
	schema   *Schema
	help     string
	validate func(*RawArgs) (Command, error)
}

var subcommands = map[string]subcommand{
	"init":  {initSchema, HelpInit, validateInit},
	"make":  {makeSchema, HelpMake, validateMake},
	"run":   {runSchema, HelpRun, validateRun},
	"dis":   {disSchema, HelpDis, validateDis},
	"itest": {itestSchema, HelpItest, validateItest},
}

func banner(w io.Writer) {
	fmt.Fprintf(w, "gvasm %v - assembler and disassembler for the Game Boy Advance\n", Version)
}

// Run dispatches one process invocation: it selects the subcommand named by
// the first token, parses and validates the remaining tokens, and invokes
// the matching toolchain collaborator. The returned value is the process
// exit code: 0 for success or help, 1 for any usage error, otherwise
// whatever the collaborator produced.
func Run(args []string, tc Toolchain, stdout io.Writer, stderr io.Writer) int {
	if len(args) == 0 {
		banner(stdout)
		fmt.Fprint(stdout, HelpSummary)
		return 0
	}

	switch args[0] {
	case "-h", "--help":
		banner(stdout)
		fmt.Fprint(stdout, HelpSummary)
		return 0
	case "-v", "--version":
		banner(stdout)
		return 0
	}

	sub, ok := subcommands[args[0]]
	if !ok {
		fmt.Fprintln(stderr, ErrUnknownCommand(args[0]).Error())
		return 1
	}

	cmd, err := sub.parse(args[1:])
	if err != nil {
		if errors.Is(err, ErrHelp) {
			fmt.Fprint(stdout, sub.help)
			return 0
		}
		fmt.Fprintf(stderr, "gvasm %v: %v\n", args[0], err)
		return 1
	}

	return invoke(cmd, tc)
}

// parse runs the flag parser and validator pipeline. Help short-circuits
// everything else, including unknown-flag failures, so an otherwise invalid
// invocation that asks for help still gets it.
func (sub subcommand) parse(args []string) (cmd Command, err error) {
	raw, unknown := sub.schema.Parse(args)

	if raw.Bools["help"] {
		err = ErrHelp
		return
	}
	if len(unknown) > 0 {
		err = ErrUnknownFlag(unknown[0])
		return
	}

	cmd, err = sub.validate(raw)

	return
}

func invoke(cmd Command, tc Toolchain) int {
	switch cmd := cmd.(type) {
	case *InitCommand:
		return tc.Init(cmd)
	case *MakeCommand:
		return tc.Make(cmd)
	case *RunCommand:
		return tc.Run(cmd)
	case *DisCommand:
		return tc.Dis(cmd)
	case *ItestCommand:
		return tc.Itest(cmd)
	}

	panic("unreachable command variant")
}
