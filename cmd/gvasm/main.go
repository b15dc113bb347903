// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/ezrec/gvasm/build"
	"github.com/ezrec/gvasm/cli"
	"github.com/ezrec/gvasm/itest"
	"github.com/ezrec/gvasm/scaffold"
)

// toolchain adapts the collaborator packages to the dispatcher contract.
type toolchain struct {
	builder *build.Builder
}

func (tc *toolchain) Init(cmd *cli.InitCommand) int {
	if err := scaffold.Create(cmd); err != nil {
		log.Printf("gvasm init: %v", err)
		return 1
	}

	return 0
}

func (tc *toolchain) Make(cmd *cli.MakeCommand) int {
	if err := tc.builder.Make(cmd); err != nil {
		log.Printf("gvasm make: %v", err)
		return 1
	}

	return 0
}

func (tc *toolchain) Run(cmd *cli.RunCommand) int {
	code, err := tc.builder.Run(cmd)
	if err != nil {
		log.Printf("gvasm run: %v", err)
	}

	return code
}

func (tc *toolchain) Dis(cmd *cli.DisCommand) int {
	if err := tc.builder.Dis(cmd); err != nil {
		log.Printf("gvasm dis: %v", err)
		return 1
	}

	return 0
}

func (tc *toolchain) Itest(cmd *cli.ItestCommand) int {
	if err := itest.Default.Run(cmd, os.Stdout); err != nil {
		log.Printf("gvasm itest: %v", err)
		return 1
	}

	return 0
}

func main() {
	log.SetFlags(0)

	// The engine and watcher attach here when the assembler module is
	// linked in; the front end runs init and itest without them.
	tc := &toolchain{
		builder: &build.Builder{
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
	}

	os.Exit(cli.Run(os.Args[1:], tc, os.Stdout, os.Stderr))
}
