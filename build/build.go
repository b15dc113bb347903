// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package build implements the make, run, and dis collaborators around the
// external assembler engine.
//
// The engine module owns instruction encoding, emulation, and disassembly;
// this package owns everything around the engine call: writing the
// assembled image, the post-build -x command, and the watch loop seam.
package build

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ezrec/gvasm/cli"
)

// Engine is the seam to the assembler module.
type Engine interface {
	// Assemble compiles the project at input into a ROM image.
	Assemble(input string, defines []cli.Define) (rom []byte, err error)
	// Execute compiles the project at input and runs it, returning the
	// program's exit code.
	Execute(input string, defines []cli.Define) (code int, err error)
	// Disassemble decodes a "gba" or "bin" image back into source text.
	Disassemble(rom []byte, format string) (source []byte, err error)
}

// Watcher reports changes to a project's source files. The front end ships
// no watcher; the engine module provides one.
type Watcher interface {
	// Watch yields once per change set until the channel closes.
	Watch(path string) (changes <-chan struct{}, err error)
}

// Builder runs build pipelines against one engine.
type Builder struct {
	Engine  Engine
	Watcher Watcher
	Stdout  io.Writer
	Stderr  io.Writer
}

// Make assembles the input, writes the output image, and runs the optional
// post-build command. With watch set it repeats on every change until the
// watcher closes its channel; a failing rebuild is reported and the loop
// continues.
func (b *Builder) Make(cmd *cli.MakeCommand) (err error) {
	if b.Engine == nil {
		err = ErrNoEngine
		return
	}

	err = b.makeOnce(cmd)
	if !cmd.Watch {
		return
	}

	changes, err := b.watch(cmd.Input, err)
	if err != nil {
		return
	}

	for range changes {
		if rerr := b.makeOnce(cmd); rerr != nil && b.Stderr != nil {
			io.WriteString(b.Stderr, rerr.Error()+"\n")
		}
	}

	return
}

// makeOnce is one assemble/write/execute pass.
func (b *Builder) makeOnce(cmd *cli.MakeCommand) (err error) {
	rom, err := b.Engine.Assemble(cmd.Input, cmd.Defines)
	if err != nil {
		return
	}

	err = os.WriteFile(cmd.Output, rom, 0o666)
	if err != nil {
		return
	}

	if cmd.Execute != "" {
		err = b.execute(cmd.Execute, cmd.Output)
	}

	return
}

// execute shell-splits the -x template, substitutes {} with the output
// path, and runs the command with inherited stdio.
func (b *Builder) execute(template string, output string) (err error) {
	words, err := shellquote.Split(template)
	if err != nil || len(words) == 0 {
		err = ErrExecuteSyntax(template)
		return
	}

	for n := range words {
		words[n] = strings.ReplaceAll(words[n], "{}", output)
	}

	run := exec.Command(words[0], words[1:]...)
	run.Stdout = b.Stdout
	run.Stderr = b.Stderr
	run.Stdin = os.Stdin

	err = run.Run()
	if err != nil {
		err = &ErrExecute{Command: words[0], Err: err}
	}

	return
}

// Run assembles and executes the input, propagating the program's exit
// code. In watch mode each change triggers a fresh run and the code of the
// last run wins.
func (b *Builder) Run(cmd *cli.RunCommand) (code int, err error) {
	if b.Engine == nil {
		code = 1
		err = ErrNoEngine
		return
	}

	code, err = b.Engine.Execute(cmd.Input, cmd.Defines)
	if !cmd.Watch {
		return
	}

	changes, err := b.watch(cmd.Input, err)
	if err != nil {
		code = 1
		return
	}

	for range changes {
		code, err = b.Engine.Execute(cmd.Input, cmd.Defines)
	}

	return
}

// Dis reads the input image, disassembles it, and writes the source text.
func (b *Builder) Dis(cmd *cli.DisCommand) (err error) {
	if b.Engine == nil {
		err = ErrNoEngine
		return
	}

	rom, err := os.ReadFile(cmd.Input)
	if err != nil {
		return
	}

	source, err := b.Engine.Disassemble(rom, cmd.Format)
	if err != nil {
		return
	}

	err = os.WriteFile(cmd.Output, source, 0o666)

	return
}

// watch starts the change feed for a watch-mode command. The first build's
// error is reported but does not stop the loop from starting.
func (b *Builder) watch(input string, first error) (changes <-chan struct{}, err error) {
	if b.Watcher == nil {
		err = ErrNoWatcher
		return
	}

	if first != nil && b.Stderr != nil {
		io.WriteString(b.Stderr, first.Error()+"\n")
	}

	changes, err = b.Watcher.Watch(input)

	return
}
