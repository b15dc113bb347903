// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cli

// Command is the closed set of validated command descriptors. Exactly one
// variant is live per invocation.
type Command interface {
	command()
}

// InitCommand scaffolds a new project source file.
type InitCommand struct {
	Output    string
	Title     string // Cartridge title, at most 12 characters.
	Initials  string // Two-character game code suffix.
	Maker     string // Two-character maker code.
	Version   int    // 0..255
	Region    string // One character.
	Code      string // One character.
	Overwrite bool
}

// MakeCommand assembles a project into a ROM image.
type MakeCommand struct {
	Input   string
	Output  string
	Defines []Define
	Watch   bool
	Execute string // Post-build command template; empty means none.
}

// RunCommand assembles and executes a project.
type RunCommand struct {
	Input   string
	Defines []Define
	Watch   bool
}

// DisCommand disassembles a ROM or raw binary image.
type DisCommand struct {
	Input  string
	Format string // "gba" or "bin"
	Output string
}

// ItestCommand runs the built-in self tests.
type ItestCommand struct {
	Filters []string
}

func (*InitCommand) command()  {}
func (*MakeCommand) command()  {}
func (*RunCommand) command()   {}
func (*DisCommand) command()   {}
func (*ItestCommand) command() {}

// Toolchain is the collaborator contract. Each entry point receives its
// fully validated descriptor and returns the process exit code; the
// dispatcher passes the code through without interpreting it.
type Toolchain interface {
	Init(*InitCommand) int
	Make(*MakeCommand) int
	Run(*RunCommand) int
	Dis(*DisCommand) int
	Itest(*ItestCommand) int
}
