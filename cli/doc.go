// Package cli implements the command-line front end of the gvasm toolchain.
//
// The front end turns a raw argument vector into one of five validated
// command descriptors (init, make, run, dis, itest) and hands each to the
// toolchain collaborator that performs the actual work. Flag recognition is
// schema driven: every subcommand declares its recognized flags, short
// aliases, and accumulation behavior in a data table consumed by one generic
// parse routine.
//
// The assembler, emulator, and disassembler themselves live in the engine
// module; this package depends only on the Toolchain invocation contract.
package cli
