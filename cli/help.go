// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cli

// Version of the gvasm front end.
const Version = "1.0.0"

// Fixed usage text, one block per subcommand plus the global summary. The
// texts are deliberately plain constants so help output never depends on the
// parse state that triggered it.

const HelpSummary = `Usage:
  gvasm <command> [arguments]

Commands:
  init <output>    Create a skeleton project file
  make <input>     Assemble a project into a ROM image
  run <input>      Assemble a project and execute it
  dis <input>      Disassemble a ROM or raw binary image
  itest            Run the built-in self tests

Run "gvasm <command> -h" for more information about a command.
`

const HelpInit = `Usage:
  gvasm init <output> [options]

Create a skeleton project file at <output>.

Options:
  -t <title>      Cartridge title, up to 12 characters (default "Game")
  -i <initials>   Two character game code suffix (default: first two
                  characters of the title)
  -m <maker>      Two character maker code (default "77")
  -v <version>    Version byte, 0-255 (default 0)
  -r <region>     One character region code (default "E")
  -c <code>       One character game code prefix (default "C")
  --overwrite     Replace <output> if it already exists
`

const HelpMake = `Usage:
  gvasm make <input> [options]

Assemble <input> into a ROM image.

Options:
  -o <output>       Output file (default: <input> with extension .gba)
  -d <NAME=value>   Define a constant available to the source; repeatable
  -w                Watch the input and rebuild on changes
  -x <cmd>          Run <cmd> after a successful build; a {} in <cmd> is
                    replaced with the output path
`

const HelpRun = `Usage:
  gvasm run <input> [options]

Assemble <input> and execute it.

Options:
  -d <NAME=value>   Define a constant available to the source; repeatable
  -w                Watch the input and re-run on changes
`

const HelpDis = `Usage:
  gvasm dis <input> [options]

Disassemble <input>.

Options:
  -o <output>   Output file (default: <input> with extension .gvasm)
  -f <format>   Input format, "gba" or "bin" (default "gba")
`

const HelpItest = `Usage:
  gvasm itest [filters...]

Run the built-in self tests. With filters, only tests whose name matches a
filter run; a filter is a glob pattern, or a plain substring.
`
