// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package scaffold creates skeleton gvasm project files for the init
// command.
package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/ezrec/gvasm/cli"
)

var project = template.Must(template.New("project").Parse(`//
// {{.Title}}
//

.stdlib

.begin header
  .arm
  b @main
  .logo
  .title "{{.Title}}"
  .str "{{.Code}}{{.Initials}}{{.Region}}{{.Maker}}"
  .i16 150, 0, 0, 0, 0
  .i8 0, {{.Version}}
  .crc
  .i16 0
.end

@main:
  // Game code goes here.
  b @main
`))

// Create writes the starter source described by the init descriptor. An
// existing file is only replaced when the descriptor says overwrite; parent
// directories are created as needed.
func Create(cmd *cli.InitCommand) (err error) {
	if !cmd.Overwrite {
		if _, serr := os.Stat(cmd.Output); serr == nil {
			err = ErrExists(cmd.Output)
			return
		}
	}

	var source bytes.Buffer
	err = project.Execute(&source, cmd)
	if err != nil {
		return
	}

	if dir := filepath.Dir(cmd.Output); dir != "." {
		err = os.MkdirAll(dir, 0o777)
		if err != nil {
			return
		}
	}

	err = os.WriteFile(cmd.Output, source.Bytes(), 0o666)

	return
}
