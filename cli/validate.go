// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cli

import (
	"path/filepath"
	"strconv"
	"strings"
)

// replaceExt swaps the trailing extension of path for ext; a path without an
// extension simply gains ext.
func replaceExt(path string, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Every validator consumes the raw arguments of its own subcommand after the
// dispatcher has handled help and unknown flags, and returns either the
// defaulted descriptor or the first constraint violation.

func validateInit(raw *RawArgs) (cmd Command, err error) {
	if len(raw.Pos) != 1 {
		err = ErrOperands{Command: "init", Count: len(raw.Pos)}
		return
	}

	init := &InitCommand{
		Output:    raw.Pos[0],
		Title:     "Game",
		Maker:     "77",
		Region:    "E",
		Code:      "C",
		Overwrite: raw.Bools["overwrite"],
	}

	if title, ok := raw.Strings["title"]; ok {
		init.Title = title
	}
	if len(init.Title) > 12 {
		err = ErrTooLong{Field: "title", Value: init.Title, Limit: 12}
		return
	}

	// The default initials derive from the final title.
	init.Initials = (init.Title + "AA")[:2]
	if initials, ok := raw.Strings["initials"]; ok {
		init.Initials = initials
	}
	if len(init.Initials) != 2 {
		err = ErrExactLength{Field: "initials", Value: init.Initials, Want: 2}
		return
	}

	if maker, ok := raw.Strings["maker"]; ok {
		init.Maker = maker
	}
	if len(init.Maker) != 2 {
		err = ErrExactLength{Field: "maker", Value: init.Maker, Want: 2}
		return
	}

	if version, ok := raw.Strings["version"]; ok {
		number, nerr := strconv.Atoi(version)
		if nerr != nil || number < 0 || number > 255 {
			err = ErrVersionRange(version)
			return
		}
		init.Version = number
	}

	if region, ok := raw.Strings["region"]; ok {
		init.Region = region
	}
	if len(init.Region) != 1 {
		err = ErrExactLength{Field: "region", Value: init.Region, Want: 1}
		return
	}

	if code, ok := raw.Strings["code"]; ok {
		init.Code = code
	}
	if len(init.Code) != 1 {
		err = ErrExactLength{Field: "code", Value: init.Code, Want: 1}
		return
	}

	cmd = init

	return
}

func validateMake(raw *RawArgs) (cmd Command, err error) {
	if len(raw.Pos) != 1 {
		err = ErrOperands{Command: "make", Count: len(raw.Pos)}
		return
	}

	mk := &MakeCommand{
		Input:  raw.Pos[0],
		Output: replaceExt(raw.Pos[0], ".gba"),
		Watch:  raw.Bools["watch"],
	}

	if output, ok := raw.Strings["output"]; ok {
		mk.Output = output
	}
	if execute, ok := raw.Strings["execute"]; ok {
		mk.Execute = execute
	}

	mk.Defines, err = parseDefines(raw.Lists["define"])
	if err != nil {
		return
	}

	cmd = mk

	return
}

func validateRun(raw *RawArgs) (cmd Command, err error) {
	if len(raw.Pos) != 1 {
		err = ErrOperands{Command: "run", Count: len(raw.Pos)}
		return
	}

	run := &RunCommand{
		Input: raw.Pos[0],
		Watch: raw.Bools["watch"],
	}

	run.Defines, err = parseDefines(raw.Lists["define"])
	if err != nil {
		return
	}

	cmd = run

	return
}

func validateDis(raw *RawArgs) (cmd Command, err error) {
	if len(raw.Pos) != 1 {
		err = ErrOperands{Command: "dis", Count: len(raw.Pos)}
		return
	}

	dis := &DisCommand{
		Input:  raw.Pos[0],
		Format: "gba",
		Output: replaceExt(raw.Pos[0], ".gvasm"),
	}

	if format, ok := raw.Strings["format"]; ok {
		dis.Format = format
	}
	if dis.Format != "gba" && dis.Format != "bin" {
		err = ErrFormat(dis.Format)
		return
	}

	if output, ok := raw.Strings["output"]; ok {
		dis.Output = output
	}

	cmd = dis

	return
}

func validateItest(raw *RawArgs) (cmd Command, err error) {
	cmd = &ItestCommand{Filters: raw.Pos}

	return
}
