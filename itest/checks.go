// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package itest

import (
	"github.com/ezrec/gvasm/cli"
)

// The built-in suite covers the front end's own invariants; the engine
// module registers its encoder and emulator checks on top of these.

func init() {
	Register("define/integer", func() error {
		def, err := cli.ParseDefine("SCREEN=240")
		if err != nil {
			return err
		}
		if def.Name != "SCREEN" || def.Value != 240 {
			return ErrCheck(f("got %v=%v", def.Name, def.Value))
		}
		return nil
	})

	Register("define/negative-integer", func() error {
		def, err := cli.ParseDefine("BIAS=-12")
		if err != nil {
			return err
		}
		if def.Value != -12 {
			return ErrCheck(f("BIAS parsed as %v", def.Value))
		}
		return nil
	})

	Register("define/signed-plus-stays-string", func() error {
		def, err := cli.ParseDefine("N=+5")
		if err != nil {
			return err
		}
		if def.Value != "+5" {
			return ErrCheck(f("+5 parsed as %v", def.Value))
		}
		return nil
	})

	Register("define/empty-value", func() error {
		def, err := cli.ParseDefine("FLAG=")
		if err != nil {
			return err
		}
		if def.Value != "" {
			return ErrCheck(f("empty value parsed as %v", def.Value))
		}
		return nil
	})

	Register("define/missing-equals-rejected", func() error {
		_, err := cli.ParseDefine("NOVALUE")
		if err == nil {
			return ErrCheck(f("NOVALUE accepted"))
		}
		return nil
	})

	Register("flags/alias-resolves-to-canonical", func() error {
		sch := &cli.Schema{Flags: []cli.FlagSpec{
			{Name: "output", Alias: "o", Kind: cli.FLAG_STRING},
		}}
		raw, unknown := sch.Parse([]string{"-o", "x.gba"})
		if len(unknown) != 0 || raw.Strings["output"] != "x.gba" {
			return ErrCheck(f("-o did not store under 'output'"))
		}
		return nil
	})

	Register("flags/collect-preserves-order", func() error {
		sch := &cli.Schema{Flags: []cli.FlagSpec{
			{Name: "define", Alias: "d", Kind: cli.FLAG_COLLECT},
		}}
		raw, _ := sch.Parse([]string{"-d", "A=1", "-d", "B=2"})
		list := raw.Lists["define"]
		if len(list) != 2 || list[0] != "A=1" || list[1] != "B=2" {
			return ErrCheck(f("collected %v", list))
		}
		return nil
	})

	Register("flags/stop-early-keeps-flaglike-filters", func() error {
		sch := &cli.Schema{StopEarly: true}
		raw, unknown := sch.Parse([]string{"first", "-looks-like-a-flag"})
		if len(unknown) != 0 || len(raw.Pos) != 2 {
			return ErrCheck(f("positionals %v, unknown %v", raw.Pos, unknown))
		}
		return nil
	})
}
