// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package itest runs the toolchain's built-in self tests for the itest
// command.
package itest

import (
	"fmt"
	"io"
	"strings"

	"github.com/gobwas/glob"

	"github.com/ezrec/gvasm/cli"
)

// Check is one named self test.
type Check struct {
	Name string
	Run  func() error
}

// Suite is an ordered collection of checks.
type Suite struct {
	checks []Check
}

// Default is the suite the itest command runs; built-in checks register
// here at package load.
var Default = &Suite{}

// Register adds a check to the default suite.
func Register(name string, run func() error) {
	Default.Register(name, run)
}

// Register adds a check to the suite, keeping registration order.
func (suite *Suite) Register(name string, run func() error) {
	suite.checks = append(suite.checks, Check{Name: name, Run: run})
}

// matcher compiles the filter list. A filter with glob metacharacters
// matches as a glob over the check name; a bare word matches as a
// substring. No filters means everything matches.
func matcher(filters []string) func(name string) bool {
	if len(filters) == 0 {
		return func(string) bool { return true }
	}

	var globs []glob.Glob
	var words []string
	for _, filter := range filters {
		if strings.ContainsAny(filter, `*?[{\`) {
			if g, err := glob.Compile(filter); err == nil {
				globs = append(globs, g)
				continue
			}
			// A malformed pattern falls back to substring matching.
		}
		words = append(words, filter)
	}

	return func(name string) bool {
		for _, g := range globs {
			if g.Match(name) {
				return true
			}
		}
		for _, word := range words {
			if strings.Contains(name, word) {
				return true
			}
		}
		return false
	}
}

// Run executes every check selected by the descriptor's filters, reporting
// one line per check and a final summary. It fails when any selected check
// fails, or when filters were given and selected nothing.
func (suite *Suite) Run(cmd *cli.ItestCommand, stdout io.Writer) (err error) {
	match := matcher(cmd.Filters)

	passed := 0
	failed := 0
	for _, check := range suite.checks {
		if !match(check.Name) {
			continue
		}

		cerr := check.Run()
		if cerr != nil {
			failed++
			fmt.Fprintf(stdout, "FAIL  %v: %v\n", check.Name, cerr)
		} else {
			passed++
			fmt.Fprintf(stdout, "pass  %v\n", check.Name)
		}
	}

	if passed+failed == 0 && len(cmd.Filters) > 0 {
		err = ErrNoMatch
		return
	}

	fmt.Fprintf(stdout, "%v passed, %v failed\n", passed, failed)
	if failed > 0 {
		err = ErrFailed(failed)
	}

	return
}
