// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeToolchain records the descriptor it receives and returns a canned
// exit code.
type fakeToolchain struct {
	last Command
	code int
}

func (tc *fakeToolchain) Init(cmd *InitCommand) int   { tc.last = cmd; return tc.code }
func (tc *fakeToolchain) Make(cmd *MakeCommand) int   { tc.last = cmd; return tc.code }
func (tc *fakeToolchain) Run(cmd *RunCommand) int     { tc.last = cmd; return tc.code }
func (tc *fakeToolchain) Dis(cmd *DisCommand) int     { tc.last = cmd; return tc.code }
func (tc *fakeToolchain) Itest(cmd *ItestCommand) int { tc.last = cmd; return tc.code }

func dispatch(args ...string) (tc *fakeToolchain, code int, stdout, stderr string) {
	tc = &fakeToolchain{}
	var out, err bytes.Buffer
	code = Run(args, tc, &out, &err)
	stdout = out.String()
	stderr = err.String()
	return
}

func TestDispatchGlobalHelp(t *testing.T) {
	assert := assert.New(t)

	for _, args := range [][]string{{}, {"-h"}, {"--help"}} {
		tc, code, stdout, stderr := dispatch(args...)
		assert.Equal(0, code, "%v", args)
		assert.Contains(stdout, "gvasm "+Version)
		assert.Contains(stdout, "Usage:")
		assert.Empty(stderr)
		assert.Nil(tc.last)
	}
}

func TestDispatchVersion(t *testing.T) {
	assert := assert.New(t)

	for _, args := range [][]string{{"-v"}, {"--version"}} {
		_, code, stdout, _ := dispatch(args...)
		assert.Equal(0, code)
		assert.Contains(stdout, "gvasm "+Version)
		assert.NotContains(stdout, "Usage:")
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	assert := assert.New(t)

	tc, code, _, stderr := dispatch("frobnicate")
	assert.Equal(1, code)
	assert.Contains(stderr, "Unknown command: frobnicate")
	assert.Nil(tc.last)
}

func TestDispatchInvokesCollaborator(t *testing.T) {
	assert := assert.New(t)

	tc, code, _, stderr := dispatch("init", "x")
	assert.Equal(0, code)
	assert.Empty(stderr)
	assert.Equal(&InitCommand{
		Output:   "x",
		Title:    "Game",
		Initials: "Ga",
		Maker:    "77",
		Region:   "E",
		Code:     "C",
	}, tc.last)
}

func TestDispatchExitCodePassthrough(t *testing.T) {
	assert := assert.New(t)

	tc := &fakeToolchain{code: 3}
	var out, errOut bytes.Buffer
	code := Run([]string{"run", "a.gvasm"}, tc, &out, &errOut)

	// Collaborator codes are opaque to the dispatcher.
	assert.Equal(3, code)
	assert.Equal(&RunCommand{Input: "a.gvasm"}, tc.last)
}

func TestDispatchUsageErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Args    []string
		Message string
	}{
		{Args: []string{"init"}, Message: "exactly one file argument"},
		{Args: []string{"make", "a", "b"}, Message: "exactly one file argument"},
		{Args: []string{"make", "a.gvasm", "-q"}, Message: "unknown flag: -q"},
		{Args: []string{"make", "a.gvasm", "-d", "BROKEN"}, Message: "BROKEN"},
		{Args: []string{"dis", "rom.bin", "-f", "xyz"}, Message: "xyz"},
		{Args: []string{"init", "x", "-t", "ThisTitleIsWayTooLongForTheLimit"}, Message: "12 characters"},
	}

	for _, testcase := range table {
		tc, code, _, stderr := dispatch(testcase.Args...)
		assert.Equal(1, code, "%v", testcase.Args)
		assert.Contains(stderr, testcase.Message, "%v", testcase.Args)
		assert.Nil(tc.last, "%v", testcase.Args)
	}
}

func TestDispatchHelpShortCircuits(t *testing.T) {
	assert := assert.New(t)

	// Help wins even when the rest of the argument list is invalid.
	table := [][]string{
		{"init", "-h"},
		{"init", "x", "-t", "ThisTitleIsWayTooLongForTheLimit", "-h"},
		{"make", "--help"},
		{"make", "a", "b", "-q", "-h"},
		{"run", "-h"},
		{"dis", "-f", "xyz", "--help"},
		{"itest", "--help", "foo", "bar"},
	}

	for _, args := range table {
		tc, code, stdout, stderr := dispatch(args...)
		assert.Equal(0, code, "%v", args)
		assert.Contains(stdout, "Usage:", "%v", args)
		assert.Empty(stderr, "%v", args)
		assert.Nil(tc.last, "%v", args)
	}
}

func TestDispatchItestFilters(t *testing.T) {
	assert := assert.New(t)

	tc, code, _, _ := dispatch("itest", "cpu", "-h", "--not-a-flag")
	assert.Equal(0, code)
	// After the first filter, even flag-shaped tokens are filters.
	assert.Equal(&ItestCommand{Filters: []string{"cpu", "-h", "--not-a-flag"}}, tc.last)
}

func TestDispatchMakeDefines(t *testing.T) {
	assert := assert.New(t)

	tc, code, _, _ := dispatch("make", "a.gvasm", "-d", "FOO=1", "-d", "BAR=bar")
	assert.Equal(0, code)
	assert.Equal(&MakeCommand{
		Input:  "a.gvasm",
		Output: "a.gba",
		Defines: []Define{
			{Name: "FOO", Value: 1},
			{Name: "BAR", Value: "bar"},
		},
	}, tc.last)
}

func TestHelpTextsMentionFlags(t *testing.T) {
	assert := assert.New(t)

	for _, pair := range []struct{ Help, Flag string }{
		{Help: HelpInit, Flag: "--overwrite"},
		{Help: HelpMake, Flag: "-x"},
		{Help: HelpRun, Flag: "-d"},
		{Help: HelpDis, Flag: "-f"},
	} {
		assert.True(strings.Contains(pair.Help, pair.Flag), pair.Flag)
	}
}
