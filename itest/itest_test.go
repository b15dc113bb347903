// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package itest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/gvasm/cli"
)

func suiteOf(names ...string) *Suite {
	suite := &Suite{}
	for _, name := range names {
		suite.Register(name, func() error { return nil })
	}
	return suite
}

func TestSuiteRunAll(t *testing.T) {
	assert := assert.New(t)

	suite := suiteOf("cpu/alu", "cpu/stack", "define/integer")
	var out bytes.Buffer

	err := suite.Run(&cli.ItestCommand{}, &out)
	assert.NoError(err)
	assert.Contains(out.String(), "pass  cpu/alu")
	assert.Contains(out.String(), "3 passed, 0 failed")
}

func TestSuiteRunFailure(t *testing.T) {
	assert := assert.New(t)

	suite := suiteOf("alpha")
	suite.Register("beta", func() error { return ErrCheck("broken") })
	var out bytes.Buffer

	err := suite.Run(&cli.ItestCommand{}, &out)
	assert.Equal(ErrFailed(1), err)
	assert.Contains(out.String(), "FAIL  beta: broken")
	assert.Contains(out.String(), "1 passed, 1 failed")
}

func TestSuiteSubstringFilter(t *testing.T) {
	assert := assert.New(t)

	suite := suiteOf("cpu/alu", "cpu/stack", "define/integer")
	var out bytes.Buffer

	err := suite.Run(&cli.ItestCommand{Filters: []string{"stack"}}, &out)
	assert.NoError(err)
	assert.Contains(out.String(), "pass  cpu/stack")
	assert.NotContains(out.String(), "cpu/alu")
	assert.Contains(out.String(), "1 passed, 0 failed")
}

func TestSuiteGlobFilter(t *testing.T) {
	assert := assert.New(t)

	suite := suiteOf("cpu/alu", "cpu/stack", "define/integer")
	var out bytes.Buffer

	err := suite.Run(&cli.ItestCommand{Filters: []string{"cpu/*"}}, &out)
	assert.NoError(err)
	assert.Contains(out.String(), "2 passed, 0 failed")
}

func TestSuiteNoMatch(t *testing.T) {
	assert := assert.New(t)

	suite := suiteOf("cpu/alu")
	var out bytes.Buffer

	err := suite.Run(&cli.ItestCommand{Filters: []string{"nothing-like-this"}}, &out)
	assert.ErrorIs(err, ErrNoMatch)
}

func TestDefaultSuitePasses(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	err := Default.Run(&cli.ItestCommand{}, &out)
	assert.NoError(err, out.String())
	assert.Contains(out.String(), "pass  define/integer")
}
