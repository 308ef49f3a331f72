package rargsxd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testExit captures the wrapper's exit instead of terminating the test
// binary.
type testExit struct {
	called bool
	code   int
}

func (e *testExit) exit(code int) {
	if !e.called {
		e.called = true
		e.code = code
	}
}

func newTestParser(name string) (*ArgParser, *bytes.Buffer, *bytes.Buffer, *testExit) {
	p := New(name)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exit := new(testExit)
	p.stdout = stdout
	p.stderr = stderr
	p.exit = exit.exit
	return p, stdout, stderr, exit
}

func TestParseVecHelpExitsZero(t *testing.T) {
	p, stdout, stderr, exit := newTestParser("prog")
	p.ParseVec([]string{"--help"})
	require.True(t, exit.called)
	assert.EqualValues(t, 0, exit.code)
	assert.Contains(t, stdout.String(), "Usage:")
	assert.Empty(t, stderr.String())
}

func TestParseVecShortHelpExitsZero(t *testing.T) {
	p, stdout, _, exit := newTestParser("prog")
	p.ParseVec([]string{"-h"})
	require.True(t, exit.called)
	assert.EqualValues(t, 0, exit.code)
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestParseVecVersionExitsZero(t *testing.T) {
	for _, args := range [][]string{{"--version"}, {"-v"}} {
		p, stdout, _, exit := newTestParser("prog")
		p.Version("0.1.0")
		p.ParseVec(args)
		require.True(t, exit.called, "%v", args)
		assert.EqualValues(t, 0, exit.code)
		assert.EqualValues(t, "prog 0.1.0\n", stdout.String())
	}
}

func TestParseVecUnknownArgument(t *testing.T) {
	p, stdout, stderr, exit := newTestParser("prog")
	p.ParseVec([]string{"--notregistered"})
	require.True(t, exit.called)
	assert.EqualValues(t, 1, exit.code)
	assert.EqualValues(t, "Unexpected argument: \"--notregistered\"\n", stderr.String())
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestParseVecRequiredMissing(t *testing.T) {
	p, stdout, stderr, exit := newTestParser("prog")
	p.Args(NewArg("required").Short('r').Flag(false).Required(true))
	p.ParseVec(nil)
	require.True(t, exit.called)
	assert.EqualValues(t, 1, exit.code)
	assert.True(t, strings.HasPrefix(stdout.String(), "Didn't find \"required\"\n\n"))
	assert.Contains(t, stdout.String(), "Usage:")
	assert.Empty(t, stderr.String())
}

func TestParseVecRequireArgsEmptyInput(t *testing.T) {
	p, stdout, _, exit := newTestParser("prog")
	p.RequireArgs(true)
	p.ParseVec(nil)
	require.True(t, exit.called)
	assert.EqualValues(t, 1, exit.code)
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestParseVecSuccessDoesNotExit(t *testing.T) {
	p, stdout, stderr, exit := newTestParser("prog")
	p.Args(NewArg("loud").Short('l').Flag(false))
	ret := p.ParseVec([]string{"--loud"})
	assert.Same(t, p, ret)
	assert.False(t, exit.called)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
	got, ok := p.GetFlag("loud")
	require.True(t, ok)
	assert.True(t, got)
}
