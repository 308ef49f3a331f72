package rargsxd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteHelp(t *testing.T) {
	p := New("prog").
		Author("me").
		Version("0.1.0").
		Copyright("(C) me").
		Info("does things").
		Args(
			NewArg("alpha").Short('a').Help("Alpha.").Flag(false),
			NewArg("out").Short('o').Help("Out.").Option(""),
			NewArg("commit").Help("Commit.").Word(String("HEAD")),
		)

	var buf bytes.Buffer
	p.WriteHelp(&buf)
	assert.EqualValues(t, "prog 0.1.0\n"+
		"me\n"+
		"does things\n"+
		"(C) me\n"+
		"\nUsage:\n"+
		"\tprog [flags] [options]\n"+
		"\nFlags:\n"+
		"\t-a, --alpha\tAlpha.\n"+
		"\t-h, --help\tPrints the help dialog\n"+
		"\t-v, --version\tPrints the version\n"+
		"\nOptions:\n"+
		"\t-o, --out\tOut.\n"+
		"\nWords:\n"+
		"\tcommit\tCommit.\n",
		buf.String())
}

func TestWriteHelpOmitsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	New("prog").WriteHelp(&buf)
	out := buf.String()
	assert.Contains(t, out, "Flags:")
	assert.NotContains(t, out, "Options:")
	assert.NotContains(t, out, "Words:")
}

func TestWriteHelpCustomUsage(t *testing.T) {
	var buf bytes.Buffer
	New("prog").Usage("prog [stuff]").WriteHelp(&buf)
	assert.Contains(t, buf.String(), "\nUsage:\n\tprog [stuff]\n")
}
