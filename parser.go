package rargsxd

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// ArgParser recognizes tokens against a registry of Args, keyed by long
// name. Metadata setters and Args chain, so a parser is normally built and
// parsed in one expression.
type ArgParser struct {
	name      string
	author    string
	version   string
	copyright string
	info      string
	usage     string

	args        map[string]*Arg
	requireArgs bool

	stdout io.Writer
	stderr io.Writer
	exit   func(code int)
}

// New returns an ArgParser for the program called name, with usage
// defaulted to "name [flags] [options]" and the help/-h and version/-v
// flags pre-registered.
func New(name string) *ArgParser {
	p := &ArgParser{
		name:   name,
		usage:  name + " [flags] [options]",
		args:   make(map[string]*Arg),
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,
	}
	p.Args(
		NewArg("help").Short('h').Help("Prints the help dialog").Flag(false),
		NewArg("version").Short('v').Help("Prints the version").Flag(false),
	)
	return p
}

// Args registers the given arguments, keeping a copy of each. Long names
// are unique across a parser; a later registration replaces an earlier one
// with the same name. Registering an Arg whose kind is still Unknown is a
// programmer error and panics.
func (p *ArgParser) Args(args ...*Arg) *ArgParser {
	for _, a := range args {
		if a.kind == Unknown {
			panic(errors.Errorf("argument %q has kind Unknown", a.name))
		}
		c := *a
		p.args[c.name] = &c
	}
	return p
}

// Name sets the program name.
func (p *ArgParser) Name(name string) *ArgParser {
	p.name = name
	return p
}

// Author sets the author shown in the help dialog.
func (p *ArgParser) Author(author string) *ArgParser {
	p.author = author
	return p
}

// Version sets the version shown by the help dialog and --version.
func (p *ArgParser) Version(version string) *ArgParser {
	p.version = version
	return p
}

// Copyright sets the copyright line shown in the help dialog.
func (p *ArgParser) Copyright(copyright string) *ArgParser {
	p.copyright = copyright
	return p
}

// Info sets the program description shown in the help dialog.
func (p *ArgParser) Info(info string) *ArgParser {
	p.info = info
	return p
}

// Usage overrides the usage line shown in the help dialog.
func (p *ArgParser) Usage(usage string) *ArgParser {
	p.usage = usage
	return p
}

// RequireArgs makes an empty input vector print help and exit with status 1.
func (p *ArgParser) RequireArgs(require bool) *ArgParser {
	p.requireArgs = require
	return p
}

// GetFlag returns the current value of the flag registered under name.
func (p *ArgParser) GetFlag(name string) (bool, bool) {
	a, ok := p.args[name]
	if !ok || a.kind != FlagArg {
		return false, false
	}
	return a.flag, true
}

// GetOption returns the current value of the option registered under name.
func (p *ArgParser) GetOption(name string) (string, bool) {
	a, ok := p.args[name]
	if !ok || a.kind != OptionArg {
		return "", false
	}
	return a.option, true
}

// GetWord returns the current value of the word registered under name.
func (p *ArgParser) GetWord(name string) (WordValue, bool) {
	a, ok := p.args[name]
	if !ok || a.kind != WordArg {
		return WordValue{}, false
	}
	return a.word, true
}
