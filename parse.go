package rargsxd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bradfitz/iter"
	"golang.org/x/xerrors"
)

// Parse parses the process argument vector, discarding the program name at
// index 0. See ParseVec.
func (p *ArgParser) Parse() *ArgParser {
	return p.ParseVec(os.Args[1:])
}

// ParseVec parses args, which must already be stripped of the program name.
// On the help, version, unknown-argument, missing-required and
// empty-input-with-RequireArgs paths it prints and exits the process: 0 for
// help and version, 1 for everything else. Hosts that need to keep control
// use ParseErr instead.
func (p *ArgParser) ParseVec(args []string) *ArgParser {
	if err := p.ParseErr(args); err != nil {
		p.exitErr(err)
	}
	return p
}

func (p *ArgParser) exitErr(err error) {
	var unexpected *UnexpectedArgError
	var missing *MissingArgError
	switch {
	case xerrors.Is(err, ErrHelp):
		p.WriteHelp(p.stdout)
		p.exit(0)
	case xerrors.Is(err, ErrVersion):
		fmt.Fprintf(p.stdout, "%s %s\n", p.name, p.version)
		p.exit(0)
	case xerrors.Is(err, errNoArgs):
		p.WriteHelp(p.stdout)
		p.exit(1)
	case xerrors.As(err, &unexpected):
		fmt.Fprintf(p.stderr, "%s\n", err)
		p.WriteHelp(p.stdout)
		p.exit(1)
	case xerrors.As(err, &missing):
		fmt.Fprintf(p.stdout, "%s\n\n", err)
		p.WriteHelp(p.stdout)
		p.exit(1)
	}
}

// ParseErr parses args and reports the outcome as an error instead of
// exiting. It returns ErrHelp or ErrVersion when those are requested, a
// *UnexpectedArgError for an unrecognized dash-prefixed token, a
// *MissingArgError for a required argument absent from the input, and nil
// on success. Tokens matching no rule at all are ignored.
func (p *ArgParser) ParseErr(args []string) error {
	if len(args) == 0 && p.requireArgs {
		return errNoArgs
	}

	for idx, tok := range args {
		// A token equal to a registered long name is claimed outright, so a
		// word's value token never doubles as someone else's name.
		if a, ok := p.args[tok]; ok {
			p.matchWord(a, args, idx)
			continue
		}
		if strings.HasPrefix(tok, "--") {
			if err := p.matchLong(tok[2:], args, idx); err != nil {
				return err
			}
		} else if strings.HasPrefix(tok, "-") {
			if err := p.matchShorts(tok[1:], args, idx); err != nil {
				return err
			}
		}
	}

	for _, a := range p.args {
		if a.required && !a.set {
			return &MissingArgError{Name: a.name}
		}
	}
	return nil
}

func (p *ArgParser) matchWord(a *Arg, args []string, idx int) {
	if a.kind != WordArg {
		return
	}
	if b, ok := a.word.AsBool(); ok {
		a.word = Boolean(!b)
		a.set = true
		return
	}
	if next, ok := peekValue(args, idx); ok {
		a.word = String(next)
		a.set = true
	}
}

func (p *ArgParser) matchLong(name string, args []string, idx int) error {
	// help and version win over the registry, so hosts cannot shadow them.
	switch name {
	case "help":
		return ErrHelp
	case "version":
		return ErrVersion
	}
	a, ok := p.args[name]
	if !ok {
		return &UnexpectedArgError{Token: "--" + name}
	}
	switch a.kind {
	case FlagArg:
		a.flag = !a.flag
		a.set = true
	case OptionArg:
		if next, ok := peekValue(args, idx); ok {
			a.option = next
			a.set = true
		}
	}
	return nil
}

// matchShorts handles a single-dash token, treating each character as an
// independent short name. Short names are not unique, so every registered
// argument sharing the character is updated; options in a cluster all peek
// the same following token. Characters matching nothing are ignored.
func (p *ArgParser) matchShorts(shorts string, args []string, idx int) error {
	cs := []rune(shorts)
	for i := range iter.N(len(cs)) {
		switch cs[i] {
		case 'h':
			return ErrHelp
		case 'v':
			return ErrVersion
		}
		for _, a := range p.args {
			if a.short != cs[i] {
				continue
			}
			switch a.kind {
			case FlagArg:
				a.flag = !a.flag
				a.set = true
			case OptionArg:
				if idx+1 < len(args) {
					next := args[idx+1]
					if strings.HasPrefix(next, "-") {
						return &UnexpectedArgError{Token: next}
					}
					a.option = next
					a.set = true
				}
			}
		}
	}
	return nil
}

// peekValue returns the token after idx if it exists and does not look like
// another flag. A consumed value token is not skipped by the main walk; it
// simply matches nothing on its own iteration.
func peekValue(args []string, idx int) (string, bool) {
	if idx+1 >= len(args) {
		return "", false
	}
	next := args[idx+1]
	if strings.HasPrefix(next, "-") {
		return "", false
	}
	return next, true
}
