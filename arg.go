package rargsxd

import (
	"github.com/pkg/errors"
)

// ArgKind identifies what an Arg parses as.
type ArgKind int

const (
	// Unknown is the zero kind. Registering an Arg that still has it is a
	// programmer error and panics.
	Unknown ArgKind = iota
	// FlagArg is a boolean toggled by the presence of --name or -s.
	FlagArg
	// OptionArg is a string whose value is the token following --name or -s.
	OptionArg
	// WordArg is matched by its bare literal name, with no dash prefix.
	WordArg
)

// WordValue is the value of a word argument: either a boolean toggled by
// the word's presence, or a string picked up from the following token.
type WordValue struct {
	str bool
	b   bool
	s   string
}

// Boolean returns a boolean WordValue with default b.
func Boolean(b bool) WordValue {
	return WordValue{b: b}
}

// String returns a string WordValue with default s.
func String(s string) WordValue {
	return WordValue{str: true, s: s}
}

// AsBool returns the boolean value, if this is a boolean word.
func (w WordValue) AsBool() (bool, bool) {
	if w.str {
		return false, false
	}
	return w.b, true
}

// AsString returns the string value, if this is a string word.
func (w WordValue) AsString() (string, bool) {
	if !w.str {
		return "", false
	}
	return w.s, true
}

// Arg declares one recognized command-line argument. Build one with NewArg,
// refine it with the chainable setters, then hand it to ArgParser.Args. The
// parser keeps its own copy, so an Arg may be reused or discarded after
// registration.
type Arg struct {
	name     string
	short    rune
	help     string
	kind     ArgKind
	flag     bool
	option   string
	word     WordValue
	required bool
	set      bool
}

// NewArg returns an Arg with long name name and the short name defaulted to
// its first character. The kind is Unknown until one of Flag, Option or
// Word is called.
func NewArg(name string) *Arg {
	if name == "" {
		panic(errors.Errorf("argument name must not be empty"))
	}
	return &Arg{
		name:  name,
		short: []rune(name)[0],
	}
}

// Flag makes the argument a boolean flag with default val.
func (a *Arg) Flag(val bool) *Arg {
	a.kind = FlagArg
	a.flag = val
	return a
}

// Option makes the argument a string option with default val.
func (a *Arg) Option(val string) *Arg {
	a.kind = OptionArg
	a.option = val
	return a
}

// Word makes the argument a bare word with default wv.
func (a *Arg) Word(wv WordValue) *Arg {
	a.kind = WordArg
	a.word = wv
	return a
}

// Help sets the text shown for this argument in the help dialog.
func (a *Arg) Help(help string) *Arg {
	a.help = help
	return a
}

// Short overrides the single-character short name.
func (a *Arg) Short(short rune) *Arg {
	a.short = short
	return a
}

// Required marks the argument as mandatory: parsing fails if it is never
// observed in the input.
func (a *Arg) Required(required bool) *Arg {
	a.required = required
	return a
}
