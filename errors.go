package rargsxd

import (
	"errors"
	"fmt"
)

// Help or version was requested on the command line. ParseVec handles both
// by printing and exiting 0.
var (
	ErrHelp    = errors.New("help requested")
	ErrVersion = errors.New("version requested")
)

// The input vector was empty while RequireArgs was set.
var errNoArgs = errors.New("no arguments given")

// UnexpectedArgError reports a dash-prefixed token that matched no
// registered argument.
type UnexpectedArgError struct {
	Token string
}

func (e *UnexpectedArgError) Error() string {
	return fmt.Sprintf("Unexpected argument: %q", e.Token)
}

// MissingArgError reports a required argument that never appeared in the
// input.
type MissingArgError struct {
	Name string
}

func (e *MissingArgError) Error() string {
	return fmt.Sprintf("Didn't find %q", e.Name)
}
