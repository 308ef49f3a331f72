// Package rargsxd parses a vector of command-line tokens against a set of
// declared arguments.
//
// Arguments come in three kinds: flags (booleans toggled by presence of
// --name or -s), options (strings whose value is the token following --name
// or -s), and words (bare tokens matched by their literal name, carrying
// either a boolean or a string). A single-dash token may cluster several
// short names, so -abc handles a, b and c independently.
//
// For example:
//
//	parser := rargsxd.New("program_lol")
//	parser.Author("BubbyRoosh").
//		Version("0.1.0").
//		Copyright("Copyright (C) 2021 BubbyRoosh").
//		Info("Example for simple arg parsing").
//		Args(
//			rargsxd.NewArg("testflag").Short('t').Help("This is a test flag.").Flag(false),
//			rargsxd.NewArg("testoption").Short('o').Help("This is a test option.").Option("option"),
//			rargsxd.NewArg("testword").Help("This is a test word.").Word(rargsxd.Boolean(false)),
//		).
//		Parse()
//
//	verbose, _ := parser.GetFlag("testflag")
//	out, _ := parser.GetOption("testoption")
//
// Every parser pre-registers help/-h and version/-v. Parse and ParseVec
// print and exit the process on the help, version, unknown-argument and
// missing-required paths; ParseErr reports the same outcomes as errors for
// hosts that want to stay in control.
package rargsxd
