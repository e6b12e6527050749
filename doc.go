// Package cmdr is a declarative, git-style command line parser.
//
// An application registers commands, each with positional and named
// options, then parses its arguments:
//
//	cli := cmdr.New(cmdr.WithApp("reduce"), cmdr.WithVersion("0.1.0"))
//	_ = cli.AddGlobal(cmdr.Opt("-v|--verbose", "Verbose output"))
//	_ = cli.Add("build", "Build an ISO",
//		cmdr.Opt("", "Profile to build"),
//		cmdr.Opt("-s|--skip=STAGES", "Stages to skip", cmdr.Typed(cmdr.StringList)),
//	)
//	res, err := cli.Parse()
//
// Option keys take the form `-s|--long=HINT`; the short form and the hint
// are optional and an empty key declares a positional option. Every command
// answers -h|--help. A failed parse prints an error line and the help of the
// command at fault, then exits with status 1; a help request prints the help
// and exits with status 0.
package cmdr
