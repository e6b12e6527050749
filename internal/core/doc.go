// Package core holds the command registry and the argument parser.
//
// A Registry collects commands and global options. Parse walks an argument
// vector once, left to right: leading tokens (and global options given after
// a command that does not declare them) form the global run, every command
// name starts a run that ends at the next command name not yet seen, and
// each run is consumed against its command's options. Commands named back to
// back share the run of the next command that has tokens.
//
// Parse never terminates the process. Help requests and failures come back
// as *HelpRequest and *ParseError; Exit is the one place that prints them and
// ends the program.
package core
