// Package help content structures.
// This file defines the data rendered into help text.

package help

import "github.com/toejough/cmdr/internal/option"

// Command is the help view of a single command.
type Command struct {
	Name     string
	Desc     string
	Examples string
	Invoker  string
	Options  []*option.Spec
}

// Entry is a name/description pair listed under COMMANDS.
type Entry struct {
	Name string
	Desc string
}

// Root is the help view of a whole application.
type Root struct {
	// Banner is printed first when non-empty. It is expected to be decorated already.
	Banner   string
	Examples string
	Invoker  string
	Globals  []*option.Spec
	Commands []Entry
}
