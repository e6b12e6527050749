// Package sys answers questions about the running process: who runs it and
// under what name.
package sys

import (
	"os"
	"os/user"
	"path/filepath"
)

// Invoker returns how usage lines show the program: "./" followed by name,
// or by ScriptName when name is empty.
func Invoker(name string) string {
	if name == "" {
		name = ScriptName()
	}

	return "./" + name
}

// ScriptName returns the base name of the running executable as invoked.
func ScriptName() string {
	if len(os.Args) == 0 {
		return ""
	}

	return filepath.Base(os.Args[0])
}

// UserName returns the current user's login name, falling back to $USER
// when the user database cannot be read.
func UserName() string {
	if u, err := lookupUser(); err == nil && u.Username != "" {
		return u.Username
	}

	return os.Getenv("USER")
}

// unexported variables.
var (
	lookupUser = user.Current //nolint:gochecknoglobals // replaced in tests
)
