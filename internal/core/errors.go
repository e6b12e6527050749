package core

import (
	"errors"
)

// Exported variables.
var (
	ErrDuplicateCommand     = errors.New("command already registered")
	ErrHelp                 = errors.New("help requested")
	ErrInvalidCommandName   = errors.New("command names must be pure lowercase letters")
	ErrInvalidOption        = errors.New("invalid options")
	ErrPositionalRequired   = errors.New("positional option required")
	ErrRequiredOption       = errors.New("required option not given")
	ErrReservedName         = errors.New("'global' is a reserved command name")
	ErrReservedOption       = errors.New("'help' is a reserved option name")
	ErrUnexpectedPositional = errors.New("invalid positional option")
	ErrUnknownOption        = errors.New("unknown named option")
	ErrValueNotFound        = errors.New("named option value not found")
)

// HelpRequest is returned when the arguments ask for help. It is not a
// failure: the caller prints Help and exits successfully.
type HelpRequest struct {
	// Command is the command whose help was requested, GlobalCommand for
	// the application help.
	Command string
	Help    string
}

func (h *HelpRequest) Error() string {
	return ErrHelp.Error()
}

// Is makes errors.Is(err, ErrHelp) hold for help requests.
func (h *HelpRequest) Is(target error) bool {
	return target == ErrHelp
}

// ParseError is a user-input failure. Help is the help text of the most
// specific command active when parsing stopped.
type ParseError struct {
	Command string
	Help    string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
