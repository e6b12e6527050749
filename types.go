package cmdr

import (
	"github.com/toejough/cmdr/internal/core"
	"github.com/toejough/cmdr/internal/option"
)

// --- Re-exported types from core ---

// Result holds the values of a successful parse.
type Result = core.Result

// Values maps option identifiers of one command to their values.
type Values = core.Values

// Value is a single coerced option value.
type Value = option.Value

// Type is the kind of value an option accepts.
type Type = option.Type

// HelpRequest is returned by ParseArgs when help was asked for.
type HelpRequest = core.HelpRequest

// ParseError is returned by ParseArgs when the arguments do not fit.
type ParseError = core.ParseError

// ExitError is returned by Parse when the environment's Exit returned.
type ExitError = core.ExitError

// RunEnv abstracts the runtime environment for testing.
type RunEnv = core.RunEnv

// ExecuteEnv captures output and the exit code for tests.
type ExecuteEnv = core.ExecuteEnv

// OSEnv is the process environment and the default RunEnv.
type OSEnv = core.OSEnv

// Re-export option type constants.
const (
	Flag       = option.Flag
	String     = option.String
	Integer    = option.Integer
	StringList = option.StringList
)

// GlobalCommand keys the global values in Result.Map.
const GlobalCommand = core.GlobalCommand

// Re-exported errors.
var (
	ErrAllowedTypeMismatch  = option.ErrAllowedTypeMismatch
	ErrDuplicateCommand     = core.ErrDuplicateCommand
	ErrHelp                 = core.ErrHelp
	ErrInvalidArrayValue    = option.ErrInvalidArrayValue
	ErrInvalidCommandName   = core.ErrInvalidCommandName
	ErrInvalidIntegerValue  = option.ErrInvalidIntegerValue
	ErrInvalidKeySyntax     = option.ErrInvalidKeySyntax
	ErrInvalidOption        = core.ErrInvalidOption
	ErrInvalidStringValue   = option.ErrInvalidStringValue
	ErrInvalidType          = option.ErrInvalidType
	ErrMissingType          = option.ErrMissingType
	ErrMixedAllowedTypes    = option.ErrMixedAllowedTypes
	ErrPositionalRequired   = core.ErrPositionalRequired
	ErrRequiredOption       = core.ErrRequiredOption
	ErrReservedName         = core.ErrReservedName
	ErrReservedOption       = core.ErrReservedOption
	ErrUnexpectedPositional = core.ErrUnexpectedPositional
	ErrUnknownOption        = core.ErrUnknownOption
	ErrValueNotFound        = core.ErrValueNotFound
)

// NewExecuteEnv returns a RunEnv that captures output for testing. Args
// should include the program name as the first element.
func NewExecuteEnv(args []string) *ExecuteEnv {
	return core.NewExecuteEnv(args)
}
