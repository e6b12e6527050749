package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toejough/cmdr/internal/help"
)

// ExecuteEnv is a RunEnv implementation that captures output for testing.
type ExecuteEnv struct {
	args   []string
	output strings.Builder
	code   int
	exited bool
}

// NewExecuteEnv returns a RunEnv that captures output for testing.
func NewExecuteEnv(args []string) *ExecuteEnv {
	return &ExecuteEnv{args: args}
}

// Args returns the command line arguments.
func (e *ExecuteEnv) Args() []string {
	return e.args
}

// Exit records the exit code instead of terminating.
func (e *ExecuteEnv) Exit(code int) {
	e.code = code
	e.exited = true
}

// ExitCode returns the recorded exit code and whether Exit was called.
func (e *ExecuteEnv) ExitCode() (int, bool) {
	return e.code, e.exited
}

// Output returns the captured output.
func (e *ExecuteEnv) Output() string {
	return e.output.String()
}

// Stdout returns the captured output buffer.
func (e *ExecuteEnv) Stdout() io.Writer {
	return &e.output
}

// ExitError is returned by Run after the termination point ran without
// terminating the process. Err is the help request or failure that was reported.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e ExitError) Unwrap() error {
	return e.Err
}

// OSEnv is the process environment: os.Args, os.Stdout and os.Exit.
type OSEnv struct{}

func (OSEnv) Args() []string {
	return os.Args
}

func (OSEnv) Exit(code int) {
	os.Exit(code)
}

func (OSEnv) Stdout() io.Writer {
	return os.Stdout
}

// RunEnv abstracts the runtime environment for testing.
type RunEnv interface {
	// Args returns the argument vector including the program name.
	Args() []string
	// Stdout receives help text, banners and diagnostics.
	Stdout() io.Writer
	Exit(code int)
}

// Exit is the single termination point. It reports err on env's stdout and
// calls env.Exit once: 0 for help requests, 1 for anything else. Help
// requests print only the help text. Parse errors print the diagnostic line
// followed by the help of the command that failed. Other errors print only
// the diagnostic line. The exit code is returned for environments whose Exit
// returns.
func Exit(env RunEnv, deco *help.Decorator, err error) int {
	out := env.Stdout()

	var (
		helpReq *HelpRequest
		perr    *ParseError
	)

	code := 1

	switch {
	case errors.As(err, &helpReq):
		code = 0

		_, _ = io.WriteString(out, helpReq.Help)
	case errors.As(err, &perr):
		writeDiagnostic(out, deco, perr.Err)

		_, _ = io.WriteString(out, perr.Help)
	default:
		writeDiagnostic(out, deco, err)
	}

	env.Exit(code)

	return code
}

// Run parses the environment's arguments against r. On success the banner is
// printed and the result returned. Otherwise the outcome goes through Exit,
// and an ExitError is returned when env.Exit returns.
func Run(env RunEnv, r *Registry) (*Result, error) {
	args := env.Args()
	if len(args) > 0 {
		args = args[1:]
	}

	res, err := r.Parse(args)
	if err != nil {
		return nil, ExitError{Code: Exit(env, r.Decorator(), err), Err: err}
	}

	if banner := r.Banner(); banner != "" {
		_, _ = fmt.Fprintln(env.Stdout(), banner)
	}

	return res, nil
}

func writeDiagnostic(out io.Writer, deco *help.Decorator, err error) {
	_, _ = fmt.Fprintln(out, deco.Decorate("Error: "+err.Error(), help.Alert))
}
