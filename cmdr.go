package cmdr

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/shlex"
	"github.com/muesli/termenv"

	"github.com/toejough/cmdr/internal/core"
	"github.com/toejough/cmdr/internal/help"
	"github.com/toejough/cmdr/internal/option"
	"github.com/toejough/cmdr/internal/sys"
)

// Commander declares the commands of an application and parses its arguments.
type Commander struct {
	env core.RunEnv
	reg *core.Registry
}

// Setting configures a Commander.
type Setting func(*settings)

// New returns a Commander with no commands.
func New(opts ...Setting) *Commander {
	s := settings{env: core.OSEnv{}}
	for _, opt := range opts {
		opt(&s)
	}

	app := s.app
	if app == "" && s.version != "" {
		app = sys.ScriptName()
	}

	invoker := s.invoker
	if invoker == "" {
		invoker = sys.Invoker(s.app)
	}

	return &Commander{
		env: s.env,
		reg: core.NewRegistry(core.Settings{
			App:       app,
			Version:   s.version,
			Examples:  s.examples,
			Invoker:   invoker,
			Logger:    s.logger,
			Decorator: help.NewDecorator(s.useColor()),
		}),
	}
}

// WithApp sets the application name shown in the banner and usage lines.
func WithApp(name string) Setting {
	return func(s *settings) { s.app = name }
}

// WithColor forces coloured output on or off. By default colour follows
// the terminal when writing to the process stdout and is off otherwise.
func WithColor(color bool) Setting {
	return func(s *settings) { s.color = &color }
}

// WithEnv replaces the process environment, typically with an ExecuteEnv.
func WithEnv(env RunEnv) Setting {
	return func(s *settings) { s.env = env }
}

// WithExamples sets the examples block of the application help.
func WithExamples(text string) Setting {
	return func(s *settings) { s.examples = text }
}

// WithInvoker overrides how usage lines show the program, "./<app>" by default.
func WithInvoker(invoker string) Setting {
	return func(s *settings) { s.invoker = invoker }
}

// WithLogger receives debug records about registration and parsing.
func WithLogger(logger *slog.Logger) Setting {
	return func(s *settings) { s.logger = logger }
}

// WithVersion sets the version shown in the banner.
func WithVersion(version string) Setting {
	return func(s *settings) { s.version = version }
}

// Add registers a command. A schema error is reported through the
// environment (an error line and exit status 1) and returned.
func (c *Commander) Add(name, desc string, nodes ...Node) error {
	var d commandDecl
	for _, n := range nodes {
		n.apply(&d)
	}

	return c.fatal(c.reg.Register(name, desc, d.examples, d.options...))
}

// AddGlobal declares options accepted before (or between) commands.
// Schema errors are reported like Add's.
func (c *Commander) AddGlobal(opts ...Option) error {
	decls := make([]option.Decl, 0, len(opts))
	for _, o := range opts {
		decls = append(decls, o.decl)
	}

	return c.fatal(c.reg.AddGlobal(decls...))
}

// Banner returns the banner printed after a successful Parse.
func (c *Commander) Banner() string {
	return c.reg.Banner()
}

// CommandHelp returns the help text of a registered command.
func (c *Commander) CommandHelp(name string) (string, bool) {
	cmd, ok := c.reg.Command(name)
	if !ok {
		return "", false
	}

	return cmd.Help(), true
}

// Help returns the application help.
func (c *Commander) Help() string {
	return c.reg.Help()
}

// Parse parses the environment's arguments. On success the banner is
// printed and the result returned. Otherwise the help or error is printed
// and the environment exits; when its Exit returns, Parse returns an
// ExitError carrying the exit code and the help request or failure.
func (c *Commander) Parse() (*Result, error) {
	return core.Run(c.env, c.reg)
}

// ParseArgs parses args (without the program name) and returns the outcome
// without printing or exiting. Failures are *ParseError, help requests are
// *HelpRequest.
func (c *Commander) ParseArgs(args ...string) (*Result, error) {
	return c.reg.Parse(args)
}

// ParseString splits line with shell quoting rules and parses the words
// like ParseArgs.
func (c *Commander) ParseString(line string) (*Result, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("splitting %q: %w", line, err)
	}

	return c.reg.Parse(args)
}

type settings struct {
	app      string
	version  string
	examples string
	invoker  string
	color    *bool
	logger   *slog.Logger
	env      core.RunEnv
}

func (s settings) useColor() bool {
	if s.color != nil {
		return *s.color
	}

	if _, ok := s.env.(core.OSEnv); !ok {
		return false
	}

	return termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii
}

func (c *Commander) fatal(err error) error {
	if err != nil {
		core.Exit(c.env, c.reg.Decorator(), err)
	}

	return err
}
