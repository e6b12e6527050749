package core

import (
	"fmt"
	"log/slog"
	"regexp"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/toejough/cmdr/internal/help"
	"github.com/toejough/cmdr/internal/option"
)

// GlobalCommand is the reserved name of the pseudo-command holding global options.
const GlobalCommand = "global"

// Registry is the ordered set of commands an application accepts, plus its
// global options. It is built before parsing and only read afterwards.
type Registry struct {
	settings Settings
	logger   *slog.Logger
	commands *orderedmap.OrderedMap[string, *Command]
	globals  []*option.Spec
	global   *Command
}

// Settings configure a registry.
type Settings struct {
	// App and Version make up the banner printed after a successful parse.
	App     string
	Version string
	// Examples is shown in the application help.
	Examples string
	// Invoker is how the program is shown in usage lines, e.g. "./reduce".
	Invoker string
	Logger  *slog.Logger
	// Decorator colours the banner and diagnostics. Nil means plain output.
	Decorator *help.Decorator
}

// NewRegistry returns an empty registry.
func NewRegistry(s Settings) *Registry {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if s.Decorator == nil {
		s.Decorator = help.NewDecorator(false)
	}

	r := &Registry{
		settings: s,
		logger:   logger,
		commands: orderedmap.New[string, *Command](),
	}
	r.global = newCommand(GlobalCommand, "", s.Examples, s.Invoker, nil)

	return r
}

// AddGlobal declares options parsed before any command name. It may be
// called more than once; options accumulate.
func (r *Registry) AddGlobal(decls ...option.Decl) error {
	opts, err := buildOptions(decls)
	if err != nil {
		return err
	}

	r.globals = append(r.globals, opts...)
	r.global = newCommand(GlobalCommand, "", r.settings.Examples, r.settings.Invoker, r.globals)

	r.logger.Debug("globals declared", "count", len(r.globals))

	return nil
}

// Banner returns the decorated banner, empty when neither app nor version is set.
func (r *Registry) Banner() string {
	return r.settings.Decorator.Decorate(help.Banner(r.settings.App, r.settings.Version), help.Highlight)
}

// Command returns the registered command called name.
func (r *Registry) Command(name string) (*Command, bool) {
	return r.commands.Get(name)
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, 0, r.commands.Len())
	for pair := r.commands.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}

	return out
}

// Decorator returns the decorator used for banners and diagnostics.
func (r *Registry) Decorator() *help.Decorator {
	return r.settings.Decorator
}

// Global returns the pseudo-command carrying the global options.
func (r *Registry) Global() *Command {
	return r.global
}

// HasGlobals reports whether any global option was declared.
func (r *Registry) HasGlobals() bool {
	return len(r.globals) > 0
}

// Help renders the application help.
func (r *Registry) Help() string {
	entries := make([]help.Entry, 0, r.commands.Len())
	for _, cmd := range r.Commands() {
		entries = append(entries, help.Entry{Name: cmd.name, Desc: cmd.desc})
	}

	return help.RootHelp(help.Root{
		Banner:   r.Banner(),
		Examples: r.settings.Examples,
		Invoker:  r.settings.Invoker,
		Globals:  r.global.options,
		Commands: entries,
	})
}

// Register adds a command. Schema violations are reported as errors and
// leave the registry unchanged.
func (r *Registry) Register(name, desc, examples string, decls ...option.Decl) error {
	switch {
	case name == GlobalCommand:
		return ErrReservedName
	case !commandName.MatchString(name):
		return fmt.Errorf("%w '%s'", ErrInvalidCommandName, name)
	}

	if _, exists := r.commands.Get(name); exists {
		return fmt.Errorf("%w '%s'", ErrDuplicateCommand, name)
	}

	opts, err := buildOptions(decls)
	if err != nil {
		return fmt.Errorf("command %s: %w", name, err)
	}

	r.commands.Set(name, newCommand(name, desc, examples, r.settings.Invoker, opts))
	r.logger.Debug("command registered", "command", name, "options", len(opts))

	return nil
}

// unexported variables.
var (
	commandName = regexp.MustCompile(`^[a-z]+$`) //nolint:gochecknoglobals // compiled once
)

func buildOptions(decls []option.Decl) ([]*option.Spec, error) {
	opts := make([]*option.Spec, 0, len(decls))

	for _, d := range decls {
		opt, err := option.New(d)
		if err != nil {
			return nil, err
		}

		if opt.Long() == "--help" || opt.Short() == "-h" {
			return nil, ErrReservedOption
		}

		opts = append(opts, opt)
	}

	return opts, nil
}
