package core

import (
	"cmp"
	"slices"

	"github.com/toejough/cmdr/internal/help"
	"github.com/toejough/cmdr/internal/option"
)

// Command is a registered command: its options in display order and its
// precomputed help text.
type Command struct {
	name     string
	desc     string
	examples string
	options  []*option.Spec
	help     string
}

// Desc returns the command description.
func (c *Command) Desc() string { return c.desc }

// Examples returns the command's examples block, empty if none.
func (c *Command) Examples() string { return c.examples }

// Help returns the precomputed help text.
func (c *Command) Help() string { return c.help }

// Lookup returns the named option matching flag, nil if none does.
func (c *Command) Lookup(flag string) *option.Spec {
	for _, opt := range c.options {
		if opt.Matches(flag) {
			return opt
		}
	}

	return nil
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Options returns the options in display order: positional options as
// declared, then named options (help included) sorted by long form.
func (c *Command) Options() []*option.Spec {
	return slices.Clone(c.options)
}

// Positionals returns the positional options in declared order.
func (c *Command) Positionals() []*option.Spec {
	var out []*option.Spec

	for _, opt := range c.options {
		if opt.Positional() {
			out = append(out, opt)
		}
	}

	return out
}

// newCommand builds a command from validated options. The help option is
// added here; callers must have rejected user-declared help keys.
func newCommand(name, desc, examples, invoker string, opts []*option.Spec) *Command {
	ordered := orderOptions(append(slices.Clone(opts), option.Help()))

	cmd := &Command{
		name:     name,
		desc:     desc,
		examples: examples,
		options:  ordered,
	}

	cmd.help = help.CommandHelp(help.Command{
		Name:     name,
		Desc:     desc,
		Examples: examples,
		Invoker:  invoker,
		Options:  ordered,
	})

	return cmd
}

// orderOptions puts positional options first in declared order, then named
// options stably sorted by long form.
func orderOptions(opts []*option.Spec) []*option.Spec {
	var positional, named []*option.Spec

	for _, opt := range opts {
		if opt.Positional() {
			positional = append(positional, opt)
		} else {
			named = append(named, opt)
		}
	}

	slices.SortStableFunc(named, func(a, b *option.Spec) int {
		return cmp.Compare(a.Long(), b.Long())
	})

	return append(positional, named...)
}
