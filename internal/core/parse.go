package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/toejough/cmdr/internal/option"
)

// Parse consumes args (without the program name) against the registry.
// It returns a *HelpRequest when help was asked for and a *ParseError when
// the arguments do not fit the registered commands. It never exits.
func (r *Registry) Parse(args []string) (*Result, error) {
	if len(args) == 0 {
		return nil, &HelpRequest{Command: GlobalCommand, Help: r.Help()}
	}

	globalRun, rest := r.splitGlobals(args)
	result := newResult()

	r.logger.Debug("globals collected", "tokens", globalRun)

	if len(globalRun) > 0 || r.HasGlobals() {
		err := r.parseGlobals(globalRun, result.global)
		if err != nil {
			return nil, err
		}
	}

	groups := r.group(rest)
	r.shareChainedRuns(groups)

	for _, g := range groups {
		values := newValues()

		err := consume(g.cmd, g.run, g.cmd.help, values)
		if err != nil {
			return nil, err
		}

		result.commands.Set(g.cmd.name, values)
	}

	return result, nil
}

type commandRun struct {
	cmd *Command
	run []string
	// shared is true when run was borrowed from a later command in a chain.
	shared bool
}

type parseContext struct {
	cmd         *Command
	help        string
	run         []string
	values      Values
	positionals []*option.Spec
	posIndex    int
	seen        map[*option.Spec]bool
}

func (ctx *parseContext) fail(err error) error {
	return &ParseError{Command: ctx.cmd.name, Help: ctx.help, Err: err}
}

// parseArgs walks the run left to right.
func (ctx *parseContext) parseArgs() error {
	for i := 0; i < len(ctx.run); i++ {
		consumed, err := ctx.parseArg(i)
		if err != nil {
			return err
		}

		i += consumed
	}

	return nil
}

// parseArg handles the token at i and returns how many following tokens it consumed.
func (ctx *parseContext) parseArg(i int) (int, error) {
	tok := ctx.run[i]
	if isNamed(tok) {
		return ctx.parseNamed(i, tok)
	}

	return 0, ctx.parsePositional(tok)
}

func (ctx *parseContext) parseNamed(i int, tok string) (int, error) {
	flag, value, hasValue := option.SplitToken(tok)

	spec := ctx.cmd.Lookup(flag)
	if spec == nil {
		return 0, ctx.fail(fmt.Errorf("%w '%s'", ErrUnknownOption, tok))
	}

	ctx.seen[spec] = true

	if !spec.Type().TakesValue() {
		ctx.values.set(spec.ID(ctx.cmd.name, 0), option.FlagValue())
		return 0, nil
	}

	consumed := 0

	if !hasValue {
		if i+1 >= len(ctx.run) {
			return 0, ctx.fail(fmt.Errorf("%w '%s'", ErrValueNotFound, tok))
		}

		value = ctx.run[i+1]
		consumed = 1
	}

	val, err := spec.Coerce(value)
	if err != nil {
		return 0, ctx.fail(err)
	}

	ctx.values.set(spec.ID(ctx.cmd.name, 0), val)

	return consumed, nil
}

func (ctx *parseContext) parsePositional(tok string) error {
	if ctx.posIndex >= len(ctx.positionals) {
		return ctx.fail(fmt.Errorf("%w '%s'", ErrUnexpectedPositional, tok))
	}

	spec := ctx.positionals[ctx.posIndex]

	val, err := spec.Coerce(tok)
	if err != nil {
		return ctx.fail(err)
	}

	ctx.values.set(spec.ID(ctx.cmd.name, ctx.posIndex), val)
	ctx.posIndex++

	return nil
}

// checkComplete verifies every positional slot was filled and every
// required named option was given.
func (ctx *parseContext) checkComplete() error {
	if ctx.posIndex < len(ctx.positionals) {
		return ctx.fail(ErrPositionalRequired)
	}

	for _, opt := range ctx.cmd.options {
		if opt.Positional() || !opt.Required() || ctx.seen[opt] {
			continue
		}

		return ctx.fail(fmt.Errorf("%w: %s", ErrRequiredOption, opt.Key()))
	}

	return nil
}

// consume parses one command's token run into values. Help tokens anywhere
// in the run short-circuit with a help request. Failures and help requests
// carry helpText.
func consume(cmd *Command, run []string, helpText string, values Values) error {
	if slices.ContainsFunc(run, isHelpToken) {
		return &HelpRequest{Command: cmd.name, Help: helpText}
	}

	ctx := &parseContext{
		cmd:         cmd,
		help:        helpText,
		run:         run,
		values:      values,
		positionals: cmd.Positionals(),
		seen:        map[*option.Spec]bool{},
	}
	if len(run) < len(ctx.positionals) {
		return ctx.fail(ErrPositionalRequired)
	}

	err := ctx.parseArgs()
	if err != nil {
		return err
	}

	return ctx.checkComplete()
}

// filterRun keeps the tokens of run that cmd can take: the named options it
// declares (with their values) and at most as many positional tokens as it
// has positional slots. owner resolves the value arity of foreign options.
func filterRun(cmd, owner *Command, run []string) []string {
	var out []string

	slots := len(cmd.Positionals())

	for i := 0; i < len(run); i++ {
		tok := run[i]

		if !isNamed(tok) {
			if slots > 0 {
				out = append(out, tok)
				slots--
			}

			continue
		}

		flag, _, hasValue := option.SplitToken(tok)

		spec := cmd.Lookup(flag)
		if spec == nil {
			spec = owner.Lookup(flag)
			if spec != nil && spec.Type().TakesValue() && !hasValue {
				i++
			}

			continue
		}

		out = append(out, tok)

		if spec.Type().TakesValue() && !hasValue && i+1 < len(run) {
			i++
			out = append(out, run[i])
		}
	}

	return out
}

// group splits the command-phase tokens into one run per command. tokens
// starts with a command name and a run ends at the next command name not
// yet consumed, so every token lands in some run.
func (r *Registry) group(tokens []string) []commandRun {
	var groups []commandRun

	consumed := map[string]bool{}

	for len(tokens) > 0 {
		cmd, _ := r.commands.Get(tokens[0])
		consumed[cmd.name] = true

		end := 1
		for end < len(tokens) && !r.isFreshCommand(tokens[end], cmd.name, consumed) {
			end++
		}

		run := slices.Clone(tokens[1:end])
		groups = append(groups, commandRun{cmd: cmd, run: run})
		tokens = tokens[end:]

		r.logger.Debug("command matched", "command", cmd.name, "tokens", run)
	}

	return groups
}

// isFreshCommand reports whether tok names a registered command, other than
// current, that has not been consumed yet.
func (r *Registry) isFreshCommand(tok, current string, consumed map[string]bool) bool {
	if tok == current || consumed[tok] {
		return false
	}

	_, ok := r.commands.Get(tok)

	return ok
}

func (r *Registry) parseGlobals(run []string, values Values) error {
	if !r.HasGlobals() {
		if slices.ContainsFunc(run, isHelpToken) {
			return &HelpRequest{Command: GlobalCommand, Help: r.Help()}
		}

		return &ParseError{
			Command: GlobalCommand,
			Help:    r.Help(),
			Err:     fmt.Errorf("%w %v", ErrInvalidOption, run),
		}
	}

	return consume(r.global, run, r.Help(), values)
}

// shareChainedRuns gives every command with an empty run the filtered run
// of the next command in the chain that has tokens of its own.
func (r *Registry) shareChainedRuns(groups []commandRun) {
	for i := range groups {
		if len(groups[i].run) > 0 {
			continue
		}

		for j := i + 1; j < len(groups); j++ {
			if len(groups[j].run) == 0 || groups[j].shared {
				continue
			}

			groups[i].run = filterRun(groups[i].cmd, groups[j].cmd, groups[j].run)
			groups[i].shared = true

			r.logger.Debug("chained run shared",
				"command", groups[i].cmd.name,
				"from", groups[j].cmd.name,
				"tokens", groups[i].run,
			)

			break
		}
	}
}

// splitGlobals separates the global run from the command-phase tokens. The
// global run is the leading run before the first command name plus any
// global named option that appears after a command that does not declare it.
func (r *Registry) splitGlobals(args []string) (globalRun, rest []string) {
	i := 0
	for i < len(args) {
		if _, ok := r.commands.Get(args[i]); ok {
			break
		}

		i++
	}

	globalRun = slices.Clone(args[:i])

	var active *Command

	for j := i; j < len(args); j++ {
		tok := args[j]

		if cmd, ok := r.commands.Get(tok); ok {
			active = cmd
			rest = append(rest, tok)

			continue
		}

		if !r.hoistable(active, tok) {
			rest = append(rest, tok)

			if r.takesNextToken(active, tok, args, j) {
				j++
				rest = append(rest, args[j])
			}

			continue
		}

		globalRun = append(globalRun, tok)

		spec := r.global.Lookup(flagOf(tok))
		if _, _, hasValue := option.SplitToken(tok); spec.Type().TakesValue() && !hasValue && j+1 < len(args) {
			if _, isCommand := r.commands.Get(args[j+1]); !isCommand {
				j++
				globalRun = append(globalRun, args[j])
			}
		}

		r.logger.Debug("global option hoisted", "token", tok, "after", active.name)
	}

	return globalRun, rest
}

// takesNextToken reports whether tok is a value-taking option of active
// without an inline value, followed by a token that is not a command name.
func (r *Registry) takesNextToken(active *Command, tok string, args []string, j int) bool {
	if active == nil || !isNamed(tok) || j+1 >= len(args) {
		return false
	}

	flag, _, hasValue := option.SplitToken(tok)

	spec := active.Lookup(flag)
	if spec == nil || !spec.Type().TakesValue() || hasValue {
		return false
	}

	_, isCommand := r.commands.Get(args[j+1])

	return !isCommand
}

// hoistable reports whether tok is a global named option given after a
// command that does not declare it.
func (r *Registry) hoistable(active *Command, tok string) bool {
	if active == nil || !isNamed(tok) || isHelpToken(tok) {
		return false
	}

	flag := flagOf(tok)

	return active.Lookup(flag) == nil && r.global.Lookup(flag) != nil
}

func flagOf(tok string) string {
	flag, _, _ := option.SplitToken(tok)
	return flag
}

func isHelpToken(tok string) bool {
	return option.Help().Matches(flagOf(tok))
}

func isNamed(tok string) bool {
	return strings.HasPrefix(tok, "-")
}
