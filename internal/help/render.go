// Package help rendering functions.
// This file turns command and application views into help text.

package help

import (
	"fmt"
	"strings"

	"github.com/toejough/cmdr/internal/option"
)

// Layout constants.
const (
	// GlobalName is the display prefix of positional global options.
	GlobalName = "global"
	// KeyWidth is the column the option descriptions start at.
	KeyWidth = 40
	// RuleWidth is the width of the banner underline.
	RuleWidth = 80
)

// Banner returns the undecorated application banner: `app_vVERSION` over a
// dashed rule. It is empty when neither app nor version is set.
func Banner(app, version string) string {
	if app == "" && version == "" {
		return ""
	}

	title := app
	if version != "" {
		title += "_v" + version
	}

	return title + "\n" + strings.Repeat("-", RuleWidth)
}

// CommandHelp renders the help text of one command.
func CommandHelp(c Command) string {
	var b strings.Builder

	b.WriteString(c.Desc + "\n")
	writeExamples(&b, c.Examples)
	fmt.Fprintf(&b, "\nUsage: %s %s [options]\n", c.Invoker, c.Name)
	b.WriteString(OptionLines(c.Name, c.Options))

	return b.String()
}

// OptionLines renders one line per option. Positional options are shown as
// the command name followed by their positional index.
func OptionLines(command string, opts []*option.Spec) string {
	var b strings.Builder

	index := 0

	for _, opt := range opts {
		display := opt.Key()
		if opt.Positional() {
			display = opt.ID(command, index)
			index++
		}

		WriteOptionLine(&b, display, opt.Desc(), joinAllowed(opt.Allowed()), opt.Type().Label(), opt.Required())
	}

	return b.String()
}

// RootHelp renders the application help.
func RootHelp(r Root) string {
	var b strings.Builder

	if r.Banner != "" {
		b.WriteString(r.Banner + "\n")
	}

	if r.Examples != "" {
		writeExamples(&b, r.Examples)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Usage: %s [commands] [options]\n", r.Invoker)
	b.WriteString("Global options:\n")
	b.WriteString(OptionLines(GlobalName, r.Globals))
	b.WriteString("COMMANDS:\n")

	for _, cmd := range r.Commands {
		fmt.Fprintf(&b, "%s%-*s%s\n", indent, KeyWidth, cmd.Name, cmd.Desc)
	}

	fmt.Fprintf(&b, "\nsee '%s COMMAND --help' for specific command help\n", r.Invoker)

	return b.String()
}

// unexported constants.
const (
	indent = "    "
)

func joinAllowed(allowed []any) string {
	parts := make([]string, 0, len(allowed))
	for _, v := range allowed {
		parts = append(parts, fmt.Sprint(v))
	}

	return strings.Join(parts, ",")
}

// writeExamples writes the examples block, guaranteeing it ends in a newline.
func writeExamples(b *strings.Builder, examples string) {
	if examples == "" {
		return
	}

	b.WriteString("Examples:\n" + examples)

	if !strings.HasSuffix(StripANSI(examples), "\n") {
		b.WriteString("\n")
	}
}
