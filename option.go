package cmdr

import "github.com/toejough/cmdr/internal/option"

// Node is something a command is declared with: an option or examples.
type Node interface {
	apply(d *commandDecl)
}

// OptSetting adjusts an option declaration.
type OptSetting func(*option.Decl)

// Option is an option declaration built by Opt.
type Option struct {
	decl option.Decl
}

// Opt declares an option. An empty key declares a positional option.
func Opt(key, desc string, settings ...OptSetting) Option {
	d := option.Decl{Key: key, Desc: desc}
	for _, s := range settings {
		s(&d)
	}

	return Option{decl: d}
}

// Allowed restricts the values the option accepts. Values must all be
// strings or all be integers, matching the option's type.
func Allowed(values ...any) OptSetting {
	return func(d *option.Decl) {
		d.Allowed = append(d.Allowed, values...)
	}
}

// Examples attaches an examples block to a command's help.
func Examples(text string) Node {
	return examples(text)
}

// Required makes a named option mandatory. Positional options always are.
func Required() OptSetting {
	return func(d *option.Decl) {
		d.Required = true
	}
}

// Typed sets the option's value type.
func Typed(t Type) OptSetting {
	return func(d *option.Decl) {
		d.Type = t
	}
}

type commandDecl struct {
	examples string
	options  []option.Decl
}

type examples string

func (e examples) apply(d *commandDecl) {
	d.examples = string(e)
}

func (o Option) apply(d *commandDecl) {
	d.options = append(d.options, o.decl)
}
