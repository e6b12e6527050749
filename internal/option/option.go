// Package option describes a single command option: its key syntax, the kind
// of value it takes, whether it is required, and the values it accepts.
//
// A key has the form `-s|--long=HINT` where the short form and the hint are
// optional. Options declared without a key are positional.
package option

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// HelpKey is the reserved key carried by every command.
const HelpKey = "-h|--help"

// Exported variables.
var (
	ErrAllowedTypeMismatch = errors.New("allowed values do not match option type")
	ErrInvalidKeySyntax    = errors.New("invalid option key")
	ErrInvalidType         = errors.New("invalid option type")
	ErrMissingType         = errors.New("option type must be set")
	ErrMixedAllowedTypes   = errors.New("mixed allowed types")
)

// Decl is an unvalidated option declaration. New turns it into a Spec.
type Decl struct {
	Key      string
	Desc     string
	Type     Type
	Required bool
	Allowed  []any
}

// Spec is a validated, immutable option description.
type Spec struct {
	key      string
	short    string
	long     string
	hint     string
	desc     string
	typ      Type
	required bool
	allowed  []any
}

// Help returns the reserved -h|--help flag.
func Help() *Spec {
	return &Spec{
		key:   HelpKey,
		short: "-h",
		long:  "--help",
		desc:  "Print command/options help",
		typ:   Flag,
	}
}

// New validates d and returns the option it declares.
func New(d Decl) (*Spec, error) {
	spec := &Spec{
		key:      d.Key,
		desc:     d.Desc,
		required: d.Required,
	}

	if d.Key != "" {
		short, long, hint, err := parseKey(d.Key)
		if err != nil {
			return nil, err
		}

		spec.short, spec.long, spec.hint = short, long, hint
	} else {
		spec.required = true
	}

	typ, err := resolveType(d.Type, d.Key == "", spec.hint != "", d.Key)
	if err != nil {
		return nil, err
	}

	spec.typ = typ

	allowed, err := validateAllowed(d.Allowed, typ)
	if err != nil {
		return nil, err
	}

	spec.allowed = allowed

	return spec, nil
}

// Allowed returns a copy of the accepted values; empty means unconstrained.
func (s *Spec) Allowed() []any {
	return append([]any(nil), s.allowed...)
}

// Desc returns the free-form description.
func (s *Spec) Desc() string { return s.desc }

// Hint returns the value placeholder following `=` in the key, if any.
func (s *Spec) Hint() string { return s.hint }

// ID returns the result identifier for this option. Named options use their
// long form without dashes (inner dashes become underscores); positional
// options use the command name followed by their positional index.
func (s *Spec) ID(command string, index int) string {
	if s.Positional() {
		return fmt.Sprintf("%s%d", command, index)
	}

	return strings.ReplaceAll(strings.TrimPrefix(s.long, "--"), "-", "_")
}

// IsHelp reports whether this is the reserved help flag.
func (s *Spec) IsHelp() bool {
	return s.key == HelpKey
}

// Key returns the raw key declaration, empty for positional options.
func (s *Spec) Key() string { return s.key }

// Long returns the `--long` form.
func (s *Spec) Long() string { return s.long }

// Matches reports whether flag (as returned by SplitToken) names this option.
func (s *Spec) Matches(flag string) bool {
	if s.Positional() || flag == "" {
		return false
	}

	return flag == s.long || (s.short != "" && flag == s.short)
}

// Positional reports whether the option is identified by position.
func (s *Spec) Positional() bool { return s.key == "" }

// Required reports whether the option must be given.
func (s *Spec) Required() bool { return s.required }

// Short returns the `-s` form, empty if none was declared.
func (s *Spec) Short() string { return s.short }

// Type returns the resolved value type.
func (s *Spec) Type() Type { return s.typ }

// SplitToken splits a named-option token into its flag part and an inline
// value. `--skip=a,b` yields ("--skip", "a,b", true); `-s` yields ("-s", "", false).
func SplitToken(token string) (flag, value string, hasValue bool) {
	flag, value, hasValue = strings.Cut(token, "=")
	return flag, value, hasValue
}

// unexported variables.
var (
	//nolint:gochecknoglobals // compiled once
	keyChars = regexp.MustCompile(`^[A-Za-z0-9_\-=|]+$`)
	//nolint:gochecknoglobals // compiled once
	keyGrammar = regexp.MustCompile(`^(?:(-[A-Za-z])\|)?(--[A-Za-z0-9][A-Za-z0-9_\-]*)(?:=([A-Za-z0-9_]+))?$`)
)

func parseKey(key string) (short, long, hint string, err error) {
	if strings.Count(key, "=") > 1 || strings.Count(key, "|") > 1 || !keyChars.MatchString(key) {
		return "", "", "", fmt.Errorf("%w %s", ErrInvalidKeySyntax, key)
	}

	m := keyGrammar.FindStringSubmatch(key)
	if m == nil {
		return "", "", "", fmt.Errorf("%w %s", ErrInvalidKeySyntax, key)
	}

	return m[1], m[2], m[3], nil
}

func resolveType(declared Type, positional, hasHint bool, key string) (Type, error) {
	if declared != Unset && !declared.Valid() {
		return Unset, fmt.Errorf("%w %s", ErrInvalidType, declared)
	}

	if hasHint && declared == Unset {
		return Unset, ErrMissingType
	}

	switch {
	case hasHint && declared == Flag:
		return Unset, fmt.Errorf("%w %s: flag %s cannot take a value", ErrInvalidType, declared, key)
	case positional && declared == Flag:
		return Unset, fmt.Errorf("%w %s: positional options take a value", ErrInvalidType, declared)
	case declared != Unset:
		return declared, nil
	case positional:
		return String, nil
	default:
		return Flag, nil
	}
}

func validateAllowed(allowed []any, typ Type) ([]any, error) {
	if len(allowed) == 0 {
		return nil, nil
	}

	normalized := make([]any, 0, len(allowed))

	for _, v := range allowed {
		switch x := v.(type) {
		case string:
			normalized = append(normalized, x)
		case int:
			normalized = append(normalized, x)
		case int64:
			normalized = append(normalized, int(x))
		case int32:
			normalized = append(normalized, int(x))
		default:
			return nil, fmt.Errorf("%w: unsupported allowed value %v (%T)", ErrAllowedTypeMismatch, v, v)
		}
	}

	_, firstIsString := normalized[0].(string)
	for _, v := range normalized[1:] {
		if _, isString := v.(string); isString != firstIsString {
			return nil, ErrMixedAllowedTypes
		}
	}

	switch typ {
	case Integer:
		if firstIsString {
			return nil, fmt.Errorf("%w %s", ErrAllowedTypeMismatch, typ)
		}
	case String, StringList:
		if !firstIsString {
			return nil, fmt.Errorf("%w %s", ErrAllowedTypeMismatch, typ)
		}
	default:
		return nil, fmt.Errorf("%w %s", ErrAllowedTypeMismatch, typ)
	}

	return normalized, nil
}
