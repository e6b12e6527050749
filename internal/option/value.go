package option

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Exported variables.
var (
	ErrInvalidArrayValue   = errors.New("invalid array value")
	ErrInvalidIntegerValue = errors.New("invalid integer value")
	ErrInvalidStringValue  = errors.New("invalid string value")
)

// ListSeparator splits StringList values.
const ListSeparator = ","

// Value is a coerced option value tagged with the type it was coerced to.
type Value struct {
	typ  Type
	flag bool
	str  string
	num  int
	list []string
}

// FlagValue returns the value recorded for a flag that was given.
func FlagValue() Value {
	return Value{typ: Flag, flag: true}
}

// IntValue wraps n as an Integer value.
func IntValue(n int) Value {
	return Value{typ: Integer, num: n}
}

// ListValue wraps items as a StringList value.
func ListValue(items ...string) Value {
	return Value{typ: StringList, list: append([]string(nil), items...)}
}

// StringValue wraps s as a String value.
func StringValue(s string) Value {
	return Value{typ: String, str: s}
}

// Bool returns the flag state; false for non-flag values.
func (v Value) Bool() bool { return v.flag }

// Int returns the integer; zero for non-integer values.
func (v Value) Int() int { return v.num }

// Interface returns the value as a plain Go value: bool, string, int or []string.
func (v Value) Interface() any {
	switch v.typ {
	case Flag:
		return v.flag
	case Integer:
		return v.num
	case StringList:
		return v.Strings()
	default:
		return v.str
	}
}

// String renders the value the way it would be written on the command line.
func (v Value) String() string {
	switch v.typ {
	case Flag:
		return strconv.FormatBool(v.flag)
	case Integer:
		return strconv.Itoa(v.num)
	case StringList:
		return strings.Join(v.list, ListSeparator)
	default:
		return v.str
	}
}

// Strings returns a copy of the list; nil for non-list values.
func (v Value) Strings() []string {
	if v.typ != StringList {
		return nil
	}

	return append([]string(nil), v.list...)
}

// Type returns the type the value was coerced to.
func (v Value) Type() Type { return v.typ }

// Coerce converts raw to the option's type and checks it against the allowed
// values. Flags ignore raw.
func (s *Spec) Coerce(raw string) (Value, error) {
	switch s.typ {
	case Flag:
		return FlagValue(), nil
	case Integer:
		n, err := strconv.Atoi(raw)
		if err != nil || !s.allows(n) {
			return Value{}, fmt.Errorf("%w '%s'", ErrInvalidIntegerValue, raw)
		}

		return IntValue(n), nil
	case StringList:
		items := strings.Split(raw, ListSeparator)
		for _, item := range items {
			if !s.allows(item) {
				return Value{}, fmt.Errorf("%w '%s'", ErrInvalidArrayValue, item)
			}
		}

		return ListValue(items...), nil
	default:
		if !s.allows(raw) {
			return Value{}, fmt.Errorf("%w '%s'", ErrInvalidStringValue, raw)
		}

		return StringValue(raw), nil
	}
}

func (s *Spec) allows(v any) bool {
	return len(s.allowed) == 0 || slices.Contains(s.allowed, v)
}
