package option

import "fmt"

// Type is the kind of value an option accepts.
type Type int

// Type values. Unset means no type was declared; New resolves it to String
// for positional options and Flag for named ones.
const (
	Unset Type = iota
	Flag
	String
	Integer
	StringList
)

// Label returns the name shown in help output after the option description.
func (t Type) Label() string {
	switch t {
	case Flag:
		return "Flag"
	case String:
		return "String"
	case Integer:
		return "Integer"
	case StringList:
		return "Array"
	case Unset:
		return "Unset"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t Type) String() string {
	return t.Label()
}

// TakesValue reports whether an option of this type consumes a value token.
func (t Type) TakesValue() bool {
	return t != Flag && t != Unset
}

// Valid reports whether t is one of the four recognized kinds.
func (t Type) Valid() bool {
	switch t {
	case Flag, String, Integer, StringList:
		return true
	default:
		return false
	}
}
