package core

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/toejough/cmdr/internal/option"
)

// Result is the outcome of a successful parse: the global values plus the
// values of every invoked command, in invocation order.
type Result struct {
	global   Values
	commands *orderedmap.OrderedMap[string, Values]
}

// Command returns the values recorded for an invoked command.
func (r *Result) Command(name string) (Values, bool) {
	return r.commands.Get(name)
}

// Commands returns the invoked command names in invocation order.
func (r *Result) Commands() []string {
	names := make([]string, 0, r.commands.Len())
	for pair := r.commands.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// Global returns the global option values. It is always present, possibly empty.
func (r *Result) Global() Values {
	return r.global
}

// Has reports whether name was invoked.
func (r *Result) Has(name string) bool {
	_, ok := r.commands.Get(name)
	return ok
}

// Map returns the whole result as plain Go values keyed by command name,
// with the global values under GlobalCommand.
func (r *Result) Map() map[string]map[string]any {
	out := map[string]map[string]any{GlobalCommand: r.global.Map()}
	for pair := r.commands.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value.Map()
	}

	return out
}

// Values maps option identifiers to coerced values. Absent identifiers
// report false from Get and zero values from the typed accessors.
type Values struct {
	vals map[string]option.Value
}

// Flag reports whether the flag id was given.
func (v Values) Flag(id string) bool {
	return v.vals[id].Bool()
}

// Get returns the value recorded under id.
func (v Values) Get(id string) (option.Value, bool) {
	val, ok := v.vals[id]
	return val, ok
}

// Int returns the integer recorded under id, zero when absent.
func (v Values) Int(id string) int {
	return v.vals[id].Int()
}

// Len returns the number of recorded values.
func (v Values) Len() int {
	return len(v.vals)
}

// Map returns the values as plain Go values.
func (v Values) Map() map[string]any {
	out := make(map[string]any, len(v.vals))
	for id, val := range v.vals {
		out[id] = val.Interface()
	}

	return out
}

// String returns the value recorded under id as written on the command
// line, empty when absent.
func (v Values) String(id string) string {
	return v.vals[id].String()
}

// Strings returns the list recorded under id, nil when absent.
func (v Values) Strings(id string) []string {
	return v.vals[id].Strings()
}

func newResult() *Result {
	return &Result{
		global:   newValues(),
		commands: orderedmap.New[string, Values](),
	}
}

func newValues() Values {
	return Values{vals: map[string]option.Value{}}
}

func (v Values) set(id string, val option.Value) {
	v.vals[id] = val
}
