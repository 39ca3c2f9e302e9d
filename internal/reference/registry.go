package reference

import (
	"sort"
	"strings"

	"github.com/AndreyAkinshin/keplergrade/pkg/grade"
)

// Registered function names.
const (
	NameMassBH = "mass_bh"
	NameLine   = "line"
)

// Param describes one positional argument of a reference function.
type Param struct {
	Name string
	Unit string
}

// Function is a reference function together with the metadata needed to
// build suites for it.
type Function struct {
	Name   string
	Title  string
	Params []Param
	Unit   string
	Eval   grade.ReferenceFunc
}

// Arity returns the number of positional arguments.
func (f Function) Arity() int {
	return len(f.Params)
}

// Registry maps function names to reference functions.
type Registry struct {
	funcs map[string]Function
}

// NewRegistry creates a registry of the built-in functions bound to lib.
func NewRegistry(lib *Library) *Registry {
	r := &Registry{
		funcs: make(map[string]Function),
	}

	r.register(Function{
		Name:  NameMassBH,
		Title: "Blackhole Mass",
		Params: []Param{
			{Name: "Semi-Major Axis", Unit: "m"},
			{Name: "Period", Unit: "s"},
		},
		Unit: "kg",
		Eval: grade.Reference2(lib.MassBH),
	})
	r.register(Function{
		Name:  NameLine,
		Title: "Line Function",
		Params: []Param{
			{Name: "x"},
			{Name: "m"},
			{Name: "b"},
		},
		Eval: grade.Reference3(Line),
	})

	return r
}

func (r *Registry) register(f Function) {
	r.funcs[f.Name] = f
}

// Lookup returns the function registered under name. Matching is
// case-insensitive.
func (r *Registry) Lookup(name string) (Function, bool) {
	f, ok := r.funcs[strings.ToLower(name)]
	return f, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
