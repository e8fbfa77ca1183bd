package field

import (
	"fmt"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/valuex"
)

// Filter is a boolean expression tree built by cond(expr) with
// .And()/.Or()/.Not()/.Bracketed(). Spec §3.3.
type Filter struct {
	v valuex.Valuex
}

func newFilterFromValuex(v valuex.Valuex) Filter { return Filter{v: v} }

// Cond creates a new filter from a raw SurrealQL boolean expression string.
func Cond(expr string) Filter {
	return Filter{v: valuex.New(expr)}
}

// CondValuex creates a new filter directly from a Valuex, preserving its
// bindings — used when the condition embeds a sub-query or function call.
func CondValuex(v valuex.Valuex) Filter {
	return Filter{v: v}
}

// Build implements valuex.Buildable.
func (f Filter) Build() string { return f.v.Build() }

// GetBindings implements valuex.Parametric.
func (f Filter) GetBindings() binding.List { return f.v.GetBindings() }

// GetErrors implements valuex.Erroneous.
func (f Filter) GetErrors() []string { return f.v.GetErrors() }

// String implements fmt.Stringer.
func (f Filter) String() string { return f.Build() }

// bracketIfNotAlready wraps f's current rendering in parens unless it is
// already a single bracketed group (idempotent bracketing, spec §3.3/§8).
func (f Filter) bracketIfNotAlready() valuex.Valuex {
	return f.v.Bracketed()
}

// And combines this filter with another using AND, bracketing each side so
// precedence is unambiguous regardless of what either side already
// contains.
func (f Filter) And(other Filter) Filter {
	lhs := f.bracketIfNotAlready()
	rhs := other.bracketIfNotAlready()
	return Filter{v: valuex.Operator(lhs, "AND", rhs)}
}

// Or combines this filter with another using OR, same bracketing discipline
// as And.
func (f Filter) Or(other Filter) Filter {
	lhs := f.bracketIfNotAlready()
	rhs := other.bracketIfNotAlready()
	return Filter{v: valuex.Operator(lhs, "OR", rhs)}
}

// Not negates this filter: "!(...)".
func (f Filter) Not() Filter {
	return Filter{v: valuex.Append(valuex.New("!"), f.v.Bracketed(), "")}
}

// Bracketed wraps this filter's rendering in parentheses, idempotently
// (spec §3.3, §8 invariant 4).
func (f Filter) Bracketed() Filter {
	return Filter{v: f.v.Bracketed()}
}

// Empty is a Filter/Setter/etc. placeholder meaning "no clause" — used
// wherever the original union admits an explicit empty variant (e.g. an
// unconditional join in a relate expression).
type Empty struct{}

// AsFilter converts Empty into a no-op filter whose Build renders "".
func (Empty) AsFilter() Filter { return Filter{v: valuex.New("")} }

// IsEmpty reports whether this filter renders to nothing.
func (f Filter) IsEmpty() bool { return f.v.Build() == "" }

// condAll combines a variadic set of filters with AND, skipping any empty
// ones — used internally by WHERE clause assembly.
func condAll(filters ...Filter) Filter {
	var acc Filter
	started := false
	for _, fl := range filters {
		if fl.IsEmpty() {
			continue
		}
		if !started {
			acc = fl
			started = true
			continue
		}
		acc = acc.And(fl)
	}
	return acc
}

// CondAll is the exported form of condAll, joining every non-empty filter
// with AND in order.
func CondAll(filters ...Filter) Filter { return condAll(filters...) }

// fmtRhs formats a raw (non-Valuex) right-hand side with %v; nothing in
// this package calls it.
func fmtRhs(v any) string { return fmt.Sprintf("%v", v) }
