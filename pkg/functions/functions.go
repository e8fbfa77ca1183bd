// Package functions implements namespaced SurrealQL function wrappers
// (spec §4.2/C5): math, string, time, type-coercion, parse, search, geo,
// crypto, http, random, and session categories. Every wrapper accepts
// polymorphic argument types (NumberLike/StrandLike/ArrayLike/...) and
// returns a Function — itself Buildable/Parametric/Erroneous, so it
// composes directly into any statement operand position.
//
// Grounded on original_source/query-builder/src/functions/search.rs (the
// create_single_search_arg_helper pattern generalized here into call) and
// original_source/rust/surrealdb-query-builder/src/functions/{parse,type_}.rs.
package functions

import (
	"strings"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/field"
	"github.com/madeindigio/surrealorm/pkg/valuex"
)

// Function is a single "namespace::name(args...)" call fragment.
type Function struct {
	v valuex.Valuex
}

// Build implements valuex.Buildable.
func (f Function) Build() string { return f.v.Build() }

// GetBindings implements valuex.Parametric.
func (f Function) GetBindings() binding.List { return f.v.GetBindings() }

// GetErrors implements valuex.Erroneous.
func (f Function) GetErrors() []string { return f.v.GetErrors() }

// String implements fmt.Stringer.
func (f Function) String() string { return f.Build() }

// toValuex converts a polymorphic argument into a Valuex: an existing
// Valuex/Function/Field/Param passes its own rendering through; anything
// else becomes a fresh literal binding. The Go analogue of the NumberLike/
// StrandLike/... union conversions in spec §4.2.
func toValuex(v any) valuex.Valuex {
	switch val := v.(type) {
	case valuex.Valuex:
		return val
	case Function:
		return val.v
	case field.Field:
		return val.ToValuex()
	case field.Param:
		return valuex.New(val.String())
	default:
		return valuex.Literal(v)
	}
}

// call renders "namespace::name(arg1, arg2, ...)", merging every argument's
// bindings/errors in order — the single mechanism every wrapper in this
// package delegates to.
func call(qualifiedName string, args ...any) Function {
	rendered := make([]string, len(args))
	var binds binding.List
	var errs []string
	for i, a := range args {
		v := toValuex(a)
		rendered[i] = v.Build()
		binds = binds.Concat(v.GetBindings())
		errs = append(errs, v.GetErrors()...)
	}
	str := qualifiedName + "(" + strings.Join(rendered, ", ") + ")"
	return Function{v: valuex.Compose(str, binds, errs)}
}
