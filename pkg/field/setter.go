package field

import (
	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/valuex"
)

// Setter is a single "field = value"-shaped assignment fragment used by
// UPDATE/UPSERT SET clauses. Grounded on
// original_source/rust/surrealdb-query-builder/src/types/field_updater.rs.
type Setter struct {
	v valuex.Valuex
}

// NewSetter starts a setter for the given field path with no assignment yet
// applied — call one of Equal/IncrementBy/Append/... to produce the final
// fragment.
func NewSetter(f Field) Setter {
	return Setter{v: f.ToValuex()}
}

func (s Setter) op(operator string, value any) Setter {
	return Setter{v: valuex.Operator(s.v, operator, toValuex(value))}
}

// Equal renders "field = value".
func (s Setter) Equal(value any) Setter { return s.op("=", value) }

// IncrementBy renders "field += value" — idiomatic alias for numeric
// increments.
func (s Setter) IncrementBy(value any) Setter { return s.op("+=", value) }

// Append renders "field += value" — idiomatic alias for appending an item to
// an array-valued field.
func (s Setter) Append(value any) Setter { return s.op("+=", value) }

// DecrementBy renders "field -= value" — idiomatic alias for numeric
// decrements.
func (s Setter) DecrementBy(value any) Setter { return s.op("-=", value) }

// Remove renders "field -= value" — idiomatic alias for removing an item
// from an array-valued field.
func (s Setter) Remove(value any) Setter { return s.op("-=", value) }

// PlusEqual is the non-idiomatic-name counterpart to IncrementBy, kept for
// parity with the original API surface.
func (s Setter) PlusEqual(value any) Setter { return s.op("+=", value) }

// MinusEqual is the non-idiomatic-name counterpart to DecrementBy.
func (s Setter) MinusEqual(value any) Setter { return s.op("-=", value) }

// Build implements valuex.Buildable.
func (s Setter) Build() string { return s.v.Build() }

// GetBindings implements valuex.Parametric.
func (s Setter) GetBindings() binding.List { return s.v.GetBindings() }

// GetErrors implements valuex.Erroneous.
func (s Setter) GetErrors() []string { return s.v.GetErrors() }

// String implements fmt.Stringer.
func (s Setter) String() string { return s.Build() }

// Updateables is a SET clause's payload: either a single Setter or a batch of
// them, joined with ", " when built (spec §3.4).
type Updateables struct {
	setters []Setter
}

// NewUpdateables collects one or more setters into a single SET-clause
// payload.
func NewUpdateables(setters ...Setter) Updateables {
	return Updateables{setters: setters}
}

// Build renders every setter, comma-joined.
func (u Updateables) Build() string {
	parts := make([]valuex.Valuex, len(u.setters))
	for i, s := range u.setters {
		parts[i] = s.v
	}
	return valuex.Join(parts, ", ").Build()
}

// GetBindings flattens every setter's bindings in order.
func (u Updateables) GetBindings() binding.List {
	var out binding.List
	for _, s := range u.setters {
		out = out.Concat(s.GetBindings())
	}
	return out
}

// GetErrors flattens every setter's errors in order.
func (u Updateables) GetErrors() []string {
	var out []string
	for _, s := range u.setters {
		out = append(out, s.GetErrors()...)
	}
	return out
}
