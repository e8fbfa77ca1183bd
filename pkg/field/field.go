package field

import (
	"strings"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/valuex"
)

// Field is a dot-separated path into a record, with graph-traversal
// extensions ("user.friend.name", "->writes->book.title"). Spec §3.3.
type Field struct {
	path     string
	bindings binding.List
}

// NewField builds a plain field path.
func NewField(path string) Field {
	return Field{path: path}
}

// WithBindings attaches bindings captured while constructing this field from
// a sub-query (spec §3.3 "Field ... carries its own bindings when
// constructed from sub-queries").
func (f Field) WithBindings(b binding.List) Field {
	f.bindings = f.bindings.Concat(b)
	return f
}

// Dot appends a sub-path segment, e.g. user.Dot("friend").Dot("name").
func (f Field) Dot(segment string) Field {
	if f.path == "" {
		return Field{path: segment, bindings: f.bindings}
	}
	return Field{path: f.path + "." + segment, bindings: f.bindings}
}

// Prefixed returns a copy of f with prefix prepended as a leading path
// segment — used by a nested object's schema_prefixed(prefix) constructor
// (spec §4.4).
func (f Field) Prefixed(prefix string) Field {
	if prefix == "" {
		return f
	}
	return Field{path: prefix + "." + f.path, bindings: f.bindings}
}

// Arrow prepends a graph-traversal arrow segment, e.g.
// student.Arrow("writes").Arrow("book") renders "student->writes->book".
func (f Field) Arrow(edgeOrTable string) Field {
	return Field{path: f.path + "->" + edgeOrTable, bindings: f.bindings}
}

// String renders the field's path.
func (f Field) String() string { return f.path }

// Build implements valuex.Buildable.
func (f Field) Build() string { return f.path }

// GetBindings implements valuex.Parametric.
func (f Field) GetBindings() binding.List { return f.bindings }

// GetErrors implements valuex.Erroneous: a bare field path never carries a
// deferred error by itself.
func (f Field) GetErrors() []string { return nil }

// ToValuex renders the field as a generic expression value.
func (f Field) ToValuex() valuex.Valuex {
	v := valuex.New(f.path)
	for _, b := range f.bindings {
		v = valuex.Append(v, valuex.FromBinding(b), "")
	}
	return v
}

// Comparison operators. Each produces a Filter (defined in filter.go) so
// that field.GreaterThanOrEqual(18) composes directly with cond()/and()/or().

func (f Field) binOp(op string, rhs any) Filter {
	rv := toValuex(rhs)
	composed := valuex.Operator(f.ToValuex(), op, rv)
	return newFilterFromValuex(composed)
}

// Equal renders "field = rhs".
func (f Field) Equal(rhs any) Filter { return f.binOp("=", rhs) }

// NotEqual renders "field != rhs".
func (f Field) NotEqual(rhs any) Filter { return f.binOp("!=", rhs) }

// GreaterThan renders "field > rhs".
func (f Field) GreaterThan(rhs any) Filter { return f.binOp(">", rhs) }

// GreaterThanOrEqual renders "field >= rhs".
func (f Field) GreaterThanOrEqual(rhs any) Filter { return f.binOp(">=", rhs) }

// LessThan renders "field < rhs".
func (f Field) LessThan(rhs any) Filter { return f.binOp("<", rhs) }

// LessThanOrEqual renders "field <= rhs".
func (f Field) LessThanOrEqual(rhs any) Filter { return f.binOp("<=", rhs) }

// Contains renders "field CONTAINS rhs".
func (f Field) Contains(rhs any) Filter { return f.binOp("CONTAINS", rhs) }

// Inside renders "field INSIDE rhs".
func (f Field) Inside(rhs any) Filter { return f.binOp("INSIDE", rhs) }

// Like renders "field ~ rhs" (SurrealQL's fuzzy match operator).
func (f Field) Like(rhs any) Filter { return f.binOp("~", rhs) }

// toValuex converts a polymorphic right-hand side into a Valuex: Field and
// valuex.Valuex pass through their own rendering; anything else becomes a
// fresh literal binding. This is the Go analogue of the NumberLike/
// StrandLike/... union conversions in spec §4.2.
func toValuex(v any) valuex.Valuex {
	switch val := v.(type) {
	case valuex.Valuex:
		return val
	case Field:
		return val.ToValuex()
	case Param:
		return valuex.New(val.String())
	default:
		return valuex.Literal(v)
	}
}

// Param is a user-visible named placeholder ($x), rendered literally
// (spec §3.3).
type Param string

// NewParam constructs a $-prefixed named parameter reference.
func NewParam(name string) Param {
	return Param("$" + strings.TrimPrefix(name, "$"))
}

// String renders the parameter reference.
func (p Param) String() string { return string(p) }

// Build implements valuex.Buildable.
func (p Param) Build() string { return string(p) }
