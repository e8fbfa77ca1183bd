package field

import (
	"github.com/madeindigio/surrealorm/pkg/valuex"
)

// Order is a single ORDER BY term: a field with optional COLLATE/NUMERIC
// modifiers and ASC/DESC direction (spec §3.4).
type Order struct {
	f         Field
	collate   bool
	numeric   bool
	direction string
}

// OrderBy starts an ordering term on the given field, defaulting to no
// modifiers and ascending direction.
func OrderBy(f Field) Order {
	return Order{f: f, direction: "ASC"}
}

// Collate marks this term to use Unicode collation when comparing strings.
func (o Order) Collate() Order {
	o.collate = true
	return o
}

// Numeric marks this term to compare embedded numbers within strings
// numerically rather than lexically.
func (o Order) Numeric() Order {
	o.numeric = true
	return o
}

// Asc sets ascending order (the default).
func (o Order) Asc() Order {
	o.direction = "ASC"
	return o
}

// Desc sets descending order.
func (o Order) Desc() Order {
	o.direction = "DESC"
	return o
}

// Build renders this ordering term, e.g. "name COLLATE NUMERIC DESC".
func (o Order) Build() string {
	v := o.f.ToValuex()
	if o.collate {
		v = valuex.Append(v, valuex.New("COLLATE"), " ")
	}
	if o.numeric {
		v = valuex.Append(v, valuex.New("NUMERIC"), " ")
	}
	v = valuex.Append(v, valuex.New(o.direction), " ")
	return v.Build()
}

// String implements fmt.Stringer.
func (o Order) String() string { return o.Build() }

// OrderList renders a set of ordering terms as an ORDER BY clause body,
// comma-joined.
type OrderList []Order

// Build renders every term, comma-joined.
func (ol OrderList) Build() string {
	if len(ol) == 0 {
		return ""
	}
	parts := make([]valuex.Valuex, len(ol))
	for i, o := range ol {
		parts[i] = valuex.New(o.Build())
	}
	return valuex.Join(parts, ", ").Build()
}
