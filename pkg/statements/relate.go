package statements

import (
	"fmt"
	"strings"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/field"
	"github.com/madeindigio/surrealorm/pkg/valuex"
)

// Relate builds a RELATE statement over a graph edge expression
// "from -> edge -> to" (spec §4.3.4). Grounded on
// original_source/rust/surrealdb-query-builder/src/statements/relate.rs.
type Relate struct {
	relation    valuex.Valuex
	payloadKind payloadKind
	content     binding.Binding
	setters     field.Updateables
	ret         Return
	timeout     string
	parallel    bool
	errs        []string
}

// Connection is a graph-traversal expression "from -> edge -> to" built from
// three Fields (spec §4.3.4). Each side may itself be an id, a table, or a
// sub-query rendered as a Field carrying its own bindings.
type Connection struct {
	v valuex.Valuex
}

// NewConnection composes from/edge/to into a single graph-traversal
// expression, e.g. "student:1->writes->book:2".
func NewConnection(from field.Field, edge string, to field.Field) Connection {
	v := valuex.Append(from.ToValuex(), valuex.New("->"+edge+"->"), "")
	v = valuex.Append(v, to.ToValuex(), "")
	return Connection{v: v}
}

// RelateConnection starts a RELATE statement over the given connection.
func RelateConnection(c Connection) Relate {
	return Relate{relation: c.v}
}

// Content sets the CONTENT payload for the new edge record.
func (r Relate) Content(record any) Relate {
	if r.payloadKind != payloadNone {
		r.errs = append(r.errs, "RELATE: CONTENT/SET are mutually exclusive; last write wins")
	}
	r.payloadKind = payloadContent
	r.content = binding.New(record)
	return r
}

// Set sets the SET payload for the new edge record.
func (r Relate) Set(setters ...field.Setter) Relate {
	if r.payloadKind != payloadNone {
		r.errs = append(r.errs, "RELATE: CONTENT/SET are mutually exclusive; last write wins")
	}
	r.payloadKind = payloadSet
	r.setters = field.NewUpdateables(setters...)
	return r
}

// Return sets the RETURN clause.
func (r Relate) Return(ret Return) Relate { r.ret = ret; return r }

// Timeout sets the TIMEOUT clause.
func (r Relate) Timeout(d string) Relate { r.timeout = d; return r }

// Parallel enables the PARALLEL clause.
func (r Relate) Parallel() Relate { r.parallel = true; return r }

// Build implements valuex.Buildable.
func (r Relate) Build() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "RELATE %s", r.relation.Build())
	switch r.payloadKind {
	case payloadContent:
		fmt.Fprintf(&sb, " CONTENT %s", r.content.Placeholder())
	case payloadSet:
		fmt.Fprintf(&sb, " SET %s", r.setters.Build())
	}
	if !r.ret.isZero() {
		sb.WriteString(" ")
		sb.WriteString(r.ret.build())
	}
	if r.timeout != "" {
		fmt.Fprintf(&sb, " TIMEOUT %s", r.timeout)
	}
	if r.parallel {
		sb.WriteString(" PARALLEL")
	}
	return sb.String()
}

// GetBindings implements valuex.Parametric.
func (r Relate) GetBindings() binding.List {
	out := r.relation.GetBindings()
	switch r.payloadKind {
	case payloadContent:
		out = out.Concat(binding.List{r.content})
	case payloadSet:
		out = out.Concat(r.setters.GetBindings())
	}
	return out
}

// GetErrors implements valuex.Erroneous.
func (r Relate) GetErrors() []string {
	out := append([]string{}, r.relation.GetErrors()...)
	if r.payloadKind == payloadSet {
		out = append(out, r.setters.GetErrors()...)
	}
	out = append(out, r.errs...)
	return out
}
