package statements

import (
	"fmt"
	"strings"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/field"
)

// Delete builds a DELETE statement (spec §4.3.3).
type Delete struct {
	only     bool
	target   Target
	where    field.Filter
	ret      Return
	timeout  string
	parallel bool
}

// DeleteFrom starts a DELETE against a table, record id, or id range.
func DeleteFrom(target Target) Delete { return Delete{target: target} }

// Only marks the statement to return a single record.
func (d Delete) Only() Delete { d.only = true; return d }

// Where sets the WHERE filter.
func (d Delete) Where(f field.Filter) Delete { d.where = f; return d }

// Return sets the RETURN clause.
func (d Delete) Return(r Return) Delete { d.ret = r; return d }

// Timeout sets the TIMEOUT clause.
func (d Delete) Timeout(dur string) Delete { d.timeout = dur; return d }

// Parallel enables the PARALLEL clause.
func (d Delete) Parallel() Delete { d.parallel = true; return d }

// Build implements valuex.Buildable.
func (d Delete) Build() string {
	var sb strings.Builder
	sb.WriteString("DELETE ")
	sb.WriteString(d.target.build())
	if d.only {
		sb.WriteString(" ONLY")
	}
	if !d.where.IsEmpty() {
		fmt.Fprintf(&sb, " WHERE %s", d.where.Build())
	}
	if !d.ret.isZero() {
		sb.WriteString(" ")
		sb.WriteString(d.ret.build())
	}
	if d.timeout != "" {
		fmt.Fprintf(&sb, " TIMEOUT %s", d.timeout)
	}
	if d.parallel {
		sb.WriteString(" PARALLEL")
	}
	return sb.String()
}

// GetBindings implements valuex.Parametric.
func (d Delete) GetBindings() binding.List {
	var out binding.List
	out = out.Concat(d.target.bindings())
	out = out.Concat(d.where.GetBindings())
	return out
}

// GetErrors implements valuex.Erroneous.
func (d Delete) GetErrors() []string {
	var out []string
	out = append(out, d.target.errs()...)
	out = append(out, d.where.GetErrors()...)
	return out
}
