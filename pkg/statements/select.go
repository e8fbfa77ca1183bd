package statements

import (
	"fmt"
	"strings"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/field"
)

// Select builds a SELECT statement. Clause emission order is fixed and
// matches SurrealQL's grammar (spec §4.3.1).
type Select struct {
	only         bool
	projection   []field.Field
	allFields    bool
	fieldsCalled bool
	from         []Target
	withIndex    []string
	where        field.Filter
	split        []field.Field
	groupAll     bool
	groupBy      []field.Field
	orderBy      field.OrderList
	limit        *int
	start        *int
	fetch        []field.Field
	timeout      string
	parallel     bool
	explain      bool
	version      string
}

// SelectFrom starts a SELECT targeting one or more tables/ids/sub-queries.
func SelectFrom(targets ...Target) Select {
	return Select{from: targets}
}

// Fields sets the projection list. Calling it with no arguments is a
// build-time error (spec §8 boundary behavior "An empty projection list in
// SELECT is a build-time error") — use All instead to explicitly request
// every field.
func (s Select) Fields(fields ...field.Field) Select {
	s.projection = fields
	s.fieldsCalled = true
	return s
}

// All marks the projection as an explicit "every field" request, rendering
// "SELECT *" the same way an unset projection does but without the
// empty-projection error Fields() with no arguments would record.
func (s Select) All() Select {
	s.allFields = true
	s.fieldsCalled = true
	return s
}

// Only marks the statement to return a single record rather than an array.
func (s Select) Only() Select { s.only = true; return s }

// WithIndex names one or more indexes the planner should use.
func (s Select) WithIndex(names ...string) Select { s.withIndex = names; return s }

// Where sets the WHERE filter.
func (s Select) Where(f field.Filter) Select { s.where = f; return s }

// Split sets the SPLIT clause fields.
func (s Select) Split(fields ...field.Field) Select { s.split = fields; return s }

// GroupAll renders "GROUP ALL".
func (s Select) GroupAll() Select { s.groupAll = true; return s }

// GroupBy sets the GROUP BY clause fields.
func (s Select) GroupBy(fields ...field.Field) Select { s.groupBy = fields; return s }

// OrderBy sets the ORDER BY clause terms.
func (s Select) OrderBy(terms ...field.Order) Select { s.orderBy = terms; return s }

// Limit sets the LIMIT clause.
func (s Select) Limit(n int) Select { s.limit = &n; return s }

// Start sets the START clause (pagination offset).
func (s Select) Start(n int) Select { s.start = &n; return s }

// Fetch sets the FETCH clause fields (eagerly resolving linked records).
func (s Select) Fetch(fields ...field.Field) Select { s.fetch = fields; return s }

// Timeout sets the TIMEOUT clause, e.g. "5s".
func (s Select) Timeout(d string) Select { s.timeout = d; return s }

// Parallel enables the PARALLEL clause.
func (s Select) Parallel() Select { s.parallel = true; return s }

// Explain enables the EXPLAIN clause.
func (s Select) Explain() Select { s.explain = true; return s }

// Version sets the VERSION clause (time-travel query).
func (s Select) Version(v string) Select { s.version = v; return s }

// Build implements valuex.Buildable.
func (s Select) Build() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	if len(s.projection) == 0 {
		sb.WriteString("*")
	} else {
		parts := make([]string, len(s.projection))
		for i, f := range s.projection {
			parts[i] = f.String()
		}
		sb.WriteString(strings.Join(parts, ", "))
	}

	fromParts := make([]string, len(s.from))
	for i, t := range s.from {
		fromParts[i] = t.build()
	}
	fmt.Fprintf(&sb, " FROM %s", strings.Join(fromParts, ", "))

	if s.only {
		sb.WriteString(" ONLY")
	}
	if len(s.withIndex) > 0 {
		fmt.Fprintf(&sb, " WITH INDEX %s", strings.Join(s.withIndex, ", "))
	}
	if !s.where.IsEmpty() {
		fmt.Fprintf(&sb, " WHERE %s", s.where.Build())
	}
	if len(s.split) > 0 {
		fmt.Fprintf(&sb, " SPLIT %s", joinFields(s.split))
	}
	if s.groupAll {
		sb.WriteString(" GROUP ALL")
	} else if len(s.groupBy) > 0 {
		fmt.Fprintf(&sb, " GROUP BY %s", joinFields(s.groupBy))
	}
	if len(s.orderBy) > 0 {
		fmt.Fprintf(&sb, " ORDER BY %s", s.orderBy.Build())
	}
	if s.limit != nil {
		fmt.Fprintf(&sb, " LIMIT %d", *s.limit)
	}
	if s.start != nil {
		fmt.Fprintf(&sb, " START %d", *s.start)
	}
	if len(s.fetch) > 0 {
		fmt.Fprintf(&sb, " FETCH %s", joinFields(s.fetch))
	}
	if s.timeout != "" {
		fmt.Fprintf(&sb, " TIMEOUT %s", s.timeout)
	}
	if s.parallel {
		sb.WriteString(" PARALLEL")
	}
	if s.explain {
		sb.WriteString(" EXPLAIN")
	}
	if s.version != "" {
		fmt.Fprintf(&sb, " VERSION %s", s.version)
	}
	return sb.String()
}

// GetBindings implements valuex.Parametric.
func (s Select) GetBindings() binding.List {
	var out binding.List
	out = out.Concat(s.where.GetBindings())
	for _, t := range s.from {
		out = out.Concat(t.bindings())
	}
	return out
}

// GetErrors implements valuex.Erroneous.
func (s Select) GetErrors() []string {
	var out []string
	if s.fieldsCalled && !s.allFields && len(s.projection) == 0 {
		out = append(out, "SELECT: empty projection list; call All() to select every field")
	}
	out = append(out, s.where.GetErrors()...)
	for _, t := range s.from {
		out = append(out, t.errs()...)
	}
	return out
}

func joinFields(fields []field.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
