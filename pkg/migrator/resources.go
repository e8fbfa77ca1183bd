package migrator

import "github.com/madeindigio/surrealorm/pkg/field"

// Resource is one DDL-bearing object: its name and the exact DEFINE
// statement text that creates it, spec §4.5.1.
type Resource struct {
	Name   string
	Define string
}

// TableResource is a table plus everything scoped to it, spec §4.5.1's
// parenthetical "(and, for tables, their fields, events, indexes)".
type TableResource struct {
	Table   Resource
	Fields  []Resource
	Events  []Resource
	Indexes []Resource
	// OldNames maps a field's current name to the old_name tag it declares,
	// if any (spec §4.4 field-level old_name) — an explicit rename claim
	// that lets the diff algorithm skip the rename-or-delete prompt.
	OldNames map[string]string
}

// DbResources is the codebase's (or a replayed migrations directory's)
// complete declared schema — the Go analogue of the original's DbResources
// trait (spec §4.5.1). A caller typically builds one from a set of
// model.SchemaModel values (via schema.Derive) plus any free-standing
// analyzers/params/functions/scopes/tokens/users the codebase declares.
type DbResources struct {
	Tables    []TableResource
	Analyzers []Resource
	Params    []Resource
	Functions []Resource
	Scopes    []Resource
	Tokens    []Resource
	Users     []Resource
}

// ResourceBuilder accumulates resources fluently — the programmatic
// counterpart to a codebase listing its models and DDL statements in one
// place for the "right" (desired) side of the diff.
type ResourceBuilder struct {
	res DbResources
}

// NewResourceBuilder starts an empty builder.
func NewResourceBuilder() *ResourceBuilder { return &ResourceBuilder{} }

// AddTable registers a table and its per-table DEFINEs, typically sourced
// from a schema.Derived's DefineTableRaw/DefineFieldRaws.
func (b *ResourceBuilder) AddTable(tableName field.Table, defineTable string, fields, events, indexes map[string]string) *ResourceBuilder {
	tr := TableResource{Table: Resource{Name: tableName.String(), Define: defineTable}}
	tr.Fields = toResources(fields)
	tr.Events = toResources(events)
	tr.Indexes = toResources(indexes)
	b.res.Tables = append(b.res.Tables, tr)
	return b
}

// WithOldNames attaches explicit rename claims to the table most recently
// added via AddTable, skipping the rename-or-delete prompt for those fields.
func (b *ResourceBuilder) WithOldNames(oldNames map[string]string) *ResourceBuilder {
	if n := len(b.res.Tables); n > 0 {
		b.res.Tables[n-1].OldNames = oldNames
	}
	return b
}

// AddAnalyzer registers a DEFINE ANALYZER resource.
func (b *ResourceBuilder) AddAnalyzer(name, define string) *ResourceBuilder {
	b.res.Analyzers = append(b.res.Analyzers, Resource{Name: name, Define: define})
	return b
}

// AddParam registers a DEFINE PARAM resource.
func (b *ResourceBuilder) AddParam(name, define string) *ResourceBuilder {
	b.res.Params = append(b.res.Params, Resource{Name: name, Define: define})
	return b
}

// AddFunction registers a DEFINE FUNCTION resource.
func (b *ResourceBuilder) AddFunction(name, define string) *ResourceBuilder {
	b.res.Functions = append(b.res.Functions, Resource{Name: name, Define: define})
	return b
}

// AddScope registers a DEFINE SCOPE resource.
func (b *ResourceBuilder) AddScope(name, define string) *ResourceBuilder {
	b.res.Scopes = append(b.res.Scopes, Resource{Name: name, Define: define})
	return b
}

// AddToken registers a DEFINE TOKEN resource.
func (b *ResourceBuilder) AddToken(name, define string) *ResourceBuilder {
	b.res.Tokens = append(b.res.Tokens, Resource{Name: name, Define: define})
	return b
}

// AddUser registers a DEFINE USER resource.
func (b *ResourceBuilder) AddUser(name, define string) *ResourceBuilder {
	b.res.Users = append(b.res.Users, Resource{Name: name, Define: define})
	return b
}

// Build returns the accumulated resources.
func (b *ResourceBuilder) Build() DbResources { return b.res }

func toResources(m map[string]string) []Resource {
	out := make([]Resource, 0, len(m))
	for name, define := range m {
		out = append(out, Resource{Name: name, Define: define})
	}
	return out
}

// AllStatements flattens every DEFINE string in resources, in the order
// tables-then-fields/events/indexes-then-the-rest, for replaying into a
// fresh in-memory database (spec §4.5.2's "execute the DDL strings").
func (r DbResources) AllStatements() []string {
	var out []string
	for _, t := range r.Tables {
		out = append(out, t.Table.Define)
		for _, f := range t.Fields {
			out = append(out, f.Define)
		}
		for _, e := range t.Events {
			out = append(out, e.Define)
		}
		for _, idx := range t.Indexes {
			out = append(out, idx.Define)
		}
	}
	for _, group := range [][]Resource{r.Analyzers, r.Params, r.Functions, r.Scopes, r.Tokens, r.Users} {
		for _, res := range group {
			out = append(out, res.Define)
		}
	}
	return out
}
