package migrator

import "github.com/madeindigio/surrealorm/pkg/field"

// ModelSchema is the subset of schema.Derived's exported surface this package
// needs to turn a derived model into a TableResource — expressed structurally
// so migrator never imports pkg/schema directly (spec §4.5.1's DbResources is
// built from whatever implements model.SchemaModel).
type ModelSchema interface {
	TableName() field.Table
	DefineTableRaw() string
	DefineFieldRaws() []string
}

// OldNamer is an optional ModelSchema extension for models that expose the
// old_name rename claims their fields declared (spec §3's RENAME_MAP
// artifact). *schema.Derived implements this via its OldNames method;
// ResourcesFromModels checks for it with a type assertion rather than
// folding it into ModelSchema so a minimal hand-written ModelSchema (e.g. a
// test fake, or a cmd/ormgen-generated companion with no rename claims)
// doesn't need to implement a method it has nothing to report.
type OldNamer interface {
	OldNames() map[string]string
}

// ResourcesFromModels builds a DbResources whose tables come straight from a
// set of derived models, for the common case where a codebase's "right side"
// state is nothing but its model definitions plus a handful of free-standing
// DDL resources added afterward via the returned ResourceBuilder. Any model
// that also implements OldNamer has its rename claims attached via
// WithOldNames, so the migration engine's rename-skip-the-prompt path
// (spec §3 RENAME_MAP) sees them end to end.
func ResourcesFromModels(models ...ModelSchema) *ResourceBuilder {
	b := NewResourceBuilder()
	for _, m := range models {
		fields := map[string]string{}
		for _, stmt := range m.DefineFieldRaws() {
			fields[fieldNameFromDefine(stmt)] = stmt
		}
		b.AddTable(m.TableName(), m.DefineTableRaw(), fields, nil, nil)
		if on, ok := m.(OldNamer); ok {
			if oldNames := on.OldNames(); len(oldNames) > 0 {
				b.WithOldNames(oldNames)
			}
		}
	}
	return b
}

// fieldNameFromDefine extracts the field name out of a "DEFINE FIELD <name>
// ON <table> ..." statement — the inverse of schema.buildDefineField's
// formatting, needed because ModelSchema only exposes the rendered strings.
func fieldNameFromDefine(stmt string) string {
	const prefix = "DEFINE FIELD "
	if len(stmt) <= len(prefix) {
		return stmt
	}
	rest := stmt[len(prefix):]
	for i, r := range rest {
		if r == ' ' {
			return rest[:i]
		}
	}
	return rest
}
