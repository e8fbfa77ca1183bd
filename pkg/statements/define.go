package statements

import (
	"fmt"
	"strings"
)

// Permission is a single accumulated "FOR <perm> WHERE <cond>" clause,
// composable by calling Permissions multiple times (spec §4.3.6).
type Permission struct {
	For   string
	Where string
}

// DefineTable builds a "DEFINE TABLE" statement.
type DefineTable struct {
	name        string
	schemafull  bool
	schemaless  bool
	drop        bool
	asSelect    string
	permissions []Permission
}

// DefineTableNamed starts a DEFINE TABLE statement.
func DefineTableNamed(name string) DefineTable { return DefineTable{name: name} }

// Schemafull marks the table SCHEMAFULL.
func (d DefineTable) Schemafull() DefineTable { d.schemafull = true; return d }

// Schemaless marks the table SCHEMALESS.
func (d DefineTable) Schemaless() DefineTable { d.schemaless = true; return d }

// Drop marks the table DROP (ephemeral, not persisted to storage).
func (d DefineTable) Drop() DefineTable { d.drop = true; return d }

// AsSelect sets the table-as-select-view clause.
func (d DefineTable) AsSelect(selectSQL string) DefineTable { d.asSelect = selectSQL; return d }

// Permissions accumulates a FOR/WHERE permission clause.
func (d DefineTable) Permissions(forPermission, where string) DefineTable {
	d.permissions = append(d.permissions, Permission{For: forPermission, Where: where})
	return d
}

// Build implements valuex.Buildable.
func (d DefineTable) Build() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DEFINE TABLE %s", d.name)
	if d.drop {
		sb.WriteString(" DROP")
	}
	if d.schemafull {
		sb.WriteString(" SCHEMAFULL")
	} else if d.schemaless {
		sb.WriteString(" SCHEMALESS")
	}
	if d.asSelect != "" {
		fmt.Fprintf(&sb, " AS %s", d.asSelect)
	}
	sb.WriteString(buildPermissions(d.permissions))
	return sb.String()
}

func buildPermissions(perms []Permission) string {
	if len(perms) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(" PERMISSIONS")
	for _, p := range perms {
		fmt.Fprintf(&sb, " FOR %s WHERE %s", p.For, p.Where)
	}
	return sb.String()
}

// DefineField builds a "DEFINE FIELD" statement — the programmatic
// counterpart to schema.buildDefineField's tag-driven rendering.
type DefineField struct {
	name        string
	table       string
	typ         string
	value       string
	assert      string
	itemAssert  string
	permissions []Permission
}

// DefineFieldOn starts a DEFINE FIELD statement for name on table.
func DefineFieldOn(name, table string) DefineField {
	return DefineField{name: name, table: table}
}

// Type sets the TYPE clause.
func (d DefineField) Type(t string) DefineField { d.typ = t; return d }

// Value sets the VALUE clause (a default/computed value expression).
func (d DefineField) Value(v string) DefineField { d.value = v; return d }

// Assert sets the ASSERT clause.
func (d DefineField) Assert(expr string) DefineField { d.assert = expr; return d }

// ItemAssert sets the per-element ASSERT clause for an array field.
func (d DefineField) ItemAssert(expr string) DefineField { d.itemAssert = expr; return d }

// Permissions accumulates a FOR/WHERE permission clause.
func (d DefineField) Permissions(forPermission, where string) DefineField {
	d.permissions = append(d.permissions, Permission{For: forPermission, Where: where})
	return d
}

// Build implements valuex.Buildable.
func (d DefineField) Build() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DEFINE FIELD %s ON %s", d.name, d.table)
	if d.typ != "" {
		fmt.Fprintf(&sb, " TYPE %s", d.typ)
	}
	if d.value != "" {
		fmt.Fprintf(&sb, " VALUE %s", d.value)
	}
	if d.assert != "" {
		fmt.Fprintf(&sb, " ASSERT %s", d.assert)
	}
	if d.itemAssert != "" {
		fmt.Fprintf(&sb, " ASSERT array::all($value, |$v| %s)", d.itemAssert)
	}
	sb.WriteString(buildPermissions(d.permissions))
	return sb.String()
}

// DefineIndex builds a "DEFINE INDEX" statement.
type DefineIndex struct {
	name    string
	table   string
	columns []string
	unique  bool
}

// DefineIndexOn starts a DEFINE INDEX statement.
func DefineIndexOn(name, table string, columns ...string) DefineIndex {
	return DefineIndex{name: name, table: table, columns: columns}
}

// Unique marks the index UNIQUE.
func (d DefineIndex) Unique() DefineIndex { d.unique = true; return d }

// Build implements valuex.Buildable.
func (d DefineIndex) Build() string {
	s := fmt.Sprintf("DEFINE INDEX %s ON %s FIELDS %s", d.name, d.table, strings.Join(d.columns, ", "))
	if d.unique {
		s += " UNIQUE"
	}
	return s
}

// DefineEvent builds a "DEFINE EVENT" statement.
type DefineEvent struct {
	name  string
	table string
	when  string
	then  string
}

// DefineEventOn starts a DEFINE EVENT statement.
func DefineEventOn(name, table string) DefineEvent { return DefineEvent{name: name, table: table} }

// When sets the WHEN condition.
func (d DefineEvent) When(cond string) DefineEvent { d.when = cond; return d }

// Then sets the THEN action.
func (d DefineEvent) Then(action string) DefineEvent { d.then = action; return d }

// Build implements valuex.Buildable.
func (d DefineEvent) Build() string {
	return fmt.Sprintf("DEFINE EVENT %s ON %s WHEN %s THEN %s", d.name, d.table, d.when, d.then)
}

// DefineAnalyzer builds a "DEFINE ANALYZER" statement.
type DefineAnalyzer struct {
	name       string
	tokenizers []string
	filters    []string
}

// DefineAnalyzerNamed starts a DEFINE ANALYZER statement.
func DefineAnalyzerNamed(name string) DefineAnalyzer { return DefineAnalyzer{name: name} }

// Tokenizers sets the TOKENIZERS clause.
func (d DefineAnalyzer) Tokenizers(ts ...string) DefineAnalyzer { d.tokenizers = ts; return d }

// Filters sets the FILTERS clause.
func (d DefineAnalyzer) Filters(fs ...string) DefineAnalyzer { d.filters = fs; return d }

// Build implements valuex.Buildable.
func (d DefineAnalyzer) Build() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DEFINE ANALYZER %s", d.name)
	if len(d.tokenizers) > 0 {
		fmt.Fprintf(&sb, " TOKENIZERS %s", strings.Join(d.tokenizers, ","))
	}
	if len(d.filters) > 0 {
		fmt.Fprintf(&sb, " FILTERS %s", strings.Join(d.filters, ","))
	}
	return sb.String()
}

// DefineParam builds a "DEFINE PARAM" statement.
type DefineParam struct {
	name  string
	value string
}

// DefineParamNamed starts a DEFINE PARAM statement ("$" prefix optional).
func DefineParamNamed(name, value string) DefineParam {
	return DefineParam{name: strings.TrimPrefix(name, "$"), value: value}
}

// Build implements valuex.Buildable.
func (d DefineParam) Build() string {
	return fmt.Sprintf("DEFINE PARAM $%s VALUE %s", d.name, d.value)
}

// DefineFunction builds a "DEFINE FUNCTION" statement.
type DefineFunction struct {
	name string
	args []string
	body string
}

// DefineFunctionNamed starts a DEFINE FUNCTION statement, name without the
// "fn::" prefix.
func DefineFunctionNamed(name string, args []string, body string) DefineFunction {
	return DefineFunction{name: strings.TrimPrefix(name, "fn::"), args: args, body: body}
}

// Build implements valuex.Buildable.
func (d DefineFunction) Build() string {
	return fmt.Sprintf("DEFINE FUNCTION fn::%s(%s) { %s }", d.name, strings.Join(d.args, ", "), d.body)
}

// Base is the scope a DEFINE TOKEN/USER applies to (spec §4.3.6's
// analogue of the original's Base enum).
type Base string

const (
	BaseNamespace Base = "NAMESPACE"
	BaseDatabase  Base = "DATABASE"
	BaseRoot      Base = "ROOT"
	BaseScope     Base = "SCOPE"
)

// DefineScope builds a "DEFINE SCOPE" statement.
type DefineScope struct {
	name     string
	session  string
	signup   string
	signin   string
}

// DefineScopeNamed starts a DEFINE SCOPE statement.
func DefineScopeNamed(name string) DefineScope { return DefineScope{name: name} }

// Session sets the SESSION duration.
func (d DefineScope) Session(dur string) DefineScope { d.session = dur; return d }

// Signup sets the SIGNUP query.
func (d DefineScope) Signup(q string) DefineScope { d.signup = q; return d }

// Signin sets the SIGNIN query.
func (d DefineScope) Signin(q string) DefineScope { d.signin = q; return d }

// Build implements valuex.Buildable.
func (d DefineScope) Build() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DEFINE SCOPE %s", d.name)
	if d.session != "" {
		fmt.Fprintf(&sb, " SESSION %s", d.session)
	}
	if d.signup != "" {
		fmt.Fprintf(&sb, " SIGNUP (%s)", d.signup)
	}
	if d.signin != "" {
		fmt.Fprintf(&sb, " SIGNIN (%s)", d.signin)
	}
	return sb.String()
}

// DefineToken builds a "DEFINE TOKEN" statement.
type DefineToken struct {
	name   string
	base   Base
	scope  string
	typ    string
	value  string
}

// DefineTokenNamed starts a DEFINE TOKEN statement scoped to base.
func DefineTokenNamed(name string, base Base) DefineToken {
	return DefineToken{name: name, base: base}
}

// OnScope narrows BaseScope tokens to a named scope.
func (d DefineToken) OnScope(scope string) DefineToken { d.scope = scope; return d }

// Type sets the TYPE clause (e.g. "HS512").
func (d DefineToken) Type(t string) DefineToken { d.typ = t; return d }

// Value sets the VALUE clause (the signing secret).
func (d DefineToken) Value(v string) DefineToken { d.value = v; return d }

// Build implements valuex.Buildable.
func (d DefineToken) Build() string {
	target := string(d.base)
	if d.base == BaseScope && d.scope != "" {
		target = "SCOPE " + d.scope
	}
	return fmt.Sprintf("DEFINE TOKEN %s ON %s TYPE %s VALUE %s", d.name, target, d.typ, d.value)
}

// DefineUser builds a "DEFINE USER" statement.
type DefineUser struct {
	name     string
	base     Base
	password string
	roles    []string
}

// DefineUserNamed starts a DEFINE USER statement scoped to base.
func DefineUserNamed(name string, base Base) DefineUser {
	return DefineUser{name: name, base: base}
}

// Password sets the PASSWORD clause.
func (d DefineUser) Password(p string) DefineUser { d.password = p; return d }

// Roles sets the ROLES clause.
func (d DefineUser) Roles(roles ...string) DefineUser { d.roles = roles; return d }

// Build implements valuex.Buildable.
func (d DefineUser) Build() string {
	return fmt.Sprintf("DEFINE USER %s ON %s PASSWORD %q ROLES %s",
		d.name, d.base, d.password, strings.Join(d.roles, ", "))
}

// DefineModel builds a "DEFINE MODEL" statement (a registered ML model).
type DefineModel struct {
	name    string
	version string
}

// DefineModelNamed starts a DEFINE MODEL statement.
func DefineModelNamed(name, version string) DefineModel {
	return DefineModel{name: name, version: version}
}

// Build implements valuex.Buildable.
func (d DefineModel) Build() string {
	return fmt.Sprintf("DEFINE MODEL ml::%s<%s>", d.name, d.version)
}
