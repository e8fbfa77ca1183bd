package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-openapi/inflect"
	"github.com/madeindigio/surrealorm/pkg/field"
)

// FieldInfo is one derived model field: its resolved path, its classification,
// and the DEFINE FIELD statement it contributes (spec §3.6/§4.4).
type FieldInfo struct {
	GoName     string
	Path       field.Field
	Tag        fieldTag
	Skip       bool
	Relate     bool
	LinkOne    bool
	LinkSelf   bool
	LinkMany   bool
	defineStmt string
}

// Derived is the runtime schema metadata for one model type T, the Go
// analogue of the struct + constants a Rust derive macro would emit for the
// same struct (spec §4.4 "Emitted artifacts per model"). It satisfies
// model.SchemaModel.
type Derived struct {
	table  field.Table
	fields []FieldInfo
	errs   []error
}

// Errors returns every validation failure accumulated while deriving this
// model — the runtime analogue of the original's compile-time static
// assertion failures (spec §4.4 validation rules).
func (d *Derived) Errors() []error { return d.errs }

// TableName implements model.SurrealdbModel.
func (d *Derived) TableName() field.Table { return d.table }

// SerializableFields implements model.SchemaModel: every field that isn't
// skipped and isn't a relate-derived virtual field.
func (d *Derived) SerializableFields() []field.Field {
	var out []field.Field
	for _, f := range d.fields {
		if f.Skip || f.Relate {
			continue
		}
		out = append(out, f.Path)
	}
	return out
}

// LinkOneFields implements model.SchemaModel.
func (d *Derived) LinkOneFields() []field.Field { return d.byKind(func(f FieldInfo) bool { return f.LinkOne }) }

// LinkSelfFields implements model.SchemaModel.
func (d *Derived) LinkSelfFields() []field.Field {
	return d.byKind(func(f FieldInfo) bool { return f.LinkSelf })
}

// LinkManyFields implements model.SchemaModel.
func (d *Derived) LinkManyFields() []field.Field {
	return d.byKind(func(f FieldInfo) bool { return f.LinkMany })
}

// RelateFields implements model.SchemaModel.
func (d *Derived) RelateFields() []field.Field {
	return d.byKind(func(f FieldInfo) bool { return f.Relate })
}

func (d *Derived) byKind(pred func(FieldInfo) bool) []field.Field {
	var out []field.Field
	for _, f := range d.fields {
		if pred(f) {
			out = append(out, f.Path)
		}
	}
	return out
}

// OldNames returns this model's declared old_name rename claims, keyed by
// the field's current path, for fields whose tag carries one — the
// migrator.OldNamer surface ResourcesFromModels checks for so an explicit
// old_name annotation skips the rename-or-delete prompt end to end
// (spec §3 RENAME_MAP, §4.4 field-level old_name).
func (d *Derived) OldNames() map[string]string {
	var out map[string]string
	for _, f := range d.fields {
		if f.Tag.OldName == "" {
			continue
		}
		if out == nil {
			out = map[string]string{}
		}
		out[f.Path.String()] = f.Tag.OldName
	}
	return out
}

// DefineTableRaw implements model.SchemaModel.
func (d *Derived) DefineTableRaw() string {
	return fmt.Sprintf("DEFINE TABLE %s SCHEMAFULL", d.table)
}

// DefineFieldRaws implements model.SchemaModel.
func (d *Derived) DefineFieldRaws() []string {
	var out []string
	for _, f := range d.fields {
		if f.Skip || f.Relate {
			continue
		}
		out = append(out, f.defineStmt)
	}
	return out
}

// Derive reflects over T's struct fields and their `surreal:"..."` tags and
// produces the Derived metadata for it, applying the validation rules of
// spec §4.4. T must be a struct type (not a pointer).
//
// Table naming: by default the table is the snake_case of T's type name
// (validation rule 1); pass WithTable to override, or WithRelaxTable to
// permit an override without snake-case checking.
func Derive[T any](opts ...Option) *Derived {
	var zero T
	rt := reflect.TypeOf(zero)
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}

	d := &Derived{}
	structName := rt.Name()
	table := cfg.table
	if table == "" {
		table = inflect.Underscore(structName)
	} else if !cfg.relaxTable && table != inflect.Underscore(structName) {
		d.errs = append(d.errs, fmt.Errorf(
			"schema: table %q is not the snake_case of struct %q (set relax_table to permit)",
			table, structName))
	}
	d.table = field.Table(table)

	if cfg.isEdge {
		d.deriveEdge(rt)
		return d
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		// Fields without a surreal tag still participate with a snake_case
		// default path, matching the teacher's mapstructure-default
		// behavior in internal/config/config.go.
		tag := parseFieldTag(sf.Tag.Get("surreal"))

		path := tag.Rename
		if path == "" {
			path = inflect.Underscore(sf.Name)
		}

		info := FieldInfo{
			GoName: sf.Name,
			Path:   field.NewField(path),
			Tag:    tag,
			Skip:   tag.Skip || tag.SkipSerialize,
			Relate: tag.isRelate(),
		}

		switch {
		case tag.LinkOne != "":
			info.LinkOne = true
			d.validateLinkType(sf, tag.LinkOne, tag.Type)
		case tag.LinkSelf != "":
			info.LinkSelf = true
			d.validateLinkType(sf, structName, tag.Type)
		case tag.LinkMany != "":
			info.LinkMany = true
			d.validateLinkManyType(sf, tag.LinkMany, tag.Type)
		}

		if !info.Skip && !info.Relate {
			info.defineStmt = buildDefineField(table, path, tag)
		}

		d.fields = append(d.fields, info)
	}

	return d
}

// deriveEdge applies validation rule 4: an Edge model must have exactly the
// fields id, in, out, with in/out typed as record references.
func (d *Derived) deriveEdge(rt reflect.Type) {
	seen := map[string]bool{}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := inflect.Underscore(sf.Name)
		seen[name] = true
		tag := parseFieldTag(sf.Tag.Get("surreal"))
		path := tag.Rename
		if path == "" {
			path = name
		}
		info := FieldInfo{GoName: sf.Name, Path: field.NewField(path), Tag: tag}
		if (path == "in" || path == "out") && !strings.HasPrefix(tag.Type, "record") {
			d.errs = append(d.errs, fmt.Errorf(
				"schema: edge type %q field %q must be a record type, got %q (spec §4.4 rule 4)",
				d.table, path, tag.Type))
		}
		if path != "id" && !info.Skip {
			info.defineStmt = buildDefineField(string(d.table), path, tag)
		}
		d.fields = append(d.fields, info)
	}
	for _, want := range []string{"id", "in", "out"} {
		if !seen[want] {
			d.errs = append(d.errs, fmt.Errorf(
				"schema: edge type %q is missing required field %q (spec §4.4 rule 4)",
				d.table, want))
		}
	}
	if len(seen) != 3 {
		d.errs = append(d.errs, fmt.Errorf(
			"schema: edge type %q must have exactly the fields id, in, out; got %d fields",
			d.table, len(seen)))
	}
}

// validateLinkType applies validation rule 2: link_one/link_self require a
// record<table> database type matching the linked model's table.
func (d *Derived) validateLinkType(sf reflect.StructField, linkedTable, dbType string) {
	want := "record<" + inflect.Underscore(linkedTable) + ">"
	if dbType != "" && dbType != want {
		d.errs = append(d.errs, fmt.Errorf(
			"schema: field %q declares type %q but its link target requires %q (spec §4.4 rule 2)",
			sf.Name, dbType, want))
	}
}

// validateLinkManyType applies validation rule 3: link_many requires
// array<record<table>> with a single element table.
func (d *Derived) validateLinkManyType(sf reflect.StructField, linkedTable, dbType string) {
	want := "array<record<" + inflect.Underscore(linkedTable) + ">>"
	if dbType != "" && dbType != want {
		d.errs = append(d.errs, fmt.Errorf(
			"schema: field %q declares type %q but link_many requires %q (spec §4.4 rule 3)",
			sf.Name, dbType, want))
	}
}

// buildDefineField renders a DEFINE FIELD statement from a field's tag
// options (spec §4.3.6/§3.6 DEFINE_FIELD_RAWS).
func buildDefineField(table, path string, tag fieldTag) string {
	if tag.Define != "" {
		return tag.Define
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "DEFINE FIELD %s ON %s", path, table)
	if tag.Type != "" {
		fmt.Fprintf(&sb, " TYPE %s", tag.Type)
	}
	if tag.Value != "" {
		fmt.Fprintf(&sb, " VALUE %s", tag.Value)
	}
	if tag.Assert != "" {
		fmt.Fprintf(&sb, " ASSERT %s", tag.Assert)
	}
	if tag.Permissions != "" {
		fmt.Fprintf(&sb, " PERMISSIONS %s", tag.Permissions)
	}
	return sb.String()
}

// config holds Derive's option state.
type config struct {
	table      string
	relaxTable bool
	isEdge     bool
}

// Option customizes a Derive call.
type Option func(*config)

// WithTable overrides the default snake_case(struct name) table.
func WithTable(name string) Option { return func(c *config) { c.table = name } }

// WithRelaxTable permits WithTable's name to differ from the struct's
// snake_case form without a validation error (spec §4.4 `relax_table`).
func WithRelaxTable() Option { return func(c *config) { c.relaxTable = true } }

// AsEdge marks this model as an edge type, applying validation rule 4
// instead of the regular field derivation.
func AsEdge() Option { return func(c *config) { c.isEdge = true } }
