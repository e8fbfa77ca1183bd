// Package schema implements the runtime schema derivation described in spec
// §4.4 (C6): reflecting over a Go struct's `surreal:"..."` tags to produce
// the same metadata a Rust derive macro would emit at compile time — a
// schema struct, per-model constants, and the DEFINE TABLE/FIELD DDL.
//
// Go has no macros, so what the original expresses as compile-time static
// assertions this package expresses as Derive[T]() validation errors,
// evaluated once (typically from an init() or a package-level var) rather
// than at compile time. cmd/ormgen supplements this with a go:generate
// static-codegen pass that emits the same metadata without reflection; it
// runs none of these validation checks.
package schema

import (
	"strings"
)

// fieldTag is the parsed form of a field's `surreal:"..."` struct tag,
// mirroring the field-level attribute surface in spec §4.4.
type fieldTag struct {
	Rename      string
	OldName     string
	Skip        bool
	SkipSerialize bool
	Type        string
	Assert      string
	Define      string
	Value       string
	Permissions string
	ItemAssert  string
	LinkOne     string
	LinkSelf    string
	LinkMany    string
	NestObject  string
	NestArray   string
	RelateModel string
	RelateConn  string
}

// parseFieldTag parses a struct field's `surreal:"..."` tag value into a
// fieldTag. Unknown keys are ignored — the Go analogue of the Rust derive
// simply not recognizing an attribute it wasn't told about.
func parseFieldTag(raw string) fieldTag {
	var t fieldTag
	if raw == "" {
		return t
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "skip":
			t.Skip = true
		case "skip_serializing":
			t.SkipSerialize = true
		case "rename":
			if hasValue {
				t.Rename = value
			}
		case "old_name":
			if hasValue {
				t.OldName = value
			}
		case "type":
			t.Type = value
		case "assert":
			t.Assert = value
		case "define":
			t.Define = value
		case "value":
			t.Value = value
		case "permissions":
			t.Permissions = value
		case "item_assert":
			t.ItemAssert = value
		case "link_one":
			t.LinkOne = value
		case "link_self":
			t.LinkSelf = value
		case "link_many":
			t.LinkMany = value
		case "nest_object":
			t.NestObject = value
		case "nest_array":
			t.NestArray = value
		case "relate_model":
			t.RelateModel = value
		case "relate_connection":
			t.RelateConn = value
		}
	}
	return t
}

// isLink reports whether this field's tag marks it as any kind of link.
func (t fieldTag) isLink() bool {
	return t.LinkOne != "" || t.LinkSelf != "" || t.LinkMany != ""
}

// isRelate reports whether this field's tag marks it as a graph-relation
// virtual field (spec §3.6 RELATE_FIELDS).
func (t fieldTag) isRelate() bool {
	return t.RelateModel != "" || t.RelateConn != ""
}

// modelTag is the parsed form of a struct-level `surrealorm:"..."` tag,
// conventionally attached to an embedded marker field, e.g.:
//
//	type Person struct {
//	    Meta     schema.ModelMeta `surrealorm:"table=person,schemafull"`
//	    Name     string           `surreal:"type=string"`
//	}
//
// Derive does not read this tag: parseModelTag has no caller, and
// model-level settings reach Derive only as Option values (WithTable,
// WithRelaxTable, AsEdge).
type modelTag struct {
	Table       string
	RelaxTable  bool
	SchemaFull  bool
	SchemaLess  bool
	Drop        bool
	Define      string
	Permissions string
	RenameAll   string
}

func parseModelTag(raw string) modelTag {
	var t modelTag
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "table":
			if hasValue {
				t.Table = value
			}
		case "relax_table":
			t.RelaxTable = true
		case "schemafull":
			t.SchemaFull = true
		case "schemaless":
			t.SchemaLess = true
		case "drop":
			t.Drop = true
		case "define":
			t.Define = value
		case "permissions":
			t.Permissions = value
		case "rename_all":
			t.RenameAll = value
		}
	}
	return t
}

// ModelMeta is the zero-size marker type for a model-level
// `surrealorm:"..."` tag; see modelTag's doc example. Derive reads no
// `surrealorm` tag: an embedded ModelMeta is skipped, and a named one (as in
// the example) is derived like any other field.
type ModelMeta struct{}
