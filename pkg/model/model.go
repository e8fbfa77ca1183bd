// Package model implements the typed record-id wrapper (SurrealId) and the
// schema-metadata contract (SurrealdbModel) that a derived or generated
// struct satisfies, per spec §4 (schema derivation).
package model

import (
	"github.com/madeindigio/surrealorm/pkg/field"
)

// SurrealdbModel is the contract a schema-derived struct satisfies: it knows
// its own table identifier. Grounded on the `table_name()` associated
// function in original_source/rust/surrealdb-query-builder's
// SurrealdbModel trait — Go generics can't call a static method on a type
// parameter, so this is expressed as a value-receiver instance method
// instead, called against T's zero value.
type SurrealdbModel interface {
	TableName() field.Table
}

// SchemaModel is the fuller metadata contract produced by pkg/schema.Derive
// or cmd/ormgen's generated companions — the Go analogue of the Rust derive
// macro's full trait impl (SERIALIZABLE_FIELDS, LINK_FIELDS, RELATE_FIELDS,
// DEFINE_TABLE_RAW, DEFINE_FIELD_RAWS), per spec §4.3-§4.4.
type SchemaModel interface {
	SurrealdbModel

	// SerializableFields lists every field persisted to the database.
	SerializableFields() []field.Field
	// LinkOneFields lists fields holding a single linked record id.
	LinkOneFields() []field.Field
	// LinkSelfFields lists fields linking to the same table (self-reference).
	LinkSelfFields() []field.Field
	// LinkManyFields lists fields holding a collection of linked record ids.
	LinkManyFields() []field.Field
	// RelateFields lists graph-edge relation fields (spec §4.2 edge/RELATE).
	RelateFields() []field.Field

	// DefineTableRaw renders this model's "DEFINE TABLE ..." statement.
	DefineTableRaw() string
	// DefineFieldRaws renders one "DEFINE FIELD ..." statement per field.
	DefineFieldRaws() []string
}
