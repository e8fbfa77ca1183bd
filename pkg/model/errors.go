package model

import "fmt"

// ErrInvalidID is returned when a "table:id" record string fails to parse.
// Grounded on SurrealdbOrmError::InvalidId in
// original_source/rust/surrealdb-query-builder/src/types/surreal_id.rs.
type ErrInvalidID struct {
	Raw string
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf(
		"invalid id. Problem deserializing string to a record id. "+
			"Check that the id is in the format 'table_name:id': %q", e.Raw)
}

// ErrTableMismatch is returned by Parse when a string's table component
// doesn't match the type parameter's declared table name.
type ErrTableMismatch struct {
	Expected, Got string
}

func (e *ErrTableMismatch) Error() string {
	return fmt.Sprintf("record id table %q does not match expected table %q", e.Got, e.Expected)
}
