// Package field implements the typed path expressions (Field), named
// placeholders (Param), table identifiers (Table), boolean filter trees
// (Filter), and assignment fragments (Setter/Updater) of spec §3.3-§3.4.
package field

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// Table is a normalized (snake_case) SQL table identifier.
type Table string

// NewTable normalizes name to snake_case, the way the schema derive (C6)
// normalizes a struct name into its DEFINE TABLE identifier unless
// relax_table is set (spec §4.4 validation rule 1).
func NewTable(name string) Table {
	return Table(inflect.Underscore(name))
}

// String renders the table's SQL identifier form.
func (t Table) String() string { return string(t) }

// IsSnakeCaseOf reports whether t is exactly the snake_case form of
// structName — used by the schema derive to validate rule 1 unless
// relax_table is present.
func (t Table) IsSnakeCaseOf(structName string) bool {
	return string(t) == inflect.Underscore(structName)
}

// WithID renders a fully qualified record identifier "table:id".
func (t Table) WithID(id string) string {
	return string(t) + ":" + strings.TrimPrefix(id, string(t)+":")
}
