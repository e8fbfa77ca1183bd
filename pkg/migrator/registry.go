package migrator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/madeindigio/surrealorm/pkg/statements"
)

// RegistryTable is the reserved table name the registry lives in, spec §6.2.
const RegistryTable = "migration"

// Row is one registry entry, spec §3.8. ContentDown is empty for one-way
// migrations.
type Row struct {
	Name        string
	Timestamp   int64
	Checksum    string
	ContentUp   string
	ContentDown string
	// Notes is a free-text informational column, never consulted by the diff
	// or replay logic; no command sets it, so rows record it empty.
	Notes string
}

// Checksum hashes a migration file's textual content. crypto/sha256 is
// stdlib with no ecosystem wrapper in the pack for a plain content digest —
// the teacher itself never needs one (its migrations are idempotent
// checkExists calls, not checksum-verified replay), so there is nothing to
// ground this on beyond the standard library being the obviously idiomatic
// choice for "hash this string".
func Checksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// DefineRegistryTableSQL is the DDL that instantiates the migration table,
// emitted as the first statement of any initial migration (spec §6.2).
func DefineRegistryTableSQL() string {
	return statements.DefineTableNamed(RegistryTable).Schemafull().Build() + ";\n" +
		statements.DefineFieldOn("name", RegistryTable).Type("string").Build() + ";\n" +
		statements.DefineFieldOn("timestamp", RegistryTable).Type("int").Build() + ";\n" +
		statements.DefineFieldOn("checksum", RegistryTable).Type("string").Build() + ";\n" +
		statements.DefineFieldOn("content_up", RegistryTable).Type("string").Build() + ";\n" +
		statements.DefineFieldOn("content_down", RegistryTable).Type("string").Build() + ";\n" +
		statements.DefineFieldOn("notes", RegistryTable).Type("string").Build() + ";\n" +
		statements.DefineIndexOn("migration_name_idx", RegistryTable, "name").Unique().Build() + ";"
}

// InsertRowSQL renders the INSERT that records an applied migration.
func InsertRowSQL(r Row) (string, []any) {
	sql := fmt.Sprintf(
		"INSERT INTO %s (name, timestamp, checksum, content_up, content_down, notes) VALUES ($name, $timestamp, $checksum, $content_up, $content_down, $notes);",
		RegistryTable)
	vars := map[string]any{
		"name": r.Name, "timestamp": r.Timestamp, "checksum": r.Checksum,
		"content_up": r.ContentUp, "content_down": r.ContentDown, "notes": r.Notes,
	}
	return sql, []any{vars}
}

// DeleteRowSQL renders the DELETE that un-records a rolled-back migration.
func DeleteRowSQL(name string) (string, map[string]any) {
	return fmt.Sprintf("DELETE FROM %s WHERE name = $name;", RegistryTable), map[string]any{"name": name}
}

// SelectAllRowsSQL renders the registry read used by list/up/down, ordered
// by timestamp per spec §3.8's invariant.
func SelectAllRowsSQL() string {
	return fmt.Sprintf("SELECT * FROM %s ORDER BY timestamp;", RegistryTable)
}

// RowsFromRaw decodes the flattened map rows a dbsession query returns into
// Row values, sorted by timestamp (belt-and-suspenders alongside the ORDER
// BY, since a caller may hand-assemble rows from other sources in tests).
func RowsFromRaw(raw []map[string]any) ([]Row, error) {
	rows := make([]Row, 0, len(raw))
	for _, m := range raw {
		r, err := rowFromMap(m)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Timestamp < rows[j].Timestamp })
	return rows, nil
}

func rowFromMap(m map[string]any) (Row, error) {
	name, _ := m["name"].(string)
	checksum, _ := m["checksum"].(string)
	contentUp, _ := m["content_up"].(string)
	contentDown, _ := m["content_down"].(string)
	notes, _ := m["notes"].(string)

	var ts int64
	switch v := m["timestamp"].(type) {
	case int64:
		ts = v
	case int:
		ts = int64(v)
	case float64:
		ts = int64(v)
	}

	if name == "" {
		return Row{}, fmt.Errorf("migrator: registry row missing name: %+v", m)
	}
	return Row{Name: name, Timestamp: ts, Checksum: checksum, ContentUp: contentUp, ContentDown: contentDown, Notes: notes}, nil
}
