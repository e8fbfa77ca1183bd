package dbsession

import (
	"fmt"
	"reflect"
)

// normalizeRows adapts the teacher's normalizeSurrealDBDatetimes /
// extractRecordID (internal/storage/surrealdb_helpers.go) to this package's
// generic row shape: it recursively rewrites SurrealDB's RecordID wire
// values (structs with Table and ID fields) into "table:id" strings so that
// downstream gjson lookups (in pkg/migrator) and json.Marshal round-trips see
// ordinary scalars. Datetime values are passed through unchanged.
func normalizeRows(rows []map[string]any) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		out[i], _ = normalizeValue(row).(map[string]any)
		if out[i] == nil {
			out[i] = row
		}
	}
	return out
}

func normalizeValue(v any) any {
	if v == nil {
		return nil
	}

	typeName := fmt.Sprintf("%T", v)
	if containsRecordID(typeName) {
		if s, ok := recordIDString(v); ok {
			return s
		}
	}

	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeValue(item)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, item := range t {
			out[i], _ = normalizeValue(item).(map[string]any)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}

func containsRecordID(typeName string) bool {
	for _, marker := range []string{"RecordID", "Datetime"} {
		if len(typeName) >= len(marker) && indexOf(typeName, marker) >= 0 {
			return true
		}
	}
	return false
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

// recordIDString extracts a "table:id" string from a driver RecordID-shaped
// struct by reflecting over its Table/ID fields, the same structural check
// the teacher uses rather than importing the driver's concrete type.
func recordIDString(v any) (string, bool) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Struct {
		return "", false
	}
	typ := val.Type()

	var table, id reflect.Value
	for i := 0; i < val.NumField(); i++ {
		switch typ.Field(i).Name {
		case "Table":
			table = val.Field(i)
		case "ID":
			id = val.Field(i)
		}
	}
	if !table.IsValid() || !id.IsValid() {
		return "", false
	}
	return fmt.Sprintf("%v:%v", table.Interface(), id.Interface()), true
}
