package statements

import (
	"fmt"
	"strings"
)

// DeriveRemove parses a DEFINE statement's text and produces its
// corresponding REMOVE statement — the primary mechanism by which the
// migration engine (C7) generates reverse SQL from a forward DEFINE
// (spec §4.3.6, §4.5.3).
//
// Grounded on the teacher's strings.Fields-based extractTableName/
// extractFieldName/extractIndexName
// (internal/storage/migrations/migration.go) and on
// original_source/migrator/src/database/queries.rs's
// as_remove_statement_with_name_override, which maps each DefineStatement
// variant to its corresponding remove_*() builder. Go has no SurrealQL AST
// parser available in the example pack, so this reuses the teacher's
// lightweight whitespace-tokenizing idiom rather than attempting one.
func DeriveRemove(defineStatement string) (string, error) {
	parts := strings.Fields(strings.TrimSuffix(strings.TrimSpace(defineStatement), ";"))
	if len(parts) < 3 || parts[0] != "DEFINE" {
		return "", fmt.Errorf("statements: not a DEFINE statement: %q", defineStatement)
	}

	kind := parts[1]
	name := parts[2]

	switch kind {
	case "TABLE":
		return fmt.Sprintf("REMOVE TABLE %s", name), nil
	case "FIELD":
		table := onClauseTarget(parts)
		if table == "" {
			return "", fmt.Errorf("statements: DEFINE FIELD missing ON clause: %q", defineStatement)
		}
		return fmt.Sprintf("REMOVE FIELD %s ON %s", name, table), nil
	case "INDEX":
		table := onClauseTarget(parts)
		if table == "" {
			return "", fmt.Errorf("statements: DEFINE INDEX missing ON clause: %q", defineStatement)
		}
		return fmt.Sprintf("REMOVE INDEX %s ON %s", name, table), nil
	case "EVENT":
		table := onClauseTarget(parts)
		if table == "" {
			return "", fmt.Errorf("statements: DEFINE EVENT missing ON clause: %q", defineStatement)
		}
		return fmt.Sprintf("REMOVE EVENT %s ON %s", name, table), nil
	case "ANALYZER":
		return fmt.Sprintf("REMOVE ANALYZER %s", name), nil
	case "PARAM":
		return fmt.Sprintf("REMOVE PARAM %s", name), nil
	case "FUNCTION":
		fnName := strings.SplitN(name, "(", 2)[0]
		return fmt.Sprintf("REMOVE FUNCTION %s", fnName), nil
	case "SCOPE":
		return fmt.Sprintf("REMOVE SCOPE %s", name), nil
	case "TOKEN":
		base := onClauseTarget(parts)
		if base == "" {
			return "", fmt.Errorf("statements: DEFINE TOKEN missing ON clause: %q", defineStatement)
		}
		return fmt.Sprintf("REMOVE TOKEN %s ON %s", name, base), nil
	case "USER":
		base := onClauseTarget(parts)
		if base == "" {
			return "", fmt.Errorf("statements: DEFINE USER missing ON clause: %q", defineStatement)
		}
		return fmt.Sprintf("REMOVE USER %s ON %s", name, base), nil
	case "MODEL":
		return fmt.Sprintf("REMOVE MODEL %s", strings.SplitN(name, "<", 2)[0]), nil
	default:
		return "", fmt.Errorf("statements: unrecognized DEFINE kind %q", kind)
	}
}

// onClauseTarget returns the token following an "ON" keyword in a
// whitespace-tokenized DEFINE statement, handling the "ON SCOPE <name>"
// two-token form used by DEFINE TOKEN and skipping the optional TABLE
// keyword of "ON TABLE <name>".
func onClauseTarget(parts []string) string {
	for i, p := range parts {
		if p == "ON" && i+1 < len(parts) {
			if parts[i+1] == "SCOPE" && i+2 < len(parts) {
				return "SCOPE " + parts[i+2]
			}
			if parts[i+1] == "TABLE" && i+2 < len(parts) {
				return parts[i+2]
			}
			return parts[i+1]
		}
	}
	return ""
}
