// Package migrator implements the two-database diff engine and migration
// file/registry discipline of spec §4.5/C7: comparing an in-memory replay of
// the migrations directory against an in-memory replay of the codebase's
// DEFINE statements, and turning the difference into versioned .surql files.
package migrator

import "fmt"

// Error is every typed failure this package can return, grounded 1:1 on
// original_source/migrator/src/error.rs's MigrationError enum. Go has no
// enum-with-payload construct, so each Rust variant becomes its own
// exported error struct; callers discriminate with errors.As.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func newErr(kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrChecksumMismatch mirrors MigrationError::ChecksumMismatch.
func ErrChecksumMismatch(migrationName, expected, actual string) *Error {
	return newErr("ChecksumMismatch",
		"checksum mismatch for migration %q: expected %s, got %s", migrationName, expected, actual)
}

// ErrNoChecksumInDB mirrors MigrationError::NoChecksumInDb.
func ErrNoChecksumInDB(migrationName string) *Error {
	return newErr("NoChecksumInDb", "no checksum recorded in the registry for migration %q", migrationName)
}

// ErrMigrationAlreadyExists mirrors MigrationError::MigrationAlreadyExists.
func ErrMigrationAlreadyExists(name string) *Error {
	return newErr("MigrationAlreadyExists", "migration %q already exists", name)
}

// ErrMigrationDoesNotExist mirrors MigrationError::MigrationDoesNotExist.
func ErrMigrationDoesNotExist(filename string) *Error {
	return newErr("MigrationDoesNotExist", "migration file %q does not exist", filename)
}

// ErrRollbackFailed mirrors MigrationError::RollbackFailed.
func ErrRollbackFailed(reason string) *Error {
	return newErr("RollbackFailed", "rollback failed: %s", reason)
}

// ErrMigrationFileVsDBNamesMismatch mirrors
// MigrationError::MigrationFileVsDbNamesMismatch.
func ErrMigrationFileVsDBNamesMismatch(fileName, dbName string) *Error {
	return newErr("MigrationFileVsDbNamesMismatch",
		"on-disk migration name %q does not match registry name %q", fileName, dbName)
}

// ErrInvalidMigrationName mirrors MigrationError::InvalidMigrationName.
func ErrInvalidMigrationName(name string) *Error {
	return newErr("InvalidMigrationName", "invalid migration filename %q", name)
}

// ErrInvalidMigrationMode mirrors MigrationError::InvalidMigrationMode.
func ErrInvalidMigrationMode(mode string) *Error {
	return newErr("InvalidMigrationMode", "invalid migration mode %q", mode)
}

// ErrMigrationDirectoryDoesNotExist mirrors
// MigrationError::MigrationDirectoryDoesNotExist.
func ErrMigrationDirectoryDoesNotExist(dir string) *Error {
	return newErr("MigrationDirectoryDoesNotExist", "migration directory %q does not exist", dir)
}

// ErrMigrationUpQueriesEmpty mirrors MigrationError::MigrationUpQueriesEmpty.
func ErrMigrationUpQueriesEmpty(name string) *Error {
	return newErr("MigrationUpQueriesEmpty", "migration %q has no up queries", name)
}

// ErrMigrationDownQueriesEmpty mirrors
// MigrationError::MigrationDownQueriesEmpty.
func ErrMigrationDownQueriesEmpty(name string) *Error {
	return newErr("MigrationDownQueriesEmpty", "migration %q has no down queries", name)
}

// ErrInvalidOldFieldName mirrors MigrationError::InvalidOldFieldName.
func ErrInvalidOldFieldName(newName, table, oldName string, renamables []string) *Error {
	return newErr("InvalidOldFieldName",
		"field %q on table %q declares old_name %q, which is not a removed field; candidates: %v",
		newName, table, oldName, renamables)
}

// ErrFieldNameDoesNotExist mirrors MigrationError::FieldNameDoesNotExist.
func ErrFieldNameDoesNotExist(fieldExpected, table string, validFields []string) *Error {
	return newErr("FieldNameDoesNotExist",
		"field %q does not exist on table %q; valid fields: %v", fieldExpected, table, validFields)
}

// ErrRenamingToSameOldFieldDisallowed mirrors
// MigrationError::RenamingToSameOldFieldDisallowed.
func ErrRenamingToSameOldFieldDisallowed(fieldName, table string) *Error {
	return newErr("RenamingToSameOldFieldDisallowed",
		"field %q on table %q cannot declare old_name equal to its own name", fieldName, table)
}

// ErrFieldNameReused mirrors MigrationError::FieldNameReused.
func ErrFieldNameReused(fieldName, table string) *Error {
	return newErr("FieldNameReused", "field name %q on table %q is claimed as old_name by more than one field", fieldName, table)
}

// ErrInvalidDefineStatement mirrors MigrationError::InvalidDefineStatement.
func ErrInvalidDefineStatement(statement string) *Error {
	return newErr("InvalidDefineStatement", "invalid DEFINE statement: %q", statement)
}

// ErrInvalidMigrationState mirrors MigrationError::InvalidMigrationState.
func ErrInvalidMigrationState(dbCount, localDirCount int) *Error {
	return newErr("InvalidMigrationState",
		"registry has %d applied rows but the migrations directory has %d files", dbCount, localDirCount)
}

// ErrAmbiguousMigrationDirection mirrors
// MigrationError::AmbiguousMigrationDirection.
func ErrAmbiguousMigrationDirection(oneWayCount, twoWayCount int) *Error {
	return newErr("AmbiguousMigrationDirection",
		"migrations directory mixes %d one-way and %d two-way files; pick one mode", oneWayCount, twoWayCount)
}

// ErrUnappliedMigrationExists mirrors MigrationError::UnappliedMigrationExists.
func ErrUnappliedMigrationExists(count int) *Error {
	return newErr("UnappliedMigrationExists", "%d migration(s) are pending; apply them before generating a new one", count)
}

// ErrProblemWithQuery mirrors MigrationError::ProblemWithQuery.
func ErrProblemWithQuery(query string, cause error) *Error {
	return newErr("ProblemWithQuery", "problem running query %q: %v", query, cause)
}

// ErrDB mirrors MigrationError::DbError — a passthrough driver failure.
func ErrDB(cause error) *Error {
	return newErr("DbError", "database error: %v", cause)
}
