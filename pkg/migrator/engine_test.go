package migrator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestScenarioE_ChecksumMismatchAborts reproduces spec §8 Scenario E:
// tampering with an applied migration file's on-disk content makes its
// checksum no longer match the registry row, and checkConsistency (the
// pure, no-driver-call core of the up/down guard from spec §4.5.6) reports
// ErrChecksumMismatch instead of silently proceeding.
func TestScenarioE_ChecksumMismatchAborts(t *testing.T) {
	dir := t.TempDir()
	content := "DEFINE TABLE user SCHEMAFULL;"
	path := filepath.Join(dir, "1700000000_init.surql")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, _, err := listEntries(dir)
	if err != nil {
		t.Fatalf("listEntries: %v", err)
	}
	applied := []Row{{Name: "1700000000_init", Checksum: Checksum(content)}}

	e := &Engine{MigrationsDir: dir}
	if err := e.checkConsistency(entries, applied); err != nil {
		t.Fatalf("expected the untampered file to pass consistency check, got %v", err)
	}

	// Tamper with the file after it was "applied".
	if err := os.WriteFile(path, []byte(content+"\n-- tampered"), 0o644); err != nil {
		t.Fatal(err)
	}
	err = e.checkConsistency(entries, applied)
	if err == nil {
		t.Fatal("expected a checksum mismatch error after tampering")
	}
	var mismatch *Error
	if !errors.As(err, &mismatch) || mismatch.Kind != "ChecksumMismatch" {
		t.Fatalf("expected a ChecksumMismatch *Error, got %v (%T)", err, err)
	}
}
