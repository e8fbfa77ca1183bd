package config

import "testing"

func TestValidateRequiresDBURL(t *testing.T) {
	cfg := &Config{MigrationsDir: "./migrations", Mode: "strict"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when --db is empty")
	}
}

func TestValidateRequiresMigrationsDir(t *testing.T) {
	cfg := &Config{SurrealDBURL: "memory", Mode: "strict"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when --migrations-dir is empty")
	}
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	cfg := &Config{SurrealDBURL: "memory", MigrationsDir: "./migrations", Mode: "loose"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for an unrecognized --mode value")
	}
}

func TestValidateAcceptsStrictAndRelaxed(t *testing.T) {
	for _, mode := range []string{"strict", "relaxed"} {
		cfg := &Config{SurrealDBURL: "memory", MigrationsDir: "./migrations", Mode: mode}
		if err := cfg.Validate(); err != nil {
			t.Errorf("mode %q: unexpected error: %v", mode, err)
		}
	}
}

func TestRelaxed(t *testing.T) {
	strict := &Config{Mode: "strict"}
	if strict.Relaxed() {
		t.Error("strict mode should not report Relaxed()")
	}
	relaxed := &Config{Mode: "relaxed"}
	if !relaxed.Relaxed() {
		t.Error("relaxed mode should report Relaxed()")
	}
}

func TestGetSurrealDBNamespaceAndDatabaseDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetSurrealDBNamespace(); got != "test" {
		t.Errorf("GetSurrealDBNamespace() = %q, want %q", got, "test")
	}
	if got := cfg.GetSurrealDBDatabase(); got != "test" {
		t.Errorf("GetSurrealDBDatabase() = %q, want %q", got, "test")
	}
}
