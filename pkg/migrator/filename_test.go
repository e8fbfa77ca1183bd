package migrator

import "testing"

func TestParseFilenameTwoWay(t *testing.T) {
	fn, err := ParseFilename("1700000000001_init.up.surql")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fn.Timestamp != 1700000000001 || fn.Basename != "init" || fn.Kind != KindUp {
		t.Fatalf("unexpected parse: %+v", fn)
	}
	if fn.String() != "1700000000001_init.up.surql" {
		t.Fatalf("round-trip mismatch: %s", fn.String())
	}
}

func TestParseFilenameOneWay(t *testing.T) {
	fn, err := ParseFilename("1700000000500_add_users.surql")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fn.Kind != KindOneWay || fn.Basename != "add_users" {
		t.Fatalf("unexpected parse: %+v", fn)
	}
	if fn.String() != "1700000000500_add_users.surql" {
		t.Fatalf("round-trip mismatch: %s", fn.String())
	}
}

func TestParseFilenameRejectsMalformedNames(t *testing.T) {
	cases := []string{
		"init.surql",            // missing timestamp
		"1700000000001.surql",   // missing basename
		"abc_init.surql",        // non-numeric timestamp
		"1700000000001_Init.surql", // non-snake-case basename
		"1700000000001_init.txt",   // wrong extension
		"1700000000001_init.sideways.surql", // unrecognized kind suffix folded into basename
	}
	for _, name := range cases {
		if _, err := ParseFilename(name); err == nil {
			t.Errorf("expected error for %q", name)
		}
	}
}

func TestParseFilenameAcceptsDigitsAndUnderscoresInBasename(t *testing.T) {
	fn, err := ParseFilename("2_add_v2_users.down.surql")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fn.Basename != "add_v2_users" || fn.Kind != KindDown {
		t.Fatalf("unexpected parse: %+v", fn)
	}
}
