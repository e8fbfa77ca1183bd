package model

import (
	"errors"
	"testing"

	"github.com/madeindigio/surrealorm/pkg/field"
)

// testUser is a minimal SurrealdbModel used only by this package's tests,
// the Go analogue of surreal_id.rs's TestUser fixture.
type testUser struct{}

func (testUser) TableName() field.Table { return field.Table("user") }

func TestNewRendersTableColonID(t *testing.T) {
	if got := New[testUser](1).String(); got != "user:1" {
		t.Fatalf("expected user:1, got %s", got)
	}
	if got := New[testUser]("oyelowo").String(); got != "user:oyelowo" {
		t.Fatalf("expected user:oyelowo, got %s", got)
	}
}

func TestNewEscapesNonBareIdent(t *testing.T) {
	got := New[testUser]("00000000-0000-0000-0000-000000000000").String()
	want := "user:⟨00000000-0000-0000-0000-000000000000⟩"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestParseValidRecordID(t *testing.T) {
	id, err := Parse[testUser]("user:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != "user:1" {
		t.Fatalf("unexpected id: %s", id.String())
	}
}

func TestParseRejectsMalformedStrings(t *testing.T) {
	cases := []string{"user", "user:", "user:1:2", "user:1:2:3"}
	for _, c := range cases {
		if _, err := Parse[testUser](c); err == nil {
			t.Fatalf("expected error for %q", c)
		} else {
			var invalid *ErrInvalidID
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidID for %q, got %T", c, err)
			}
		}
	}
}

func TestParseRejectsTableMismatch(t *testing.T) {
	_, err := Parse[testUser]("other:1")
	var mismatch *ErrTableMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected ErrTableMismatch, got %v", err)
	}
}

func TestRandUlidUuidProduceDistinctIDs(t *testing.T) {
	if Rand[testUser]().ID() == Rand[testUser]().ID() {
		t.Fatalf("expected distinct random ids")
	}
	if Ulid[testUser]().ID() == Ulid[testUser]().ID() {
		t.Fatalf("expected distinct ulids")
	}
	if Uuid[testUser]().ID() == Uuid[testUser]().ID() {
		t.Fatalf("expected distinct uuids")
	}
}
