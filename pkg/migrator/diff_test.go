package migrator

import (
	"strings"
	"testing"
)

func TestDiffNamesCreateUpdateRemove(t *testing.T) {
	left := map[string]string{"a": "DEFINE X a v1", "b": "DEFINE X b"}
	right := map[string]string{"a": "DEFINE X a v2", "c": "DEFINE X c"}

	d := diffNames(left, right)
	if len(d.ToCreate) != 1 || d.ToCreate[0] != "c" {
		t.Fatalf("unexpected ToCreate: %v", d.ToCreate)
	}
	if len(d.ToRemove) != 1 || d.ToRemove[0] != "b" {
		t.Fatalf("unexpected ToRemove: %v", d.ToRemove)
	}
	if len(d.ToUpdate) != 1 || d.ToUpdate[0] != "a" {
		t.Fatalf("unexpected ToUpdate: %v", d.ToUpdate)
	}
}

func TestDiffTableCreateEmitsDefineAndReverseRemove(t *testing.T) {
	left := Snapshot{Tables: map[string]TableSnapshot{}}
	right := Snapshot{Tables: map[string]TableSnapshot{
		"user": {Define: "DEFINE TABLE user SCHEMAFULL", Fields: map[string]string{}},
	}}

	plan, err := Diff(left, right, nil, AlwaysDeletePrompter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !containsSubstring(plan.UpStatements, "DEFINE TABLE user SCHEMAFULL") {
		t.Fatalf("expected up statements to define the table: %v", plan.UpStatements)
	}
	if !containsSubstring(plan.DownStatements, "REMOVE TABLE user") {
		t.Fatalf("expected down statements to remove the table: %v", plan.DownStatements)
	}
}

func TestDiffSingleFieldRenamePromptedAndApplied(t *testing.T) {
	left := Snapshot{Tables: map[string]TableSnapshot{
		"user": {
			Define: "DEFINE TABLE user SCHEMAFULL",
			Fields: map[string]string{"full_name": "DEFINE FIELD full_name ON user TYPE string"},
		},
	}}
	right := Snapshot{Tables: map[string]TableSnapshot{
		"user": {
			Define: "DEFINE TABLE user SCHEMAFULL",
			Fields: map[string]string{"name": "DEFINE FIELD name ON user TYPE string"},
		},
	}}

	plan, err := Diff(left, right, nil, AlwaysRenamePrompter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !containsSubstring(plan.UpStatements, "UPDATE user SET name = full_name") {
		t.Fatalf("expected rename UPDATE in up statements: %v", plan.UpStatements)
	}
	if !containsSubstring(plan.UpStatements, "DEFINE FIELD name ON user TYPE string") {
		t.Fatalf("expected new field DEFINE in up statements: %v", plan.UpStatements)
	}
}

// TestScenarioD_RenameDetection reproduces spec §8 Scenario D verbatim: a
// same-table field rename with no old_name annotation prompts the operator,
// and answering "rename" emits the rename's UPDATE alongside the field's
// new DEFINE.
func TestScenarioD_RenameDetection(t *testing.T) {
	left := Snapshot{Tables: map[string]TableSnapshot{
		"weapon": {
			Define: "DEFINE TABLE weapon SCHEMAFULL",
			Fields: map[string]string{"strength": "DEFINE FIELD strength ON TABLE weapon TYPE int"},
		},
	}}
	right := Snapshot{Tables: map[string]TableSnapshot{
		"weapon": {
			Define: "DEFINE TABLE weapon SCHEMAFULL",
			Fields: map[string]string{"power": "DEFINE FIELD power ON TABLE weapon TYPE int"},
		},
	}}

	plan, err := Diff(left, right, nil, AlwaysRenamePrompter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !containsSubstring(plan.UpStatements, "DEFINE FIELD power ON TABLE weapon TYPE int") {
		t.Fatalf("expected the new field's DEFINE in up statements: %v", plan.UpStatements)
	}
	if !containsSubstring(plan.UpStatements, "UPDATE weapon SET power = strength") {
		t.Fatalf("expected the rename UPDATE in up statements: %v", plan.UpStatements)
	}
	if !containsSubstring(plan.DownStatements, "UPDATE weapon SET strength = power") {
		t.Fatalf("expected the symmetric rename UPDATE in down statements: %v", plan.DownStatements)
	}
}

func TestDiffSingleFieldDeleteAndCreateWhenPrompterDeclines(t *testing.T) {
	left := Snapshot{Tables: map[string]TableSnapshot{
		"user": {
			Define: "DEFINE TABLE user SCHEMAFULL",
			Fields: map[string]string{"full_name": "DEFINE FIELD full_name ON user TYPE string"},
		},
	}}
	right := Snapshot{Tables: map[string]TableSnapshot{
		"user": {
			Define: "DEFINE TABLE user SCHEMAFULL",
			Fields: map[string]string{"name": "DEFINE FIELD name ON user TYPE string"},
		},
	}}

	plan, err := Diff(left, right, nil, AlwaysDeletePrompter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if containsSubstring(plan.UpStatements, "UPDATE user SET") {
		t.Fatalf("did not expect a rename UPDATE: %v", plan.UpStatements)
	}
	if !containsSubstring(plan.UpStatements, "DEFINE FIELD name ON user TYPE string") {
		t.Fatalf("expected new field create: %v", plan.UpStatements)
	}
	if !containsSubstring(plan.DownStatements, "REMOVE FIELD name ON user") {
		t.Fatalf("expected reverse remove of new field: %v", plan.DownStatements)
	}
}

func TestDiffExplicitOldNameSkipsPrompt(t *testing.T) {
	left := Snapshot{Tables: map[string]TableSnapshot{
		"user": {
			Define: "DEFINE TABLE user SCHEMAFULL",
			Fields: map[string]string{"full_name": "DEFINE FIELD full_name ON user TYPE string"},
		},
	}}
	right := Snapshot{Tables: map[string]TableSnapshot{
		"user": {
			Define: "DEFINE TABLE user SCHEMAFULL",
			Fields: map[string]string{"name": "DEFINE FIELD name ON user TYPE string"},
		},
	}}

	// FailOnAmbiguityPrompter would error if consulted; the old_name claim
	// must resolve the rename before the prompter is ever reached.
	oldNames := map[string]map[string]string{"user": {"name": "full_name"}}
	plan, err := Diff(left, right, oldNames, FailOnAmbiguityPrompter{})
	if err != nil {
		t.Fatalf("unexpected error (old_name should have skipped the prompt): %v", err)
	}
	if !containsSubstring(plan.UpStatements, "UPDATE user SET name = full_name") {
		t.Fatalf("expected rename UPDATE: %v", plan.UpStatements)
	}
}

func TestDiffAmbiguousMultiRenameReturnsError(t *testing.T) {
	left := Snapshot{Tables: map[string]TableSnapshot{
		"user": {
			Define: "DEFINE TABLE user SCHEMAFULL",
			Fields: map[string]string{
				"a": "DEFINE FIELD a ON user TYPE string",
				"b": "DEFINE FIELD b ON user TYPE string",
			},
		},
	}}
	right := Snapshot{Tables: map[string]TableSnapshot{
		"user": {
			Define: "DEFINE TABLE user SCHEMAFULL",
			Fields: map[string]string{
				"c": "DEFINE FIELD c ON user TYPE string",
				"d": "DEFINE FIELD d ON user TYPE string",
			},
		},
	}}

	_, err := Diff(left, right, nil, AlwaysRenamePrompter{})
	if err == nil {
		t.Fatal("expected an ambiguous rename error when more than one field is added/removed at once")
	}
}

func containsSubstring(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
