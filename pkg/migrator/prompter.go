package migrator

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// RenameChoice is the operator's answer to a single-field rename prompt.
type RenameChoice int

const (
	// ChoiceRename treats the removed field as renamed to the added one.
	ChoiceRename RenameChoice = iota
	// ChoiceDeleteAndCreate treats them as an unrelated remove+create pair.
	ChoiceDeleteAndCreate
)

// RenameCandidate is one (old, new) field-name pair the diff algorithm is
// unsure about, along with an advisory similarity ranking.
type RenameCandidate struct {
	Table         string
	OldField      string
	NewField      string
	LikelyMatch   bool
	SimilarityNote string
}

// Prompter is the operator-interaction seam the migration engine calls
// through whenever a field rename can't be resolved from an explicit
// old_name tag (spec §4.5.3, §9 "Prompting in library code"). Keeping this
// as an interface — rather than hard-wiring a terminal prompt into the diff
// algorithm — is what lets pkg/migrator stay a library: CI callers inject a
// non-interactive implementation instead of blocking on stdin.
type Prompter interface {
	PromptRename(c RenameCandidate) (RenameChoice, error)
	// ConfirmNoOpMigration is asked by `generate` when the diff is empty
	// (spec §4.5.4's "If the diff is empty, prompt whether to emit a no-op
	// file").
	ConfirmNoOpMigration() (bool, error)
}

// InteractivePrompter asks the operator via a terminal select prompt, built
// on charmbracelet/huh the same way untoldecay/BeadsLog's CLI prompts its
// operator for destructive confirmations.
type InteractivePrompter struct{}

func (InteractivePrompter) PromptRename(c RenameCandidate) (RenameChoice, error) {
	var choice string
	renameLabel := fmt.Sprintf("Rename %s -> %s", c.OldField, c.NewField)
	if c.LikelyMatch {
		renameLabel += fmt.Sprintf(" (likely match: %s)", c.SimilarityNote)
	}

	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(fmt.Sprintf("Table %q: field %q removed, field %q added", c.Table, c.OldField, c.NewField)).
			Options(
				huh.NewOption(renameLabel, "rename"),
				huh.NewOption("Delete old field and create new field separately", "delete_and_create"),
			).
			Value(&choice),
	)).Run()
	if err != nil {
		return ChoiceDeleteAndCreate, fmt.Errorf("migrator: rename prompt: %w", err)
	}
	if choice == "rename" {
		return ChoiceRename, nil
	}
	return ChoiceDeleteAndCreate, nil
}

func (InteractivePrompter) ConfirmNoOpMigration() (bool, error) {
	var confirm bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("No schema changes detected. Emit an empty migration file anyway?").
			Value(&confirm),
	)).Run()
	if err != nil {
		return false, fmt.Errorf("migrator: no-op confirmation prompt: %w", err)
	}
	return confirm, nil
}

// AlwaysRenamePrompter answers every rename prompt with ChoiceRename — for
// CI pipelines that trust the rename heuristic unconditionally.
type AlwaysRenamePrompter struct{}

func (AlwaysRenamePrompter) PromptRename(RenameCandidate) (RenameChoice, error) {
	return ChoiceRename, nil
}
func (AlwaysRenamePrompter) ConfirmNoOpMigration() (bool, error) { return true, nil }

// AlwaysDeletePrompter answers every rename prompt with
// ChoiceDeleteAndCreate — for CI pipelines that never want implicit renames.
type AlwaysDeletePrompter struct{}

func (AlwaysDeletePrompter) PromptRename(RenameCandidate) (RenameChoice, error) {
	return ChoiceDeleteAndCreate, nil
}
func (AlwaysDeletePrompter) ConfirmNoOpMigration() (bool, error) { return true, nil }

// FailOnAmbiguityPrompter refuses to guess — for CI pipelines that require
// every rename to be resolved via an explicit old_name tag beforehand.
type FailOnAmbiguityPrompter struct{}

func (FailOnAmbiguityPrompter) PromptRename(c RenameCandidate) (RenameChoice, error) {
	return ChoiceDeleteAndCreate, ErrAmbiguousRename(c.Table, c.OldField, c.NewField)
}
func (FailOnAmbiguityPrompter) ConfirmNoOpMigration() (bool, error) { return false, nil }

// ErrAmbiguousRename reports a rename that needs operator (or old_name tag)
// resolution but the active prompter refuses to guess — the
// "Multi-rename-with-mismatched-counts...requires explicit old_name tags"
// Open Question resolution from SPEC_FULL.md §9.
func ErrAmbiguousRename(table, oldField, newField string) error {
	return newErr("AmbiguousRename",
		"table %q: ambiguous rename between removed field %q and added field %q; annotate old_name or use an interactive prompter",
		table, oldField, newField)
}
