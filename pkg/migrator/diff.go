package migrator

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/madeindigio/surrealorm/pkg/statements"
	"github.com/tidwall/gjson"
)

// TableSnapshot is one table's resources as introspected via "INFO FOR
// TABLE <name>" from one of the two isolated databases (spec §4.5.2).
type TableSnapshot struct {
	Define  string
	Fields  map[string]string
	Events  map[string]string
	Indexes map[string]string
}

// Snapshot is a full database's declared schema as of one "INFO FOR DB" +
// per-table "INFO FOR TABLE" introspection pass — the left (migrations-dir)
// or right (codebase) side of the diff.
type Snapshot struct {
	Tables    map[string]TableSnapshot
	Analyzers map[string]string
	Params    map[string]string
	Functions map[string]string
	Scopes    map[string]string
	Tokens    map[string]string
	Users     map[string]string
}

// SnapshotFromInfo parses the JSON body of "INFO FOR DB" (dbInfoJSON) plus
// one "INFO FOR TABLE <name>" body per table (tableInfoJSON, keyed by table
// name) into a Snapshot. Each INFO response is a JSON object whose
// interesting keys ("tables", "analyzers", "fields", ...) are themselves
// objects mapping resource name -> DEFINE statement text; gjson's ad hoc
// path lookups read those nested objects without a generated struct for
// every shape SurrealDB's introspection can return (grounded on the
// teacher's transitive gjson dependency, promoted here to do the job its
// own migration.go did by hand with map[string]interface{} type switches).
func SnapshotFromInfo(dbInfoJSON string, tableInfoJSON map[string]string) Snapshot {
	root := gjson.Parse(dbInfoJSON)
	snap := Snapshot{
		Tables:    map[string]TableSnapshot{},
		Analyzers: objectToMap(root.Get("analyzers")),
		Params:    objectToMap(root.Get("params")),
		Functions: objectToMap(root.Get("functions")),
		Scopes:    objectToMap(root.Get("scopes")),
		Tokens:    objectToMap(root.Get("tokens")),
		Users:     objectToMap(root.Get("users")),
	}

	tables := objectToMap(root.Get("tables"))
	for name, define := range tables {
		tableRoot := gjson.Parse(tableInfoJSON[name])
		snap.Tables[name] = TableSnapshot{
			Define:  define,
			Fields:  objectToMap(tableRoot.Get("fields")),
			Events:  objectToMap(tableRoot.Get("events")),
			Indexes: objectToMap(tableRoot.Get("indexes")),
		}
	}
	return snap
}

func objectToMap(result gjson.Result) map[string]string {
	out := map[string]string{}
	if !result.Exists() {
		return out
	}
	result.ForEach(func(key, value gjson.Result) bool {
		out[key.String()] = value.String()
		return true
	})
	return out
}

// CategoryDiff is the three-way split of one resource category's names
// between the left and right snapshots (spec §4.5.3).
type CategoryDiff struct {
	ToCreate []string // present right, absent left
	ToRemove []string // present left, absent right
	ToUpdate []string // present both, DEFINE text differs
}

func diffNames(left, right map[string]string) CategoryDiff {
	var d CategoryDiff
	for name, rightDefine := range right {
		leftDefine, ok := left[name]
		if !ok {
			d.ToCreate = append(d.ToCreate, name)
		} else if leftDefine != rightDefine {
			d.ToUpdate = append(d.ToUpdate, name)
		}
	}
	for name := range left {
		if _, ok := right[name]; !ok {
			d.ToRemove = append(d.ToRemove, name)
		}
	}
	sort.Strings(d.ToCreate)
	sort.Strings(d.ToRemove)
	sort.Strings(d.ToUpdate)
	return d
}

// Plan is the generated migration content: forward (up) and reverse (down)
// SQL, in final emission order.
type Plan struct {
	UpStatements   []string
	DownStatements []string
}

// Empty reports whether the plan has no effect — the `generate` command's
// no-op detection (spec §4.5.4).
func (p *Plan) Empty() bool {
	return len(p.UpStatements) == 0 && len(p.DownStatements) == 0
}

func (p *Plan) addSymmetric(up, down string) {
	p.UpStatements = append(p.UpStatements, up)
	p.DownStatements = append(p.DownStatements, down)
}

// Diff computes the full migration plan between left (previous, per the
// migrations directory) and right (desired, per the codebase) snapshots,
// across tables, fields, events, indexes, analyzers, params, functions,
// scopes, tokens and users (spec §4.5.3). oldNames maps
// table -> (new field name -> old field name) for fields carrying an
// explicit old_name tag, which skips the rename prompt entirely.
func Diff(left, right Snapshot, oldNames map[string]map[string]string, prompter Prompter) (*Plan, error) {
	plan := &Plan{}

	tableDiff := diffNames(mapDefines(left.Tables), mapDefines(right.Tables))
	for _, name := range tableDiff.ToCreate {
		plan.addSymmetric(right.Tables[name].Define+";", mustRemove(right.Tables[name].Define))
	}
	for _, name := range tableDiff.ToUpdate {
		plan.addSymmetric(right.Tables[name].Define+";", left.Tables[name].Define+";")
	}

	for _, name := range unionTableNames(left.Tables, right.Tables) {
		// A new table has a zero left side and a removed table a zero right
		// side, so their fields, events and indexes are created or removed
		// together with the table-level statement.
		leftTable := left.Tables[name]
		rightTable := right.Tables[name]
		if err := diffTableFields(plan, name, leftTable, rightTable, oldNames[name], prompter); err != nil {
			return nil, err
		}
		diffSimpleCategory(plan, leftTable.Events, rightTable.Events, "EVENT", name)
		diffSimpleCategory(plan, leftTable.Indexes, rightTable.Indexes, "INDEX", name)
	}

	for _, name := range tableDiff.ToRemove {
		plan.addSymmetric(mustRemove(left.Tables[name].Define), left.Tables[name].Define+";")
	}

	diffTopLevelCategory(plan, left.Analyzers, right.Analyzers)
	diffTopLevelCategory(plan, left.Params, right.Params)
	diffTopLevelCategory(plan, left.Functions, right.Functions)
	diffTopLevelCategory(plan, left.Scopes, right.Scopes)
	diffTopLevelCategory(plan, left.Tokens, right.Tokens)
	diffTopLevelCategory(plan, left.Users, right.Users)

	reverseDown(plan)
	return plan, nil
}

func mapDefines(tables map[string]TableSnapshot) map[string]string {
	out := make(map[string]string, len(tables))
	for name, t := range tables {
		out[name] = t.Define
	}
	return out
}

func unionTableNames(a, b map[string]TableSnapshot) []string {
	seen := map[string]bool{}
	var out []string
	for name := range a {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for name := range b {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// diffTableFields handles the single-field rename-detection rule, spec
// §4.5.3: exactly one removed + one added field on the same table, with no
// explicit old_name claim, triggers the prompter; otherwise creates/updates/
// removes are independent.
func diffTableFields(plan *Plan, table string, left, right TableSnapshot, oldNames map[string]string, prompter Prompter) error {
	d := diffNames(left.Fields, right.Fields)

	// Explicit old_name claims resolve first, removing both sides from the
	// generic create/remove lists so they don't also get independently
	// created/removed below.
	renamed := map[string]bool{} // field names (old or new) already resolved
	for newField, oldField := range oldNames {
		if !containsStr(d.ToCreate, newField) || !containsStr(d.ToRemove, oldField) {
			continue
		}
		emitRename(plan, table, oldField, newField, right.Fields[newField], left.Fields[oldField])
		renamed[newField] = true
		renamed[oldField] = true
	}

	remaining := func(names []string) []string {
		out := names[:0:0]
		for _, n := range names {
			if !renamed[n] {
				out = append(out, n)
			}
		}
		return out
	}
	toCreate := remaining(d.ToCreate)
	toRemove := remaining(d.ToRemove)

	if len(toCreate) == 1 && len(toRemove) == 1 && prompter != nil {
		newField, oldField := toCreate[0], toRemove[0]
		dist := levenshtein.ComputeDistance(oldField, newField)
		likely := dist <= 3
		choice, err := prompter.PromptRename(RenameCandidate{
			Table: table, OldField: oldField, NewField: newField,
			LikelyMatch:    likely,
			SimilarityNote: fmt.Sprintf("edit distance %d", dist),
		})
		if err != nil {
			return err
		}
		if choice == ChoiceRename {
			emitRename(plan, table, oldField, newField, right.Fields[newField], left.Fields[oldField])
			toCreate, toRemove = nil, nil
		}
	} else if len(toCreate) > 0 && len(toRemove) > 0 {
		// Counts differ or are ambiguous with no single obvious pairing —
		// the Open Question resolution (SPEC_FULL.md §9): require explicit
		// old_name tags rather than guess.
		return ErrAmbiguousRename(table, toRemove[0], toCreate[0])
	}

	for _, name := range toCreate {
		plan.addSymmetric(right.Fields[name]+";", mustRemove(right.Fields[name]))
	}
	for _, name := range d.ToUpdate {
		plan.addSymmetric(right.Fields[name]+";", left.Fields[name]+";")
	}
	for _, name := range toRemove {
		plan.addSymmetric(mustRemove(left.Fields[name]), left.Fields[name]+";")
	}
	return nil
}

func emitRename(plan *Plan, table, oldField, newField, newDefine, oldDefine string) {
	plan.UpStatements = append(plan.UpStatements,
		fmt.Sprintf("-- rename %s.%s -> %s.%s", table, oldField, table, newField),
		newDefine+";",
		fmt.Sprintf("UPDATE %s SET %s = %s;", table, newField, oldField),
		mustRemove(oldDefine),
	)
	// reverseDown flips the whole down list, so the reverse rename is
	// appended last statement first.
	plan.DownStatements = append(plan.DownStatements,
		mustRemove(newDefine),
		fmt.Sprintf("UPDATE %s SET %s = %s;", table, oldField, newField),
		oldDefine+";",
		fmt.Sprintf("-- rename %s.%s -> %s.%s (reverse)", table, newField, table, oldField),
	)
}

func diffSimpleCategory(plan *Plan, left, right map[string]string, kind, table string) {
	d := diffNames(left, right)
	for _, name := range d.ToCreate {
		plan.addSymmetric(right[name]+";", mustRemove(right[name]))
	}
	for _, name := range d.ToUpdate {
		plan.addSymmetric(right[name]+";", left[name]+";")
	}
	for _, name := range d.ToRemove {
		plan.addSymmetric(mustRemove(left[name]), left[name]+";")
	}
}

func diffTopLevelCategory(plan *Plan, left, right map[string]string) {
	d := diffNames(left, right)
	for _, name := range d.ToCreate {
		plan.addSymmetric(right[name]+";", mustRemove(right[name]))
	}
	for _, name := range d.ToUpdate {
		plan.addSymmetric(right[name]+";", left[name]+";")
	}
	for _, name := range d.ToRemove {
		plan.addSymmetric(mustRemove(left[name]), left[name]+";")
	}
}

func mustRemove(define string) string {
	removed, err := statements.DeriveRemove(define)
	if err != nil {
		return "-- unable to derive REMOVE for: " + define
	}
	return removed + ";"
}

// reverseDown reverses the down-statement slice so that, combined with the
// per-category append order (create, update, remove per the up side), the
// down side undoes everything in the opposite order (spec §4.5.3
// "Ordering").
func reverseDown(p *Plan) {
	for i, j := 0, len(p.DownStatements)-1; i < j; i, j = i+1, j-1 {
		p.DownStatements[i], p.DownStatements[j] = p.DownStatements[j], p.DownStatements[i]
	}
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
