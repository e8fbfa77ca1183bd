package migrator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/sourcegraph/conc"
	"golang.org/x/sync/errgroup"

	"github.com/madeindigio/surrealorm/internal/dbsession"
)

// Engine orchestrates the two-isolated-database diff and the on-disk
// migration file / live registry discipline (spec §4.5). It holds no
// long-lived database handle itself — per spec §5 "the migration engine
// holds two short-lived database handles per command, torn down on
// completion" — each command opens what it needs and closes it before
// returning.
type Engine struct {
	MigrationsDir string
	LiveDB        dbsession.Config
	Resources     func() DbResources
	Prompter      Prompter
}

func (e *Engine) prompter() Prompter {
	if e.Prompter != nil {
		return e.Prompter
	}
	return AlwaysDeletePrompter{}
}

// lockDir acquires an exclusive file lock on the migrations directory for
// the duration of a mutating command, the concrete mechanism behind spec
// §5's resource-ownership guarantee that two CLI invocations can't
// interleave. Grounded on SPEC_FULL.md §4.5's gofrs/flock wiring.
func (e *Engine) lockDir() (func(), error) {
	if err := os.MkdirAll(e.MigrationsDir, 0o755); err != nil {
		return nil, fmt.Errorf("migrator: create migrations dir: %w", err)
	}
	lockPath := filepath.Join(e.MigrationsDir, ".lock")
	fl := flock.New(lockPath)
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("migrator: lock migrations dir: %w", err)
	}
	return func() { _ = fl.Unlock() }, nil
}

// entry is one on-disk migration file (or up/down pair under the same
// timestamp+basename) paired with its parsed filename(s).
type entry struct {
	Timestamp int64
	Basename  string
	OneWay    *Filename
	Up        *Filename
	Down      *Filename
}

// listEntries reads and strictly parses every *.surql file under dir,
// grouping up/down pairs, sorted by timestamp (spec §3.7, §6.1).
func listEntries(dir string) ([]entry, Kind, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, KindOneWay, nil
		}
		return nil, KindOneWay, fmt.Errorf("migrator: read migrations dir: %w", err)
	}

	byKey := map[string]*entry{}
	sawUp, sawDown, sawOneWay := false, false, false

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), surqlExt) {
			continue
		}
		fn, err := ParseFilename(f.Name())
		if err != nil {
			return nil, KindOneWay, err
		}
		key := fmt.Sprintf("%d_%s", fn.Timestamp, fn.Basename)
		e, ok := byKey[key]
		if !ok {
			e = &entry{Timestamp: fn.Timestamp, Basename: fn.Basename}
			byKey[key] = e
		}
		switch fn.Kind {
		case KindUp:
			cp := fn
			e.Up = &cp
			sawUp = true
		case KindDown:
			cp := fn
			e.Down = &cp
			sawDown = true
		default:
			cp := fn
			e.OneWay = &cp
			sawOneWay = true
		}
	}

	if sawOneWay && (sawUp || sawDown) {
		return nil, KindOneWay, ErrAmbiguousMigrationDirection(boolToCount(sawOneWay), boolToCount(sawUp || sawDown))
	}

	out := make([]entry, 0, len(byKey))
	for _, e := range byKey {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })

	mode := KindOneWay
	if sawUp || sawDown {
		mode = KindUp // sentinel meaning "two-way"; see isTwoWay below
	}
	return out, mode, nil
}

func boolToCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isTwoWay(mode Kind) bool { return mode == KindUp }

// Mode reports whether the migrations directory is currently two-way
// (has .up/.down pairs) or one-way, per spec §4.5.5's detection rule.
func (e *Engine) Mode() (twoWay bool, err error) {
	_, mode, err := listEntries(e.MigrationsDir)
	if err != nil {
		return false, err
	}
	return isTwoWay(mode), nil
}

func (e entry) upPath(dir string) string {
	if e.OneWay != nil {
		return filepath.Join(dir, e.OneWay.String())
	}
	return filepath.Join(dir, e.Up.String())
}

func (e entry) downPath(dir string) (string, bool) {
	if e.Down == nil {
		return "", false
	}
	return filepath.Join(dir, e.Down.String()), true
}

func (e entry) name() string {
	return fmt.Sprintf("%d_%s", e.Timestamp, e.Basename)
}

// replayLeft plays back every committed migration file's up-SQL, in
// filename order, into an isolated in-memory database — the "left" side of
// spec §4.5.2.
func replayLeft(ctx context.Context, dir string, sess *dbsession.Session) error {
	entries, _, err := listEntries(dir)
	if err != nil {
		return err
	}
	for _, en := range entries {
		content, err := os.ReadFile(en.upPath(dir))
		if err != nil {
			return fmt.Errorf("migrator: read %s: %w", en.upPath(dir), err)
		}
		if err := sess.Exec(ctx, string(content), nil); err != nil {
			return fmt.Errorf("migrator: replay %s: %w", en.name(), err)
		}
	}
	return nil
}

// snapshotOf introspects sess's current schema into a Snapshot, fanning the
// per-table "INFO FOR TABLE" lookups out across goroutines with errgroup,
// since each table's introspection is an independent round trip; the diff
// over the resulting snapshots (Diff) runs sequentially.
func snapshotOf(ctx context.Context, sess *dbsession.Session) (Snapshot, error) {
	dbInfo, err := sess.QueryFlat(ctx, "INFO FOR DB;", nil)
	if err != nil {
		return Snapshot{}, ErrDB(err)
	}
	dbInfoJSON, err := marshalFirst(dbInfo)
	if err != nil {
		return Snapshot{}, ErrDB(err)
	}

	tableNames := tableNamesFromInfo(dbInfoJSON)
	tableInfoJSON := make(map[string]string, len(tableNames))

	g, gctx := errgroup.WithContext(ctx)
	results := make([]string, len(tableNames))
	for i, name := range tableNames {
		i, name := i, name
		g.Go(func() error {
			rows, err := sess.QueryFlat(gctx, fmt.Sprintf("INFO FOR TABLE %s;", name), nil)
			if err != nil {
				return ErrDB(err)
			}
			j, err := marshalFirst(rows)
			if err != nil {
				return ErrDB(err)
			}
			results[i] = j
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	for i, name := range tableNames {
		tableInfoJSON[name] = results[i]
	}

	return SnapshotFromInfo(dbInfoJSON, tableInfoJSON), nil
}

func marshalFirst(rows []map[string]any) (string, error) {
	if len(rows) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(rows[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func tableNamesFromInfo(dbInfoJSON string) []string {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(dbInfoJSON), &parsed); err != nil {
		return nil
	}
	tables, ok := parsed["tables"].(map[string]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildOldNames extracts the ResourceBuilder-attached old_name claims into
// the shape Diff expects.
func buildOldNames(res DbResources) map[string]map[string]string {
	out := map[string]map[string]string{}
	for _, t := range res.Tables {
		if len(t.OldNames) > 0 {
			out[t.Table.Name] = t.OldNames
		}
	}
	return out
}

// Generate diffs the migrations-directory state against the codebase state
// and returns the resulting plan without writing any file — callers decide
// whether/how to persist it (spec §4.5.4 `generate`).
func (e *Engine) Generate(ctx context.Context) (*Plan, error) {
	runID := time.Now().UnixNano()
	leftNS := fmt.Sprintf("surrealorm_left_%d", runID)
	rightNS := fmt.Sprintf("surrealorm_right_%d", runID)

	var left, right *dbsession.Session
	var leftErr, rightErr error

	var wg conc.WaitGroup
	wg.Go(func() {
		left, leftErr = dbsession.OpenMemory(ctx, leftNS, leftNS)
		if leftErr == nil {
			leftErr = replayLeft(ctx, e.MigrationsDir, left)
		}
	})
	wg.Go(func() {
		right, rightErr = dbsession.OpenMemory(ctx, rightNS, rightNS)
		if rightErr == nil {
			resources := e.Resources()
			for _, stmt := range resources.AllStatements() {
				if err := right.Exec(ctx, stmt+";", nil); err != nil {
					rightErr = fmt.Errorf("migrator: apply codebase DDL: %w", err)
					return
				}
			}
		}
	})
	wg.Wait()

	if left != nil {
		defer left.Close()
	}
	if right != nil {
		defer right.Close()
	}
	if leftErr != nil {
		return nil, leftErr
	}
	if rightErr != nil {
		return nil, rightErr
	}

	leftSnap, err := snapshotOf(ctx, left)
	if err != nil {
		return nil, err
	}
	rightSnap, err := snapshotOf(ctx, right)
	if err != nil {
		return nil, err
	}

	oldNames := buildOldNames(e.Resources())
	return Diff(leftSnap, rightSnap, oldNames, e.prompter())
}

// WritePlan persists plan to a new pair of files (or a single one-way file)
// under the migrations directory, named "<timestamp>_<name>.{up,down}.surql"
// or "<timestamp>_<name>.surql" (spec §4.5.4 `generate`).
func (e *Engine) WritePlan(plan *Plan, name string, twoWay bool) (upPath string, downPath string, err error) {
	if plan.Empty() {
		ok, err := e.prompter().ConfirmNoOpMigration()
		if err != nil {
			return "", "", err
		}
		if !ok {
			return "", "", nil
		}
	}

	unlock, err := e.lockDir()
	if err != nil {
		return "", "", err
	}
	defer unlock()

	ts := time.Now().UnixMilli()
	basename := toBasename(name)
	upContent := strings.Join(plan.UpStatements, "\n")
	downContent := strings.Join(plan.DownStatements, "\n")

	if !twoWay {
		fn := Filename{Timestamp: ts, Basename: basename, Kind: KindOneWay}
		p := filepath.Join(e.MigrationsDir, fn.String())
		if err := os.WriteFile(p, []byte(upContent), 0o644); err != nil {
			return "", "", fmt.Errorf("migrator: write %s: %w", p, err)
		}
		return p, "", nil
	}

	upFn := Filename{Timestamp: ts, Basename: basename, Kind: KindUp}
	downFn := Filename{Timestamp: ts, Basename: basename, Kind: KindDown}
	upPath = filepath.Join(e.MigrationsDir, upFn.String())
	downPath = filepath.Join(e.MigrationsDir, downFn.String())
	if err := os.WriteFile(upPath, []byte(upContent), 0o644); err != nil {
		return "", "", fmt.Errorf("migrator: write %s: %w", upPath, err)
	}
	if err := os.WriteFile(downPath, []byte(downContent), 0o644); err != nil {
		return "", "", fmt.Errorf("migrator: write %s: %w", downPath, err)
	}
	return upPath, downPath, nil
}

func toBasename(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(name, "-", "_")), "_"))
}

// Init creates the first migration file(s), reflecting the current codebase
// with nothing to diff against (an empty left snapshot), and optionally
// executes it against the live database (spec §4.5.4 `init`).
func (e *Engine) Init(ctx context.Context, name string, run bool, twoWay bool) (*Plan, error) {
	entries, _, err := listEntries(e.MigrationsDir)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return nil, ErrMigrationAlreadyExists("(migrations directory is not empty)")
	}

	rightNS := fmt.Sprintf("surrealorm_init_%d", time.Now().UnixNano())
	right, err := dbsession.OpenMemory(ctx, rightNS, rightNS)
	if err != nil {
		return nil, err
	}
	defer right.Close()

	resources := e.Resources()
	for _, stmt := range resources.AllStatements() {
		if err := right.Exec(ctx, stmt+";", nil); err != nil {
			return nil, fmt.Errorf("migrator: apply codebase DDL: %w", err)
		}
	}
	rightSnap, err := snapshotOf(ctx, right)
	if err != nil {
		return nil, err
	}

	plan, err := Diff(Snapshot{Tables: map[string]TableSnapshot{}}, rightSnap, buildOldNames(resources), e.prompter())
	if err != nil {
		return nil, err
	}
	plan.UpStatements = append([]string{DefineRegistryTableSQL()}, plan.UpStatements...)

	if _, _, err := e.WritePlan(plan, name, twoWay); err != nil {
		return nil, err
	}

	if run {
		live, err := dbsession.Open(ctx, e.LiveDB)
		if err != nil {
			return nil, err
		}
		defer live.Close()
		if err := live.Exec(ctx, strings.Join(plan.UpStatements, "\n"), nil); err != nil {
			return nil, fmt.Errorf("migrator: run init migration: %w", err)
		}
	}
	return plan, nil
}

// UpOptions controls how many pending migrations Up replays.
type UpOptions struct {
	To     string // apply up to and including this migration's basename
	Count  int    // apply at most this many; 0 means no limit
	Latest bool   // apply all pending
}

// Up replays pending migrations' up-SQL against the live database in
// filename order, checksumming and registering each inside one transaction
// per migration (spec §4.5.4 `up`, §5 "Transaction discipline").
func (e *Engine) Up(ctx context.Context, opts UpOptions) ([]string, error) {
	unlock, err := e.lockDir()
	if err != nil {
		return nil, err
	}
	defer unlock()

	entries, _, err := listEntries(e.MigrationsDir)
	if err != nil {
		return nil, err
	}

	live, err := dbsession.Open(ctx, e.LiveDB)
	if err != nil {
		return nil, err
	}
	defer live.Close()

	applied, err := currentRegistry(ctx, live)
	if err != nil {
		return nil, err
	}
	if err := e.checkConsistency(entries, applied); err != nil {
		return nil, err
	}

	pending := entries[len(applied):]
	if opts.Count > 0 && len(pending) > opts.Count {
		pending = pending[:opts.Count]
	}
	if opts.To != "" {
		pending = pendingUpTo(pending, opts.To)
	}

	var appliedNames []string
	for _, en := range pending {
		content, err := os.ReadFile(en.upPath(e.MigrationsDir))
		if err != nil {
			return appliedNames, fmt.Errorf("migrator: read %s: %w", en.name(), err)
		}
		downContent := ""
		if dp, ok := en.downPath(e.MigrationsDir); ok {
			b, err := os.ReadFile(dp)
			if err != nil {
				return appliedNames, fmt.Errorf("migrator: read %s down: %w", en.name(), err)
			}
			downContent = string(b)
		}

		row := Row{
			Name: en.name(), Timestamp: en.Timestamp,
			Checksum: Checksum(string(content)), ContentUp: string(content), ContentDown: downContent,
		}
		insertSQL, insertVars := InsertRowSQL(row)
		txn := fmt.Sprintf("BEGIN TRANSACTION;\n%s\n%s\nCOMMIT TRANSACTION;", string(content), insertSQL)
		if err := live.Exec(ctx, txn, insertVars[0].(map[string]any)); err != nil {
			return appliedNames, fmt.Errorf("migrator: apply %s: %w", en.name(), err)
		}
		appliedNames = append(appliedNames, en.name())
	}
	return appliedNames, nil
}

// DownOptions controls how many applied migrations Down rolls back.
type DownOptions struct {
	To       string
	Count    int
	Previous bool
}

// Down replays down-SQL of applied migrations in reverse timestamp order
// (spec §4.5.4 `down`).
func (e *Engine) Down(ctx context.Context, opts DownOptions) ([]string, error) {
	unlock, err := e.lockDir()
	if err != nil {
		return nil, err
	}
	defer unlock()

	live, err := dbsession.Open(ctx, e.LiveDB)
	if err != nil {
		return nil, err
	}
	defer live.Close()

	applied, err := currentRegistry(ctx, live)
	if err != nil {
		return nil, err
	}

	n := len(applied)
	if opts.Previous {
		n = min(n, 1)
	} else if opts.Count > 0 {
		n = min(n, opts.Count)
	}
	toRollback := applied[len(applied)-n:]

	var rolledBack []string
	for i := len(toRollback) - 1; i >= 0; i-- {
		row := toRollback[i]
		if row.ContentDown == "" {
			return rolledBack, ErrMigrationDownQueriesEmpty(row.Name)
		}
		deleteSQL, deleteVars := DeleteRowSQL(row.Name)
		txn := fmt.Sprintf("BEGIN TRANSACTION;\n%s\n%s\nCOMMIT TRANSACTION;", row.ContentDown, deleteSQL)
		if err := live.Exec(ctx, txn, deleteVars); err != nil {
			return rolledBack, ErrRollbackFailed(err.Error())
		}
		rolledBack = append(rolledBack, row.Name)
		if opts.To != "" && strings.Contains(row.Name, opts.To) {
			break
		}
	}
	return rolledBack, nil
}

// Reset deletes every migration file and every registry row (spec §4.5.4
// `reset`).
func (e *Engine) Reset(ctx context.Context) error {
	unlock, err := e.lockDir()
	if err != nil {
		return err
	}
	defer unlock()

	live, err := dbsession.Open(ctx, e.LiveDB)
	if err != nil {
		return err
	}
	defer live.Close()
	if err := live.Exec(ctx, fmt.Sprintf("DELETE %s;", RegistryTable), nil); err != nil {
		return err
	}
	if err := live.Exec(ctx, fmt.Sprintf("REMOVE TABLE %s;", RegistryTable), nil); err != nil {
		return err
	}

	entries, _, err := listEntries(e.MigrationsDir)
	if err != nil {
		return err
	}
	for _, en := range entries {
		_ = os.Remove(en.upPath(e.MigrationsDir))
		if dp, ok := en.downPath(e.MigrationsDir); ok {
			_ = os.Remove(dp)
		}
	}
	return nil
}

// Prune deletes on-disk pending files newer than the latest applied
// registry row (spec §4.5.4 `prune`).
func (e *Engine) Prune(ctx context.Context) ([]string, error) {
	unlock, err := e.lockDir()
	if err != nil {
		return nil, err
	}
	defer unlock()

	entries, _, err := listEntries(e.MigrationsDir)
	if err != nil {
		return nil, err
	}
	live, err := dbsession.Open(ctx, e.LiveDB)
	if err != nil {
		return nil, err
	}
	defer live.Close()

	applied, err := currentRegistry(ctx, live)
	if err != nil {
		return nil, err
	}

	var pruned []string
	for _, en := range entries[len(applied):] {
		_ = os.Remove(en.upPath(e.MigrationsDir))
		if dp, ok := en.downPath(e.MigrationsDir); ok {
			_ = os.Remove(dp)
		}
		pruned = append(pruned, en.name())
	}
	return pruned, nil
}

// ListEntry is one row of `list`'s read-only status report.
type ListEntry struct {
	Name    string `yaml:"name"`
	Applied bool   `yaml:"applied"`
}

// List reports every on-disk migration's applied/pending status (spec
// §4.5.4 `list`).
func (e *Engine) List(ctx context.Context) ([]ListEntry, error) {
	entries, _, err := listEntries(e.MigrationsDir)
	if err != nil {
		return nil, err
	}
	live, err := dbsession.Open(ctx, e.LiveDB)
	if err != nil {
		return nil, err
	}
	defer live.Close()

	applied, err := currentRegistry(ctx, live)
	if err != nil {
		return nil, err
	}
	appliedSet := map[string]bool{}
	for _, r := range applied {
		appliedSet[r.Name] = true
	}

	out := make([]ListEntry, 0, len(entries))
	for _, en := range entries {
		out = append(out, ListEntry{Name: en.name(), Applied: appliedSet[en.name()]})
	}
	return out, nil
}

func currentRegistry(ctx context.Context, live *dbsession.Session) ([]Row, error) {
	rows, err := live.QueryFlat(ctx, SelectAllRowsSQL(), nil)
	if err != nil {
		// An empty/uninitialized database has no migration table yet.
		return nil, nil
	}
	return RowsFromRaw(rows)
}

// checkConsistency enforces spec §4.5.6: every applied row must have a
// corresponding on-disk file with a matching checksum, and applied rows
// must be a prefix of the filename-sorted on-disk list.
func (e *Engine) checkConsistency(entries []entry, applied []Row) error {
	if len(applied) > len(entries) {
		return ErrInvalidMigrationState(len(applied), len(entries))
	}
	for i, row := range applied {
		if entries[i].name() != row.Name {
			return ErrMigrationFileVsDBNamesMismatch(entries[i].name(), row.Name)
		}
		content, err := os.ReadFile(entries[i].upPath(e.MigrationsDir))
		if err != nil {
			return ErrMigrationDoesNotExist(entries[i].name())
		}
		if actual := Checksum(string(content)); row.Checksum != "" && actual != row.Checksum {
			return ErrChecksumMismatch(row.Name, row.Checksum, actual)
		}
	}
	return nil
}

func pendingUpTo(pending []entry, target string) []entry {
	for i, en := range pending {
		if en.name() == target || en.Basename == target {
			return pending[:i+1]
		}
	}
	return pending
}
