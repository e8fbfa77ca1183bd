package statements

import (
	"strings"
	"testing"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/field"
	"github.com/madeindigio/surrealorm/pkg/model"
	"github.com/madeindigio/surrealorm/pkg/valuex"
)

func TestSelectEmitsClausesInGrammarOrder(t *testing.T) {
	binding.Reset()
	table := field.NewTable("person")
	s := SelectFrom(TableTarget(table)).
		Where(field.NewField("age").GreaterThanOrEqual(18)).
		OrderBy(field.OrderBy(field.NewField("name")).Asc()).
		Limit(10).
		Start(5)

	built := s.Build()
	if !strings.HasPrefix(built, "SELECT * FROM person WHERE") {
		t.Fatalf("unexpected select prefix: %s", built)
	}
	if !strings.Contains(built, "ORDER BY name ASC") {
		t.Fatalf("expected order by clause: %s", built)
	}
	if !strings.HasSuffix(built, "LIMIT 10 START 5") {
		t.Fatalf("expected limit/start suffix: %s", built)
	}
}

func TestSelectEmptyFieldsCallIsBuildTimeError(t *testing.T) {
	binding.Reset()
	s := SelectFrom(TableTarget(field.NewTable("person"))).Fields()
	if len(s.GetErrors()) == 0 {
		t.Fatalf("expected an empty-projection error, got none")
	}
}

// TestScenarioA_BasicSelectWithBinding reproduces spec §8 Scenario A: given
// a user table, selecting every field with an age filter renders both the
// inlined raw form and the parameterized form with exactly one binding.
func TestScenarioA_BasicSelectWithBinding(t *testing.T) {
	binding.Reset()
	s := SelectFrom(TableTarget(field.NewTable("user"))).
		All().
		Where(field.NewField("age").GreaterThanOrEqual(18))

	wantParam := "SELECT * FROM user WHERE age >= $_param_00000001"
	if got := s.Build(); got != wantParam {
		t.Fatalf("parameterized build: got %q, want %q", got, wantParam)
	}

	raw := valuex.Compose(s.Build(), s.GetBindings(), s.GetErrors()).ToRaw()
	wantRaw := "SELECT * FROM user WHERE age >= 18"
	if raw != wantRaw {
		t.Fatalf("raw build: got %q, want %q", raw, wantRaw)
	}

	binds := s.GetBindings()
	if len(binds) != 1 || binds[0].ParamName != "_param_00000001" || binds[0].Value != 18 {
		t.Fatalf("expected exactly one binding (_param_00000001, 18), got %+v", binds)
	}
}

// TestScenarioB_RelateWithContent reproduces spec §8 Scenario B: relating
// two records with a CONTENT payload renders the graph expression plus one
// binding carrying the serialized edge object.
func TestScenarioB_RelateWithContent(t *testing.T) {
	binding.Reset()
	conn := NewConnection(field.NewField("student:ada"), "writes", field.NewField("book:dune"))
	r := RelateConnection(conn).Content(map[string]any{"score": 5})

	built := r.Build()
	if !strings.HasPrefix(built, "RELATE student:ada->writes->book:dune CONTENT $") {
		t.Fatalf("unexpected relate build: %s", built)
	}
	binds := r.GetBindings()
	if len(binds) != 1 {
		t.Fatalf("expected exactly one binding, got %d", len(binds))
	}
	content, ok := binds[len(binds)-1].Value.(map[string]any)
	if !ok || content["score"] != 5 {
		t.Fatalf("expected the last binding to carry the serialized edge object, got %+v", binds)
	}
}

// TestScenarioC_Transaction reproduces spec §8 Scenario C: a transaction
// wraps its child statements between BEGIN/COMMIT TRANSACTION in order,
// concatenating their bindings. (The exact surrounding whitespace is a
// rendering-idiom choice, not a semantic requirement; this asserts content
// and ordering rather than the original's literal newline layout.)
func TestScenarioC_Transaction(t *testing.T) {
	binding.Reset()
	s1 := Create(TableTarget(field.NewTable("a"))).Content(map[string]any{"x": 1})
	s2 := Create(TableTarget(field.NewTable("b"))).Content(map[string]any{"y": 2})

	tx := BeginTransaction().Query(s1).Query(s2).Commit()
	built := tx.Build()

	if !strings.HasPrefix(built, "BEGIN TRANSACTION;") {
		t.Fatalf("expected transaction to open with BEGIN TRANSACTION;, got %s", built)
	}
	if !strings.HasSuffix(built, "COMMIT TRANSACTION;") {
		t.Fatalf("expected transaction to close with COMMIT TRANSACTION;, got %s", built)
	}
	if strings.Index(built, "CREATE a") > strings.Index(built, "CREATE b") {
		t.Fatalf("expected child statements in query order: %s", built)
	}

	wantBindings := len(s1.GetBindings()) + len(s2.GetBindings())
	if got := len(tx.GetBindings()); got != wantBindings {
		t.Fatalf("expected %d concatenated bindings, got %d", wantBindings, got)
	}
}

type bookModel struct{}

func (bookModel) TableName() field.Table { return field.NewTable("book") }

// TestScenarioF_IDTableMismatchDefersError reproduces spec §8 Scenario F: an
// id whose table doesn't match its declared model appends a deferred error
// to the statement instead of panicking, and the statement's bindings stay
// empty.
func TestScenarioF_IDTableMismatchDefersError(t *testing.T) {
	binding.Reset()
	id, err := model.Parse[bookModel]("book:blaze")
	if err != nil {
		t.Fatalf("expected book:blaze to parse against bookModel, got %v", err)
	}
	d := DeleteFrom(ModelIDTarget(id, nil))
	if len(d.GetErrors()) != 0 {
		t.Fatalf("expected no errors for a matching table, got %v", d.GetErrors())
	}

	_, mismatchErr := model.Parse[bookModel]("user:ada")
	if mismatchErr == nil {
		t.Fatal("expected a table-mismatch error parsing user:ada against bookModel")
	}
	dMismatch := DeleteFrom(ModelIDTarget(model.SurrealId[bookModel]{}, mismatchErr))
	if len(dMismatch.GetErrors()) == 0 {
		t.Fatalf("expected the mismatch error to be deferred onto the statement")
	}
}

func TestSelectAllIsNotAnError(t *testing.T) {
	binding.Reset()
	s := SelectFrom(TableTarget(field.NewTable("person"))).All()
	if len(s.GetErrors()) != 0 {
		t.Fatalf("expected no errors from All(), got %v", s.GetErrors())
	}
	if !strings.HasPrefix(s.Build(), "SELECT * FROM person") {
		t.Fatalf("unexpected build: %s", s.Build())
	}
}

func TestSelectUnsetProjectionIsNotAnError(t *testing.T) {
	binding.Reset()
	s := SelectFrom(TableTarget(field.NewTable("person")))
	if len(s.GetErrors()) != 0 {
		t.Fatalf("expected no errors when Fields/All were never called, got %v", s.GetErrors())
	}
}

func TestCreateWithContentRendersPlaceholder(t *testing.T) {
	binding.Reset()
	c := Create(TableTarget(field.NewTable("person"))).Content(map[string]any{"name": "Tobie"})
	if !strings.HasPrefix(c.Build(), "CREATE person CONTENT $") {
		t.Fatalf("unexpected create build: %s", c.Build())
	}
	if len(c.GetBindings()) != 1 {
		t.Fatalf("expected 1 binding, got %d", len(c.GetBindings()))
	}
}

func TestCreateContentThenSetRecordsConflictError(t *testing.T) {
	binding.Reset()
	c := Create(TableTarget(field.NewTable("person"))).
		Content(map[string]any{"name": "Tobie"}).
		Set(field.NewSetter(field.NewField("name")).Equal("Jaime"))
	if len(c.GetErrors()) == 0 {
		t.Fatalf("expected a conflict error when both CONTENT and SET are set")
	}
}

func TestMergePatchReplaceOnlyValidOnUpsert(t *testing.T) {
	binding.Reset()
	if c := Create(TableTarget(field.NewTable("person"))).Merge(map[string]any{"name": "Tobie"}); len(c.GetErrors()) == 0 {
		t.Fatalf("expected an error calling Merge on CREATE")
	}
	if u := Update(TableTarget(field.NewTable("person"))).Patch([]map[string]any{{"op": "replace"}}); len(u.GetErrors()) == 0 {
		t.Fatalf("expected an error calling Patch on UPDATE")
	}
	if u := Update(TableTarget(field.NewTable("person"))).Replace(map[string]any{"name": "Tobie"}); len(u.GetErrors()) == 0 {
		t.Fatalf("expected an error calling Replace on UPDATE")
	}
	up := Upsert(TableTarget(field.NewTable("person"))).Merge(map[string]any{"name": "Tobie"})
	if len(up.GetErrors()) != 0 {
		t.Fatalf("expected no error calling Merge on UPSERT, got %v", up.GetErrors())
	}
	if !strings.HasPrefix(up.Build(), "UPSERT person MERGE $") {
		t.Fatalf("unexpected upsert build: %s", up.Build())
	}
}

func TestUpdateSetRendersSetters(t *testing.T) {
	binding.Reset()
	u := Update(IDTarget("person:tobie")).
		Set(field.NewSetter(field.NewField("score")).IncrementBy(1)).
		Return(ReturnAfter())
	built := u.Build()
	if !strings.Contains(built, "SET score +=") || !strings.HasSuffix(built, "RETURN AFTER") {
		t.Fatalf("unexpected update build: %s", built)
	}
}

func TestDeleteWithWhereAndReturn(t *testing.T) {
	binding.Reset()
	d := DeleteFrom(TableTarget(field.NewTable("person"))).
		Where(field.NewField("age").LessThan(18)).
		Return(ReturnNone())
	built := d.Build()
	if !strings.HasPrefix(built, "DELETE person WHERE") || !strings.HasSuffix(built, "RETURN NONE") {
		t.Fatalf("unexpected delete build: %s", built)
	}
}

func TestRelateRendersGraphConnection(t *testing.T) {
	binding.Reset()
	conn := NewConnection(field.NewField("student:1"), "writes", field.NewField("book:2"))
	r := RelateConnection(conn).Set(field.NewSetter(field.NewField("grade")).Equal("A"))
	built := r.Build()
	if !strings.HasPrefix(built, "RELATE student:1->writes->book:2 SET grade =") {
		t.Fatalf("unexpected relate build: %s", built)
	}
}

func TestInsertRendersColumnValueTuples(t *testing.T) {
	binding.Reset()
	ins := InsertInto(field.NewTable("person"), "name", "age").Values("Tobie", 25)
	built := ins.Build()
	if !strings.HasPrefix(built, "INSERT INTO person (name, age) VALUES (") {
		t.Fatalf("unexpected insert build: %s", built)
	}
	if len(ins.GetBindings()) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(ins.GetBindings()))
	}
}

func TestDeriveRemoveHandlesEveryDefineKind(t *testing.T) {
	cases := map[string]string{
		"DEFINE TABLE person SCHEMAFULL;":                 "REMOVE TABLE person",
		"DEFINE FIELD name ON person TYPE string;":        "REMOVE FIELD name ON person",
		"DEFINE INDEX idx_name ON person FIELDS name;":    "REMOVE INDEX idx_name ON person",
		"DEFINE EVENT ev ON person WHEN true THEN NONE;":  "REMOVE EVENT ev ON person",
		"DEFINE ANALYZER az TOKENIZERS class;":            "REMOVE ANALYZER az",
		"DEFINE PARAM $x VALUE 1;":                        "REMOVE PARAM $x",
		"DEFINE FUNCTION fn::f() { RETURN 1; };":          "REMOVE FUNCTION fn::f",
		"DEFINE SCOPE sc SESSION 1d;":                     "REMOVE SCOPE sc",
		"DEFINE TOKEN tk ON SCOPE sc TYPE HS512 VALUE 1;": "REMOVE TOKEN tk ON SCOPE sc",
		"DEFINE USER u ON ROOT PASSWORD \"x\" ROLES OWNER;": "REMOVE USER u ON ROOT",
	}
	for define, want := range cases {
		got, err := DeriveRemove(define)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", define, err)
		}
		if got != want {
			t.Fatalf("for %q: expected %q, got %q", define, want, got)
		}
	}
}

func TestDeriveRemoveRejectsNonDefineStatement(t *testing.T) {
	if _, err := DeriveRemove("SELECT * FROM person"); err == nil {
		t.Fatalf("expected error for non-DEFINE statement")
	}
}

func TestTransactionWrapsChildrenInBeginCommit(t *testing.T) {
	binding.Reset()
	tx := BeginTransaction().
		Query(Create(TableTarget(field.NewTable("person"))).Content(map[string]any{"name": "a"})).
		Query(DeleteFrom(TableTarget(field.NewTable("ghost"))))
	built := tx.Build()
	if !strings.HasPrefix(built, "BEGIN TRANSACTION;") || !strings.HasSuffix(built, "COMMIT TRANSACTION;") {
		t.Fatalf("unexpected transaction build: %s", built)
	}
	if len(tx.GetBindings()) != 1 {
		t.Fatalf("expected 1 binding from the CREATE child, got %d", len(tx.GetBindings()))
	}
}

func TestIfThenElseRendersAllBranches(t *testing.T) {
	ifExpr := IfCond(field.NewField("age").GreaterThanOrEqual(18)).
		Then(valuex.New("'adult'")).
		ElseIf(field.NewField("age").GreaterThanOrEqual(13)).
		Then(valuex.New("'teen'")).
		Else(valuex.New("'child'"))
	built := ifExpr.Build()
	if !strings.HasPrefix(built, "IF age >=") {
		t.Fatalf("unexpected if build: %s", built)
	}
	if !strings.Contains(built, "ELSE IF age >=") || !strings.HasSuffix(built, "ELSE 'child' END") {
		t.Fatalf("expected else-if and else branches: %s", built)
	}
}

func TestBlockRendersStatementsAndReturn(t *testing.T) {
	binding.Reset()
	block := NewBlock().
		Stmt(Create(TableTarget(field.NewTable("person"))).Content(map[string]any{"name": "a"})).
		Return(valuex.New("$this"))
	built := block.Build()
	if !strings.HasPrefix(built, "{ CREATE person CONTENT $") {
		t.Fatalf("unexpected block build: %s", built)
	}
	if !strings.Contains(built, "RETURN $this; }") {
		t.Fatalf("expected trailing return: %s", built)
	}
}
