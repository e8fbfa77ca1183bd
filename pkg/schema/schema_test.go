package schema

import "testing"

type person struct {
	Name string `surreal:"type=string"`
	Age  int    `surreal:"type=int,assert=$value >= 0"`
}

func TestDeriveDefaultTableIsSnakeCaseOfStructName(t *testing.T) {
	d := Derive[person]()
	if len(d.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", d.Errors())
	}
	if d.TableName().String() != "person" {
		t.Fatalf("expected table 'person', got %s", d.TableName())
	}
}

func TestDeriveSerializableFieldsExcludesSkipped(t *testing.T) {
	type withSkip struct {
		Name     string `surreal:"type=string"`
		Internal string `surreal:"skip"`
	}
	d := Derive[withSkip]()
	fields := d.SerializableFields()
	if len(fields) != 1 || fields[0].String() != "name" {
		t.Fatalf("expected only 'name' to be serializable, got %v", fields)
	}
}

func TestDeriveOldNamesCollectsRenameClaims(t *testing.T) {
	type weapon struct {
		Power    int `surreal:"type=int,old_name=strength"`
		Untagged int `surreal:"type=int"`
	}
	d := Derive[weapon]()
	old := d.OldNames()
	if got := old["power"]; got != "strength" {
		t.Fatalf("expected OldNames[power] = strength, got %q (%+v)", got, old)
	}
	if _, ok := old["untagged"]; ok {
		t.Fatalf("expected no entry for a field without old_name, got %+v", old)
	}
}

func TestDeriveOldNamesEmptyWhenNoneDeclared(t *testing.T) {
	d := Derive[person]()
	if old := d.OldNames(); old != nil {
		t.Fatalf("expected nil OldNames map, got %+v", old)
	}
}

func TestDeriveRejectsMismatchedTableWithoutRelax(t *testing.T) {
	d := Derive[person](WithTable("people"))
	if len(d.Errors()) == 0 {
		t.Fatalf("expected a validation error for non-snake_case table override")
	}
}

func TestDeriveAllowsMismatchedTableWithRelax(t *testing.T) {
	d := Derive[person](WithTable("people"), WithRelaxTable())
	if len(d.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", d.Errors())
	}
	if d.TableName().String() != "people" {
		t.Fatalf("expected relaxed table name 'people', got %s", d.TableName())
	}
}

func TestDeriveLinkOneValidatesRecordType(t *testing.T) {
	type book struct{}
	type review struct {
		Book string `surreal:"link_one=book,type=record<wrong_table>"`
	}
	_ = book{}
	d := Derive[review]()
	if len(d.Errors()) == 0 {
		t.Fatalf("expected a link-type validation error")
	}
}

func TestDeriveEdgeRequiresIDInOut(t *testing.T) {
	type writes struct {
		ID  string `surreal:"rename=id"`
		In  string `surreal:"rename=in,type=record"`
		Out string `surreal:"rename=out,type=record"`
	}
	d := Derive[writes](AsEdge())
	if len(d.Errors()) != 0 {
		t.Fatalf("unexpected edge errors: %v", d.Errors())
	}
}

func TestDeriveEdgeMissingFieldIsError(t *testing.T) {
	type badEdge struct {
		ID string `surreal:"rename=id"`
		In string `surreal:"rename=in"`
	}
	d := Derive[badEdge](AsEdge())
	if len(d.Errors()) == 0 {
		t.Fatalf("expected errors for edge missing 'out' field")
	}
}

func TestDefineFieldRawsIncludeTypeAndAssert(t *testing.T) {
	d := Derive[person]()
	raws := d.DefineFieldRaws()
	found := false
	for _, r := range raws {
		if r == "DEFINE FIELD age ON person TYPE int ASSERT $value >= 0" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a DEFINE FIELD statement for age with TYPE and ASSERT, got %v", raws)
	}
}
