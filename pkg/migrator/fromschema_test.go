package migrator

import (
	"testing"

	"github.com/madeindigio/surrealorm/pkg/field"
)

type fakeModel struct {
	table  string
	define string
	fields []string
}

func (f fakeModel) TableName() field.Table    { return field.Table(f.table) }
func (f fakeModel) DefineTableRaw() string    { return f.define }
func (f fakeModel) DefineFieldRaws() []string { return f.fields }

func TestResourcesFromModelsExtractsFieldNames(t *testing.T) {
	m := fakeModel{
		table:  "user",
		define: "DEFINE TABLE user SCHEMAFULL",
		fields: []string{
			"DEFINE FIELD name ON user TYPE string",
			"DEFINE FIELD age ON user TYPE int",
		},
	}

	res := ResourcesFromModels(m).Build()
	if len(res.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(res.Tables))
	}
	tr := res.Tables[0]
	if tr.Table.Name != "user" || tr.Table.Define != m.define {
		t.Fatalf("unexpected table resource: %+v", tr.Table)
	}
	names := map[string]bool{}
	for _, f := range tr.Fields {
		names[f.Name] = true
	}
	if !names["name"] || !names["age"] {
		t.Fatalf("expected name and age fields, got %+v", tr.Fields)
	}
}

type fakeModelWithOldNames struct {
	fakeModel
	oldNames map[string]string
}

func (f fakeModelWithOldNames) OldNames() map[string]string { return f.oldNames }

func TestResourcesFromModelsAttachesOldNames(t *testing.T) {
	m := fakeModelWithOldNames{
		fakeModel: fakeModel{
			table:  "weapon",
			define: "DEFINE TABLE weapon SCHEMAFULL",
			fields: []string{"DEFINE FIELD power ON weapon TYPE int"},
		},
		oldNames: map[string]string{"power": "strength"},
	}

	res := ResourcesFromModels(m).Build()
	if len(res.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(res.Tables))
	}
	if got := res.Tables[0].OldNames["power"]; got != "strength" {
		t.Fatalf("expected OldNames[power] = strength, got %q (%+v)", got, res.Tables[0].OldNames)
	}
}

func TestResourcesFromModelsPlainModelHasNoOldNames(t *testing.T) {
	m := fakeModel{table: "user", define: "DEFINE TABLE user SCHEMAFULL"}
	res := ResourcesFromModels(m).Build()
	if res.Tables[0].OldNames != nil {
		t.Fatalf("expected no OldNames for a model that doesn't implement OldNamer, got %+v", res.Tables[0].OldNames)
	}
}

func TestFieldNameFromDefine(t *testing.T) {
	if got := fieldNameFromDefine("DEFINE FIELD email ON user TYPE string"); got != "email" {
		t.Fatalf("got %q", got)
	}
	if got := fieldNameFromDefine("DEFINE FIELD id"); got != "id" {
		t.Fatalf("got %q", got)
	}
}
