package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleModel() discoveredModel {
	return discoveredModel{
		Name:  "Post",
		Table: "post",
		Fields: []modelField{
			{GoName: "ID", Path: "id", Tag: fieldTag{Rename: "id"}},
			{GoName: "Title", Path: "title", Tag: fieldTag{Type: "string"}},
			{GoName: "Author", Path: "author", Tag: fieldTag{LinkOne: "User"}},
			{GoName: "Tags", Path: "tags", Tag: fieldTag{LinkMany: "Tag"}},
			{GoName: "Draft", Path: "draft", Tag: fieldTag{Skip: true}},
		},
	}
}

func TestRenderModelProducesExpectedMethods(t *testing.T) {
	f := renderModel("models", sampleModel())
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"func (p Post) TableName() field.Table",
		"func (p Post) DefineTableRaw() string",
		"func (p Post) DefineFieldRaws() []string",
		"func (p Post) SerializableFields() []field.Field",
		"func (p Post) LinkOneFields() []field.Field",
		"func (p Post) LinkManyFields() []field.Field",
		"func (p Post) RelateFields() []field.Field",
		`"DEFINE TABLE post SCHEMAFULL"`,
		"model.SchemaModel",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q\n--- got ---\n%s", want, out)
		}
	}
	if strings.Contains(out, `field.NewField("draft")`) {
		t.Error("skipped field should not appear in any field list")
	}
}

func TestDefineFieldRawsSkipsIDAndRelateFields(t *testing.T) {
	m := sampleModel()
	m.Fields = append(m.Fields, modelField{GoName: "Writes", Path: "writes", Tag: fieldTag{RelateModel: "Book", RelateConn: "->writes->book"}})
	raws := defineFieldRaws(m)
	for _, raw := range raws {
		if strings.Contains(raw, "FIELD id ") || strings.Contains(raw, "FIELD writes ") {
			t.Errorf("unexpected raw define for id/relate field: %q", raw)
		}
	}
	found := false
	for _, raw := range raws {
		if raw == "DEFINE FIELD title ON post TYPE string" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a DEFINE FIELD statement for title, got %v", raws)
	}
}

func TestWriteGeneratedWritesOneFilePerModel(t *testing.T) {
	dir := t.TempDir()
	models := []discoveredModel{sampleModel(), {Name: "Tag", Table: "tag"}}

	written, err := writeGenerated(dir, "models", models)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("expected 2 files written, got %d", len(written))
	}
	for _, path := range written {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}
	wantPost := filepath.Join(dir, "post_generated.go")
	if written[0] != wantPost && written[1] != wantPost {
		t.Errorf("expected one of the written paths to be %s, got %v", wantPost, written)
	}
}

func TestReceiverNameIsLowercasedFirstLetter(t *testing.T) {
	if got := receiverName("Post"); got != "p" {
		t.Errorf("got %q, want %q", got, "p")
	}
}
