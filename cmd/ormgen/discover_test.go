package main

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleSource = `package models

// Post is a blog post.
type Post struct {
	ID    string ` + "`surreal:\"rename=id\"`" + `
	Title string ` + "`surreal:\"type=string\"`" + `
	Body  string ` + "`surreal:\"type=string,assert=string::len($value) > 0\"`" + `
	Draft bool   ` + "`surreal:\"skip\"`" + `
}

// ormgen:model
type Tag struct {
	Name string
}

type NotAModel struct {
	Plain string
}

type Likes struct {
	ID  string ` + "`surreal:\"rename=id\"`" + `
	In  string ` + "`surreal:\"rename=in\"`" + `
	Out string ` + "`surreal:\"rename=out\"`" + `
}
`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "models.go"), []byte(sampleSource), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestDiscoverModelsFindsTaggedStruct(t *testing.T) {
	dir := writeSample(t)
	models, pkgName, err := discoverModels(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkgName != "models" {
		t.Fatalf("unexpected package name: %q", pkgName)
	}

	byName := map[string]discoveredModel{}
	for _, m := range models {
		byName[m.Name] = m
	}

	post, ok := byName["Post"]
	if !ok {
		t.Fatal("expected Post to be discovered as a model")
	}
	if post.Table != "post" {
		t.Errorf("unexpected table: %q", post.Table)
	}
	if _, ok := byName["NotAModel"]; ok {
		t.Error("NotAModel has no surreal tags and no marker; should not be discovered")
	}
}

func TestDiscoverModelsDocCommentMarker(t *testing.T) {
	dir := writeSample(t)
	models, _, err := discoverModels(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range models {
		if m.Name == "Tag" {
			return
		}
	}
	t.Fatal("expected Tag to be discovered via its ormgen:model doc comment")
}

func TestDiscoverModelsDetectsEdge(t *testing.T) {
	dir := writeSample(t)
	models, _, err := discoverModels(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range models {
		if m.Name == "Likes" {
			if !m.IsEdge {
				t.Error("expected Likes (id/in/out only) to be detected as an edge")
			}
			return
		}
	}
	t.Fatal("expected Likes to be discovered")
}

func TestBuildDefineFieldSkipsAssertWhenAbsent(t *testing.T) {
	got := buildDefineField("user", "name", fieldTag{Type: "string"})
	want := "DEFINE FIELD name ON user TYPE string"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
