package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-openapi/inflect"
)

// modelField is one discovered struct field, the AST-derived twin of
// pkg/schema.FieldInfo.
type modelField struct {
	GoName string
	Path   string
	Tag    fieldTag
}

// discoveredModel is one struct type this pass decided to treat as a model,
// along with everything needed to emit its generated companion.
type discoveredModel struct {
	Name       string
	Table      string
	RelaxTable bool
	IsEdge     bool
	Fields     []modelField
}

// discoverModels parses every non-generated, non-test .go file directly
// under dir and returns every struct type carrying at least one
// `surreal:"..."` field tag or an `ormgen:model` doc-comment marker — the
// static-analysis analogue of a Rust `#[derive(SurrealdbModel)]` attribute,
// since Go has no macros to hook a derive onto (spec §4.4).
func discoverModels(dir string) (models []discoveredModel, pkgName string, err error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		name := fi.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasSuffix(name, "_generated.go")
	}, parser.ParseComments)
	if err != nil {
		return nil, "", fmt.Errorf("ormgen: parse %s: %w", dir, err)
	}

	for name, pkg := range pkgs {
		pkgName = name
		for _, file := range pkg.Files {
			for _, decl := range file.Decls {
				gd, ok := decl.(*ast.GenDecl)
				if !ok || gd.Tok != token.TYPE {
					continue
				}
				directive := parseModelDirective(gd.Doc)
				for _, spec := range gd.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					st, ok := ts.Type.(*ast.StructType)
					if !ok {
						continue
					}
					d := directive
					if ts.Doc != nil {
						d = parseModelDirective(ts.Doc)
					}
					if m, ok := buildModel(ts.Name.Name, st, d); ok {
						models = append(models, m)
					}
				}
			}
		}
	}
	return models, pkgName, nil
}

// modelDirective is the parsed form of an "ormgen:model [key=value, ...]"
// doc-comment line — the AST-level stand-in for a Rust `#[surreal_orm(...)]`
// container attribute on the struct itself (as opposed to a field).
type modelDirective struct {
	present    bool
	table      string
	relaxTable bool
}

func parseModelDirective(cg *ast.CommentGroup) modelDirective {
	var d modelDirective
	if cg == nil {
		return d
	}
	for _, line := range strings.Split(cg.Text(), "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, "ormgen:model")
		if !ok {
			continue
		}
		d.present = true
		rest = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
		for _, part := range strings.Split(rest, ",") {
			part = strings.TrimSpace(part)
			key, value, hasValue := strings.Cut(part, "=")
			switch strings.TrimSpace(key) {
			case "table":
				if hasValue {
					d.table = strings.TrimSpace(value)
				}
			case "relax_table":
				d.relaxTable = true
			}
		}
	}
	return d
}

func buildModel(name string, st *ast.StructType, directive modelDirective) (discoveredModel, bool) {
	m := discoveredModel{Name: name, Table: inflect.Underscore(name), RelaxTable: directive.relaxTable}
	if directive.table != "" {
		m.Table = directive.table
	}
	isModel := directive.present
	seen := map[string]bool{}

	for _, f := range st.Fields.List {
		if len(f.Names) == 0 || !f.Names[0].IsExported() {
			continue
		}
		goName := f.Names[0].Name
		raw := ""
		if f.Tag != nil {
			if unquoted, err := strconv.Unquote(f.Tag.Value); err == nil {
				raw = unquoted
			}
		}
		surreal, hasSurreal := reflect.StructTag(raw).Lookup("surreal")
		if hasSurreal {
			isModel = true
		}
		tag := parseFieldTag(surreal)
		path := tag.Rename
		if path == "" {
			path = inflect.Underscore(goName)
		}
		seen[path] = true
		m.Fields = append(m.Fields, modelField{GoName: goName, Path: path, Tag: tag})
	}

	if !isModel {
		return discoveredModel{}, false
	}
	m.IsEdge = seen["id"] && seen["in"] && seen["out"] && len(seen) == 3
	return m, true
}
