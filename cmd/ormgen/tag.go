package main

import "strings"

// fieldTag is the AST-level twin of pkg/schema's fieldTag: the same
// `surreal:"..."` grammar, parsed from a struct tag string lifted out of
// go/ast rather than a reflect.StructTag, since this binary inspects source
// text instead of a running program's types (spec §4.4 "emitted artifacts
// per model" lists both a compile-time and a runtime path; Go has no
// macros, so the two paths end up as two small parsers instead of one
// proc-macro invoked twice).
type fieldTag struct {
	Rename      string
	OldName     string
	Skip        bool
	Type        string
	Assert      string
	Define      string
	Value       string
	Permissions string
	LinkOne     string
	LinkSelf    string
	LinkMany    string
	RelateModel string
	RelateConn  string
}

func (t fieldTag) isRelate() bool { return t.RelateModel != "" || t.RelateConn != "" }

func parseFieldTag(raw string) fieldTag {
	var t fieldTag
	if raw == "" {
		return t
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "skip", "skip_serializing":
			t.Skip = true
		case "rename":
			if hasValue {
				t.Rename = value
			}
		case "old_name":
			if hasValue {
				t.OldName = value
			}
		case "type":
			if hasValue {
				t.Type = value
			}
		case "assert":
			if hasValue {
				t.Assert = value
			}
		case "define":
			if hasValue {
				t.Define = value
			}
		case "value":
			if hasValue {
				t.Value = value
			}
		case "permissions":
			if hasValue {
				t.Permissions = value
			}
		case "link_one":
			if hasValue {
				t.LinkOne = value
			}
		case "link_self":
			t.LinkSelf = "self"
		case "link_many":
			if hasValue {
				t.LinkMany = value
			}
		case "relate_model":
			if hasValue {
				t.RelateModel = value
			}
		case "relate_connection":
			if hasValue {
				t.RelateConn = value
			}
		}
	}
	return t
}
