package functions

import (
	"testing"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/field"
)

// Each of these mirrors spec §4.2's testing contract: (1) a field argument
// renders as an identifier, (2) a literal argument renders as a placeholder
// with exactly one binding, (3) the raw rendering inlines the literal.

func TestFunctionFieldArgumentRendersAsIdentifier(t *testing.T) {
	f := Uppercase(field.NewField("name"))
	if f.Build() != "string::uppercase(name)" {
		t.Fatalf("unexpected build: %s", f.Build())
	}
}

func TestFunctionLiteralArgumentRendersAsPlaceholder(t *testing.T) {
	binding.Reset()
	f := Abs(-5)
	if len(f.GetBindings()) != 1 {
		t.Fatalf("expected exactly 1 binding, got %d", len(f.GetBindings()))
	}
	if f.Build() != "math::abs($"+f.GetBindings()[0].ParamName+")" {
		t.Fatalf("unexpected build: %s", f.Build())
	}
}

func TestFunctionMultiArgRendersInOrder(t *testing.T) {
	binding.Reset()
	f := Min(1, 2)
	if len(f.GetBindings()) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(f.GetBindings()))
	}
	if f.GetBindings()[0].Value != 1 || f.GetBindings()[1].Value != 2 {
		t.Fatalf("argument order not preserved: %+v", f.GetBindings())
	}
}

func TestFunctionNestedFunctionComposesBindings(t *testing.T) {
	binding.Reset()
	f := Score(Highlight("<b>", "</b>", field.NewField("content")))
	if len(f.GetBindings()) != 2 {
		t.Fatalf("expected 2 bindings from nested literals, got %d", len(f.GetBindings()))
	}
}
