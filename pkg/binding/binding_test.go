package binding

import (
	"strings"
	"testing"
)

func TestNewProducesMonotonicUniqueNames(t *testing.T) {
	Reset()
	b1 := New(1)
	b2 := New(2)

	if b1.ParamName == b2.ParamName {
		t.Fatalf("expected unique param names, got %q twice", b1.ParamName)
	}
	if !strings.HasPrefix(b1.ParamName, "_param_") {
		t.Fatalf("expected _param_ prefix, got %q", b1.ParamName)
	}
	if len(b1.ParamName) != len(b2.ParamName) {
		t.Fatalf("expected fixed-width names, got %q and %q", b1.ParamName, b2.ParamName)
	}
}

func TestPlaceholderAndRawRendering(t *testing.T) {
	Reset()
	b := New(18)

	if got := b.Placeholder(); got != "$"+b.ParamName {
		t.Fatalf("expected $%s, got %s", b.ParamName, got)
	}
	if got := b.ToRawString(); got != "18" {
		t.Fatalf("expected raw literal 18, got %s", got)
	}
}

func TestRawBindingRendersIdenticallyInBothModes(t *testing.T) {
	Reset()
	b := NewRaw("age + 1", nil)

	if b.Placeholder() != "age + 1" {
		t.Fatalf("raw binding placeholder mismatch: %s", b.Placeholder())
	}
	if b.ToRawString() != "age + 1" {
		t.Fatalf("raw binding raw-string mismatch: %s", b.ToRawString())
	}
}

func TestListConcatPreservesOrder(t *testing.T) {
	Reset()
	a := List{New("a"), New("b")}
	b := List{New("c")}

	combined := a.Concat(b)
	if len(combined) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(combined))
	}
	if combined[0].Value != "a" || combined[1].Value != "b" || combined[2].Value != "c" {
		t.Fatalf("order not preserved: %+v", combined)
	}
}

func TestRenderLiteralEscapesQuotes(t *testing.T) {
	got := RenderLiteral("O'Brien")
	want := `'O\'Brien'`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestListMapExcludesRawBindings(t *testing.T) {
	Reset()
	l := List{New(1), NewRaw("x", 2)}
	m := l.Map()
	if len(m) != 1 {
		t.Fatalf("expected 1 entry (raw binding excluded), got %d", len(m))
	}
}
