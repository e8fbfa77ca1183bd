package valuex

import (
	"testing"

	"github.com/madeindigio/surrealorm/pkg/binding"
)

func TestLiteralProducesExactlyOneBinding(t *testing.T) {
	binding.Reset()
	v := Literal(18)

	if len(v.GetBindings()) != 1 {
		t.Fatalf("expected 1 binding, got %d", len(v.GetBindings()))
	}
	if v.Build() != "$"+v.GetBindings()[0].ParamName {
		t.Fatalf("expected placeholder build, got %s", v.Build())
	}
}

func TestAppendConcatenatesInOrder(t *testing.T) {
	binding.Reset()
	a := Literal(1)
	b := Literal(2)

	composed := Append(a, b, ", ")
	if composed.Build() != a.Build()+", "+b.Build() {
		t.Fatalf("composed build should contain a then b: %s", composed.Build())
	}
	if len(composed.GetBindings()) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(composed.GetBindings()))
	}
	if composed.GetBindings()[0].Value != 1 || composed.GetBindings()[1].Value != 2 {
		t.Fatalf("binding order not preserved: %+v", composed.GetBindings())
	}
}

func TestBuildContainsSubstringOfEachOperand(t *testing.T) {
	binding.Reset()
	a := New("age")
	b := Literal(18)
	composed := Operator(a, ">=", b)

	built := composed.Build()
	if !containsAll(built, a.Build(), b.Build()) {
		t.Fatalf("composed build %q should contain both operands", built)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !contains(s, sub) {
			return false
		}
	}
	return true
}

func contains(s, sub string) bool {
	return len(sub) == 0 || (len(s) >= len(sub) && indexOf(s, sub) >= 0)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestBracketedIsIdempotent(t *testing.T) {
	v := New("age >= 18")
	once := v.Bracketed()
	twice := once.Bracketed()

	if once.Build() != twice.Build() {
		t.Fatalf("bracketed should be idempotent: %q vs %q", once.Build(), twice.Build())
	}
	if once.Build() != "(age >= 18)" {
		t.Fatalf("unexpected bracketed form: %q", once.Build())
	}
}

func TestBracketedDoesNotMergeTwoGroups(t *testing.T) {
	v := New("(a = 1) AND (b = 2)")
	got := v.Bracketed()
	if got.Build() != "((a = 1) AND (b = 2))" {
		t.Fatalf("expected outer wrap, got %q", got.Build())
	}
}

func TestToRawInlinesLiteral(t *testing.T) {
	binding.Reset()
	age := Literal(18)
	v := Operator(New("age"), ">=", age)

	if v.ToRaw() != "age >= 18" {
		t.Fatalf("expected raw inline form, got %q", v.ToRaw())
	}
}

func TestWithErrorAccumulates(t *testing.T) {
	v := New("x").WithError("bad x").WithError("worse x")
	if len(v.GetErrors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(v.GetErrors()))
	}
}
