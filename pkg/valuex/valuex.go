// Package valuex implements the polymorphic expression value (Valuex) at the
// heart of every query fragment: a rendered string, its bindings, and any
// deferred validation errors, composed according to the laws in spec §3.2.
package valuex

import (
	"strings"

	"github.com/madeindigio/surrealorm/pkg/binding"
)

// Buildable renders a fragment's final SQL string.
type Buildable interface {
	Build() string
}

// Parametric exposes a fragment's accumulated bindings.
type Parametric interface {
	GetBindings() binding.List
}

// Erroneous exposes a fragment's accumulated deferred errors.
type Erroneous interface {
	GetErrors() []string
}

// Queryable marks a type as a complete, executable statement.
type Queryable interface {
	Buildable
	Parametric
	Erroneous
}

// Valuex is the polymorphic expression container: a self-contained SQL
// fragment together with the bindings it needs and any errors deferred
// during its construction.
type Valuex struct {
	str      string
	bindings binding.List
	errors   []string
}

// New wraps a raw, already-valid SQL fragment with no bindings or errors.
func New(str string) Valuex {
	return Valuex{str: str}
}

// Compose assembles a Valuex from an already-rendered string plus the
// bindings/errors it depends on — used by callers (e.g. pkg/statements'
// Block) that build their own string representation out-of-band but still
// need to carry forward child bindings/errors.
func Compose(str string, bindings binding.List, errors []string) Valuex {
	return Valuex{str: str, bindings: bindings, errors: errors}
}

// FromBinding renders a single binding as a placeholder expression.
func FromBinding(b binding.Binding) Valuex {
	return Valuex{str: b.Placeholder(), bindings: binding.List{b}}
}

// Literal creates a Valuex for a literal value: a fresh binding plus its
// placeholder rendering.
func Literal(value any) Valuex {
	return FromBinding(binding.New(value))
}

// WithError attaches a deferred validation error to a copy of v.
func (v Valuex) WithError(msg string) Valuex {
	v.errors = append(append([]string{}, v.errors...), msg)
	return v
}

// Build implements Buildable.
func (v Valuex) Build() string { return v.str }

// GetBindings implements Parametric.
func (v Valuex) GetBindings() binding.List { return v.bindings }

// GetErrors implements Erroneous.
func (v Valuex) GetErrors() []string { return v.errors }

// Append composes two Valuex fragments with a joining string between their
// rendered forms (often empty, a space, or an operator). Composition laws
// (spec §3.2): build(a⊕b) = build(a)⊕build(b); bindings and errors
// concatenate in order.
func Append(a, b Valuex, joiner string) Valuex {
	return Valuex{
		str:      a.str + joiner + b.str,
		bindings: a.bindings.Concat(b.bindings),
		errors:   append(append([]string{}, a.errors...), b.errors...),
	}
}

// Join composes a slice of Valuex fragments with a separator, like
// strings.Join but bindings/errors-aware.
func Join(parts []Valuex, sep string) Valuex {
	if len(parts) == 0 {
		return Valuex{}
	}
	var sb strings.Builder
	var binds binding.List
	var errs []string
	for i, p := range parts {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(p.str)
		binds = binds.Concat(p.bindings)
		errs = append(errs, p.errors...)
	}
	return Valuex{str: sb.String(), bindings: binds, errors: errs}
}

// Operator builds a new Valuex of the form "lhs OP rhs", concatenating
// bindings/errors from both sides — the mechanism behind operator
// overloading in the original source (§3.2).
func Operator(lhs Valuex, op string, rhs Valuex) Valuex {
	return Valuex{
		str:      lhs.str + " " + op + " " + rhs.str,
		bindings: lhs.bindings.Concat(rhs.bindings),
		errors:   append(append([]string{}, lhs.errors...), rhs.errors...),
	}
}

// Bracketed wraps v in parentheses, idempotently: if the string already
// begins "(" and ends ")" no extra wrapping is added (spec §3.3, §8 invariant
// 4: bracketed(bracketed(x)) = bracketed(x)).
func (v Valuex) Bracketed() Valuex {
	s := strings.TrimSpace(v.str)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && balanced(s) {
		return v
	}
	v.str = "(" + v.str + ")"
	return v
}

// balanced reports whether s's leading "(" matches its trailing ")" — guards
// against false positives like "(a) AND (b)" which starts and ends with
// parens but isn't a single bracketed group.
func balanced(s string) bool {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}

// ToRaw renders v with every binding's value inlined literally instead of as
// a placeholder — used for migration files, tests, and debug output
// (spec §4.1 "Raw" rendering mode). Note this performs a naive
// placeholder-substring substitution, sufficient because placeholders are
// process-unique and never substrings of one another.
func (v Valuex) ToRaw() string {
	out := v.str
	for _, b := range v.bindings {
		if b.Raw {
			continue
		}
		out = strings.ReplaceAll(out, b.Placeholder(), b.ToRawString())
	}
	return out
}
