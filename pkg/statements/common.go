// Package statements implements one builder per SurrealQL statement kind
// (spec §4.3/C4), each a struct with private fields mirroring its clauses
// and implementing the shared Buildable/Parametric/Erroneous/Queryable
// surface from pkg/valuex.
package statements

import (
	"strings"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/field"
	"github.com/madeindigio/surrealorm/pkg/valuex"
)

// Return is the RETURN clause variant shared by CREATE/UPDATE/UPSERT/DELETE/
// RELATE/INSERT (spec §4.3.2).
type Return struct {
	kind       string
	projection []field.Field
}

// ReturnNone renders "RETURN NONE".
func ReturnNone() Return { return Return{kind: "NONE"} }

// ReturnBefore renders "RETURN BEFORE".
func ReturnBefore() Return { return Return{kind: "BEFORE"} }

// ReturnAfter renders "RETURN AFTER".
func ReturnAfter() Return { return Return{kind: "AFTER"} }

// ReturnDiff renders "RETURN DIFF".
func ReturnDiff() Return { return Return{kind: "DIFF"} }

// ReturnFields renders "RETURN f1, f2, ...".
func ReturnFields(fields ...field.Field) Return {
	return Return{kind: "PROJECTION", projection: fields}
}

func (r Return) isZero() bool { return r.kind == "" }

func (r Return) build() string {
	switch r.kind {
	case "":
		return ""
	case "PROJECTION":
		parts := make([]string, len(r.projection))
		for i, f := range r.projection {
			parts[i] = f.String()
		}
		return "RETURN " + strings.Join(parts, ", ")
	default:
		return "RETURN " + r.kind
	}
}

// queryable is an accumulator of bindings and errors. The statement
// builders in this package do not embed it; each tracks its own bindings
// and errors.
type queryable struct {
	bindings binding.List
	errs     []string
}

func (q *queryable) addBindings(b binding.List) { q.bindings = q.bindings.Concat(b) }
func (q *queryable) addError(msg string)         { q.errs = append(q.errs, msg) }
func (q *queryable) merge(v valuex.Valuex) {
	q.addBindings(v.GetBindings())
	q.errs = append(q.errs, v.GetErrors()...)
}

// GetBindings implements valuex.Parametric.
func (q *queryable) GetBindings() binding.List { return q.bindings }

// GetErrors implements valuex.Erroneous.
func (q *queryable) GetErrors() []string { return q.errs }

// joinNonEmpty joins only the non-empty clause strings with a separator —
// every statement's Build() uses this to skip clauses that weren't set.
func joinNonEmpty(sep string, parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}

// Target is a polymorphic statement target: a table, a record id string, a
// field.Field (sub-path), or a raw valuex.Valuex (sub-query).
type Target struct {
	v valuex.Valuex
}

// TableTarget targets an entire table.
func TableTarget(t field.Table) Target { return Target{v: valuex.New(t.String())} }

// IDTarget targets a single record, e.g. "person:tobie".
func IDTarget(recordID string) Target { return Target{v: valuex.New(recordID)} }

// SubqueryTarget targets the result of a sub-query, carrying its bindings.
func SubqueryTarget(v valuex.Valuex) Target { return Target{v: v} }

// idStringer is the subset of model.SurrealId[T] this package needs: its
// rendered "table:id" form.
type idStringer interface{ String() string }

// ModelIDTarget builds a Target from the result of resolving a record id
// against a model's declared table, e.g. model.Parse[User](raw) or
// model.New[User](id). A resolution failure — most commonly an id whose
// table doesn't match the model's declared table — is carried forward as a
// deferred error rather than panicking (spec §8 boundary behavior "an id
// whose table doesn't match its declared model produces a deferred error
// but does not panic").
func ModelIDTarget(id idStringer, err error) Target {
	if err != nil {
		return Target{v: valuex.Compose("", nil, []string{err.Error()})}
	}
	return Target{v: valuex.New(id.String())}
}

func (t Target) build() string          { return t.v.Build() }
func (t Target) bindings() binding.List { return t.v.GetBindings() }
func (t Target) errs() []string         { return t.v.GetErrors() }
