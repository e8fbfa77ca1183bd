package statements

import (
	"fmt"
	"strings"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/field"
)

// payloadKind distinguishes CREATE/UPDATE/UPSERT's mutually exclusive
// CONTENT-vs-SET(-vs-MERGE/PATCH/REPLACE) body forms (spec §4.3.2).
type payloadKind int

const (
	payloadNone payloadKind = iota
	payloadContent
	payloadSet
	payloadMerge
	payloadPatch
	payloadReplace
)

// Mutator is the shared builder behind CREATE, UPDATE, and UPSERT — they
// differ only in their leading verb and (for UPSERT) the extra MERGE/PATCH/
// REPLACE payload kinds.
type Mutator struct {
	verb        string
	only        bool
	target      Target
	payloadKind payloadKind
	content     binding.Binding
	setters     field.Updateables
	ret         Return
	timeout     string
	parallel    bool
	errs        []string
}

func newMutator(verb string, target Target) Mutator {
	return Mutator{verb: verb, target: target}
}

// Create starts a CREATE statement.
func Create(target Target) Mutator { return newMutator("CREATE", target) }

// Update starts an UPDATE statement.
func Update(target Target) Mutator { return newMutator("UPDATE", target) }

// Upsert starts an UPSERT statement.
func Upsert(target Target) Mutator { return newMutator("UPSERT", target) }

// Only marks the statement to return a single record.
func (m Mutator) Only() Mutator { m.only = true; return m }

// Content sets the CONTENT payload: the whole record serialized as a single
// binding. Calling this after Set (or vice versa) keeps the later call's
// payload but the statement records a deferred error.
func (m Mutator) Content(record any) Mutator {
	if m.payloadKind != payloadNone {
		m = m.withConflictError()
	}
	m.payloadKind = payloadContent
	m.content = newContentBinding(record)
	return m
}

// Set sets the SET payload: a list of Setter fragments.
func (m Mutator) Set(setters ...field.Setter) Mutator {
	if m.payloadKind != payloadNone {
		m = m.withConflictError()
	}
	m.payloadKind = payloadSet
	m.setters = field.NewUpdateables(setters...)
	return m
}

// Merge sets UPSERT's MERGE payload (partial object merge). Calling it on a
// CREATE or UPDATE records a deferred error instead of rendering invalid SQL
// — only UPSERT admits MERGE/PATCH/REPLACE (spec §4.3.2).
func (m Mutator) Merge(record any) Mutator {
	m = m.checkUpsertOnly("MERGE")
	if m.payloadKind != payloadNone {
		m = m.withConflictError()
	}
	m.payloadKind = payloadMerge
	m.content = newContentBinding(record)
	return m
}

// Patch sets UPSERT's PATCH payload (JSON-patch operations). Calling it on a
// CREATE or UPDATE records a deferred error (spec §4.3.2).
func (m Mutator) Patch(patchOps any) Mutator {
	m = m.checkUpsertOnly("PATCH")
	if m.payloadKind != payloadNone {
		m = m.withConflictError()
	}
	m.payloadKind = payloadPatch
	m.content = newContentBinding(patchOps)
	return m
}

// Replace sets UPSERT's REPLACE payload (whole-record replacement). Calling
// it on a CREATE or UPDATE records a deferred error (spec §4.3.2).
func (m Mutator) Replace(record any) Mutator {
	m = m.checkUpsertOnly("REPLACE")
	if m.payloadKind != payloadNone {
		m = m.withConflictError()
	}
	m.payloadKind = payloadReplace
	m.content = newContentBinding(record)
	return m
}

// checkUpsertOnly records a deferred error when mode is called on anything
// but an UPSERT.
func (m Mutator) checkUpsertOnly(mode string) Mutator {
	if m.verb != "UPSERT" {
		m.errs = append(m.errs, fmt.Sprintf("%s: %s is only valid on UPSERT, not %s", m.verb, mode, m.verb))
	}
	return m
}

func newContentBinding(record any) binding.Binding { return binding.New(record) }

func (m Mutator) withConflictError() Mutator {
	m.errs = append(m.errs, fmt.Sprintf(
		"%s: CONTENT/SET/MERGE/PATCH/REPLACE are mutually exclusive; last write wins", m.verb))
	return m
}

// Return sets the RETURN clause.
func (m Mutator) Return(r Return) Mutator { m.ret = r; return m }

// Timeout sets the TIMEOUT clause.
func (m Mutator) Timeout(d string) Mutator { m.timeout = d; return m }

// Parallel enables the PARALLEL clause.
func (m Mutator) Parallel() Mutator { m.parallel = true; return m }

// Build implements valuex.Buildable.
func (m Mutator) Build() string {
	var sb strings.Builder
	sb.WriteString(m.verb)
	sb.WriteString(" ")
	sb.WriteString(m.target.build())
	if m.only {
		sb.WriteString(" ONLY")
	}
	switch m.payloadKind {
	case payloadContent:
		fmt.Fprintf(&sb, " CONTENT %s", m.content.Placeholder())
	case payloadSet:
		fmt.Fprintf(&sb, " SET %s", m.setters.Build())
	case payloadMerge:
		fmt.Fprintf(&sb, " MERGE %s", m.content.Placeholder())
	case payloadPatch:
		fmt.Fprintf(&sb, " PATCH %s", m.content.Placeholder())
	case payloadReplace:
		fmt.Fprintf(&sb, " REPLACE %s", m.content.Placeholder())
	}
	if !m.ret.isZero() {
		sb.WriteString(" ")
		sb.WriteString(m.ret.build())
	}
	if m.timeout != "" {
		fmt.Fprintf(&sb, " TIMEOUT %s", m.timeout)
	}
	if m.parallel {
		sb.WriteString(" PARALLEL")
	}
	return sb.String()
}

// GetBindings implements valuex.Parametric.
func (m Mutator) GetBindings() binding.List {
	var out binding.List
	out = out.Concat(m.target.bindings())
	switch m.payloadKind {
	case payloadContent, payloadMerge, payloadPatch, payloadReplace:
		out = out.Concat(binding.List{m.content})
	case payloadSet:
		out = out.Concat(m.setters.GetBindings())
	}
	return out
}

// GetErrors implements valuex.Erroneous.
func (m Mutator) GetErrors() []string {
	var out []string
	out = append(out, m.target.errs()...)
	if m.payloadKind == payloadSet {
		out = append(out, m.setters.GetErrors()...)
	}
	out = append(out, m.errs...)
	return out
}
