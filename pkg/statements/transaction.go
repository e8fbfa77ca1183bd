package statements

import (
	"strings"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/valuex"
)

// stmt is the minimal surface every statement builder in this package
// satisfies — used wherever a function needs to accept "any statement"
// polymorphically (transactions, sub-queries, blocks).
type stmt interface {
	Build() string
	GetBindings() binding.List
	GetErrors() []string
}

// Transaction accumulates child statements and wraps them in
// "BEGIN TRANSACTION; ...; {COMMIT|CANCEL} TRANSACTION;" (spec §4.3.7).
type Transaction struct {
	children []stmt
	cancel   bool
}

// BeginTransaction starts a new transaction.
func BeginTransaction() Transaction { return Transaction{} }

// Query appends a child statement.
func (t Transaction) Query(s stmt) Transaction {
	t.children = append(t.children, s)
	return t
}

// Commit marks the transaction to end with COMMIT TRANSACTION (the default).
func (t Transaction) Commit() Transaction { t.cancel = false; return t }

// CancelTransaction marks the transaction to end with CANCEL TRANSACTION.
func (t Transaction) CancelTransaction() Transaction { t.cancel = true; return t }

// Build implements valuex.Buildable.
func (t Transaction) Build() string {
	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;")
	for _, c := range t.children {
		sb.WriteString(" ")
		sb.WriteString(c.Build())
		sb.WriteString(";")
	}
	if t.cancel {
		sb.WriteString(" CANCEL TRANSACTION;")
	} else {
		sb.WriteString(" COMMIT TRANSACTION;")
	}
	return sb.String()
}

// GetBindings implements valuex.Parametric: every child's bindings, merged
// in order.
func (t Transaction) GetBindings() binding.List {
	var out binding.List
	for _, c := range t.children {
		out = out.Concat(c.GetBindings())
	}
	return out
}

// GetErrors implements valuex.Erroneous.
func (t Transaction) GetErrors() []string {
	var out []string
	for _, c := range t.children {
		out = append(out, c.GetErrors()...)
	}
	return out
}

var _ valuex.Queryable = Transaction{}
