package statements

import (
	"fmt"
	"strings"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/field"
	"github.com/madeindigio/surrealorm/pkg/valuex"
)

// ifBranch is one "IF cond THEN expr" or "ELSE IF cond THEN expr" arm of an
// If statement; the trailing unconditional ELSE arm is held in If.elseExpr.
type ifBranch struct {
	cond field.Filter
	then valuex.Valuex
}

// If builds SurrealQL's "IF cond THEN expr [ELSE IF ...] [ELSE ...] END"
// control-flow expression (spec §4.3.8). Each Valuex expr may itself be any
// expression, including a Block.
type If struct {
	branches []ifBranch
	elseExpr *valuex.Valuex
}

// IfCond starts an If with its first condition; call Then to supply its
// branch expression.
func IfCond(cond field.Filter) If {
	return If{branches: []ifBranch{{cond: cond}}}
}

// Then supplies the expression for the most recently added condition.
func (i If) Then(expr valuex.Valuex) If {
	i.branches[len(i.branches)-1].then = expr
	return i
}

// ElseIf adds another "ELSE IF cond" branch; call Then after it.
func (i If) ElseIf(cond field.Filter) If {
	i.branches = append(i.branches, ifBranch{cond: cond})
	return i
}

// Else sets the trailing unconditional else expression.
func (i If) Else(expr valuex.Valuex) If {
	i.elseExpr = &expr
	return i
}

// Build implements valuex.Buildable.
func (i If) Build() string {
	var sb strings.Builder
	for idx, b := range i.branches {
		if idx == 0 {
			fmt.Fprintf(&sb, "IF %s THEN %s", b.cond.Build(), b.then.Build())
		} else {
			fmt.Fprintf(&sb, " ELSE IF %s THEN %s", b.cond.Build(), b.then.Build())
		}
	}
	if i.elseExpr != nil {
		fmt.Fprintf(&sb, " ELSE %s", i.elseExpr.Build())
	}
	sb.WriteString(" END")
	return sb.String()
}

// GetBindings implements valuex.Parametric.
func (i If) GetBindings() binding.List {
	var out binding.List
	for _, b := range i.branches {
		out = out.Concat(b.cond.GetBindings())
		out = out.Concat(b.then.GetBindings())
	}
	if i.elseExpr != nil {
		out = out.Concat(i.elseExpr.GetBindings())
	}
	return out
}

// GetErrors implements valuex.Erroneous.
func (i If) GetErrors() []string {
	var out []string
	for _, b := range i.branches {
		out = append(out, b.cond.GetErrors()...)
		out = append(out, b.then.GetErrors()...)
	}
	if i.elseExpr != nil {
		out = append(out, i.elseExpr.GetErrors()...)
	}
	return out
}

// For builds SurrealQL's "FOR $param IN iterable { ... }" loop
// (spec §4.3.8).
type For struct {
	param    field.Param
	iterable valuex.Valuex
	block    Block
}

// ForParam starts a FOR loop over param.
func ForParam(param field.Param) For { return For{param: param} }

// In sets the loop's iterable expression.
func (f For) In(iterable valuex.Valuex) For { f.iterable = iterable; return f }

// Do sets the loop's body block.
func (f For) Do(block Block) For { f.block = block; return f }

// Build implements valuex.Buildable.
func (f For) Build() string {
	return fmt.Sprintf("FOR %s IN %s %s", f.param.Build(), f.iterable.Build(), f.block.Build())
}

// GetBindings implements valuex.Parametric.
func (f For) GetBindings() binding.List {
	return f.iterable.GetBindings().Concat(f.block.GetBindings())
}

// GetErrors implements valuex.Erroneous.
func (f For) GetErrors() []string {
	return append(append([]string{}, f.iterable.GetErrors()...), f.block.GetErrors()...)
}

// Let binds a query-scoped variable "LET $name = expr" (spec §4.3.8).
type Let struct {
	name string
	expr valuex.Valuex
}

// LetVar starts a LET binding for name (without the leading "$").
func LetVar(name string) Let { return Let{name: strings.TrimPrefix(name, "$")} }

// EqualTo sets the bound expression.
func (l Let) EqualTo(expr valuex.Valuex) Let { l.expr = expr; return l }

// Param returns the $-prefixed parameter this Let exposes to downstream
// statements.
func (l Let) Param() field.Param { return field.NewParam(l.name) }

// Build implements valuex.Buildable.
func (l Let) Build() string {
	return fmt.Sprintf("LET $%s = %s", l.name, l.expr.Build())
}

// GetBindings implements valuex.Parametric.
func (l Let) GetBindings() binding.List { return l.expr.GetBindings() }

// GetErrors implements valuex.Erroneous.
func (l Let) GetErrors() []string { return l.expr.GetErrors() }

// Block is a brace-delimited statement sequence ending in an optional
// RETURN expression: "{ s1; s2; RETURN e; }" (spec §4.3.8). A Block is
// itself a Valuex, usable anywhere an expression is expected.
type Block struct {
	stmts  []stmt
	ret    *valuex.Valuex
}

// NewBlock starts an empty block.
func NewBlock() Block { return Block{} }

// Stmt appends a statement to the block body.
func (b Block) Stmt(s stmt) Block { b.stmts = append(b.stmts, s); return b }

// Return sets the block's trailing RETURN expression.
func (b Block) Return(expr valuex.Valuex) Block { b.ret = &expr; return b }

// Build implements valuex.Buildable.
func (b Block) Build() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, s := range b.stmts {
		sb.WriteString(s.Build())
		sb.WriteString("; ")
	}
	if b.ret != nil {
		fmt.Fprintf(&sb, "RETURN %s; ", b.ret.Build())
	}
	sb.WriteString("}")
	return sb.String()
}

// GetBindings implements valuex.Parametric.
func (b Block) GetBindings() binding.List {
	var out binding.List
	for _, s := range b.stmts {
		out = out.Concat(s.GetBindings())
	}
	if b.ret != nil {
		out = out.Concat(b.ret.GetBindings())
	}
	return out
}

// GetErrors implements valuex.Erroneous.
func (b Block) GetErrors() []string {
	var out []string
	for _, s := range b.stmts {
		out = append(out, s.GetErrors()...)
	}
	if b.ret != nil {
		out = append(out, b.ret.GetErrors()...)
	}
	return out
}

// ToValuex renders the block as a generic expression value, usable as a
// statement's CONTENT/VALUE/sub-query operand.
func (b Block) ToValuex() valuex.Valuex {
	return valuex.Compose(b.Build(), b.GetBindings(), b.GetErrors())
}
