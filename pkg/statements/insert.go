package statements

import (
	"fmt"
	"strings"

	"github.com/madeindigio/surrealorm/pkg/binding"
	"github.com/madeindigio/surrealorm/pkg/field"
)

// Insert builds an INSERT statement (spec §4.3.5): one or more records
// serialized by column order, or a sub-query producing nodes.
type Insert struct {
	table      field.Table
	columns    []string
	rows       []binding.List
	subquery   *Target
	onDuplicate field.Updateables
	hasOnDup   bool
}

// InsertInto starts an INSERT targeting table, with the given column order
// (the serializable-fields order of the model being inserted).
func InsertInto(table field.Table, columns ...string) Insert {
	return Insert{table: table, columns: columns}
}

// Values appends one record's values, positionally matching InsertInto's
// column order; each becomes its own binding.
func (ins Insert) Values(values ...any) Insert {
	row := make(binding.List, len(values))
	for i, v := range values {
		row[i] = binding.New(v)
	}
	ins.rows = append(ins.rows, row)
	return ins
}

// FromQuery switches to the sub-query form: "INSERT INTO table (query)".
func (ins Insert) FromQuery(target Target) Insert {
	ins.subquery = &target
	return ins
}

// OnDuplicateKeyUpdate sets the ON DUPLICATE KEY UPDATE clause.
func (ins Insert) OnDuplicateKeyUpdate(setters ...field.Setter) Insert {
	ins.onDuplicate = field.NewUpdateables(setters...)
	ins.hasOnDup = true
	return ins
}

// Build implements valuex.Buildable.
func (ins Insert) Build() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s", ins.table)

	if ins.subquery != nil {
		fmt.Fprintf(&sb, " (%s)", ins.subquery.build())
	} else {
		fmt.Fprintf(&sb, " (%s) VALUES ", strings.Join(ins.columns, ", "))
		rowStrs := make([]string, len(ins.rows))
		for i, row := range ins.rows {
			placeholders := make([]string, len(row))
			for j, b := range row {
				placeholders[j] = b.Placeholder()
			}
			rowStrs[i] = "(" + strings.Join(placeholders, ", ") + ")"
		}
		sb.WriteString(strings.Join(rowStrs, ", "))
	}

	if ins.hasOnDup {
		fmt.Fprintf(&sb, " ON DUPLICATE KEY UPDATE %s", ins.onDuplicate.Build())
	}
	return sb.String()
}

// GetBindings implements valuex.Parametric.
func (ins Insert) GetBindings() binding.List {
	var out binding.List
	if ins.subquery != nil {
		out = out.Concat(ins.subquery.bindings())
	}
	for _, row := range ins.rows {
		out = out.Concat(row)
	}
	if ins.hasOnDup {
		out = out.Concat(ins.onDuplicate.GetBindings())
	}
	return out
}

// GetErrors implements valuex.Erroneous.
func (ins Insert) GetErrors() []string {
	var out []string
	if ins.subquery != nil {
		out = append(out, ins.subquery.errs()...)
	}
	if ins.hasOnDup {
		out = append(out, ins.onDuplicate.GetErrors()...)
	}
	return out
}
