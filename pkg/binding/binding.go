// Package binding provides the globally unique placeholder registry that every
// query fragment in surrealorm threads through its composition.
package binding

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// counter is the single shared mutable piece of state in the whole library: a
// process-wide monotonically increasing sequence used to mint unique
// placeholder names. It must be safe for concurrent use since statements may
// be built on multiple goroutines at once (see spec §5 "Ordering").
var counter uint64

const paramWidth = 8

// Reset zeroes the global counter. Exposed only for tests that need
// deterministic param names across a package boundary; never call this from
// production code paths.
func Reset() {
	atomic.StoreUint64(&counter, 0)
}

// Binding is a (placeholder_name, value) pair transmitted to the driver
// alongside parameterized SQL, per spec §3.1.
type Binding struct {
	ParamName   string
	Value       any
	Raw         bool
	Description string
}

// New creates a binding whose ParamName is drawn from the global counter.
func New(value any) Binding {
	n := atomic.AddUint64(&counter, 1)
	return Binding{
		ParamName: fmt.Sprintf("_param_%0*d", paramWidth, n),
		Value:     value,
	}
}

// NewWithDescription is New plus a debug-aid description.
func NewWithDescription(value any, description string) Binding {
	b := New(value)
	b.Description = description
	return b
}

// NewRaw creates a binding whose textual form is literal SQL rather than a
// value to be escaped — used when one statement's rendering is embedded
// inside another's binding list (§4.1).
func NewRaw(literalSQL string, value any) Binding {
	b := New(value)
	b.Raw = true
	b.ParamName = literalSQL
	return b
}

// Placeholder renders this binding's reference form for the parameterized
// build mode: "$param_name", or the literal SQL for raw bindings.
func (b Binding) Placeholder() string {
	if b.Raw {
		return b.ParamName
	}
	return "$" + b.ParamName
}

// ToRawString renders the literal, quoted/escaped SQL form of the value, with
// no external binding required — used by to_raw rendering, migration files,
// and debug output.
func (b Binding) ToRawString() string {
	if b.Raw {
		return b.ParamName
	}
	return RenderLiteral(b.Value)
}

// RenderLiteral quotes/escapes a Go value into its SurrealQL literal form.
func RenderLiteral(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case string:
		return quoteString(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []string:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = quoteString(s)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case fmt.Stringer:
		return quoteString(v.String())
	default:
		return fmt.Sprintf("%v", v)
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString("\\'")
		case '\\':
			b.WriteString("\\\\")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// List is an ordered list of bindings. Composition of two Lists must
// preserve insertion order (spec §1 C1, §3.1 "Lifecycle").
type List []Binding

// Concat appends other to a copy of l, preserving order.
func (l List) Concat(other List) List {
	out := make(List, 0, len(l)+len(other))
	out = append(out, l...)
	out = append(out, other...)
	return out
}

// Get looks up a binding by param name.
func (l List) Get(paramName string) (Binding, bool) {
	for _, b := range l {
		if b.ParamName == paramName {
			return b, true
		}
	}
	return Binding{}, false
}

// Map returns the bindings as a map suitable for handing to the driver's
// query(sql).bind(...) call.
func (l List) Map() map[string]any {
	m := make(map[string]any, len(l))
	for _, b := range l {
		if b.Raw {
			continue
		}
		m[b.ParamName] = b.Value
	}
	return m
}
