package model

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/madeindigio/surrealorm/pkg/field"
	"github.com/oklog/ulid/v2"
)

// SurrealId is a typed wrapper around a "table:id" record reference, the Go
// analogue of SurrealId<T> in
// original_source/rust/surrealdb-query-builder/src/types/surreal_id.rs. T
// pins the wrapper to a single model's table so two models' ids can't be
// mixed up at compile time.
type SurrealId[T SurrealdbModel] struct {
	table field.Table
	id    string
}

// New builds a SurrealId from an explicit id value (int, string, or any
// fmt.Stringer), using T's declared table name.
func New[T SurrealdbModel](id any) SurrealId[T] {
	var zero T
	return SurrealId[T]{table: zero.TableName(), id: renderIDPart(id)}
}

// Rand generates a random identifier, the Go analogue of SurrealId::rand()/
// nano_id() — a short random alphanumeric string rather than a sequential
// one, so concurrently-created records never collide.
func Rand[T SurrealdbModel]() SurrealId[T] {
	var zero T
	return SurrealId[T]{table: zero.TableName(), id: randomID(20)}
}

// Ulid generates a new time-sortable ULID identifier.
func Ulid[T SurrealdbModel]() SurrealId[T] {
	var zero T
	return SurrealId[T]{table: zero.TableName(), id: ulid.Make().String()}
}

// Uuid generates a new random UUID identifier.
func Uuid[T SurrealdbModel]() SurrealId[T] {
	var zero T
	return SurrealId[T]{table: zero.TableName(), id: uuid.New().String()}
}

// Parse parses a "table:id" string into a typed SurrealId, rejecting
// strings that aren't table-colon-id shaped and strings whose table
// component doesn't match T's declared table name.
func Parse[T SurrealdbModel](raw string) (SurrealId[T], error) {
	var zero T
	idx := strings.IndexByte(raw, ':')
	if idx <= 0 || idx == len(raw)-1 || strings.Count(raw, ":") != 1 {
		return SurrealId[T]{}, &ErrInvalidID{Raw: raw}
	}
	table, id := raw[:idx], raw[idx+1:]
	if field.Table(table) != zero.TableName() {
		return SurrealId[T]{}, &ErrTableMismatch{Expected: zero.TableName().String(), Got: table}
	}
	return SurrealId[T]{table: field.Table(table), id: id}, nil
}

// String renders the "table:id" form.
func (s SurrealId[T]) String() string {
	return s.table.WithID(s.id)
}

// Table returns the record's table.
func (s SurrealId[T]) Table() field.Table { return s.table }

// ID returns the bare id component, without the "table:" prefix.
func (s SurrealId[T]) ID() string { return s.id }

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomID produces a crypto/rand-backed alphanumeric string of length n —
// this package's stand-in for SurrealDB's internal nano id generator, for
// which the examples carry no dedicated nanoid library.
func randomID(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(out)
}

// renderIDPart converts a polymorphic id value into its string form for
// inclusion after "table:" — values containing characters outside
// SurrealQL's bare-identifier set are wrapped in the escape brackets
// SurrealDB itself uses (⟨...⟩), matching the UUID-embedded-id examples in
// surreal_id.rs's test module.
func renderIDPart(id any) string {
	var s string
	switch v := id.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		s = fmt.Sprintf("%v", v)
	}
	if isBareIdent(s) {
		return s
	}
	return "⟨" + s + "⟩"
}

func isBareIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

