package migrator

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind distinguishes a migration file's direction, spec §3.7.
type Kind string

const (
	KindUp     Kind = "up"
	KindDown   Kind = "down"
	KindOneWay Kind = ""
)

// Filename is the strictly parsed form of
// "<timestamp>_<basename>.<kind>.surql", spec §3.7.
type Filename struct {
	Timestamp int64
	Basename  string
	Kind      Kind
}

const surqlExt = ".surql"

// ParseFilename strictly parses name, failing on anything that doesn't
// match "<digits>_<basename>[.up|.down].surql".
func ParseFilename(name string) (Filename, error) {
	if !strings.HasSuffix(name, surqlExt) {
		return Filename{}, ErrInvalidMigrationName(name)
	}
	trimmed := strings.TrimSuffix(name, surqlExt)

	kind := KindOneWay
	switch {
	case strings.HasSuffix(trimmed, ".up"):
		kind = KindUp
		trimmed = strings.TrimSuffix(trimmed, ".up")
	case strings.HasSuffix(trimmed, ".down"):
		kind = KindDown
		trimmed = strings.TrimSuffix(trimmed, ".down")
	}

	underscoreIdx := strings.Index(trimmed, "_")
	if underscoreIdx <= 0 || underscoreIdx == len(trimmed)-1 {
		return Filename{}, ErrInvalidMigrationName(name)
	}

	tsPart := trimmed[:underscoreIdx]
	basename := trimmed[underscoreIdx+1:]

	ts, err := strconv.ParseInt(tsPart, 10, 64)
	if err != nil || ts < 0 {
		return Filename{}, ErrInvalidMigrationName(name)
	}
	if !isSnakeCaseBasename(basename) {
		return Filename{}, ErrInvalidMigrationName(name)
	}

	return Filename{Timestamp: ts, Basename: basename, Kind: kind}, nil
}

// String reconstructs the on-disk filename.
func (f Filename) String() string {
	if f.Kind == KindOneWay {
		return fmt.Sprintf("%d_%s%s", f.Timestamp, f.Basename, surqlExt)
	}
	return fmt.Sprintf("%d_%s.%s%s", f.Timestamp, f.Basename, f.Kind, surqlExt)
}

// isSnakeCaseBasename rejects basenames containing anything but lowercase
// letters, digits, and underscores (spec §3.7 "basename is snake-case").
func isSnakeCaseBasename(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
