// Package version holds build identification, set at build time via
// -ldflags (grounded on the teacher's pkg/version, trimmed of the
// native-library shipping fields — LibMode/Variant — this domain has no
// analogue for, since surrealorm ships no GGUF/purego native dependencies).
package version

var (
	Version    string = "dev"
	CommitHash string = "unknown"
)

// Describe renders the one-line string printed by `surrealorm --version`.
func Describe() string {
	return "surrealorm " + Version + " (" + CommitHash + ")"
}
