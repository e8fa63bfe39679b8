// Package spec holds the version number of bytesradar's output schema —
// the JSON/YAML shape documented in SPEC_FULL.md §6 — separately from the
// CLI's own --version, so serializer consumers can detect schema drift
// independently of binary releases.
package spec

const (
	// SchemaVersion is the analysis result schema version (§6). Bump it
	// when language_statistics or summary fields change shape.
	SchemaVersion = "1.0"
)
