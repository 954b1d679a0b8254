// Package quarantine relocates non-latest extension directories into a
// quarantine directory and keeps a YAML manifest of everything moved, so a
// later restore can put directories back where they came from. The manifest
// is validated against an embedded JSON schema before it is trusted.
package quarantine
