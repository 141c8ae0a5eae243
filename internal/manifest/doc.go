// Package manifest reads, edits, and writes a project's package.json. The
// Manifest type keeps the original key order so rewritten files diff cleanly
// against the template, and ValidateFile checks the fields this CLI relies on
// against an embedded JSON Schema.
package manifest
