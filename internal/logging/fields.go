// Package logging wraps charmbracelet/log for the gomdkit command and the
// batch runner.
package logging

// Structured field keys.
const (
	FieldError      = "error"
	FieldFile       = "file"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Engine.
	FieldFormat    = "format"
	FieldExtension = "extension"
	FieldKind      = "kind"
	FieldPhase     = "phase"
	FieldDuration  = "duration"
	FieldBytes     = "bytes"

	// Runner.
	FieldWorkers       = "workers"
	FieldFilesRendered = "files_rendered"
	FieldFilesFailed   = "files_failed"
	FieldMismatches    = "mismatches"

	// Version.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
