// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig   = "config"
	FieldLanguage = "language"
	FieldJobs     = "jobs"
	FieldFormat   = "format"

	// Lexing fields.
	FieldSymbols  = "symbols"
	FieldErrors   = "errors"
	FieldSpans    = "spans"
	FieldOwner    = "owner"
	FieldReparsed = "reparsed"
	FieldOffset   = "offset"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithErrors = "files_with_errors"
	FieldErrorsTotal     = "errors_total"

	// Language server fields.
	FieldURI     = "uri"
	FieldVersion = "version"
	FieldChanges = "changes"

	// Build fields.
	FieldCommit = "commit"
	FieldBuilt  = "built"
)
