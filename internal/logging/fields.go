package logging

// Field names for structured logging.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldConfig = "config"

	// Report fields.
	FieldUser     = "user"
	FieldPeriod   = "period"
	FieldFormat   = "format"
	FieldSlides   = "slides"
	FieldRepos    = "repos"
	FieldPRs      = "prs"
	FieldProblems = "problems"
	FieldBytes    = "bytes"
	FieldBackup   = "backup"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
