package migrate

//go:generate go tool stringer -type=Outcome -trimprefix=Outcome -output=outcome_string.go

// Outcome is the file-level result of a migration.
type Outcome int

const (
	// OutcomeUnchanged means no rule changed the file; it was not written.
	OutcomeUnchanged Outcome = iota
	// OutcomeUpdated means the file content changed and was written back.
	OutcomeUpdated
)

// StatusLine renders the per-file line printed to stdout.
func (o Outcome) StatusLine(filename string) string {
	if o == OutcomeUpdated {
		return "Updated " + filename
	}

	return "No changes match for " + filename
}
