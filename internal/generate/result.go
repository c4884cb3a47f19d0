package generate

import "migrt/internal/mapping"

// GenerationResult is the outcome for one mapping row: either a generated
// package text tagged with its table pair, or an error descriptor. RowIndex
// is 1-based and matches the input order. Results are never mutated after
// creation.
type GenerationResult struct {
	RowIndex    int
	PackageName string
	SourceTable string
	TargetTable string
	Text        string

	ErrKind     mapping.ErrorKind
	ErrMessage  string
	ErrFragment string
}

// Failed reports whether this row produced an error instead of code.
func (r GenerationResult) Failed() bool {
	return r.ErrMessage != ""
}

// Summary counts the outcomes of one orchestrator run.
type Summary struct {
	Succeeded int
	Failed    int
}
