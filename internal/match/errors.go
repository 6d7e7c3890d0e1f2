package match

import "fmt"

// NormalizationError reports a raw record that could not be converted into
// a CandidateRecord. It is raised per record and never aborts a batch.
type NormalizationError struct {
	RecordID int32
	Field    string
	Reason   string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("cannot normalize record %d: %s: %s", e.RecordID, e.Field, e.Reason)
}

// InvalidCriteriaError reports a structured query with contradictory bounds.
// It is raised before any matching begins and is fatal to the request.
type InvalidCriteriaError struct {
	Field  string
	Reason string
}

func (e *InvalidCriteriaError) Error() string {
	return fmt.Sprintf("invalid criteria: %s: %s", e.Field, e.Reason)
}
