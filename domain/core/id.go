package core

import "github.com/google/uuid"

// AnalysisID identifies one analysis request. Every upload or CLI
// invocation gets a fresh one; results are never persisted, so the ID
// only has to be unique for the lifetime of a response.
type AnalysisID string

// NewAnalysisID returns a random analysis identifier.
func NewAnalysisID() AnalysisID {
	return AnalysisID(uuid.NewString())
}

func (id AnalysisID) String() string {
	return string(id)
}
