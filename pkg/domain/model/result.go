package model

// ActionResult is what an interaction produces besides an empty acknowledgment
type ActionResult struct {
	// Errors maps an input block id to a message shown under that input
	Errors map[string]string
}

// NewValidationErrors creates a result carrying field errors
func NewValidationErrors(errs map[string]string) *ActionResult {
	return &ActionResult{Errors: errs}
}

// HasErrors reports whether the result carries field errors
func (r *ActionResult) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// EventResult is what an event callback produces besides an empty acknowledgment
type EventResult struct {
	Challenge string
}
