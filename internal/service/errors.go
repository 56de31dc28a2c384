package service

// Error kinds the pipeline can fail with. Adapters wrap the underlying cause
// so callers can pick a transport status with errors.As while still logging
// the root error.

// RetrievalError reports a failed retriever call: index unreachable,
// malformed response. Never swallowed into empty context.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string { return "retrieval failed: " + e.Err.Error() }
func (e *RetrievalError) Unwrap() error { return e.Err }

// InferenceError reports a failed model call: model unreachable, quota
// exceeded, malformed request. Not retried.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string { return "inference failed: " + e.Err.Error() }
func (e *InferenceError) Unwrap() error { return e.Err }

// ValidationError reports bad caller input, e.g. a missing userPrompt.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid request: " + e.Reason }
