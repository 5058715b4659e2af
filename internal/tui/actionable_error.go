package tui

// ActionableError wraps an error message with a suggestion for the user.
//
//	err := NewActionableError("key file not found", "Run: seal text generate").
//	    WithContext("keys/ed25519.sk")
//	output.Error(err)
//	// ✗ key file not found (keys/ed25519.sk)
//	//   ▸ Try: Run: seal text generate
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion provides guidance for resolving the error.
	Suggestion string

	// Context is appended to the message in parentheses when set.
	Context string
}

// NewActionableError creates a new ActionableError with message and suggestion.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// Error implements the error interface.
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// WithContext adds context to the error and returns it for chaining.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}
