package greenops

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for emissions factor validation.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrInvalidFactor indicates a non-positive or non-finite conversion factor.
	ErrInvalidFactor = constError("invalid emissions factor")
)
