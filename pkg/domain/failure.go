package domain

// FailureKind tags why an adapter-level operation produced no usable
// payload. Callers switch on the kind, not on message text.
type FailureKind string

const (
	// FailureValidation means the input was empty or blank; no backend
	// call was made.
	FailureValidation FailureKind = "validation"

	// FailureBackend means the backend call itself failed.
	FailureBackend FailureKind = "backend"

	// FailureNoContent means the backend answered but returned nothing
	// useful.
	FailureNoContent FailureKind = "no_content"

	// FailureMismatch means the backend answered outside the expected
	// output contract.
	FailureMismatch FailureKind = "mismatch"
)

// Failure is the unsuccessful half of an adapter result. Message is
// user-facing wording; Err, when set, carries the underlying cause for
// the logs.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return string(f.Kind) + ": " + f.Err.Error()
	}
	return string(f.Kind) + ": " + f.Message
}

func (f *Failure) Unwrap() error { return f.Err }

func ValidationFailure(message string) *Failure {
	return &Failure{Kind: FailureValidation, Message: message}
}

func BackendFailure(message string, err error) *Failure {
	return &Failure{Kind: FailureBackend, Message: message, Err: err}
}

func NoContentFailure(message string) *Failure {
	return &Failure{Kind: FailureNoContent, Message: message}
}

func MismatchFailure(message string) *Failure {
	return &Failure{Kind: FailureMismatch, Message: message}
}
