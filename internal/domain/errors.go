package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// AnalysisInputEmptyErr is returned when the text to analyze is blank.
type AnalysisInputEmptyErr struct {
	ValidationErr
}

// NewAnalysisInputEmptyErr creates a new AnalysisInputEmptyErr.
func NewAnalysisInputEmptyErr() *AnalysisInputEmptyErr {
	return &AnalysisInputEmptyErr{
		ValidationErr: ValidationErr{domainErr: domainErr{message: "text must not be empty"}},
	}
}

// CorpusInvalidErr represents a malformed seed corpus.
type CorpusInvalidErr struct {
	domainErr
}

// NewCorpusInvalidErr creates a new CorpusInvalidErr with a formatted diagnostic.
func NewCorpusInvalidErr(format string, args ...any) *CorpusInvalidErr {
	return &CorpusInvalidErr{
		domainErr: domainErr{message: "corpus invalid: " + fmt.Sprintf(format, args...)},
	}
}

// EmbeddingInputInvalidErr guards the embedder against blank inputs.
type EmbeddingInputInvalidErr struct {
	domainErr
}

// NewEmbeddingInputInvalidErr creates a new EmbeddingInputInvalidErr.
func NewEmbeddingInputInvalidErr(message string) *EmbeddingInputInvalidErr {
	return &EmbeddingInputInvalidErr{
		domainErr: domainErr{message: message},
	}
}

// ModelUnavailableErr is returned when the embedding model cannot be loaded or queried.
type ModelUnavailableErr struct {
	domainErr
	cause error
}

// NewModelUnavailableErr creates a new ModelUnavailableErr wrapping cause.
func NewModelUnavailableErr(model string, cause error) *ModelUnavailableErr {
	msg := fmt.Sprintf("embedding model %q unavailable", model)
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &ModelUnavailableErr{
		domainErr: domainErr{message: msg},
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *ModelUnavailableErr) Unwrap() error {
	return e.cause
}

// IndexUnavailableErr is raised by the analyze path when the embedding provider is broken.
type IndexUnavailableErr struct {
	domainErr
	cause error
}

// NewIndexUnavailableErr creates a new IndexUnavailableErr wrapping cause.
func NewIndexUnavailableErr(cause error) *IndexUnavailableErr {
	return &IndexUnavailableErr{
		domainErr: domainErr{message: "emotion index unavailable: " + cause.Error()},
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *IndexUnavailableErr) Unwrap() error {
	return e.cause
}

// BootstrapFailedErr wraps any failure that aborted an index bootstrap.
type BootstrapFailedErr struct {
	domainErr
	cause error
}

// NewBootstrapFailedErr creates a new BootstrapFailedErr wrapping cause.
func NewBootstrapFailedErr(cause error) *BootstrapFailedErr {
	return &BootstrapFailedErr{
		domainErr: domainErr{message: "bootstrap failed: " + cause.Error()},
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *BootstrapFailedErr) Unwrap() error {
	return e.cause
}
