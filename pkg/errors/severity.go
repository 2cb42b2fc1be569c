// Package errors provides severity-aware error types.
package errors

import "fmt"

// Severity indicates error impact level.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// LCAError is a structured error with context.
type LCAError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	Path        string   `json:"path,omitempty"`
	Recoverable bool     `json:"recoverable"`
}

func (e *LCAError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %s (path: %s)", e.Severity, e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Code, e.Message)
}

// Error codes
const (
	ErrCodePathNotFound      = "PATH_NOT_FOUND"
	ErrCodeDeserialization   = "DESERIALIZATION_FAILED"
	ErrCodePlaceholderFile   = "PLACEHOLDER_FILE"
	ErrCodeUnknownCategory   = "UNKNOWN_CATEGORY"
	ErrCodeVocabularyMissing = "VOCABULARY_MISSING"
	ErrCodePredictionFailed  = "PREDICTION_FAILED"
	ErrCodeInvalidPort       = "INVALID_PORT"
)

// NewPathNotFoundError signals that no candidate artifact path exists.
// Recoverable: the loader falls through to the synthesizer.
func NewPathNotFoundError(dir string) *LCAError {
	return &LCAError{
		Code:        ErrCodePathNotFound,
		Message:     "no model artifact found in candidate locations",
		Severity:    SeverityWarning,
		Path:        dir,
		Recoverable: true,
	}
}

// NewDeserializationError wraps a failed artifact decode.
// Recoverable: the loader falls through to the next candidate.
func NewDeserializationError(path string, cause error) *LCAError {
	return &LCAError{
		Code:        ErrCodeDeserialization,
		Message:     fmt.Sprintf("failed to decode artifact: %v", cause),
		Severity:    SeverityWarning,
		Path:        path,
		Recoverable: true,
	}
}

// NewPlaceholderFileError signals a Git LFS pointer stub left in place of
// the real artifact bytes.
func NewPlaceholderFileError(path string) *LCAError {
	return &LCAError{
		Code:        ErrCodePlaceholderFile,
		Message:     "file is a Git LFS pointer, not actual model content",
		Severity:    SeverityWarning,
		Path:        path,
		Recoverable: true,
	}
}

// NewUnknownCategoryError signals a categorical code with no entry in the
// translation table. Recoverable: the encoder substitutes the field default.
func NewUnknownCategoryError(field string, code int) *LCAError {
	return &LCAError{
		Code:        ErrCodeUnknownCategory,
		Message:     fmt.Sprintf("no label mapping for %s code %d", field, code),
		Severity:    SeverityWarning,
		Recoverable: true,
	}
}

// NewVocabularyMissingError signals a translation-table label absent from
// the fitted encoder's classes. Not recoverable within the candidate: the
// bundle is rejected and the loader moves on.
func NewVocabularyMissingError(field, label string) *LCAError {
	return &LCAError{
		Code:        ErrCodeVocabularyMissing,
		Message:     fmt.Sprintf("label %q for field %s is not in the encoder vocabulary", label, field),
		Severity:    SeverityError,
		Recoverable: false,
	}
}

// NewPredictionError wraps an estimator invocation failure. This is the
// only class allowed to surface as a per-request failure.
func NewPredictionError(cause error) *LCAError {
	return &LCAError{
		Code:        ErrCodePredictionFailed,
		Message:     fmt.Sprintf("estimator invocation failed: %v", cause),
		Severity:    SeverityError,
		Recoverable: false,
	}
}

// NewInvalidPortError signals an out-of-range or non-numeric port value.
// Recoverable: the caller falls back to the default port.
func NewInvalidPortError(value string) *LCAError {
	return &LCAError{
		Code:        ErrCodeInvalidPort,
		Message:     fmt.Sprintf("port %q is not in range 1-65535", value),
		Severity:    SeverityWarning,
		Recoverable: true,
	}
}
