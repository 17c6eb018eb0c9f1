// internal/common/errors/errors.go
package errors

import (
	"fmt"
	"strings"
	"time"
)

type ErrorCode string

const (
	ErrCodeInputParsingFailed       ErrorCode = "INPUT_PARSING_FAILED"
	ErrCodeInputValidationFailed    ErrorCode = "INPUT_VALIDATION_FAILED"
	ErrCodeDocumentTypeUnknown      ErrorCode = "DOCUMENT_TYPE_UNKNOWN"
	ErrCodeFieldSetValidationFailed ErrorCode = "FIELDSET_VALIDATION_FAILED"
	ErrCodeProjectionFailed         ErrorCode = "PROJECTION_FAILED"

	ErrCodeArtifactSaveFailed ErrorCode = "ARTIFACT_SAVE_FAILED"
	ErrCodeArtifactNotFound   ErrorCode = "ARTIFACT_NOT_FOUND"
	ErrCodeHistoryWriteFailed ErrorCode = "HISTORY_WRITE_FAILED"
	ErrCodeArchiveIndexFailed ErrorCode = "ARCHIVE_INDEX_FAILED"

	ErrCodeSearchQueryFailed ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeSearchTimeout     ErrorCode = "SEARCH_TIMEOUT"

	ErrCodeAskBackendUnavailable ErrorCode = "ASK_BACKEND_UNAVAILABLE"
	ErrCodeDeliveryFailed        ErrorCode = "DELIVERY_FAILED"
	ErrCodeTimelineInvalid       ErrorCode = "TIMELINE_INVALID"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key to the error and returns it for chaining.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = map[string]interface{}{}
	}
	e.Metadata[key] = value
	return e
}

type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

func NewInputParsingFailedError(err error) *StandardError {
	return newError(ErrCodeInputParsingFailed, "Job variables could not be parsed", err.Error(), false)
}

func NewInputValidationFailedError(details string) *StandardError {
	return newError(ErrCodeInputValidationFailed, "Job variables failed validation", details, false)
}

func NewDocumentTypeUnknownError(documentType string) *StandardError {
	return newError(ErrCodeDocumentTypeUnknown, "Unknown document type",
		fmt.Sprintf("documentType: %s", documentType), false)
}

func NewFieldSetValidationFailedError(details string) *StandardError {
	return newError(ErrCodeFieldSetValidationFailed, "Document fields failed validation", details, false)
}

func NewProjectionFailedError(format string, err error) *StandardError {
	return newError(ErrCodeProjectionFailed, "Document projection failed",
		fmt.Sprintf("format: %s, error: %s", format, err.Error()), false)
}

func NewArtifactSaveFailedError(err error) *StandardError {
	return newError(ErrCodeArtifactSaveFailed, "Generated document could not be saved", err.Error(), true)
}

func NewArtifactNotFoundError(documentID, format string) *StandardError {
	return newError(ErrCodeArtifactNotFound, "Generated document not found or expired",
		fmt.Sprintf("documentId: %s, format: %s", documentID, format), false)
}

func NewHistoryWriteFailedError(err error) *StandardError {
	return newError(ErrCodeHistoryWriteFailed, "Document history could not be written", err.Error(), true)
}

func NewArchiveIndexFailedError(err error) *StandardError {
	return newError(ErrCodeArchiveIndexFailed, "Document could not be indexed", err.Error(), true)
}

func NewSearchQueryFailedError(err error) *StandardError {
	return newError(ErrCodeSearchQueryFailed, "Archive search failed", err.Error(), true)
}

func NewSearchTimeoutError() *StandardError {
	return newError(ErrCodeSearchTimeout, "Archive search timeout", "search exceeded the worker timeout", true)
}

func NewAskBackendUnavailableError(err error) *StandardError {
	return newError(ErrCodeAskBackendUnavailable, "Legal Q&A backend unavailable", err.Error(), true)
}

func NewDeliveryFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeDeliveryFailed, "Document delivery failed",
		fmt.Sprintf("channel: %s, error: %s", channel, err.Error()), true)
}

func NewTimelineInvalidError(details string) *StandardError {
	return newError(ErrCodeTimelineInvalid, "Timeline request is invalid", details, false)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false)
}

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeArtifactSaveFailed,
		ErrCodeHistoryWriteFailed,
		ErrCodeArchiveIndexFailed,
		ErrCodeSearchQueryFailed,
		ErrCodeDeliveryFailed:
		return 3

	case ErrCodeSearchTimeout,
		ErrCodeAskBackendUnavailable:
		return 2

	default:
		return 0
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"errorCategory":     GetErrorCategory(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           string(stdErr.Code),
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "DOCUMENT") || strings.Contains(codeStr, "PROJECTION"):
		return "DOCUMENT"
	case strings.Contains(codeStr, "ARTIFACT") || strings.Contains(codeStr, "HISTORY") || strings.Contains(codeStr, "ARCHIVE"):
		return "STORAGE"
	case strings.Contains(codeStr, "SEARCH"):
		return "SEARCH"
	case strings.Contains(codeStr, "ASK"):
		return "AI"
	case strings.Contains(codeStr, "DELIVERY"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "PARSING"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
