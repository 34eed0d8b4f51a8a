package errors

import (
	"fmt"
)

// IndexError is the structured error type for fsindex.
// It carries a stable code plus context for logging and user presentation.
type IndexError struct {
	// Code is the unique error code (e.g., "ERR_201_DIR_READ").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *IndexError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with IndexError.
func (e *IndexError) Is(target error) bool {
	if t, ok := target.(*IndexError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *IndexError) WithDetail(key, value string) *IndexError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates a new IndexError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *IndexError {
	return &IndexError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates an IndexError from an existing error.
// The error's message becomes the IndexError message.
func Wrap(code string, err error) *IndexError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// DirReadError marks a failed directory listing. The walker skips that
// directory's unvisited children and continues with siblings.
func DirReadError(dir string, cause error) *IndexError {
	return New(ErrCodeDirRead, fmt.Sprintf("failed to list directory %s", dir), cause).
		WithDetail("dir", dir)
}

// MetadataError marks a failed file-type or size lookup for one entry.
func MetadataError(path string, cause error) *IndexError {
	return New(ErrCodeMetadata, fmt.Sprintf("failed to read metadata for %s", path), cause).
		WithDetail("path", path)
}

// RecursiveSizeError marks a failed recursive-size computation. The walker
// neither hashes nor descends into that directory.
func RecursiveSizeError(dir string, cause error) *IndexError {
	return New(ErrCodeRecursiveSize, fmt.Sprintf("failed to compute recursive size of %s", dir), cause).
		WithDetail("dir", dir)
}

// InvalidPathError marks a walk root that is unusable.
func InvalidPathError(path string, cause error) *IndexError {
	return New(ErrCodeInvalidPath, fmt.Sprintf("invalid path: %s", path), cause).
		WithDetail("path", path)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *IndexError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// GetCode extracts the error code from an IndexError.
// Returns empty string if not an IndexError.
func GetCode(err error) string {
	if ie, ok := err.(*IndexError); ok {
		return ie.Code
	}
	return ""
}

// GetCategory extracts the category from an IndexError.
// Returns empty string if not an IndexError.
func GetCategory(err error) Category {
	if ie, ok := err.(*IndexError); ok {
		return ie.Category
	}
	return ""
}
