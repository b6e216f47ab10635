// Package errors provides the shared error type for promptdeck's fallible
// edges: loading the prompts file, the system clipboard, and the external
// editor. The template engine itself is total and never returns errors;
// malformed placeholder syntax degrades to literal text instead.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the failure class of an AppError.
type ErrorCode string

const (
	ErrCodeStorageFailure ErrorCode = "STORAGE_FAILURE"
	ErrCodeNoTemplates    ErrorCode = "NO_TEMPLATES"
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeClipboard      ErrorCode = "CLIPBOARD_FAILURE"
	ErrCodeEditor         ErrorCode = "EDITOR_FAILURE"
)

// AppError is a coded application error. Load errors block the browsing
// view until a reload succeeds; clipboard and editor errors surface as
// transient status text and never interrupt the current view.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError without an underlying cause.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches code and context to an existing error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// IsCode reports whether err or any error it wraps carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// StorageError wraps a file system failure.
func StorageError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeStorageFailure, fmt.Sprintf("failed to %s", operation))
}

// NoTemplatesError reports a prompts file with no parseable templates.
func NoTemplatesError(path string) *AppError {
	return New(ErrCodeNoTemplates, fmt.Sprintf("no templates found in %s: add a `## Title` heading", path))
}

// NotFoundError reports a template name that matches nothing.
func NotFoundError(name string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("template %q not found", name))
}

// ClipboardError wraps a clipboard failure.
func ClipboardError(err error) *AppError {
	return Wrap(err, ErrCodeClipboard, "failed to copy to clipboard")
}

// EditorError reports an external editor problem.
func EditorError(message string) *AppError {
	return New(ErrCodeEditor, message)
}
