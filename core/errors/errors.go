// Package errors provides standardized error types and helpers for the bomdoc codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrMissingPreamble indicates a byte sequence with no recognized BOM preamble
	ErrMissingPreamble = errors.New("missing preamble")
	// ErrInvalidEncoding indicates bytes that are not well-formed for the detected scheme
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrInvalidCodePoint indicates a value outside the valid Unicode scalar range
	ErrInvalidCodePoint = errors.New("invalid code point")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
)

// DecodeError represents a malformed byte sequence following a recognized preamble
type DecodeError struct {
	Encoding string // Name of the detected encoding (e.g., "utf-16be")
	Offset   int    // Byte offset of the malformed sequence within the input
	Message  string // Human-readable error message
	Err      error  // Underlying error, if any
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s at byte %d: %s", e.Encoding, e.Offset, e.Message)
}

func (e *DecodeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidEncoding
}

// CodePointError represents a value that is not a valid Unicode scalar value
type CodePointError struct {
	Index int   // Position of the offending value in the input sequence
	Value int64 // The offending value
	Err   error // Underlying error, if any
}

func (e *CodePointError) Error() string {
	return fmt.Sprintf("invalid code point at index %d: %#x", e.Index, e.Value)
}

func (e *CodePointError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidCodePoint
}

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "document", "blob")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// Helper functions for creating common errors

// NewDecode creates a DecodeError
func NewDecode(encoding string, offset int, message string) *DecodeError {
	return &DecodeError{
		Encoding: encoding,
		Offset:   offset,
		Message:  message,
	}
}

// NewCodePoint creates a CodePointError
func NewCodePoint(index int, value int64) *CodePointError {
	return &CodePointError{
		Index: index,
		Value: value,
	}
}

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
