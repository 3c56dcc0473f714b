package utils

import "fmt"

// InvalidIDError reports a malformed record id in the request path.
type InvalidIDError struct {
	Path string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("Resource not found. Invalid: %s", e.Path)
}

// DuplicateKeyError reports a unique constraint violation on Field.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("Duplicate %s entered", e.Field)
}

// ValidationError carries per-field messages for a rejected request body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "Validation failed!"
}
