package editor

import (
	"errors"
	"fmt"
)

// ErrMissingImage rejects a create without an image before any network call.
var ErrMissingImage = errors.New("an image is required")

// ErrNotConfirmed rejects a delete that was not explicitly confirmed.
var ErrNotConfirmed = errors.New("deletion was not confirmed")

// ValidationError carries the per-field messages of a rejected payload.
// It is resolved locally; nothing reaches a collaborator.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("payload rejected: %d field error(s)", len(e.Fields))
}

// CollaboratorError wraps a storage/persistence failure. It is caught at
// the orchestration boundary and shown as a single notification; the
// operation is aborted with no partial state.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Notice is the user-facing notification text.
func (e *CollaboratorError) Notice() string {
	switch e.Op {
	case "upload":
		return "Failed to upload image"
	case "delete":
		return "Failed to delete postcard"
	case "reload":
		return "Failed to load postcards"
	default:
		return "Failed to save postcard"
	}
}
