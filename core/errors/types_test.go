package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{Resource: "photo", ID: "1717171717171.jpeg"}

	expected := "photo not found: 1717171717171.jpeg"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "filepath", Message: "cannot be empty"}

	expected := "validation error on field 'filepath': cannot be empty"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("no such file")
	err := &StorageError{Op: "delete", Path: "missing.jpeg", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("StorageError does not unwrap to its cause")
	}
}

func TestIsNotFound(t *testing.T) {
	err := &NotFoundError{Resource: "article", ID: "42"}

	if !IsNotFound(err) {
		t.Error("IsNotFound returned false for NotFoundError")
	}
	if IsNotFound(errors.New("plain error")) {
		t.Error("IsNotFound returned true for plain error")
	}
}

func TestIsStorage(t *testing.T) {
	err := &StorageError{Op: "read", Path: "a.jpeg", Err: errors.New("io error")}

	if !IsStorage(err) {
		t.Error("IsStorage returned false for StorageError")
	}

	wrapped := fmt.Errorf("loading photo: %w", err)
	if !IsStorage(wrapped) {
		t.Error("IsStorage returned false for wrapped StorageError")
	}

	if IsStorage(errors.New("plain error")) {
		t.Error("IsStorage returned true for plain error")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	cause := errors.New("boom")
	wrapped := WrapError(cause, "saving index")
	if !errors.Is(wrapped, cause) {
		t.Error("WrapError result does not unwrap to cause")
	}
}
