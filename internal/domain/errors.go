package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

var (
	// ErrNotFound is returned by repositories when no row has the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is wrapped by storage adapters around unique key violations.
	ErrDuplicate = errors.New("duplicate key")
	// ErrNoUnitOfWork is returned when a write is staged on a context no unit of work was begun on.
	ErrNoUnitOfWork = errors.New("no unit of work in context")
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	}
	return "conflict"
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target) || errors.Is(err, ErrNotFound)
}

// IsValidation also accepts filter and sort validation failures from the query layer.
func IsValidation(err error) bool {
	var target ValidationError
	if errors.As(err, &target) {
		return true
	}
	_, ok := query.AsFilterValidation(err)
	return ok
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

var conflictMarkers = []string{"duplicate", "unique", "constraint"}

// ClassifyStorageError sorts a storage failure into conflict or internal. Cancellation and
// errors that are already classified pass through unchanged.
func ClassifyStorageError(resource string, err error) error {
	if err == nil {
		return nil
	}
	if IsCanceled(err) || IsValidation(err) || IsConflict(err) || IsInternal(err) || IsNotFound(err) {
		return err
	}

	if errors.Is(err, ErrDuplicate) {
		return ConflictError{Resource: resource, Msg: err.Error(), Err: err}
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range conflictMarkers {
		if strings.Contains(msg, marker) {
			return ConflictError{Resource: resource, Msg: err.Error(), Err: err}
		}
	}
	return InternalError{Msg: fmt.Sprintf("%s: storage failure", resource), Err: err}
}
