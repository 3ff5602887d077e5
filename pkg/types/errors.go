// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind, for use with errors.Is.
var (
	ErrFetch  = errors.New("fetch failed")
	ErrSchema = errors.New("unexpected schema")
	ErrWrite  = errors.New("write failed")
)

// ErrorKind classifies a pipeline failure.
type ErrorKind string

const (
	KindFetch  ErrorKind = "fetch"
	KindSchema ErrorKind = "schema"
	KindWrite  ErrorKind = "write"
)

// StageError wraps an underlying error with the stage that produced it.
type StageError struct {
	Stage string
	Kind  ErrorKind
	Err   error
}

// NewStageError builds a StageError.
func NewStageError(stage string, kind ErrorKind, err error) *StageError {
	return &StageError{Stage: stage, Kind: kind, Err: err}
}

func (e *StageError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s error", e.Stage, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *StageError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrFetch:
		return e.Kind == KindFetch
	case ErrSchema:
		return e.Kind == KindSchema
	case ErrWrite:
		return e.Kind == KindWrite
	}
	return false
}

// IsKind reports whether err (or anything it wraps) is a StageError of kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *StageError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}
