package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound               = errors.New("order not found")
	ErrInvalidStateTransition = errors.New("invalid order status transition")
)

// ValidationError rejects a malformed request before any store is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// PersistenceError wraps a store connectivity or constraint failure.
type PersistenceError struct {
	Store string
	Op    string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Store, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// PublishError wraps a queue connectivity failure. It is surfaced to the
// write caller even though the stores already committed.
type PublishError struct {
	Queue string
	Err   error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish to %s: %v", e.Queue, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }
