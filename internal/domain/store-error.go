package domain

import (
	"errors"
	"fmt"
)

// ErrStore matches every StoreError through errors.Is.
var ErrStore = errors.New("record store error")

// ErrSubmissionNotFound is the cause of a StoreError when a delete hits no row.
var ErrSubmissionNotFound = errors.New("thesis submission not found")

// StoreError is the single error kind surfaced by the record store: network
// failures, rejected writes and missing rows all look the same to callers.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("store %s failed", e.Op)
	}
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}
