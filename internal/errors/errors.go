package errors

import (
	"encoding/json"
	"fmt"
)

// ValidationErr is raised when input is rejected before any request is sent
type ValidationErr struct {
	target  string
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

// Target is name of the rejected input
func (e *ValidationErr) Target() string {
	return e.target
}

func (e *ValidationErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

func NewValidationErr(target string, msg string) *ValidationErr {
	return &ValidationErr{
		target:  target,
		message: msg,
	}
}

// NotFoundErr means lookup returned no record
type NotFoundErr struct {
	message string
}

func (e *NotFoundErr) Error() string {
	return e.message
}

func NewNotFoundErr(msg string) *NotFoundErr {
	return &NotFoundErr{message: msg}
}

// TransientErr wraps network, timeout and remote failures. It is never retried automatically.
type TransientErr struct {
	op  string
	err error
}

func (e *TransientErr) Error() string {
	return fmt.Sprintf("%s - %v", e.op, e.err)
}

func (e *TransientErr) Unwrap() error {
	return e.err
}

func NewTransientErr(op string, err error) *TransientErr {
	return &TransientErr{op: op, err: err}
}

// CacheStaleErr means mutation was applied remotely but cached list could not be dropped
type CacheStaleErr struct {
	op  string
	err error
}

func (e *CacheStaleErr) Error() string {
	return fmt.Sprintf("customer %s succeeded but cache invalidation failed - %v", e.op, e.err)
}

func (e *CacheStaleErr) Unwrap() error {
	return e.err
}

func NewCacheStaleErr(op string, err error) *CacheStaleErr {
	return &CacheStaleErr{op: op, err: err}
}
