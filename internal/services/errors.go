package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrForbidden          = errors.New("you do not have permission to perform this action")
	ErrGuideNotFound      = errors.New("guide not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrDuplicateInvitation = errors.New("an invitation for this email already exists on this guide")
	ErrEmailMismatch       = errors.New("this invitation does not match your email")

	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

// ValidationError carries per-field failures so handlers can render a
// machine-readable 400 body. Distinct from Conflict: a duplicate key is
// never reported as a field error.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
