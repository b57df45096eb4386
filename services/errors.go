package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors returned by the service layer. Controllers translate
// these into HTTP statuses; anything else is a store failure.
var (
	// ErrNotFound is returned when a course, module, lesson, quiz or
	// forum post id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so a failed login never reveals whether the email
	// exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyEnrolled reports the soft conflict of enrolling twice in
	// the same course. No duplicate row is created.
	ErrAlreadyEnrolled = errors.New("already enrolled")

	// ErrForbidden is returned when a user acts on a resource they do
	// not own, e.g. deleting someone else's forum post.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries per-field validation messages for malformed
// or missing input, including a duplicate email on registration.
type ValidationError map[string]string

func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
