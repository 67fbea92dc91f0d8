package member

import (
	"errors"

	"shop/domain/shared"
)

var (
	// ErrMemberNotFound - lookup by id yielded no member.
	ErrMemberNotFound = errors.New("member not found")

	// ErrDuplicateName - the display name is already taken.
	ErrDuplicateName = errors.New("member name already exists")
)

// NewMemberNotFoundError creates a member-not-found error with stack.
func NewMemberNotFoundError(memberID string) error {
	return &memberError{
		sentinel: ErrMemberNotFound,
		message:  "member not found: " + memberID,
		stack:    shared.CaptureStack(3),
	}
}

// NewDuplicateNameError creates a duplicate-name conflict error with stack.
func NewDuplicateNameError(name string) error {
	return &memberError{
		sentinel: ErrDuplicateName,
		message:  "member name already exists: " + name,
		stack:    shared.CaptureStack(3),
	}
}

type memberError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *memberError) Error() string { return e.message }
func (e *memberError) Unwrap() error { return e.sentinel }

// Stack implements shared.Stacker.
func (e *memberError) Stack() []string {
	return shared.FormatStack(e.stack)
}
