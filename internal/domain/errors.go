package domain

import "errors"

// Domain errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrWorkspaceNotFound    = errors.New("workspace not found")
	ErrMembershipNotFound   = errors.New("membership not found")
	ErrInvalidInviteToken   = errors.New("invalid invite token")
	ErrAlreadyMember        = errors.New("already a member of this workspace")
	ErrForbidden            = errors.New("forbidden")
	ErrNameRequired         = errors.New("name is required")
	ErrNameTooLong          = errors.New("name exceeds maximum length")
	ErrConfirmationMismatch = errors.New("confirmation name does not match")
)

// Validation constants
const (
	MaxWorkspaceNameLength = 255
)
