package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConflictError represents an error when a uniqueness or exclusivity rule
// would be violated, e.g. a second team for the same team lead
type ConflictError struct {
	Entity  string
	Context string
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// InternalError represents an unexpected structural failure, e.g. an
// executive missing a manager link when one is structurally required
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrTeamLeadNotFound    = &NotFoundError{Entity: "team lead"}
	ErrProspectNotFound    = &NotFoundError{Entity: "prospect"}
	ErrSaleNotFound        = &NotFoundError{Entity: "sale"}
	ErrCallLogNotFound     = &NotFoundError{Entity: "call log"}
	ErrPayoutNotFound      = &NotFoundError{Entity: "payout"}
	ErrTransferLogNotFound = &NotFoundError{Entity: "transfer log"}
)

// Conflict Errors
var (
	ErrUserExists      = &ConflictError{Entity: "user", Context: "with this email"}
	ErrTeamExists      = &ConflictError{Entity: "team", Context: "with this name"}
	ErrTeamLeadHasTeam = &ConflictError{Entity: "team", Context: "for this team lead"}
)

// Authentication Errors
var (
	ErrMissingToken       = &AuthenticationError{Message: "you are not logged in, please log in to get access"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrInvalidCredentials = &AuthenticationError{Message: "incorrect email or password"}
	ErrInvalidRefID       = &AuthenticationError{Message: "invalid reference id for the requested role"}
)

// Authorization Errors
var (
	ErrForbidden       = &AuthorizationError{Message: "you do not have permission to perform this action"}
	ErrOutOfScope      = &AuthorizationError{Message: "the requested record is outside your scope"}
	ErrManagerOnly     = &AuthorizationError{Message: "this action is restricted to managers"}
	ErrExecutiveOnly   = &AuthorizationError{Message: "this action is restricted to sales executives"}
	ErrNotDirectReport = &AuthorizationError{Message: "the target user is not one of your direct reports"}
)

// Business Logic Errors
var (
	ErrTeamLeadWithoutTeam = &ValidationError{Message: "team lead has no team assigned"}
	ErrNotAnExecutive      = &ValidationError{Message: "target user is not an eligible sales executive"}
	ErrMissingManagerLink  = &InternalError{Message: "executive has no manager link"}
	ErrNothingToTransfer   = &NotFoundError{Entity: "transferable record"}
	ErrInvalidTimeRange    = &ValidationError{Message: "invalid time range"}
	ErrInvalidMonthFormat  = &ValidationError{Message: "month must be in YYYY-MM format"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsInternal checks if an error is an InternalError
func IsInternal(err error) bool {
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewInternalError creates a new InternalError
func NewInternalError(message string) error {
	return &InternalError{Message: message}
}
