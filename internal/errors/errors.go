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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
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

// EntitlementDeniedError signals that a plan limit or premium-only
// feature blocked the operation. Handlers render these as an upgrade
// prompt, not a failure.
type EntitlementDeniedError struct {
	Feature string
	Message string
}

func (e *EntitlementDeniedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s requires an upgrade: %s", e.Feature, e.Message)
	}
	return fmt.Sprintf("%s requires an upgrade", e.Feature)
}

// Is enables errors.Is() comparison for EntitlementDeniedError
func (e *EntitlementDeniedError) Is(target error) bool {
	t, ok := target.(*EntitlementDeniedError)
	if !ok {
		return false
	}
	return e.Feature == t.Feature
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

// Entity Not Found Errors
var (
	ErrAccountNotFound    = &NotFoundError{Entity: "account"}
	ErrAssetNotFound      = &NotFoundError{Entity: "asset"}
	ErrEmployeeNotFound   = &NotFoundError{Entity: "employee"}
	ErrInvitationNotFound = &NotFoundError{Entity: "invitation"}
	ErrTeamMemberNotFound = &NotFoundError{Entity: "team member"}
)

// Already Exists Errors
var (
	ErrAccountExists    = &AlreadyExistsError{Entity: "account", Context: "with this email"}
	ErrInvitationExists = &AlreadyExistsError{Entity: "invitation", Context: "for this email"}
)

// Entitlement Errors
var (
	ErrAssetQuotaReached   = &EntitlementDeniedError{Feature: "adding more assets", Message: "free plan asset limit reached"}
	ErrBulkExportDenied    = &EntitlementDeniedError{Feature: "bulk label export", Message: "printing more than one label at a time is a premium feature"}
	ErrTeamFeaturesDenied  = &EntitlementDeniedError{Feature: "team access", Message: "inviting team members is a premium feature"}
	ErrInvitationConsumed  = errors.New("invitation has already been accepted")
	ErrDelegateCannotOwn   = errors.New("a team member account cannot be a delegation target")
	ErrSelfDelegation      = errors.New("an account cannot delegate to itself")
	ErrNotPrimaryOwner     = &AuthorizationError{Message: "only the primary account owner can manage the team"}
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidAssetStatus  = errors.New("invalid asset status")
	ErrEmployeeWrongOwner  = errors.New("employee belongs to a different account")
	ErrNoAssetsForLabels   = errors.New("no assets matched the label selection")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsEntitlementDenied checks if an error is an EntitlementDeniedError
func IsEntitlementDenied(err error) bool {
	var deniedErr *EntitlementDeniedError
	return errors.As(err, &deniedErr)
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

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewEntitlementDeniedError creates a new EntitlementDeniedError
func NewEntitlementDeniedError(feature, message string) error {
	return &EntitlementDeniedError{Feature: feature, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
