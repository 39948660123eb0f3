package models

import "errors"

// Error codes for every failure the system can surface. The facade and the
// command-line driver branch on these instead of matching message text.
const (
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeDuplicateUser       = "DUPLICATE_USER"
	ErrCodeDuplicateCommunity  = "DUPLICATE_COMMUNITY"
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	ErrCodeUnknownUser         = "UNKNOWN_USER"
	ErrCodeUnknownCommunity    = "UNKNOWN_COMMUNITY"
	ErrCodeInvalidSession      = "INVALID_SESSION"
	ErrCodeMissingAttribute    = "MISSING_ATTRIBUTE"
	ErrCodeSelfRelation        = "SELF_RELATION"
	ErrCodeSelfMessage         = "SELF_MESSAGE"
	ErrCodeExistingRelation    = "EXISTING_RELATION"
	ErrCodeExistingMembership  = "EXISTING_MEMBERSHIP"
	ErrCodeBlockedRelation     = "BLOCKED_RELATION"
	ErrCodeEmptyQueue          = "EMPTY_QUEUE"
	ErrCodePersistence         = "PERSISTENCE"
)

// DomainError is the single error type returned by system operations.
type DomainError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Message
}

// ErrorCode extracts the domain error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

func NewInvalidInputError(field string) *DomainError {
	return &DomainError{Code: ErrCodeInvalidInput, Message: "Invalid " + field + "."}
}

func NewDuplicateUserError() *DomainError {
	return &DomainError{Code: ErrCodeDuplicateUser, Message: "An account with this login already exists."}
}

func NewDuplicateCommunityError() *DomainError {
	return &DomainError{Code: ErrCodeDuplicateCommunity, Message: "A community with this name already exists."}
}

func NewInvalidCredentialsError() *DomainError {
	return &DomainError{Code: ErrCodeInvalidCredentials, Message: "Invalid login or password."}
}

func NewUnknownUserError() *DomainError {
	return &DomainError{Code: ErrCodeUnknownUser, Message: "User is not registered."}
}

func NewUnknownCommunityError() *DomainError {
	return &DomainError{Code: ErrCodeUnknownCommunity, Message: "Community does not exist."}
}

func NewInvalidSessionError() *DomainError {
	return &DomainError{Code: ErrCodeInvalidSession, Message: "Session is not valid."}
}

func NewMissingAttributeError() *DomainError {
	return &DomainError{Code: ErrCodeMissingAttribute, Message: "Attribute is not set."}
}

func NewSelfRelationError(relation string) *DomainError {
	return &DomainError{Code: ErrCodeSelfRelation, Message: "User cannot add themselves as " + relation + "."}
}

func NewSelfMessageError() *DomainError {
	return &DomainError{Code: ErrCodeSelfMessage, Message: "User cannot send a message to themselves."}
}

func NewExistingRelationError(relation string) *DomainError {
	return &DomainError{Code: ErrCodeExistingRelation, Message: "User is already " + relation + "."}
}

func NewExistingMembershipError() *DomainError {
	return &DomainError{Code: ErrCodeExistingMembership, Message: "User is already a member of this community."}
}

func NewBlockedRelationError(name string) *DomainError {
	return &DomainError{Code: ErrCodeBlockedRelation, Message: "Invalid action: " + name + " is your enemy."}
}

func NewEmptyQueueError() *DomainError {
	return &DomainError{Code: ErrCodeEmptyQueue, Message: "There are no messages."}
}

func NewPersistenceError(cause error) *DomainError {
	return &DomainError{Code: ErrCodePersistence, Message: "Failed to persist system state: " + cause.Error()}
}
