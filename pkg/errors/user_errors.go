package errors

import "fmt"

// Error codes surfaced to clients alongside the error type.
const (
	CodeDuplicateUser = "DUPLICATE_USER"
	CodeCorruptRecord = "CORRUPT_RECORD"
)

// NewDuplicateUserError reports that a user with the given email already
// exists. Clients should not retry with the same email.
func NewDuplicateUserError(email string) *AppError {
	return NewConflictError(fmt.Sprintf("user with email %s already exists", email)).
		WithCode(CodeDuplicateUser)
}

// NewCorruptRecordError reports a stored record that failed to deserialize.
// This is an integrity fault, not a recoverable condition.
func NewCorruptRecordError(userID string, cause error) *AppError {
	return NewInternalError(fmt.Sprintf("stored record for user %s is corrupt", userID)).
		WithCode(CodeCorruptRecord).
		WithCause(cause)
}

// IsDuplicateUser checks for the duplicate-user conflict specifically.
func IsDuplicateUser(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == CodeDuplicateUser
}
