package errorvalues

import "errors"

var (
	ErrKeyNotFound          = errors.New("key doesn't exist")
	ErrUnknownStorageDriver = errors.New("unknown storage driver")

	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")

	ErrEntryNotFound = errors.New("mood entry doesn't exist")

	ErrUnknownQuestion      = errors.New("unknown question")
	ErrInvalidAnswer        = errors.New("answer doesn't fit the question")
	ErrAssessmentCompleted  = errors.New("assessment already completed")
	ErrAssessmentIncomplete = errors.New("assessment has unanswered questions")
	ErrResultsNotFound      = errors.New("assessment results don't exist")

	ErrConfirmationRequired = errors.New("destructive operation requires confirmation")
	ErrCollaboratorFailed   = errors.New("external collaborator failed")
)
