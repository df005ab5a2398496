package utils

import "errors"

var (
	ErrInvalidDate         = errors.New("invalid date")
	ErrDuplicateSubmission = errors.New("check-in already submitted for this week")
	ErrAlreadyReviewed     = errors.New("check-in has already been reviewed")
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("record not found")
	ErrForbidden           = errors.New("forbidden")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrOrgSuspended        = errors.New("organization is suspended")
	ErrInsightsDisabled    = errors.New("insights are not configured")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrDatabaseError       = errors.New("database error")
)
