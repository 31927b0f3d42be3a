package onboarding

import "errors"

var (
	ErrInvalidApplication   = errors.New("invalid merchant application")
	ErrDuplicateApplication = errors.New("an application for this email is already pending review")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrInvalidStatus        = errors.New("unknown application status")
)
