package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateIdentity  = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrValidation         = errors.New("validation failed")
	ErrSelfTarget         = errors.New("operation may not target your own account")
	ErrAdminImmutable     = errors.New("admin accounts cannot be modified or deleted")
	ErrAdminPromotion     = errors.New("promotion to admin is not permitted")
	ErrCourseNotFound     = errors.New("course not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrQuestionNotFound   = errors.New("question not found")

	// AI generation failure kinds. Callers branch with errors.Is instead of
	// matching sentinel strings in the response body.
	ErrAINotConfigured = errors.New("AI features disabled: no API key configured")
	ErrAIRequestFailed = errors.New("AI request failed")
	ErrAIParseFailed   = errors.New("AI response could not be parsed")
)
