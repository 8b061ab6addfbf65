package services

import "errors"

// Sentinel errors for "nothing to do" conditions. Callers are expected to
// check them with errors.Is; anything else escaping a service means the
// store or database actually broke.
var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoActiveAttempt  = errors.New("no attempt in progress")
	ErrCourseNotFound   = errors.New("course not found")
	ErrAccessDenied     = errors.New("access denied")
)
