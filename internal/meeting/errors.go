package meeting

import "errors"

var (
	// ErrAuth marks calendar failures that need re-authorization rather
	// than a retry.
	ErrAuth = errors.New("calendar authorization failed")

	ErrNotScheduled      = errors.New("no meeting scheduled for session")
	ErrIncompleteContext = errors.New("session context is incomplete")
	ErrNoCalendar        = errors.New("calendar client not configured")
)
