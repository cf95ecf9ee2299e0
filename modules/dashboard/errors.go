package dashboard

import "errors"

var (
	ErrNoCourse      = errors.New("dashboard.no_course")
	ErrNoModules     = errors.New("dashboard.no_modules")
	ErrNoAssignments = errors.New("dashboard.no_assignments")
	ErrLoadFailed    = errors.New("dashboard.load_failed")
	ErrUpdateFailed  = errors.New("dashboard.update_failed")
)
