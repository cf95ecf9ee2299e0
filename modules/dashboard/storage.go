package dashboard

import (
	"context"
	"time"
)

// Storage reads and updates the course data of a user. Every method is scoped to the
// course the user is enrolled on.
type Storage interface {
	// NextAssignmentDue returns the assignment with the earliest due date that has not
	// passed yet, or nil when nothing is due any more.
	NextAssignmentDue(ctx context.Context, userID int64) (*NextAssignment, error)
	// RandomModule picks a random module with its assignment scores.
	// It returns ErrNoModules or ErrNoAssignments when there is nothing to pick.
	RandomModule(ctx context.Context, userID int64) (*ModuleAssignments, error)
	// CourseDuration returns the length of the course in years, or ErrNoCourse.
	CourseDuration(ctx context.Context, userID int64) (int, error)
	// YearModuleScores returns the summed score and marks of each module taught in the
	// given course year (1-based), highest score first.
	YearModuleScores(ctx context.Context, userID int64, year int) ([]ModuleScore, error)
	// YearAverage returns the mean assignment score and marks of the course year,
	// rounded to two decimals.
	YearAverage(ctx context.Context, userID int64, year int) (Average, error)
	// ModuleCompletion counts submitted (score > 0) against all assignments per module,
	// ordered by module finish.
	ModuleCompletion(ctx context.Context, userID int64) ([]ModuleProgress, error)
	// FormModules lists modules and their assignments for the score update form, ordered
	// by module finish.
	FormModules(ctx context.Context, userID int64) ([]FormModule, error)
	// AssignmentScoreValid reports whether the assignment exists on the user's course
	// (found) and whether score does not exceed its marks (valid).
	AssignmentScoreValid(ctx context.Context, userID, assignmentID int64, score int) (valid, found bool, err error)
	// UpdateAssignmentScore stores a new score and returns the number of rows affected.
	UpdateAssignmentScore(ctx context.Context, userID, assignmentID int64, score int) (int64, error)
}

// NextAssignment is the upcoming deadline of the course.
type NextAssignment struct {
	Name   string
	Module string
	Due    time.Time
}

// Score pairs an achieved score with the marks available.
type Score struct {
	Score int `json:"score"`
	Marks int `json:"marks"`
}

// AssignmentScore is the score of a single assignment.
type AssignmentScore struct {
	Name string `json:"name"`
	Score
}

// ModuleAssignments is a module with the scores of its assignments.
type ModuleAssignments struct {
	Module      string            `json:"module"`
	Assignments []AssignmentScore `json:"assignments"`
}

// ModuleScore is the summed score of a module.
type ModuleScore struct {
	Module string `json:"module"`
	Score
}

// Average is the mean score and marks over a set of assignments.
type Average struct {
	Score float64 `json:"score"`
	Marks float64 `json:"marks"`
}

// ModuleProgress counts completed assignments of a module.
type ModuleProgress struct {
	Module   string `json:"module"`
	Complete int    `json:"complete"`
	Total    int    `json:"total"`
}

// FormModule is a module entry of the score update form.
type FormModule struct {
	ID          int64
	Name        string
	Finish      time.Time
	Assignments []FormAssignment
}

// FormAssignment is an assignment entry of the score update form.
type FormAssignment struct {
	ID    int64
	Name  string
	Due   time.Time
	Marks int
}
