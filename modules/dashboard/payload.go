package dashboard

// Payload is the data of a successful dashboard read.
type Payload struct {
	User  User             `json:"user"`
	Graph Graph            `json:"graph"`
	Form  []FormModuleView `json:"form"`
}

// User identifies the logged-in user.
type User struct {
	Name string `json:"name"`
}

// Graph holds the series plotted on the dashboard.
// ModuleScores and YearAverages are indexed by course year, starting with the first.
type Graph struct {
	NextAssignmentDue        *NextAssignmentView `json:"nextAssignmentDue"`
	RandomModuleScores       *ModuleAssignments  `json:"randomModuleScores"`
	ModuleScores             [][]ModuleScore     `json:"moduleScores"`
	YearAverages             []Average           `json:"yearAverages"`
	ModuleCompletionProgress []ModuleProgress    `json:"moduleCompletionProgress"`
}

// NextAssignmentView is the next deadline with a human readable due date,
// e.g. "2nd of March at 14:05".
type NextAssignmentView struct {
	Name   string `json:"name"`
	Due    string `json:"due"`
	Module string `json:"module"`
}

// FormModuleView is a module option of the update form. Finish is a Unix timestamp.
type FormModuleView struct {
	Identifier  int64                `json:"identifier"`
	Name        string               `json:"name"`
	Finish      int64                `json:"finish"`
	Assignments []FormAssignmentView `json:"assignments"`
}

// FormAssignmentView is an assignment option of the update form. Due is a Unix timestamp.
type FormAssignmentView struct {
	Identifier int64  `json:"identifier"`
	Name       string `json:"name"`
	Due        int64  `json:"due"`
	Marks      int    `json:"marks"`
}

// UpdateResult is the data of a successful score update.
type UpdateResult struct {
	RowsAffected int64 `json:"rowsAffected"`
}
