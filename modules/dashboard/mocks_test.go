package dashboard_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/progressdash/modules/dashboard"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) NextAssignmentDue(ctx context.Context, userID int64) (*dashboard.NextAssignment, error) {
	args := m.Called(ctx, userID)
	next, _ := args.Get(0).(*dashboard.NextAssignment)
	return next, args.Error(1)
}

func (m *MockStorage) RandomModule(ctx context.Context, userID int64) (*dashboard.ModuleAssignments, error) {
	args := m.Called(ctx, userID)
	mod, _ := args.Get(0).(*dashboard.ModuleAssignments)
	return mod, args.Error(1)
}

func (m *MockStorage) CourseDuration(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockStorage) YearModuleScores(ctx context.Context, userID int64, year int) ([]dashboard.ModuleScore, error) {
	args := m.Called(ctx, userID, year)
	scores, _ := args.Get(0).([]dashboard.ModuleScore)
	return scores, args.Error(1)
}

func (m *MockStorage) YearAverage(ctx context.Context, userID int64, year int) (dashboard.Average, error) {
	args := m.Called(ctx, userID, year)
	avg, _ := args.Get(0).(dashboard.Average)
	return avg, args.Error(1)
}

func (m *MockStorage) ModuleCompletion(ctx context.Context, userID int64) ([]dashboard.ModuleProgress, error) {
	args := m.Called(ctx, userID)
	progress, _ := args.Get(0).([]dashboard.ModuleProgress)
	return progress, args.Error(1)
}

func (m *MockStorage) FormModules(ctx context.Context, userID int64) ([]dashboard.FormModule, error) {
	args := m.Called(ctx, userID)
	modules, _ := args.Get(0).([]dashboard.FormModule)
	return modules, args.Error(1)
}

func (m *MockStorage) AssignmentScoreValid(ctx context.Context, userID, assignmentID int64, score int) (bool, bool, error) {
	args := m.Called(ctx, userID, assignmentID, score)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *MockStorage) UpdateAssignmentScore(ctx context.Context, userID, assignmentID int64, score int) (int64, error) {
	args := m.Called(ctx, userID, assignmentID, score)
	rows, _ := args.Get(0).(int64)
	return rows, args.Error(1)
}

// expectFullCourse sets up a two year course for user 7.
func expectFullCourse(m *MockStorage) {
	m.On("NextAssignmentDue", mock.Anything, int64(7)).Return(&dashboard.NextAssignment{
		Name:   "Essay",
		Module: "Networks",
		Due:    time.Date(2026, time.March, 2, 14, 5, 0, 0, time.UTC),
	}, nil)
	m.On("RandomModule", mock.Anything, int64(7)).Return(&dashboard.ModuleAssignments{
		Module: "Networks",
		Assignments: []dashboard.AssignmentScore{
			{Name: "Essay", Score: dashboard.Score{Score: 40, Marks: 50}},
		},
	}, nil)
	m.On("CourseDuration", mock.Anything, int64(7)).Return(2, nil)
	m.On("YearModuleScores", mock.Anything, int64(7), 1).Return([]dashboard.ModuleScore{
		{Module: "Networks", Score: dashboard.Score{Score: 90, Marks: 100}},
		{Module: "Databases", Score: dashboard.Score{Score: 60, Marks: 100}},
	}, nil)
	m.On("YearModuleScores", mock.Anything, int64(7), 2).Return(nil, nil)
	m.On("YearAverage", mock.Anything, int64(7), 1).Return(dashboard.Average{Score: 37.5, Marks: 50}, nil)
	m.On("YearAverage", mock.Anything, int64(7), 2).Return(dashboard.Average{}, nil)
	m.On("ModuleCompletion", mock.Anything, int64(7)).Return([]dashboard.ModuleProgress{
		{Module: "Networks", Complete: 1, Total: 2},
	}, nil)
	m.On("FormModules", mock.Anything, int64(7)).Return([]dashboard.FormModule{
		{
			ID:     3,
			Name:   "Networks",
			Finish: time.Unix(1700000000, 0),
			Assignments: []dashboard.FormAssignment{
				{ID: 11, Name: "Essay", Due: time.Unix(1690000000, 0), Marks: 50},
			},
		},
	}, nil)
}
