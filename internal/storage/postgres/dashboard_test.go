package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/progressdash/modules/dashboard"
)

var ctx = context.Background()

func TestDashboard_NextAssignmentDue(t *testing.T) {
	t.Parallel()

	t.Run("upcoming assignment", func(t *testing.T) {
		t.Parallel()

		db, mock := newMock(t)
		due := time.Date(2026, time.March, 2, 14, 5, 0, 0, time.UTC)
		mock.ExpectQuery(nextAssignmentQuery).WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"name", "due_at", "module"}).AddRow("Essay", due, "Networks"))

		next, err := NewDashboard(db).NextAssignmentDue(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, &dashboard.NextAssignment{Name: "Essay", Module: "Networks", Due: due}, next)
	})

	t.Run("course finished", func(t *testing.T) {
		t.Parallel()

		db, mock := newMock(t)
		mock.ExpectQuery(nextAssignmentQuery).WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"name", "due_at", "module"}))

		next, err := NewDashboard(db).NextAssignmentDue(ctx, 7)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("query failure", func(t *testing.T) {
		t.Parallel()

		db, mock := newMock(t)
		mock.ExpectQuery(nextAssignmentQuery).WithArgs(int64(7)).WillReturnError(errors.New("boom"))

		_, err := NewDashboard(db).NextAssignmentDue(ctx, 7)
		assert.ErrorContains(t, err, "boom")
	})
}

func TestDashboard_RandomModule(t *testing.T) {
	t.Parallel()

	t.Run("module with assignments", func(t *testing.T) {
		t.Parallel()

		db, mock := newMock(t)
		mock.ExpectQuery(randomModuleQuery).WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "Networks"))
		mock.ExpectQuery(moduleAssignmentsQuery).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"name", "score", "marks"}).
				AddRow("Essay", 40, 50).
				AddRow("Exam", 0, 100))

		got, err := NewDashboard(db).RandomModule(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Networks", got.Module)
		assert.Equal(t, []dashboard.AssignmentScore{
			{Name: "Essay", Score: dashboard.Score{Score: 40, Marks: 50}},
			{Name: "Exam", Score: dashboard.Score{Score: 0, Marks: 100}},
		}, got.Assignments)
	})

	t.Run("no modules", func(t *testing.T) {
		t.Parallel()

		db, mock := newMock(t)
		mock.ExpectQuery(randomModuleQuery).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := NewDashboard(db).RandomModule(ctx, 7)
		assert.ErrorIs(t, err, dashboard.ErrNoModules)
	})

	t.Run("no assignments", func(t *testing.T) {
		t.Parallel()

		db, mock := newMock(t)
		mock.ExpectQuery(randomModuleQuery).WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "Networks"))
		mock.ExpectQuery(moduleAssignmentsQuery).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"name", "score", "marks"}))

		_, err := NewDashboard(db).RandomModule(ctx, 7)
		assert.ErrorIs(t, err, dashboard.ErrNoAssignments)
	})
}

func TestDashboard_CourseDuration(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	mock.ExpectQuery(courseDurationQuery).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"duration"}).AddRow(3))
	mock.ExpectQuery(courseDurationQuery).WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"duration"}))

	d := NewDashboard(db)

	years, err := d.CourseDuration(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, years)

	_, err = d.CourseDuration(ctx, 8)
	assert.ErrorIs(t, err, dashboard.ErrNoCourse)
}

func TestDashboard_YearModuleScores(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	start := time.Date(2023, time.September, 18, 0, 0, 0, 0, time.UTC)

	// Second year: ends two years after the first module starts, begins a year and two
	// days earlier.
	from := time.Date(2024, time.September, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.September, 18, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(courseStartQuery).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(start))
	mock.ExpectQuery(yearModuleScoresQuery).WithArgs(int64(7), from, to).
		WillReturnRows(sqlmock.NewRows([]string{"name", "score", "marks"}).
			AddRow("Networks", 90, 100).
			AddRow("Databases", 60, 100))

	scores, err := NewDashboard(db).YearModuleScores(ctx, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, []dashboard.ModuleScore{
		{Module: "Networks", Score: dashboard.Score{Score: 90, Marks: 100}},
		{Module: "Databases", Score: dashboard.Score{Score: 60, Marks: 100}},
	}, scores)
}

func TestDashboard_YearModuleScores_EmptyYear(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	start := time.Date(2023, time.September, 18, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(courseStartQuery).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(start))
	mock.ExpectQuery(yearModuleScoresQuery).WithArgs(int64(7), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"name", "score", "marks"}))

	scores, err := NewDashboard(db).YearModuleScores(ctx, 7, 3)
	require.NoError(t, err)
	assert.NotNil(t, scores)
	assert.Empty(t, scores)
}

func TestDashboard_YearAverage(t *testing.T) {
	t.Parallel()

	t.Run("average", func(t *testing.T) {
		t.Parallel()

		db, mock := newMock(t)
		start := time.Date(2023, time.September, 18, 0, 0, 0, 0, time.UTC)
		from := time.Date(2023, time.September, 17, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, time.September, 18, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(courseStartQuery).WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(start))
		mock.ExpectQuery(yearAverageQuery).WithArgs(int64(7), from, to).
			WillReturnRows(sqlmock.NewRows([]string{"score", "marks"}).AddRow(37.5, 62.25))

		avg, err := NewDashboard(db).YearAverage(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, dashboard.Average{Score: 37.5, Marks: 62.25}, avg)
	})

	t.Run("course without modules", func(t *testing.T) {
		t.Parallel()

		db, mock := newMock(t)
		mock.ExpectQuery(courseStartQuery).WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(nil))

		_, err := NewDashboard(db).YearAverage(ctx, 7, 1)
		assert.ErrorIs(t, err, dashboard.ErrNoModules)
	})
}

func TestDashboard_ModuleCompletion(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	mock.ExpectQuery(moduleCompletionQuery).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "complete", "total"}).
			AddRow("Networks", 1, 2).
			AddRow("Databases", 0, 3))

	progress, err := NewDashboard(db).ModuleCompletion(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []dashboard.ModuleProgress{
		{Module: "Networks", Complete: 1, Total: 2},
		{Module: "Databases", Complete: 0, Total: 3},
	}, progress)
}

func TestDashboard_FormModules(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	finishA := time.Unix(1700000000, 0).UTC()
	finishB := time.Unix(1710000000, 0).UTC()
	due1 := time.Unix(1690000000, 0).UTC()
	due2 := time.Unix(1695000000, 0).UTC()
	due3 := time.Unix(1705000000, 0).UTC()

	mock.ExpectQuery(formModulesQuery).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"module_id", "module_name", "finishes_at", "id", "name", "due_at", "marks"}).
			AddRow(int64(3), "Networks", finishA, int64(11), "Essay", due1, 50).
			AddRow(int64(3), "Networks", finishA, int64(12), "Exam", due2, 100).
			AddRow(int64(4), "Databases", finishB, int64(13), "Project", due3, 80))

	modules, err := NewDashboard(db).FormModules(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []dashboard.FormModule{
		{
			ID: 3, Name: "Networks", Finish: finishA,
			Assignments: []dashboard.FormAssignment{
				{ID: 11, Name: "Essay", Due: due1, Marks: 50},
				{ID: 12, Name: "Exam", Due: due2, Marks: 100},
			},
		},
		{
			ID: 4, Name: "Databases", Finish: finishB,
			Assignments: []dashboard.FormAssignment{
				{ID: 13, Name: "Project", Due: due3, Marks: 80},
			},
		},
	}, modules)
}

func TestDashboard_AssignmentScoreValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		score     int
		rows      *sqlmock.Rows
		wantValid bool
		wantFound bool
	}{
		{name: "within marks", score: 50, rows: sqlmock.NewRows([]string{"marks"}).AddRow(50), wantValid: true, wantFound: true},
		{name: "above marks", score: 51, rows: sqlmock.NewRows([]string{"marks"}).AddRow(50), wantValid: false, wantFound: true},
		{name: "not on course", score: 1, rows: sqlmock.NewRows([]string{"marks"}), wantValid: false, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, mock := newMock(t)
			mock.ExpectQuery(assignmentMarksQuery).WithArgs(int64(7), int64(11)).WillReturnRows(tt.rows)

			valid, found, err := NewDashboard(db).AssignmentScoreValid(ctx, 7, 11, tt.score)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestDashboard_UpdateAssignmentScore(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	mock.ExpectExec(updateScoreQuery).WithArgs(int64(7), int64(11), 45).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(updateScoreQuery).WithArgs(int64(7), int64(11), 45).WillReturnError(errors.New("deadlock"))

	d := NewDashboard(db)

	rows, err := d.UpdateAssignmentScore(ctx, 7, 11, 45)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = d.UpdateAssignmentScore(ctx, 7, 11, 45)
	assert.ErrorContains(t, err, "deadlock")
}
