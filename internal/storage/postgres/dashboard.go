package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrymomot/progressdash/modules/dashboard"
	"github.com/dmitrymomot/progressdash/pkg/pg"
)

var _ dashboard.Storage = (*Dashboard)(nil)

const (
	nextAssignmentQuery = `SELECT a.name, a.due_at, m.name
FROM assignments a
JOIN modules m ON m.id = a.module_id
JOIN users u ON u.course_id = m.course_id
WHERE u.id = $1 AND a.due_at >= NOW()
ORDER BY a.due_at ASC
LIMIT 1`

	randomModuleQuery = `SELECT m.id, m.name
FROM modules m
JOIN users u ON u.course_id = m.course_id
WHERE u.id = $1
ORDER BY RANDOM()
LIMIT 1`

	moduleAssignmentsQuery = `SELECT name, score, marks
FROM assignments
WHERE module_id = $1
ORDER BY due_at, id`

	courseDurationQuery = `SELECT c.duration
FROM courses c
JOIN users u ON u.course_id = c.id
WHERE u.id = $1`

	courseStartQuery = `SELECT MIN(m.starts_at)
FROM modules m
JOIN users u ON u.course_id = m.course_id
WHERE u.id = $1`

	yearModuleScoresQuery = `SELECT m.name, COALESCE(SUM(a.score), 0), COALESCE(SUM(a.marks), 0)
FROM modules m
JOIN users u ON u.course_id = m.course_id
LEFT JOIN assignments a ON a.module_id = m.id
WHERE u.id = $1 AND m.starts_at >= $2 AND m.finishes_at <= $3
GROUP BY m.id, m.name
ORDER BY 2 DESC, m.name`

	yearAverageQuery = `SELECT COALESCE(ROUND(AVG(a.score), 2), 0)::float8, COALESCE(ROUND(AVG(a.marks), 2), 0)::float8
FROM modules m
JOIN users u ON u.course_id = m.course_id
LEFT JOIN assignments a ON a.module_id = m.id
WHERE u.id = $1 AND m.starts_at >= $2 AND m.finishes_at <= $3`

	moduleCompletionQuery = `SELECT m.name, COUNT(*) FILTER (WHERE a.score > 0), COUNT(a.id)
FROM assignments a
JOIN modules m ON m.id = a.module_id
JOIN users u ON u.course_id = m.course_id
WHERE u.id = $1
GROUP BY m.id, m.name, m.finishes_at
ORDER BY m.finishes_at, m.id`

	formModulesQuery = `SELECT m.id, m.name, m.finishes_at, a.id, a.name, a.due_at, a.marks
FROM assignments a
JOIN modules m ON m.id = a.module_id
JOIN users u ON u.course_id = m.course_id
WHERE u.id = $1
ORDER BY m.finishes_at, m.id, a.due_at, a.id`

	assignmentMarksQuery = `SELECT a.marks
FROM assignments a
JOIN modules m ON m.id = a.module_id
JOIN users u ON u.course_id = m.course_id
WHERE u.id = $1 AND a.id = $2`

	updateScoreQuery = `UPDATE assignments a
SET score = $3
FROM modules m, users u
WHERE a.id = $2 AND m.id = a.module_id AND u.course_id = m.course_id AND u.id = $1`
)

// Dashboard reads and updates course progress. Every query is scoped to the course of
// the given user.
type Dashboard struct {
	db *sql.DB
}

func NewDashboard(db *sql.DB) *Dashboard {
	return &Dashboard{db: db}
}

func (d *Dashboard) NextAssignmentDue(ctx context.Context, userID int64) (*dashboard.NextAssignment, error) {
	var next dashboard.NextAssignment
	err := d.db.QueryRowContext(ctx, nextAssignmentQuery, userID).Scan(&next.Name, &next.Due, &next.Module)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get next assignment: %w", err)
	}
	return &next, nil
}

func (d *Dashboard) RandomModule(ctx context.Context, userID int64) (*dashboard.ModuleAssignments, error) {
	var (
		moduleID int64
		result   dashboard.ModuleAssignments
	)

	err := d.db.QueryRowContext(ctx, randomModuleQuery, userID).Scan(&moduleID, &result.Module)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, dashboard.ErrNoModules
		}
		return nil, fmt.Errorf("failed to pick random module: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, moduleAssignmentsQuery, moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get module assignments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a dashboard.AssignmentScore
		if err := rows.Scan(&a.Name, &a.Score.Score, &a.Marks); err != nil {
			return nil, fmt.Errorf("failed to scan module assignment: %w", err)
		}
		result.Assignments = append(result.Assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate module assignments: %w", err)
	}

	if len(result.Assignments) == 0 {
		return nil, dashboard.ErrNoAssignments
	}

	return &result, nil
}

func (d *Dashboard) CourseDuration(ctx context.Context, userID int64) (int, error) {
	var years int
	if err := d.db.QueryRowContext(ctx, courseDurationQuery, userID).Scan(&years); err != nil {
		if pg.IsNotFoundError(err) {
			return 0, dashboard.ErrNoCourse
		}
		return 0, fmt.Errorf("failed to get course duration: %w", err)
	}
	return years, nil
}

// yearWindow returns the date range of a course year. The year ends year years after
// the first module starts and begins one year (plus year days of calendar drift)
// before that.
func (d *Dashboard) yearWindow(ctx context.Context, userID int64, year int) (from, to time.Time, err error) {
	var start sql.NullTime
	if err := d.db.QueryRowContext(ctx, courseStartQuery, userID).Scan(&start); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to get course start: %w", err)
	}
	if !start.Valid {
		return time.Time{}, time.Time{}, dashboard.ErrNoModules
	}

	to = start.Time.AddDate(year, 0, 0)
	from = to.AddDate(-1, 0, -year)
	return from, to, nil
}

func (d *Dashboard) YearModuleScores(ctx context.Context, userID int64, year int) ([]dashboard.ModuleScore, error) {
	from, to, err := d.yearWindow(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	rows, err := d.db.QueryContext(ctx, yearModuleScoresQuery, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get module scores for year %d: %w", year, err)
	}
	defer rows.Close()

	scores := []dashboard.ModuleScore{}
	for rows.Next() {
		var s dashboard.ModuleScore
		if err := rows.Scan(&s.Module, &s.Score.Score, &s.Marks); err != nil {
			return nil, fmt.Errorf("failed to scan module score: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate module scores: %w", err)
	}

	return scores, nil
}

func (d *Dashboard) YearAverage(ctx context.Context, userID int64, year int) (dashboard.Average, error) {
	from, to, err := d.yearWindow(ctx, userID, year)
	if err != nil {
		return dashboard.Average{}, err
	}

	var avg dashboard.Average
	if err := d.db.QueryRowContext(ctx, yearAverageQuery, userID, from, to).Scan(&avg.Score, &avg.Marks); err != nil {
		return dashboard.Average{}, fmt.Errorf("failed to get average for year %d: %w", year, err)
	}
	return avg, nil
}

func (d *Dashboard) ModuleCompletion(ctx context.Context, userID int64) ([]dashboard.ModuleProgress, error) {
	rows, err := d.db.QueryContext(ctx, moduleCompletionQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get module completion: %w", err)
	}
	defer rows.Close()

	var progress []dashboard.ModuleProgress
	for rows.Next() {
		var p dashboard.ModuleProgress
		if err := rows.Scan(&p.Module, &p.Complete, &p.Total); err != nil {
			return nil, fmt.Errorf("failed to scan module completion: %w", err)
		}
		progress = append(progress, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate module completion: %w", err)
	}

	return progress, nil
}

func (d *Dashboard) FormModules(ctx context.Context, userID int64) ([]dashboard.FormModule, error) {
	rows, err := d.db.QueryContext(ctx, formModulesQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get form modules: %w", err)
	}
	defer rows.Close()

	// Rows arrive grouped by module.
	var modules []dashboard.FormModule
	for rows.Next() {
		var (
			m dashboard.FormModule
			a dashboard.FormAssignment
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Finish, &a.ID, &a.Name, &a.Due, &a.Marks); err != nil {
			return nil, fmt.Errorf("failed to scan form module: %w", err)
		}
		if n := len(modules); n == 0 || modules[n-1].ID != m.ID {
			modules = append(modules, m)
		}
		last := &modules[len(modules)-1]
		last.Assignments = append(last.Assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate form modules: %w", err)
	}

	return modules, nil
}

func (d *Dashboard) AssignmentScoreValid(ctx context.Context, userID, assignmentID int64, score int) (valid, found bool, err error) {
	var marks int
	if err := d.db.QueryRowContext(ctx, assignmentMarksQuery, userID, assignmentID).Scan(&marks); err != nil {
		if pg.IsNotFoundError(err) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to get assignment marks: %w", err)
	}
	return score <= marks, true, nil
}

func (d *Dashboard) UpdateAssignmentScore(ctx context.Context, userID, assignmentID int64, score int) (int64, error) {
	res, err := d.db.ExecContext(ctx, updateScoreQuery, userID, assignmentID, score)
	if err != nil {
		return 0, fmt.Errorf("failed to update assignment score: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}
