package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/progressdash/pkg/logger"
	"github.com/dmitrymomot/progressdash/pkg/status"
	"github.com/dmitrymomot/progressdash/pkg/validator"
)

// Form field names of the score update action.
const (
	FieldAssignment = "assignment"
	FieldScore      = "score"
)

// Service assembles the dashboard payload and applies score updates.
type Service struct {
	storage Storage
	loc     *time.Location
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLocation sets the timezone of the human readable due date. Default UTC.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a dashboard service on top of storage.
func NewService(storage Storage, opts ...ServiceOption) *Service {
	s := &Service{
		storage: storage,
		loc:     time.UTC,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load collects everything the dashboard shows for the user.
//
// A course without modules, assignments or duration is a data inconsistency and is
// reported as an error wrapping ErrLoadFailed together with the storage cause.
func (s *Service) Load(ctx context.Context, userID int64, userName string) (*Payload, error) {
	p := &Payload{
		User: User{Name: userName},
		Graph: Graph{
			ModuleScores:             [][]ModuleScore{},
			YearAverages:             []Average{},
			ModuleCompletionProgress: []ModuleProgress{},
		},
		Form: []FormModuleView{},
	}

	next, err := s.storage.NextAssignmentDue(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	if next != nil {
		p.Graph.NextAssignmentDue = &NextAssignmentView{
			Name:   next.Name,
			Due:    FormatDue(next.Due, s.loc),
			Module: next.Module,
		}
	}

	random, err := s.storage.RandomModule(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	p.Graph.RandomModuleScores = random

	years, err := s.storage.CourseDuration(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}

	for year := 1; year <= years; year++ {
		scores, err := s.storage.YearModuleScores(ctx, userID, year)
		if err != nil {
			return nil, errors.Join(ErrLoadFailed, err)
		}
		if scores == nil {
			scores = []ModuleScore{}
		}
		p.Graph.ModuleScores = append(p.Graph.ModuleScores, scores)

		avg, err := s.storage.YearAverage(ctx, userID, year)
		if err != nil {
			return nil, errors.Join(ErrLoadFailed, err)
		}
		p.Graph.YearAverages = append(p.Graph.YearAverages, avg)
	}

	progress, err := s.storage.ModuleCompletion(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	if len(progress) == 0 {
		return nil, errors.Join(ErrLoadFailed, ErrNoModules)
	}
	p.Graph.ModuleCompletionProgress = progress

	modules, err := s.storage.FormModules(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	if len(modules) == 0 {
		return nil, errors.Join(ErrLoadFailed, ErrNoModules)
	}
	for _, m := range modules {
		view := FormModuleView{
			Identifier:  m.ID,
			Name:        m.Name,
			Finish:      m.Finish.Unix(),
			Assignments: make([]FormAssignmentView, 0, len(m.Assignments)),
		}
		for _, a := range m.Assignments {
			view.Assignments = append(view.Assignments, FormAssignmentView{
				Identifier: a.ID,
				Name:       a.Name,
				Due:        a.Due.Unix(),
				Marks:      a.Marks,
			})
		}
		p.Form = append(p.Form, view)
	}

	return p, nil
}

// UpdateScore validates and stores a new assignment score.
//
// A nil or blank field is reported as empty; a value that is not an identifier or a
// score, names an assignment outside the user's course, or exceeds the assignment's
// marks is reported as invalid. Storage failures are returned as errors wrapping
// ErrUpdateFailed.
func (s *Service) UpdateScore(ctx context.Context, userID int64, assignment, score *string) (status.Code, *UpdateResult, error) {
	if assignment == nil || validator.Apply(validator.Required(FieldAssignment, *assignment)) != nil {
		return status.AssignmentIdentifierEmpty, nil, nil
	}
	if score == nil || validator.Apply(validator.Required(FieldScore, *score)) != nil {
		return status.AssignmentScoreEmpty, nil, nil
	}
	if err := validator.Apply(validator.PositiveInteger(FieldAssignment, *assignment)); err != nil {
		return status.AssignmentIdentifierInvalid, nil, nil
	}
	if err := validator.Apply(validator.NonNegativeInteger(FieldScore, *score)); err != nil {
		return status.AssignmentScoreInvalid, nil, nil
	}

	assignmentID, _ := strconv.ParseInt(*assignment, 10, 64)
	points, err := strconv.Atoi(*score)
	if err != nil {
		return status.AssignmentScoreInvalid, nil, nil
	}

	valid, found, err := s.storage.AssignmentScoreValid(ctx, userID, assignmentID, points)
	if err != nil {
		return status.Error, nil, errors.Join(ErrUpdateFailed, err)
	}
	if !found {
		return status.AssignmentIdentifierInvalid, nil, nil
	}
	if !valid {
		return status.AssignmentScoreInvalid, nil, nil
	}

	rows, err := s.storage.UpdateAssignmentScore(ctx, userID, assignmentID, points)
	if err != nil {
		return status.Error, nil, errors.Join(ErrUpdateFailed, err)
	}

	s.logger.InfoContext(ctx, "assignment score updated",
		logger.Component("dashboard"),
		logger.UserID(userID),
		slog.Int64("assignment_id", assignmentID),
		slog.Int("score", points),
	)

	return status.Success, &UpdateResult{RowsAffected: rows}, nil
}
