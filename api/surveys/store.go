package surveys

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/waterlily/backend/api/custom_errors"
	"github.com/waterlily/backend/database"
)

type Store interface {
	CreateSurvey(ctx context.Context, body CreateSurveyBody) (database.Survey, error)
	GetSurvey(ctx context.Context, surveyID int64) (database.Survey, error)
	GetSurveyWithQuestions(ctx context.Context, surveyID int64) (SurveyDetail, error)
	ListSurveys(ctx context.Context, params ListSurveysParams) ([]database.Survey, error)
	UpdateSurvey(ctx context.Context, params UpdateSurveyParams) (database.Survey, error)
	PublishSurvey(ctx context.Context, surveyID int64) (database.Survey, error)
	ArchiveSurvey(ctx context.Context, surveyID int64) (database.Survey, error)
	DeleteSurvey(ctx context.Context, surveyID int64) error
	GetSurveyStats(ctx context.Context, surveyID int64) (SurveyStats, error)
}

type Repository struct {
	queries *database.Queries
}

func NewSurveyStore(queries *database.Queries) *Repository {
	return &Repository{queries: queries}
}

func (r *Repository) CreateSurvey(ctx context.Context, body CreateSurveyBody) (database.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	survey, err := r.queries.CreateSurvey(ctx, database.CreateSurveyParams{
		Title:       body.Title,
		Description: pgtype.Text{String: body.Description, Valid: body.Description != ""},
	})
	if err != nil {
		return database.Survey{}, fmt.Errorf("error creating survey: %v", err)
	}

	return survey, nil
}

func (r *Repository) GetSurvey(ctx context.Context, surveyID int64) (database.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	survey, err := r.queries.GetSurvey(ctx, surveyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Survey{}, custom_errors.ErrNotFound
		}
		return database.Survey{}, fmt.Errorf("error getting survey: %v", err)
	}

	return survey, nil
}

func (r *Repository) GetSurveyWithQuestions(ctx context.Context, surveyID int64) (SurveyDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	survey, err := r.queries.GetSurvey(ctx, surveyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SurveyDetail{}, custom_errors.ErrNotFound
		}
		return SurveyDetail{}, fmt.Errorf("error getting survey: %v", err)
	}

	questions, err := r.queries.GetQuestionsBySurveyID(ctx, surveyID)
	if err != nil {
		return SurveyDetail{}, fmt.Errorf("error getting questions: %v", err)
	}

	return SurveyDetail{
		Survey:    survey,
		Questions: questions,
	}, nil
}

func (r *Repository) ListSurveys(ctx context.Context, params ListSurveysParams) ([]database.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := pgtype.Text{}
	if params.Status != "" {
		status = pgtype.Text{String: params.Status, Valid: true}
	}

	surveys, err := r.queries.ListSurveys(ctx, database.ListSurveysParams{
		Status: status,
		Limit:  int32(params.Limit),
		Offset: int32(params.Offset),
	})
	if err != nil {
		return nil, fmt.Errorf("error listing surveys: %v", err)
	}

	return surveys, nil
}

func (r *Repository) UpdateSurvey(ctx context.Context, params UpdateSurveyParams) (database.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updateParams := database.UpdateSurveyParams{
		ID: params.ID,
	}

	if params.Title != nil {
		updateParams.Title = pgtype.Text{String: *params.Title, Valid: true}
	}

	if params.Description != nil {
		updateParams.Description = pgtype.Text{String: *params.Description, Valid: true}
	}

	survey, err := r.queries.UpdateSurvey(ctx, updateParams)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Survey{}, custom_errors.ErrNotFound
		}
		return database.Survey{}, fmt.Errorf("error updating survey: %v", err)
	}

	return survey, nil
}

func (r *Repository) PublishSurvey(ctx context.Context, surveyID int64) (database.Survey, error) {
	return r.updateStatus(ctx, surveyID, database.SurveyStatusPublished)
}

func (r *Repository) ArchiveSurvey(ctx context.Context, surveyID int64) (database.Survey, error) {
	return r.updateStatus(ctx, surveyID, database.SurveyStatusArchived)
}

func (r *Repository) updateStatus(ctx context.Context, surveyID int64, status database.SurveyStatus) (database.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	survey, err := r.queries.UpdateSurveyStatus(ctx, database.UpdateSurveyStatusParams{
		ID:     surveyID,
		Status: status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Survey{}, custom_errors.ErrNotFound
		}
		return database.Survey{}, fmt.Errorf("error updating survey status: %v", err)
	}

	return survey, nil
}

func (r *Repository) DeleteSurvey(ctx context.Context, surveyID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	affected, err := r.queries.DeleteSurvey(ctx, surveyID)
	if err != nil {
		return fmt.Errorf("error deleting survey: %v", err)
	}

	if affected == 0 {
		return custom_errors.ErrNotFound
	}

	return nil
}

func (r *Repository) GetSurveyStats(ctx context.Context, surveyID int64) (SurveyStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.queries.GetSurvey(ctx, surveyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SurveyStats{}, custom_errors.ErrNotFound
		}
		return SurveyStats{}, fmt.Errorf("error getting survey: %v", err)
	}

	row, err := r.queries.GetSurveyResponseStats(ctx, surveyID)
	if err != nil {
		return SurveyStats{}, fmt.Errorf("error getting survey stats: %v", err)
	}

	completionRate := decimal.Zero
	if row.TotalResponses > 0 {
		completionRate = decimal.NewFromInt(row.CompleteResponses).
			Div(decimal.NewFromInt(row.TotalResponses)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return SurveyStats{
		TotalResponses:    row.TotalResponses,
		CompleteResponses: row.CompleteResponses,
		CompletionRate:    completionRate,
	}, nil
}
