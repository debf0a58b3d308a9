package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/waterlily/backend/api/custom_errors"
	"github.com/waterlily/backend/database"
)

type Store interface {
	CreateFeedback(ctx context.Context, body CreateFeedbackBody) (database.SurveyFeedback, error)
	GetFeedback(ctx context.Context, feedbackID int64) (database.SurveyFeedback, error)
	ListFeedback(ctx context.Context) ([]database.SurveyFeedback, error)
	GetFeedbackByReviewerID(ctx context.Context, reviewerID int64) ([]database.SurveyFeedback, error)
	GetFeedbackBySurveyID(ctx context.Context, surveyID int64) ([]database.SurveyFeedback, error)
	UpdateFeedback(ctx context.Context, params UpdateFeedbackParams) (database.SurveyFeedback, error)
	DeleteFeedback(ctx context.Context, feedbackID int64) error
}

const ForeignKeyViolation = "23503"

type Repository struct {
	queries *database.Queries
}

func NewFeedbackStore(queries *database.Queries) *Repository {
	return &Repository{queries: queries}
}

func (r *Repository) CreateFeedback(ctx context.Context, body CreateFeedbackBody) (database.SurveyFeedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	item, err := r.queries.CreateSurveyFeedback(ctx, database.CreateSurveyFeedbackParams{
		SurveyID:   body.SurveyID,
		ReviewerID: body.ReviewerID,
		Feedback:   body.Feedback,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == ForeignKeyViolation {
			return database.SurveyFeedback{}, custom_errors.ErrNotFound
		}
		return database.SurveyFeedback{}, fmt.Errorf("error creating feedback: %v", err)
	}

	return item, nil
}

func (r *Repository) GetFeedback(ctx context.Context, feedbackID int64) (database.SurveyFeedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	item, err := r.queries.GetSurveyFeedback(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.SurveyFeedback{}, custom_errors.ErrNotFound
		}
		return database.SurveyFeedback{}, fmt.Errorf("error getting feedback: %v", err)
	}

	return item, nil
}

func (r *Repository) ListFeedback(ctx context.Context) ([]database.SurveyFeedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	items, err := r.queries.ListSurveyFeedbacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing feedback: %v", err)
	}

	return items, nil
}

func (r *Repository) GetFeedbackByReviewerID(ctx context.Context, reviewerID int64) ([]database.SurveyFeedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	items, err := r.queries.GetFeedbackByReviewerID(ctx, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("error getting feedback by reviewer: %v", err)
	}

	return items, nil
}

func (r *Repository) GetFeedbackBySurveyID(ctx context.Context, surveyID int64) ([]database.SurveyFeedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	items, err := r.queries.GetFeedbackBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("error getting feedback by survey: %v", err)
	}

	return items, nil
}

func (r *Repository) UpdateFeedback(ctx context.Context, params UpdateFeedbackParams) (database.SurveyFeedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updateParams := database.UpdateSurveyFeedbackParams{
		ID: params.ID,
	}

	if params.Feedback != nil {
		updateParams.Feedback = pgtype.Text{String: *params.Feedback, Valid: true}
	}

	if params.Status != nil {
		updateParams.Status = pgtype.Text{String: *params.Status, Valid: true}
	}

	item, err := r.queries.UpdateSurveyFeedback(ctx, updateParams)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.SurveyFeedback{}, custom_errors.ErrNotFound
		}
		return database.SurveyFeedback{}, fmt.Errorf("error updating feedback: %v", err)
	}

	return item, nil
}

func (r *Repository) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	affected, err := r.queries.DeleteSurveyFeedback(ctx, feedbackID)
	if err != nil {
		return fmt.Errorf("error deleting feedback: %v", err)
	}

	if affected == 0 {
		return custom_errors.ErrNotFound
	}

	return nil
}
