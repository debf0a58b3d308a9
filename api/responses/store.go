package responses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/waterlily/backend/api/custom_errors"
	"github.com/waterlily/backend/database"
)

type Store interface {
	CreateResponse(ctx context.Context, body CreateResponseBody) (ResponseDetail, error)
	GetResponse(ctx context.Context, responseID int64) (ResponseDetail, error)
	ListResponses(ctx context.Context) ([]database.Response, error)
	GetResponsesByUserID(ctx context.Context, userID int64) ([]database.Response, error)
	GetResponsesBySurveyID(ctx context.Context, surveyID int64) ([]database.Response, error)
	SubmitResponse(ctx context.Context, responseID int64) (database.Response, error)
	ReviewResponse(ctx context.Context, responseID int64, status database.ReviewStatus) (database.Response, error)
	DeleteResponse(ctx context.Context, responseID int64) error
}

const ForeignKeyViolation = "23503"

type Repository struct {
	queries    *database.Queries
	transactor database.Transactor
}

func NewResponseStore(queries *database.Queries, transactor database.Transactor) *Repository {
	return &Repository{queries: queries, transactor: transactor}
}

func (r *Repository) txQueries(ctx context.Context) *database.Queries {
	if tx, ok := database.TxFromContext(ctx); ok {
		return r.queries.WithTx(tx)
	}
	return r.queries
}

// CreateResponse persists the response row and every submitted answer in a
// single transaction, so a rejected answer leaves nothing behind.
func (r *Repository) CreateResponse(ctx context.Context, body CreateResponseBody) (ResponseDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var detail ResponseDetail

	err := r.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		q := r.txQueries(ctx)

		response, err := q.CreateResponse(ctx, database.CreateResponseParams{
			UserID:   body.UserID,
			SurveyID: body.SurveyID,
		})
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == ForeignKeyViolation {
				return custom_errors.ErrNotFound
			}
			return fmt.Errorf("error creating response: %v", err)
		}

		answers := make([]database.QuestionResponse, 0, len(body.Answers))
		for _, answer := range body.Answers {
			questionResponse, err := q.CreateQuestionResponse(ctx, database.CreateQuestionResponseParams{
				ResponseID: response.ID,
				QuestionID: answer.QuestionID,
				Value:      answer.Value,
			})
			if err != nil {
				var e *pgconn.PgError
				if errors.As(err, &e) && e.Code == ForeignKeyViolation {
					return custom_errors.ErrNotFound
				}
				return fmt.Errorf("error saving answer: %v", err)
			}
			answers = append(answers, questionResponse)
		}

		detail = ResponseDetail{
			Response: response,
			Answers:  answers,
		}
		return nil
	})
	if err != nil {
		return ResponseDetail{}, err
	}

	return detail, nil
}

func (r *Repository) GetResponse(ctx context.Context, responseID int64) (ResponseDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	response, err := r.queries.GetResponse(ctx, responseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ResponseDetail{}, custom_errors.ErrNotFound
		}
		return ResponseDetail{}, fmt.Errorf("error getting response: %v", err)
	}

	answers, err := r.queries.GetQuestionResponsesByResponseID(ctx, responseID)
	if err != nil {
		return ResponseDetail{}, fmt.Errorf("error getting answers: %v", err)
	}

	return ResponseDetail{
		Response: response,
		Answers:  answers,
	}, nil
}

func (r *Repository) ListResponses(ctx context.Context) ([]database.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	items, err := r.queries.ListResponses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing responses: %v", err)
	}

	return items, nil
}

func (r *Repository) GetResponsesByUserID(ctx context.Context, userID int64) ([]database.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	items, err := r.queries.GetResponsesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting responses by user: %v", err)
	}

	return items, nil
}

func (r *Repository) GetResponsesBySurveyID(ctx context.Context, surveyID int64) ([]database.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	items, err := r.queries.GetResponsesBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("error getting responses by survey: %v", err)
	}

	return items, nil
}

// SubmitResponse marks the response COMPLETE and hands it to the review
// queue. A response can only be submitted once.
func (r *Repository) SubmitResponse(ctx context.Context, responseID int64) (database.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	current, err := r.queries.GetResponse(ctx, responseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Response{}, custom_errors.ErrNotFound
		}
		return database.Response{}, fmt.Errorf("error getting response: %v", err)
	}

	if current.ReviewStatus != database.ReviewStatusNotSubmitted {
		return database.Response{}, fmt.Errorf("response already submitted: %w", custom_errors.ErrConflict)
	}

	response, err := r.queries.SubmitResponse(ctx, responseID)
	if err != nil {
		return database.Response{}, fmt.Errorf("error submitting response: %v", err)
	}

	return response, nil
}

func (r *Repository) ReviewResponse(ctx context.Context, responseID int64, status database.ReviewStatus) (database.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	current, err := r.queries.GetResponse(ctx, responseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Response{}, custom_errors.ErrNotFound
		}
		return database.Response{}, fmt.Errorf("error getting response: %v", err)
	}

	if !canTransitionReview(current.ReviewStatus, status) {
		return database.Response{}, fmt.Errorf("cannot move review status from %s to %s: %w",
			current.ReviewStatus, status, custom_errors.ErrValidation)
	}

	response, err := r.queries.UpdateReviewStatus(ctx, database.UpdateReviewStatusParams{
		ID:           responseID,
		ReviewStatus: status,
	})
	if err != nil {
		return database.Response{}, fmt.Errorf("error updating review status: %v", err)
	}

	return response, nil
}

func (r *Repository) DeleteResponse(ctx context.Context, responseID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	affected, err := r.queries.DeleteResponse(ctx, responseID)
	if err != nil {
		return fmt.Errorf("error deleting response: %v", err)
	}

	if affected == 0 {
		return custom_errors.ErrNotFound
	}

	return nil
}
