package questions

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
	CreateQuestion(ctx context.Context, params CreateQuestionParams) (database.Question, error)
	GetQuestion(ctx context.Context, questionID int64) (database.Question, error)
	GetQuestionsBySurveyID(ctx context.Context, surveyID int64) ([]database.Question, error)
	UpdateQuestion(ctx context.Context, params UpdateQuestionParams) (database.Question, error)
	DeleteQuestion(ctx context.Context, questionID int64) error
	ReorderQuestions(ctx context.Context, surveyID int64, questionIDs []int64) error
}

const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

type Repository struct {
	queries    *database.Queries
	transactor database.Transactor
}

func NewQuestionStore(queries *database.Queries, transactor database.Transactor) *Repository {
	return &Repository{queries: queries, transactor: transactor}
}

// txQueries binds the query layer to the transaction WithTransaction put in
// the context.
func (r *Repository) txQueries(ctx context.Context) *database.Queries {
	if tx, ok := database.TxFromContext(ctx); ok {
		return r.queries.WithTx(tx)
	}
	return r.queries
}

// CreateQuestion appends a question at the end of the survey's sequence.
// The order value is computed under a survey row lock so two concurrent
// appends cannot take the same slot; if the unique backstop still trips,
// the insert is retried once with a recomputed order before the conflict
// surfaces.
func (r *Repository) CreateQuestion(ctx context.Context, params CreateQuestionParams) (database.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	question, err := r.createQuestionOnce(ctx, params)
	if errors.Is(err, custom_errors.ErrConflict) {
		question, err = r.createQuestionOnce(ctx, params)
	}

	return question, err
}

func (r *Repository) createQuestionOnce(ctx context.Context, params CreateQuestionParams) (database.Question, error) {
	var question database.Question

	err := r.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		q := r.txQueries(ctx)

		if _, err := q.GetSurveyForUpdate(ctx, params.SurveyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return custom_errors.ErrNotFound
			}
			return fmt.Errorf("error locking survey: %v", err)
		}

		maxOrder, err := q.GetMaxOrderIndex(ctx, params.SurveyID)
		if err != nil {
			return fmt.Errorf("error reading max order: %v", err)
		}

		category := database.QuestionCategory(params.Category)
		if params.Category == "" {
			category = database.QuestionCategoryOther
		}

		created, err := q.CreateQuestion(ctx, database.CreateQuestionParams{
			SurveyID:    params.SurveyID,
			Title:       params.Title,
			Description: pgtype.Text{String: params.Description, Valid: params.Description != ""},
			Type:        database.QuestionType(params.Type),
			Category:    category,
			Required:    params.Required,
			OrderIndex:  nextOrderIndex(maxOrder),
			Options:     params.Options,
		})
		if err != nil {
			return fmt.Errorf("error creating question: %v", err)
		}

		question = created
		return nil
	})
	if err != nil {
		return database.Question{}, mapPgError(err)
	}

	return question, nil
}

func (r *Repository) GetQuestion(ctx context.Context, questionID int64) (database.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	question, err := r.queries.GetQuestion(ctx, questionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Question{}, custom_errors.ErrNotFound
		}
		return database.Question{}, fmt.Errorf("error getting question: %v", err)
	}

	return question, nil
}

func (r *Repository) GetQuestionsBySurveyID(ctx context.Context, surveyID int64) ([]database.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.queries.GetSurvey(ctx, surveyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrNotFound
		}
		return nil, fmt.Errorf("error getting survey: %v", err)
	}

	questions, err := r.queries.GetQuestionsBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("error getting questions: %v", err)
	}

	return questions, nil
}

func (r *Repository) UpdateQuestion(ctx context.Context, params UpdateQuestionParams) (database.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updateParams := database.UpdateQuestionParams{
		ID:      params.ID,
		Options: params.Options,
	}

	if params.Title != nil {
		updateParams.Title = pgtype.Text{String: *params.Title, Valid: true}
	}

	if params.Description != nil {
		updateParams.Description = pgtype.Text{String: *params.Description, Valid: true}
	}

	if params.Type != nil {
		updateParams.Type = pgtype.Text{String: *params.Type, Valid: true}
	}

	if params.Category != nil {
		updateParams.Category = pgtype.Text{String: *params.Category, Valid: true}
	}

	if params.Required != nil {
		updateParams.Required = pgtype.Bool{Bool: *params.Required, Valid: true}
	}

	question, err := r.queries.UpdateQuestion(ctx, updateParams)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Question{}, custom_errors.ErrNotFound
		}
		return database.Question{}, fmt.Errorf("error updating question: %v", err)
	}

	return question, nil
}

func (r *Repository) DeleteQuestion(ctx context.Context, questionID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	affected, err := r.queries.DeleteQuestion(ctx, questionID)
	if err != nil {
		return fmt.Errorf("error deleting question: %v", err)
	}

	if affected == 0 {
		return custom_errors.ErrNotFound
	}

	return nil
}

// ReorderQuestions reassigns order values 1..N following the submitted id
// list. The whole batch runs in one transaction behind the survey row lock:
// either every question gets its new position or none do, and a concurrent
// append cannot read a half-updated row set.
func (r *Repository) ReorderQuestions(ctx context.Context, surveyID int64, questionIDs []int64) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := r.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		q := r.txQueries(ctx)

		if _, err := q.GetSurveyForUpdate(ctx, surveyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return custom_errors.ErrNotFound
			}
			return fmt.Errorf("error locking survey: %v", err)
		}

		current, err := q.GetQuestionIDsBySurveyID(ctx, surveyID)
		if err != nil {
			return fmt.Errorf("error getting question ids: %v", err)
		}

		if err := validateReorderSet(current, questionIDs); err != nil {
			return err
		}

		for position, questionID := range questionIDs {
			affected, err := q.UpdateQuestionOrder(ctx, database.UpdateQuestionOrderParams{
				ID:         questionID,
				OrderIndex: int32(position + 1),
			})
			if err != nil {
				return fmt.Errorf("error updating question order: %v", err)
			}
			if affected == 0 {
				return custom_errors.ErrNotFound
			}
		}

		return nil
	})

	return mapPgError(err)
}

// mapPgError folds store-level failures into the package error taxonomy.
// Commit-time failures of the deferred unique constraint surface here as
// ErrConflict rather than inside the transaction closure.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case UniqueViolation:
			return custom_errors.ErrConflict
		case ForeignKeyViolation:
			return custom_errors.ErrNotFound
		}
	}

	return err
}
