package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func scanResponses(rows pgx.Rows) ([]Response, error) {
	var items []Response
	for rows.Next() {
		var i Response
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.SurveyID,
			&i.Status,
			&i.ReviewStatus,
			&i.SubmittedAt,
			&i.LastReviewedAt,
			&i.ReviewCount,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createResponse = `
INSERT INTO responses (user_id, survey_id)
VALUES ($1, $2)
RETURNING id, user_id, survey_id, status, review_status, submitted_at, last_reviewed_at, review_count, created_at, updated_at
`

type CreateResponseParams struct {
	UserID   int64
	SurveyID int64
}

func (q *Queries) CreateResponse(ctx context.Context, arg CreateResponseParams) (Response, error) {
	row := q.db.QueryRow(ctx, createResponse, arg.UserID, arg.SurveyID)
	var i Response
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.SurveyID,
		&i.Status,
		&i.ReviewStatus,
		&i.SubmittedAt,
		&i.LastReviewedAt,
		&i.ReviewCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getResponse = `
SELECT id, user_id, survey_id, status, review_status, submitted_at, last_reviewed_at, review_count, created_at, updated_at
FROM responses
WHERE id = $1
`

func (q *Queries) GetResponse(ctx context.Context, id int64) (Response, error) {
	row := q.db.QueryRow(ctx, getResponse, id)
	var i Response
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.SurveyID,
		&i.Status,
		&i.ReviewStatus,
		&i.SubmittedAt,
		&i.LastReviewedAt,
		&i.ReviewCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listResponses = `
SELECT id, user_id, survey_id, status, review_status, submitted_at, last_reviewed_at, review_count, created_at, updated_at
FROM responses
ORDER BY id
`

func (q *Queries) ListResponses(ctx context.Context) ([]Response, error) {
	rows, err := q.db.Query(ctx, listResponses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResponses(rows)
}

const getResponsesByUserID = `
SELECT id, user_id, survey_id, status, review_status, submitted_at, last_reviewed_at, review_count, created_at, updated_at
FROM responses
WHERE user_id = $1
ORDER BY id
`

func (q *Queries) GetResponsesByUserID(ctx context.Context, userID int64) ([]Response, error) {
	rows, err := q.db.Query(ctx, getResponsesByUserID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResponses(rows)
}

const getResponsesBySurveyID = `
SELECT id, user_id, survey_id, status, review_status, submitted_at, last_reviewed_at, review_count, created_at, updated_at
FROM responses
WHERE survey_id = $1
ORDER BY id
`

func (q *Queries) GetResponsesBySurveyID(ctx context.Context, surveyID int64) ([]Response, error) {
	rows, err := q.db.Query(ctx, getResponsesBySurveyID, surveyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResponses(rows)
}

const submitResponse = `
UPDATE responses
SET status        = 'COMPLETE',
    review_status = 'PENDING_REVIEW',
    submitted_at  = now(),
    updated_at    = now()
WHERE id = $1
RETURNING id, user_id, survey_id, status, review_status, submitted_at, last_reviewed_at, review_count, created_at, updated_at
`

func (q *Queries) SubmitResponse(ctx context.Context, id int64) (Response, error) {
	row := q.db.QueryRow(ctx, submitResponse, id)
	var i Response
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.SurveyID,
		&i.Status,
		&i.ReviewStatus,
		&i.SubmittedAt,
		&i.LastReviewedAt,
		&i.ReviewCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateReviewStatus = `
UPDATE responses
SET review_status    = $2,
    review_count     = review_count + 1,
    last_reviewed_at = now(),
    updated_at       = now()
WHERE id = $1
RETURNING id, user_id, survey_id, status, review_status, submitted_at, last_reviewed_at, review_count, created_at, updated_at
`

type UpdateReviewStatusParams struct {
	ID           int64
	ReviewStatus ReviewStatus
}

func (q *Queries) UpdateReviewStatus(ctx context.Context, arg UpdateReviewStatusParams) (Response, error) {
	row := q.db.QueryRow(ctx, updateReviewStatus, arg.ID, arg.ReviewStatus)
	var i Response
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.SurveyID,
		&i.Status,
		&i.ReviewStatus,
		&i.SubmittedAt,
		&i.LastReviewedAt,
		&i.ReviewCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteResponse = `
DELETE FROM responses
WHERE id = $1
`

func (q *Queries) DeleteResponse(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteResponse, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createQuestionResponse = `
INSERT INTO question_responses (response_id, question_id, value)
VALUES ($1, $2, $3)
RETURNING id, response_id, question_id, value, created_at, updated_at
`

type CreateQuestionResponseParams struct {
	ResponseID int64
	QuestionID int64
	Value      []byte
}

func (q *Queries) CreateQuestionResponse(ctx context.Context, arg CreateQuestionResponseParams) (QuestionResponse, error) {
	row := q.db.QueryRow(ctx, createQuestionResponse, arg.ResponseID, arg.QuestionID, arg.Value)
	var i QuestionResponse
	err := row.Scan(&i.ID, &i.ResponseID, &i.QuestionID, &i.Value, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getQuestionResponsesByResponseID = `
SELECT id, response_id, question_id, value, created_at, updated_at
FROM question_responses
WHERE response_id = $1
ORDER BY id
`

func (q *Queries) GetQuestionResponsesByResponseID(ctx context.Context, responseID int64) ([]QuestionResponse, error) {
	rows, err := q.db.Query(ctx, getQuestionResponsesByResponseID, responseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []QuestionResponse
	for rows.Next() {
		var i QuestionResponse
		if err := rows.Scan(&i.ID, &i.ResponseID, &i.QuestionID, &i.Value, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
