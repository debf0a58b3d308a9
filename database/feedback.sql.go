package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func scanSurveyFeedbacks(rows pgx.Rows) ([]SurveyFeedback, error) {
	var items []SurveyFeedback
	for rows.Next() {
		var i SurveyFeedback
		if err := rows.Scan(
			&i.ID,
			&i.SurveyID,
			&i.ReviewerID,
			&i.Status,
			&i.Feedback,
			&i.ReviewedAt,
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

const createSurveyFeedback = `
INSERT INTO survey_feedbacks (survey_id, reviewer_id, feedback)
VALUES ($1, $2, $3)
RETURNING id, survey_id, reviewer_id, status, feedback, reviewed_at, created_at, updated_at
`

type CreateSurveyFeedbackParams struct {
	SurveyID   int64
	ReviewerID int64
	Feedback   string
}

func (q *Queries) CreateSurveyFeedback(ctx context.Context, arg CreateSurveyFeedbackParams) (SurveyFeedback, error) {
	row := q.db.QueryRow(ctx, createSurveyFeedback, arg.SurveyID, arg.ReviewerID, arg.Feedback)
	var i SurveyFeedback
	err := row.Scan(
		&i.ID,
		&i.SurveyID,
		&i.ReviewerID,
		&i.Status,
		&i.Feedback,
		&i.ReviewedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getSurveyFeedback = `
SELECT id, survey_id, reviewer_id, status, feedback, reviewed_at, created_at, updated_at
FROM survey_feedbacks
WHERE id = $1
`

func (q *Queries) GetSurveyFeedback(ctx context.Context, id int64) (SurveyFeedback, error) {
	row := q.db.QueryRow(ctx, getSurveyFeedback, id)
	var i SurveyFeedback
	err := row.Scan(
		&i.ID,
		&i.SurveyID,
		&i.ReviewerID,
		&i.Status,
		&i.Feedback,
		&i.ReviewedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listSurveyFeedbacks = `
SELECT id, survey_id, reviewer_id, status, feedback, reviewed_at, created_at, updated_at
FROM survey_feedbacks
ORDER BY id
`

func (q *Queries) ListSurveyFeedbacks(ctx context.Context) ([]SurveyFeedback, error) {
	rows, err := q.db.Query(ctx, listSurveyFeedbacks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSurveyFeedbacks(rows)
}

const getFeedbackByReviewerID = `
SELECT id, survey_id, reviewer_id, status, feedback, reviewed_at, created_at, updated_at
FROM survey_feedbacks
WHERE reviewer_id = $1
ORDER BY id
`

func (q *Queries) GetFeedbackByReviewerID(ctx context.Context, reviewerID int64) ([]SurveyFeedback, error) {
	rows, err := q.db.Query(ctx, getFeedbackByReviewerID, reviewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSurveyFeedbacks(rows)
}

const getFeedbackBySurveyID = `
SELECT id, survey_id, reviewer_id, status, feedback, reviewed_at, created_at, updated_at
FROM survey_feedbacks
WHERE survey_id = $1
ORDER BY id
`

func (q *Queries) GetFeedbackBySurveyID(ctx context.Context, surveyID int64) ([]SurveyFeedback, error) {
	rows, err := q.db.Query(ctx, getFeedbackBySurveyID, surveyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSurveyFeedbacks(rows)
}

const updateSurveyFeedback = `
UPDATE survey_feedbacks
SET feedback    = COALESCE($2, feedback),
    status      = COALESCE($3::feedback_status, status),
    reviewed_at = CASE WHEN $3::feedback_status IN ('APPROVED', 'REJECTED') THEN now() ELSE reviewed_at END,
    updated_at  = now()
WHERE id = $1
RETURNING id, survey_id, reviewer_id, status, feedback, reviewed_at, created_at, updated_at
`

type UpdateSurveyFeedbackParams struct {
	ID       int64
	Feedback pgtype.Text
	Status   pgtype.Text
}

func (q *Queries) UpdateSurveyFeedback(ctx context.Context, arg UpdateSurveyFeedbackParams) (SurveyFeedback, error) {
	row := q.db.QueryRow(ctx, updateSurveyFeedback, arg.ID, arg.Feedback, arg.Status)
	var i SurveyFeedback
	err := row.Scan(
		&i.ID,
		&i.SurveyID,
		&i.ReviewerID,
		&i.Status,
		&i.Feedback,
		&i.ReviewedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteSurveyFeedback = `
DELETE FROM survey_feedbacks
WHERE id = $1
`

func (q *Queries) DeleteSurveyFeedback(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteSurveyFeedback, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
