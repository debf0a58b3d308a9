package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createSurvey = `
INSERT INTO surveys (title, description)
VALUES ($1, $2)
RETURNING id, title, description, status, created_at, updated_at
`

type CreateSurveyParams struct {
	Title       string
	Description pgtype.Text
}

func (q *Queries) CreateSurvey(ctx context.Context, arg CreateSurveyParams) (Survey, error) {
	row := q.db.QueryRow(ctx, createSurvey, arg.Title, arg.Description)
	var i Survey
	err := row.Scan(&i.ID, &i.Title, &i.Description, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getSurvey = `
SELECT id, title, description, status, created_at, updated_at
FROM surveys
WHERE id = $1
`

func (q *Queries) GetSurvey(ctx context.Context, id int64) (Survey, error) {
	row := q.db.QueryRow(ctx, getSurvey, id)
	var i Survey
	err := row.Scan(&i.ID, &i.Title, &i.Description, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getSurveyForUpdate = `
SELECT id, title, description, status, created_at, updated_at
FROM surveys
WHERE id = $1
FOR UPDATE
`

// GetSurveyForUpdate locks the survey row, serializing order-index writers
// for the survey's questions.
func (q *Queries) GetSurveyForUpdate(ctx context.Context, id int64) (Survey, error) {
	row := q.db.QueryRow(ctx, getSurveyForUpdate, id)
	var i Survey
	err := row.Scan(&i.ID, &i.Title, &i.Description, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listSurveys = `
SELECT id, title, description, status, created_at, updated_at
FROM surveys
WHERE ($1::survey_status IS NULL OR status = $1)
ORDER BY id
LIMIT $2 OFFSET $3
`

type ListSurveysParams struct {
	Status pgtype.Text
	Limit  int32
	Offset int32
}

func (q *Queries) ListSurveys(ctx context.Context, arg ListSurveysParams) ([]Survey, error) {
	rows, err := q.db.Query(ctx, listSurveys, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Survey
	for rows.Next() {
		var i Survey
		if err := rows.Scan(&i.ID, &i.Title, &i.Description, &i.Status, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateSurvey = `
UPDATE surveys
SET title       = COALESCE($2, title),
    description = COALESCE($3, description),
    updated_at  = now()
WHERE id = $1
RETURNING id, title, description, status, created_at, updated_at
`

type UpdateSurveyParams struct {
	ID          int64
	Title       pgtype.Text
	Description pgtype.Text
}

func (q *Queries) UpdateSurvey(ctx context.Context, arg UpdateSurveyParams) (Survey, error) {
	row := q.db.QueryRow(ctx, updateSurvey, arg.ID, arg.Title, arg.Description)
	var i Survey
	err := row.Scan(&i.ID, &i.Title, &i.Description, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const updateSurveyStatus = `
UPDATE surveys
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, title, description, status, created_at, updated_at
`

type UpdateSurveyStatusParams struct {
	ID     int64
	Status SurveyStatus
}

func (q *Queries) UpdateSurveyStatus(ctx context.Context, arg UpdateSurveyStatusParams) (Survey, error) {
	row := q.db.QueryRow(ctx, updateSurveyStatus, arg.ID, arg.Status)
	var i Survey
	err := row.Scan(&i.ID, &i.Title, &i.Description, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const deleteSurvey = `
DELETE FROM surveys
WHERE id = $1
`

func (q *Queries) DeleteSurvey(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteSurvey, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getSurveyResponseStats = `
SELECT count(*)                                          AS total_responses,
       count(*) FILTER (WHERE status = 'COMPLETE')       AS complete_responses
FROM responses
WHERE survey_id = $1
`

type GetSurveyResponseStatsRow struct {
	TotalResponses    int64
	CompleteResponses int64
}

func (q *Queries) GetSurveyResponseStats(ctx context.Context, surveyID int64) (GetSurveyResponseStatsRow, error) {
	row := q.db.QueryRow(ctx, getSurveyResponseStats, surveyID)
	var i GetSurveyResponseStatsRow
	err := row.Scan(&i.TotalResponses, &i.CompleteResponses)
	return i, err
}
