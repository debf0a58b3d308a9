package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createQuestion = `
INSERT INTO questions (survey_id, title, description, type, category, required, order_index, options)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, survey_id, title, description, type, category, required, order_index, options, created_at, updated_at
`

type CreateQuestionParams struct {
	SurveyID    int64
	Title       string
	Description pgtype.Text
	Type        QuestionType
	Category    QuestionCategory
	Required    bool
	OrderIndex  int32
	Options     []byte
}

func (q *Queries) CreateQuestion(ctx context.Context, arg CreateQuestionParams) (Question, error) {
	row := q.db.QueryRow(ctx, createQuestion,
		arg.SurveyID,
		arg.Title,
		arg.Description,
		arg.Type,
		arg.Category,
		arg.Required,
		arg.OrderIndex,
		arg.Options,
	)
	var i Question
	err := row.Scan(
		&i.ID,
		&i.SurveyID,
		&i.Title,
		&i.Description,
		&i.Type,
		&i.Category,
		&i.Required,
		&i.OrderIndex,
		&i.Options,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getQuestion = `
SELECT id, survey_id, title, description, type, category, required, order_index, options, created_at, updated_at
FROM questions
WHERE id = $1
`

func (q *Queries) GetQuestion(ctx context.Context, id int64) (Question, error) {
	row := q.db.QueryRow(ctx, getQuestion, id)
	var i Question
	err := row.Scan(
		&i.ID,
		&i.SurveyID,
		&i.Title,
		&i.Description,
		&i.Type,
		&i.Category,
		&i.Required,
		&i.OrderIndex,
		&i.Options,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getQuestionsBySurveyID = `
SELECT id, survey_id, title, description, type, category, required, order_index, options, created_at, updated_at
FROM questions
WHERE survey_id = $1
ORDER BY order_index, created_at, id
`

// GetQuestionsBySurveyID returns the survey's questions in display order.
// The created_at and id tie-breaks keep the listing deterministic even if
// two rows ever share an order_index.
func (q *Queries) GetQuestionsBySurveyID(ctx context.Context, surveyID int64) ([]Question, error) {
	rows, err := q.db.Query(ctx, getQuestionsBySurveyID, surveyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Question
	for rows.Next() {
		var i Question
		if err := rows.Scan(
			&i.ID,
			&i.SurveyID,
			&i.Title,
			&i.Description,
			&i.Type,
			&i.Category,
			&i.Required,
			&i.OrderIndex,
			&i.Options,
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

const getQuestionIDsBySurveyID = `
SELECT id
FROM questions
WHERE survey_id = $1
ORDER BY id
`

func (q *Queries) GetQuestionIDsBySurveyID(ctx context.Context, surveyID int64) ([]int64, error) {
	rows, err := q.db.Query(ctx, getQuestionIDsBySurveyID, surveyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getMaxOrderIndex = `
SELECT COALESCE(MAX(order_index), 0)
FROM questions
WHERE survey_id = $1
`

func (q *Queries) GetMaxOrderIndex(ctx context.Context, surveyID int64) (int32, error) {
	row := q.db.QueryRow(ctx, getMaxOrderIndex, surveyID)
	var maxOrder int32
	err := row.Scan(&maxOrder)
	return maxOrder, err
}

const updateQuestion = `
UPDATE questions
SET title       = COALESCE($2, title),
    description = COALESCE($3, description),
    type        = COALESCE($4::question_type, type),
    category    = COALESCE($5::question_category, category),
    required    = COALESCE($6, required),
    options     = COALESCE($7, options),
    updated_at  = now()
WHERE id = $1
RETURNING id, survey_id, title, description, type, category, required, order_index, options, created_at, updated_at
`

type UpdateQuestionParams struct {
	ID          int64
	Title       pgtype.Text
	Description pgtype.Text
	Type        pgtype.Text
	Category    pgtype.Text
	Required    pgtype.Bool
	Options     []byte
}

func (q *Queries) UpdateQuestion(ctx context.Context, arg UpdateQuestionParams) (Question, error) {
	row := q.db.QueryRow(ctx, updateQuestion,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.Type,
		arg.Category,
		arg.Required,
		arg.Options,
	)
	var i Question
	err := row.Scan(
		&i.ID,
		&i.SurveyID,
		&i.Title,
		&i.Description,
		&i.Type,
		&i.Category,
		&i.Required,
		&i.OrderIndex,
		&i.Options,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateQuestionOrder = `
UPDATE questions
SET order_index = $2, updated_at = now()
WHERE id = $1
`

type UpdateQuestionOrderParams struct {
	ID         int64
	OrderIndex int32
}

func (q *Queries) UpdateQuestionOrder(ctx context.Context, arg UpdateQuestionOrderParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateQuestionOrder, arg.ID, arg.OrderIndex)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteQuestion = `
DELETE FROM questions
WHERE id = $1
`

// DeleteQuestion removes the row without renumbering the survivors, so
// order_index values stay strictly ordered but may become non-contiguous.
func (q *Queries) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
