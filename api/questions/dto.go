package questions

import (
	"encoding/json"
)

// Request bodies

type CreateQuestionBody struct {
	SurveyID    int64           `json:"survey_id" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Type        string          `json:"type" validate:"required,oneof=TEXT NUMBER DATE SELECT MULTISELECT BOOLEAN"`
	Category    string          `json:"category" validate:"omitempty,oneof=DEMOGRAPHIC HEALTH FINANCIAL OTHER"`
	Required    *bool           `json:"required"`
	Options     json.RawMessage `json:"options"`
}

type UpdateQuestionBody struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Type        *string         `json:"type" validate:"omitempty,oneof=TEXT NUMBER DATE SELECT MULTISELECT BOOLEAN"`
	Category    *string         `json:"category" validate:"omitempty,oneof=DEMOGRAPHIC HEALTH FINANCIAL OTHER"`
	Required    *bool           `json:"required"`
	Options     json.RawMessage `json:"options"`
}

type ReorderQuestionsBody struct {
	QuestionIDs []int64 `json:"question_ids" validate:"required,min=1"`
}

// Parameter structs

type CreateQuestionParams struct {
	SurveyID    int64
	Title       string
	Description string
	Type        string
	Category    string
	Required    bool
	Options     []byte
}

type UpdateQuestionParams struct {
	ID          int64
	Title       *string
	Description *string
	Type        *string
	Category    *string
	Required    *bool
	Options     []byte
}
