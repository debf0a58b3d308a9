package responses

import (
	"encoding/json"

	"github.com/waterlily/backend/database"
)

// Request bodies

type AnswerBody struct {
	QuestionID int64           `json:"question_id" validate:"required"`
	Value      json.RawMessage `json:"value" validate:"required"`
}

type CreateResponseBody struct {
	UserID   int64        `json:"user_id" validate:"required"`
	SurveyID int64        `json:"survey_id" validate:"required"`
	Answers  []AnswerBody `json:"answers" validate:"dive"`
}

type ReviewResponseBody struct {
	ReviewStatus string `json:"review_status" validate:"required,oneof=PENDING_REVIEW IN_REVIEW REVIEWED"`
}

// Response structs

type ResponseDetail struct {
	Response database.Response           `json:"response"`
	Answers  []database.QuestionResponse `json:"answers"`
}
