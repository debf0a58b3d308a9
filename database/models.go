package database

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type SurveyStatus string

const (
	SurveyStatusDraft     SurveyStatus = "DRAFT"
	SurveyStatusPublished SurveyStatus = "PUBLISHED"
	SurveyStatusArchived  SurveyStatus = "ARCHIVED"
)

type QuestionType string

const (
	QuestionTypeText        QuestionType = "TEXT"
	QuestionTypeNumber      QuestionType = "NUMBER"
	QuestionTypeDate        QuestionType = "DATE"
	QuestionTypeSelect      QuestionType = "SELECT"
	QuestionTypeMultiselect QuestionType = "MULTISELECT"
	QuestionTypeBoolean     QuestionType = "BOOLEAN"
)

type QuestionCategory string

const (
	QuestionCategoryDemographic QuestionCategory = "DEMOGRAPHIC"
	QuestionCategoryHealth      QuestionCategory = "HEALTH"
	QuestionCategoryFinancial   QuestionCategory = "FINANCIAL"
	QuestionCategoryOther       QuestionCategory = "OTHER"
)

type ResponseStatus string

const (
	ResponseStatusComplete   ResponseStatus = "COMPLETE"
	ResponseStatusIncomplete ResponseStatus = "INCOMPLETE"
)

type ReviewStatus string

const (
	ReviewStatusNotSubmitted  ReviewStatus = "NOT_SUBMITTED"
	ReviewStatusPendingReview ReviewStatus = "PENDING_REVIEW"
	ReviewStatusInReview      ReviewStatus = "IN_REVIEW"
	ReviewStatusReviewed      ReviewStatus = "REVIEWED"
)

type FeedbackStatus string

const (
	FeedbackStatusPending  FeedbackStatus = "PENDING"
	FeedbackStatusInReview FeedbackStatus = "IN_REVIEW"
	FeedbackStatusApproved FeedbackStatus = "APPROVED"
	FeedbackStatusRejected FeedbackStatus = "REJECTED"
)

type User struct {
	ID        int64              `json:"id"`
	Email     string             `json:"email"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Survey struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description pgtype.Text        `json:"description"`
	Status      SurveyStatus       `json:"status"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type Question struct {
	ID          int64              `json:"id"`
	SurveyID    int64              `json:"survey_id"`
	Title       string             `json:"title"`
	Description pgtype.Text        `json:"description"`
	Type        QuestionType       `json:"type"`
	Category    QuestionCategory   `json:"category"`
	Required    bool               `json:"required"`
	OrderIndex  int32              `json:"order_index"`
	Options     []byte             `json:"options"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type Response struct {
	ID             int64              `json:"id"`
	UserID         int64              `json:"user_id"`
	SurveyID       int64              `json:"survey_id"`
	Status         ResponseStatus     `json:"status"`
	ReviewStatus   ReviewStatus       `json:"review_status"`
	SubmittedAt    pgtype.Timestamptz `json:"submitted_at"`
	LastReviewedAt pgtype.Timestamptz `json:"last_reviewed_at"`
	ReviewCount    int32              `json:"review_count"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type QuestionResponse struct {
	ID         int64              `json:"id"`
	ResponseID int64              `json:"response_id"`
	QuestionID int64              `json:"question_id"`
	Value      []byte             `json:"value"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type SurveyFeedback struct {
	ID         int64              `json:"id"`
	SurveyID   int64              `json:"survey_id"`
	ReviewerID int64              `json:"reviewer_id"`
	Status     FeedbackStatus     `json:"status"`
	Feedback   string             `json:"feedback"`
	ReviewedAt pgtype.Timestamptz `json:"reviewed_at"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}
