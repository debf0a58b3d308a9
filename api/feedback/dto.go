package feedback

type CreateFeedbackBody struct {
	SurveyID   int64  `json:"survey_id" validate:"required"`
	ReviewerID int64  `json:"reviewer_id" validate:"required"`
	Feedback   string `json:"feedback" validate:"required"`
}

type UpdateFeedbackBody struct {
	Feedback *string `json:"feedback"`
	Status   *string `json:"status" validate:"omitempty,oneof=PENDING IN_REVIEW APPROVED REJECTED"`
}

type UpdateFeedbackParams struct {
	ID       int64
	Feedback *string
	Status   *string
}
