package surveys

import (
	"github.com/shopspring/decimal"
	"github.com/waterlily/backend/database"
)

// Request bodies

type CreateSurveyBody struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type UpdateSurveyBody struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Parameter structs

type UpdateSurveyParams struct {
	ID          int64
	Title       *string
	Description *string
}

type ListSurveysParams struct {
	Status string
	Limit  int
	Offset int
}

// Response structs

type SurveyDetail struct {
	Survey    database.Survey     `json:"survey"`
	Questions []database.Question `json:"questions"`
}

type SurveyStats struct {
	TotalResponses    int64           `json:"total_responses"`
	CompleteResponses int64           `json:"complete_responses"`
	CompletionRate    decimal.Decimal `json:"completion_rate"`
}
