package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/hibiken/asynq"
	mail "github.com/waterlily/backend/api/email"
)

const TypeReviewNotification = "review:notify"

type ReviewNotificationPayload struct {
	Name       string
	ResponseID int64
	SurveyID   int64
}

func (p *ReviewNotificationPayload) Process() (*asynq.Task, error) {
	payload, err := json.Marshal(p)

	if err != nil {
		return nil, fmt.Errorf("marshal review notification payload: %w", err)
	}

	return asynq.NewTask(TypeReviewNotification, payload), nil
}

func (p *ReviewNotificationPayload) ProcessorName() string {
	return p.Name
}

func HandleReviewNotificationTask(ctx context.Context, t *asynq.Task) error {
	var payload ReviewNotificationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("error decoding review notification payload: %w", err)
	}

	reviewTeamEmail := os.Getenv("REVIEW_TEAM_EMAIL")
	if reviewTeamEmail == "" {
		log.Printf("REVIEW_TEAM_EMAIL not set, skipping notification for response %d", payload.ResponseID)
		return nil
	}

	log.Printf("notifying review team about response: %d", payload.ResponseID)

	emailData := mail.Email{
		Subject:  "A survey response is ready for review",
		ToAddr:   reviewTeamEmail,
		Template: "review_notification",
		Vars: map[string]int64{
			"ResponseID": payload.ResponseID,
			"SurveyID":   payload.SurveyID,
		},
	}

	if err := emailData.SendTemplateEmail(); err != nil {
		err = fmt.Errorf("error sending review notification: %w", err)
		log.Println(err)
		return err
	}

	log.Printf("review team has been notified about response: %d", payload.ResponseID)

	return nil
}
