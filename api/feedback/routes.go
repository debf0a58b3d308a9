package feedback

import (
	"github.com/go-chi/chi/v5"
	"github.com/waterlily/backend/database"
)

func SetupRoutes(r *chi.Mux, queries *database.Queries) {

	feedbackRouter := chi.NewRouter()

	store := NewFeedbackStore(queries)

	handler := Handler{
		Store: store,
	}

	feedbackRouter.Post("/", handler.CreateFeedbackHandler)
	feedbackRouter.Get("/", handler.ListFeedbackHandler)
	feedbackRouter.Get("/{feedbackID}", handler.GetFeedbackHandler)
	feedbackRouter.Patch("/{feedbackID}", handler.UpdateFeedbackHandler)
	feedbackRouter.Delete("/{feedbackID}", handler.DeleteFeedbackHandler)
	feedbackRouter.Get("/user/{userID}", handler.GetFeedbackByReviewerHandler)
	feedbackRouter.Get("/survey/{surveyID}", handler.GetFeedbackBySurveyHandler)

	r.Mount("/feedback", feedbackRouter)

	return
}
