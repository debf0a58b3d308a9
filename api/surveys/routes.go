package surveys

import (
	"github.com/go-chi/chi/v5"
	"github.com/waterlily/backend/database"
)

func SetupRoutes(r *chi.Mux, queries *database.Queries) {

	surveysRouter := chi.NewRouter()

	store := NewSurveyStore(queries)

	handler := Handler{
		Store: store,
	}

	surveysRouter.Post("/", handler.CreateSurveyHandler)
	surveysRouter.Get("/", handler.ListSurveysHandler)
	surveysRouter.Get("/{surveyID}", handler.GetSurveyHandler)
	surveysRouter.Patch("/{surveyID}", handler.UpdateSurveyHandler)
	surveysRouter.Delete("/{surveyID}", handler.DeleteSurveyHandler)
	surveysRouter.Put("/{surveyID}/publish", handler.PublishSurveyHandler)
	surveysRouter.Put("/{surveyID}/archive", handler.ArchiveSurveyHandler)
	surveysRouter.Get("/{surveyID}/stats", handler.GetSurveyStatsHandler)

	r.Mount("/surveys", surveysRouter)

	return
}
