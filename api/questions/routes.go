package questions

import (
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/waterlily/backend/database"
)

func SetupRoutes(r *chi.Mux, db *pgxpool.Pool, queries *database.Queries) {

	questionsRouter := chi.NewRouter()

	store := NewQuestionStore(queries, database.NewDBTransactor(db))

	handler := Handler{
		Store: store,
	}

	questionsRouter.Post("/", handler.CreateQuestionHandler)
	questionsRouter.Get("/{questionID}", handler.GetQuestionHandler)
	questionsRouter.Patch("/{questionID}", handler.UpdateQuestionHandler)
	questionsRouter.Delete("/{questionID}", handler.DeleteQuestionHandler)
	questionsRouter.Get("/survey/{surveyID}", handler.GetQuestionsBySurveyHandler)
	questionsRouter.Put("/survey/{surveyID}/reorder", handler.ReorderQuestionsHandler)

	r.Mount("/questions", questionsRouter)

	return
}
