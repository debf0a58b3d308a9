package responses

import (
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/waterlily/backend/database"
	"github.com/waterlily/backend/queue"
)

func SetupRoutes(r *chi.Mux, q queue.Queue, db *pgxpool.Pool, queries *database.Queries) {

	responsesRouter := chi.NewRouter()

	store := NewResponseStore(queries, database.NewDBTransactor(db))

	handler := Handler{
		Store: store,
		Queue: q,
	}

	responsesRouter.Post("/", handler.CreateResponseHandler)
	responsesRouter.Get("/", handler.ListResponsesHandler)
	responsesRouter.Get("/{responseID}", handler.GetResponseHandler)
	responsesRouter.Delete("/{responseID}", handler.DeleteResponseHandler)
	responsesRouter.Get("/user/{userID}", handler.GetResponsesByUserHandler)
	responsesRouter.Get("/survey/{surveyID}", handler.GetResponsesBySurveyHandler)
	responsesRouter.Put("/{responseID}/submit", handler.SubmitResponseHandler)
	responsesRouter.Put("/{responseID}/review", handler.ReviewResponseHandler)

	r.Mount("/responses", responsesRouter)

	return
}
