package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/waterlily/backend/api/feedback"
	"github.com/waterlily/backend/api/jsonutil"
	"github.com/waterlily/backend/api/questions"
	"github.com/waterlily/backend/api/responses"
	"github.com/waterlily/backend/api/surveys"
	"github.com/waterlily/backend/api/users"
	"github.com/waterlily/backend/database"
	"github.com/waterlily/backend/queue"
	"net/http"
)

func Routes(queries *database.Queries, q queue.Queue, pool *pgxpool.Pool) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.CleanPath)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/check", func(w http.ResponseWriter, r *http.Request) {

		jsonutil.WriteJSONResponse(w, "hello from waterlily", http.StatusOK)
	})

	users.SetupRoutes(r, queries)
	surveys.SetupRoutes(r, queries)
	questions.SetupRoutes(r, pool, queries)
	responses.SetupRoutes(r, q, pool, queries)
	feedback.SetupRoutes(r, queries)

	return r
}
