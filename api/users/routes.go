package users

import (
	"github.com/go-chi/chi/v5"
	"github.com/waterlily/backend/database"
)

func SetupRoutes(r *chi.Mux, queries *database.Queries) {

	usersRouter := chi.NewRouter()

	store := NewUserStore(queries)

	handler := Handler{
		Store: store,
	}

	usersRouter.Post("/", handler.CreateUserHandler)
	usersRouter.Get("/", handler.ListUsersHandler)
	usersRouter.Get("/{userID}", handler.GetUserHandler)
	usersRouter.Patch("/{userID}", handler.UpdateUserHandler)
	usersRouter.Delete("/{userID}", handler.DeleteUserHandler)

	r.Mount("/users", usersRouter)

	return
}
