package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/waterlily/backend/api/custom_errors"
	"github.com/waterlily/backend/database"
)

type Store interface {
	CreateUser(ctx context.Context, email string) (database.User, error)
	GetUser(ctx context.Context, userID int64) (database.User, error)
	ListUsers(ctx context.Context) ([]database.User, error)
	UpdateUser(ctx context.Context, userID int64, email string) (database.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

const UniqueViolation = "23505"

type Repository struct {
	queries *database.Queries
}

func NewUserStore(queries *database.Queries) *Repository {
	return &Repository{queries: queries}
}

func (r *Repository) CreateUser(ctx context.Context, email string) (database.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	user, err := r.queries.CreateUser(ctx, email)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == UniqueViolation {
			return database.User{}, custom_errors.ErrConflict
		}
		return database.User{}, fmt.Errorf("error creating user: %v", err)
	}

	return user, nil
}

func (r *Repository) GetUser(ctx context.Context, userID int64) (database.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	user, err := r.queries.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.User{}, custom_errors.ErrNotFound
		}
		return database.User{}, fmt.Errorf("error getting user: %v", err)
	}

	return user, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]database.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	users, err := r.queries.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %v", err)
	}

	return users, nil
}

func (r *Repository) UpdateUser(ctx context.Context, userID int64, email string) (database.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	user, err := r.queries.UpdateUser(ctx, database.UpdateUserParams{
		ID:    userID,
		Email: email,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.User{}, custom_errors.ErrNotFound
		}
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == UniqueViolation {
			return database.User{}, custom_errors.ErrConflict
		}
		return database.User{}, fmt.Errorf("error updating user: %v", err)
	}

	return user, nil
}

func (r *Repository) DeleteUser(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	affected, err := r.queries.DeleteUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("error deleting user: %v", err)
	}

	if affected == 0 {
		return custom_errors.ErrNotFound
	}

	return nil
}
