package users_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/waterlily/backend/api/custom_errors"
	"github.com/waterlily/backend/api/users"
	"github.com/waterlily/backend/database"
)

// ============================================================================
// Stub User Store
// ============================================================================

type StubUserStore struct {
	Users            map[int64]database.User
	NextID           int64
	ShouldFailCreate bool
}

func NewStubUserStore() *StubUserStore {
	return &StubUserStore{
		Users:  make(map[int64]database.User),
		NextID: 1,
	}
}

func (s *StubUserStore) emailTaken(email string, exceptID int64) bool {
	for _, user := range s.Users {
		if user.Email == email && user.ID != exceptID {
			return true
		}
	}
	return false
}

func (s *StubUserStore) CreateUser(ctx context.Context, email string) (database.User, error) {
	if s.ShouldFailCreate {
		return database.User{}, errors.New("database error")
	}

	if s.emailTaken(email, 0) {
		return database.User{}, custom_errors.ErrConflict
	}

	user := database.User{ID: s.NextID, Email: email}
	s.Users[user.ID] = user
	s.NextID++

	return user, nil
}

func (s *StubUserStore) GetUser(ctx context.Context, userID int64) (database.User, error) {
	user, exists := s.Users[userID]
	if !exists {
		return database.User{}, custom_errors.ErrNotFound
	}
	return user, nil
}

func (s *StubUserStore) ListUsers(ctx context.Context) ([]database.User, error) {
	var items []database.User
	for _, user := range s.Users {
		items = append(items, user)
	}
	return items, nil
}

func (s *StubUserStore) UpdateUser(ctx context.Context, userID int64, email string) (database.User, error) {
	user, exists := s.Users[userID]
	if !exists {
		return database.User{}, custom_errors.ErrNotFound
	}

	if s.emailTaken(email, userID) {
		return database.User{}, custom_errors.ErrConflict
	}

	user.Email = email
	s.Users[userID] = user
	return user, nil
}

func (s *StubUserStore) DeleteUser(ctx context.Context, userID int64) error {
	if _, exists := s.Users[userID]; !exists {
		return custom_errors.ErrNotFound
	}
	delete(s.Users, userID)
	return nil
}

// ============================================================================
// Test Helpers
// ============================================================================

func withURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func assertResponseCode(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("response code = %d, want %d", got, want)
	}
}

func assertResponseStatus(t *testing.T, got map[string]interface{}, wantStatus string) {
	t.Helper()
	if got["status"] != wantStatus {
		t.Errorf("status = %v, want %v", got["status"], wantStatus)
	}
}

func assertResponseMessage(t *testing.T, got map[string]interface{}, wantMessage string) {
	t.Helper()
	if got["message"] != wantMessage {
		t.Errorf("message = %v, want %v", got["message"], wantMessage)
	}
}

// ============================================================================
// CreateUserHandler Tests
// ============================================================================

func TestCreateUserHandler(t *testing.T) {
	t.Run("creates a user", func(t *testing.T) {
		store := NewStubUserStore()

		handler := &users.Handler{Store: store}

		data := []byte(`{"email": "jane@example.com"}`)

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(data))
		rec := httptest.NewRecorder()

		handler.CreateUserHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusCreated)
		assertResponseStatus(t, got, "success")
		assertResponseMessage(t, got, "user created successfully")

		if store.Users[1].Email != "jane@example.com" {
			t.Errorf("email = %s, want jane@example.com", store.Users[1].Email)
		}
	})

	t.Run("returns 409 for a duplicate email", func(t *testing.T) {
		store := NewStubUserStore()
		store.Users[1] = database.User{ID: 1, Email: "jane@example.com"}

		handler := &users.Handler{Store: store}

		data := []byte(`{"email": "jane@example.com"}`)

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(data))
		rec := httptest.NewRecorder()

		handler.CreateUserHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusConflict)
		assertResponseStatus(t, got, "error")
	})

	t.Run("returns 400 for an invalid email", func(t *testing.T) {
		handler := &users.Handler{Store: NewStubUserStore()}

		data := []byte(`{"email": "not-an-email"}`)

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(data))
		rec := httptest.NewRecorder()

		handler.CreateUserHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("returns 500 when the database errors", func(t *testing.T) {
		store := NewStubUserStore()
		store.ShouldFailCreate = true

		handler := &users.Handler{Store: store}

		data := []byte(`{"email": "jane@example.com"}`)

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(data))
		rec := httptest.NewRecorder()

		handler.CreateUserHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusInternalServerError)
	})
}

// ============================================================================
// GetUserHandler Tests
// ============================================================================

func TestGetUserHandler(t *testing.T) {
	t.Run("returns the user", func(t *testing.T) {
		store := NewStubUserStore()
		store.Users[1] = database.User{ID: 1, Email: "jane@example.com"}

		handler := &users.Handler{Store: store}

		req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
		req = withURLParam(req, "userID", "1")
		rec := httptest.NewRecorder()

		handler.GetUserHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusOK)
		assertResponseStatus(t, got, "success")

		user := got["data"].(map[string]interface{})
		if user["email"] != "jane@example.com" {
			t.Errorf("email = %v, want jane@example.com", user["email"])
		}
	})

	t.Run("returns 404 for a missing user", func(t *testing.T) {
		handler := &users.Handler{Store: NewStubUserStore()}

		req := httptest.NewRequest(http.MethodGet, "/users/999", nil)
		req = withURLParam(req, "userID", "999")
		rec := httptest.NewRecorder()

		handler.GetUserHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusNotFound)
	})

	t.Run("returns 400 for a non numeric user id", func(t *testing.T) {
		handler := &users.Handler{Store: NewStubUserStore()}

		req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
		req = withURLParam(req, "userID", "abc")
		rec := httptest.NewRecorder()

		handler.GetUserHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusBadRequest)
		assertResponseMessage(t, got, "invalid user ID")
	})
}

// ============================================================================
// UpdateUserHandler Tests
// ============================================================================

func TestUpdateUserHandler(t *testing.T) {
	t.Run("updates the email", func(t *testing.T) {
		store := NewStubUserStore()
		store.Users[1] = database.User{ID: 1, Email: "jane@example.com"}

		handler := &users.Handler{Store: store}

		data := []byte(`{"email": "jane.doe@example.com"}`)

		req := httptest.NewRequest(http.MethodPatch, "/users/1", bytes.NewBuffer(data))
		req = withURLParam(req, "userID", "1")
		rec := httptest.NewRecorder()

		handler.UpdateUserHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusOK)

		if store.Users[1].Email != "jane.doe@example.com" {
			t.Errorf("email = %s, want jane.doe@example.com", store.Users[1].Email)
		}
	})

	t.Run("returns 409 when the new email is taken", func(t *testing.T) {
		store := NewStubUserStore()
		store.Users[1] = database.User{ID: 1, Email: "jane@example.com"}
		store.Users[2] = database.User{ID: 2, Email: "john@example.com"}

		handler := &users.Handler{Store: store}

		data := []byte(`{"email": "john@example.com"}`)

		req := httptest.NewRequest(http.MethodPatch, "/users/1", bytes.NewBuffer(data))
		req = withURLParam(req, "userID", "1")
		rec := httptest.NewRecorder()

		handler.UpdateUserHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusConflict)
	})
}

// ============================================================================
// DeleteUserHandler Tests
// ============================================================================

func TestDeleteUserHandler(t *testing.T) {
	t.Run("deletes the user", func(t *testing.T) {
		store := NewStubUserStore()
		store.Users[1] = database.User{ID: 1, Email: "jane@example.com"}

		handler := &users.Handler{Store: store}

		req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
		req = withURLParam(req, "userID", "1")
		rec := httptest.NewRecorder()

		handler.DeleteUserHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusOK)
		assertResponseMessage(t, got, "user deleted successfully")

		if _, exists := store.Users[1]; exists {
			t.Error("expected user to be deleted")
		}
	})

	t.Run("returns 404 for a missing user", func(t *testing.T) {
		handler := &users.Handler{Store: NewStubUserStore()}

		req := httptest.NewRequest(http.MethodDelete, "/users/999", nil)
		req = withURLParam(req, "userID", "999")
		rec := httptest.NewRecorder()

		handler.DeleteUserHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusNotFound)
	})
}
