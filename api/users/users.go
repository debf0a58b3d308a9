package users

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/waterlily/backend/api/custom_errors"
	"github.com/waterlily/backend/api/jsonutil"
)

type Handler struct {
	Store Store
}

func writeErrorResponse(responseWriter http.ResponseWriter, err error) {
	response := jsonutil.Response{
		Status:  "error",
		Message: err.Error(),
	}

	switch {
	case errors.Is(err, custom_errors.ErrNotFound):
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusNotFound)
	case errors.Is(err, custom_errors.ErrConflict):
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusConflict)
	default:
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusInternalServerError)
	}
}

func userIDFromRequest(request *http.Request) (int64, bool) {
	userIDStr := chi.URLParam(request, "userID")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	return userID, err == nil
}

func (h *Handler) CreateUserHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	data, err := jsonutil.UnmarshalJsonResponse[CreateUserBody](request)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: err.Error(),
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	user, err := h.Store.CreateUser(ctx, data.Email)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "user created successfully",
		Data:    user,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusCreated)
}

func (h *Handler) GetUserHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	userID, ok := userIDFromRequest(request)
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid user ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	user, err := h.Store.GetUser(ctx, userID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "user retrieved successfully",
		Data:    user,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) ListUsersHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	users, err := h.Store.ListUsers(ctx)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "users retrieved successfully",
		Data:    users,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) UpdateUserHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	userID, ok := userIDFromRequest(request)
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid user ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	data, err := jsonutil.UnmarshalJsonResponse[UpdateUserBody](request)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: err.Error(),
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	user, err := h.Store.UpdateUser(ctx, userID, data.Email)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "user updated successfully",
		Data:    user,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) DeleteUserHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	userID, ok := userIDFromRequest(request)
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid user ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	err := h.Store.DeleteUser(ctx, userID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "user deleted successfully",
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}
