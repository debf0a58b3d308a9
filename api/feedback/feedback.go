package feedback

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
	case errors.Is(err, custom_errors.ErrValidation):
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
	default:
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusInternalServerError)
	}
}

func idFromRequest(request *http.Request, param string) (int64, bool) {
	idStr := chi.URLParam(request, param)
	id, err := strconv.ParseInt(idStr, 10, 64)
	return id, err == nil
}

func (h *Handler) CreateFeedbackHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	data, err := jsonutil.UnmarshalJsonResponse[CreateFeedbackBody](request)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: err.Error(),
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	item, err := h.Store.CreateFeedback(ctx, data)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "feedback created successfully",
		Data:    item,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusCreated)
}

func (h *Handler) GetFeedbackHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	feedbackID, ok := idFromRequest(request, "feedbackID")
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid feedback ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	item, err := h.Store.GetFeedback(ctx, feedbackID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "feedback retrieved successfully",
		Data:    item,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) ListFeedbackHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	items, err := h.Store.ListFeedback(ctx)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "feedback retrieved successfully",
		Data:    items,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) GetFeedbackByReviewerHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	reviewerID, ok := idFromRequest(request, "userID")
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid user ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	items, err := h.Store.GetFeedbackByReviewerID(ctx, reviewerID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "feedback retrieved successfully",
		Data:    items,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) GetFeedbackBySurveyHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	surveyID, ok := idFromRequest(request, "surveyID")
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid survey ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	items, err := h.Store.GetFeedbackBySurveyID(ctx, surveyID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "feedback retrieved successfully",
		Data:    items,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) UpdateFeedbackHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	feedbackID, ok := idFromRequest(request, "feedbackID")
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid feedback ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	data, err := jsonutil.UnmarshalJsonResponse[UpdateFeedbackBody](request)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: err.Error(),
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	params := UpdateFeedbackParams{
		ID:       feedbackID,
		Feedback: data.Feedback,
		Status:   data.Status,
	}

	item, err := h.Store.UpdateFeedback(ctx, params)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "feedback updated successfully",
		Data:    item,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) DeleteFeedbackHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	feedbackID, ok := idFromRequest(request, "feedbackID")
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid feedback ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	err := h.Store.DeleteFeedback(ctx, feedbackID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "feedback deleted successfully",
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}
