package responses

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/waterlily/backend/api/custom_errors"
	"github.com/waterlily/backend/api/jsonutil"
	"github.com/waterlily/backend/database"
	"github.com/waterlily/backend/queue"
)

type Handler struct {
	Store Store
	Queue queue.Queue
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
	case errors.Is(err, custom_errors.ErrConflict):
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusConflict)
	default:
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusInternalServerError)
	}
}

func idFromRequest(request *http.Request, param string) (int64, bool) {
	idStr := chi.URLParam(request, param)
	id, err := strconv.ParseInt(idStr, 10, 64)
	return id, err == nil
}

func (h *Handler) CreateResponseHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	data, err := jsonutil.UnmarshalJsonResponse[CreateResponseBody](request)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: err.Error(),
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	detail, err := h.Store.CreateResponse(ctx, data)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "response created successfully",
		Data:    detail,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusCreated)
}

func (h *Handler) GetResponseHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	responseID, ok := idFromRequest(request, "responseID")
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid response ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	detail, err := h.Store.GetResponse(ctx, responseID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "response retrieved successfully",
		Data:    detail,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) ListResponsesHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	items, err := h.Store.ListResponses(ctx)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "responses retrieved successfully",
		Data:    items,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) GetResponsesByUserHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	userID, ok := idFromRequest(request, "userID")
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid user ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	items, err := h.Store.GetResponsesByUserID(ctx, userID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "responses retrieved successfully",
		Data:    items,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) GetResponsesBySurveyHandler(responseWriter http.ResponseWriter, request *http.Request) {
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

	items, err := h.Store.GetResponsesBySurveyID(ctx, surveyID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "responses retrieved successfully",
		Data:    items,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) SubmitResponseHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	responseID, ok := idFromRequest(request, "responseID")
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid response ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	submitted, err := h.Store.SubmitResponse(ctx, responseID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	// the notification is best-effort; the submission already committed
	if h.Queue != nil {
		payload := queue.ReviewNotificationPayload{
			Name:       "review-notification",
			ResponseID: submitted.ID,
			SurveyID:   submitted.SurveyID,
		}
		if err := h.Queue.Enqueue(&payload); err != nil {
			log.Printf("error enqueueing review notification for response %d: %v", submitted.ID, err)
		}
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "response submitted successfully",
		Data:    submitted,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) ReviewResponseHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	responseID, ok := idFromRequest(request, "responseID")
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid response ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	data, err := jsonutil.UnmarshalJsonResponse[ReviewResponseBody](request)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: err.Error(),
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	reviewed, err := h.Store.ReviewResponse(ctx, responseID, database.ReviewStatus(data.ReviewStatus))
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "review status updated successfully",
		Data:    reviewed,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) DeleteResponseHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	responseID, ok := idFromRequest(request, "responseID")
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid response ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	err := h.Store.DeleteResponse(ctx, responseID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "response deleted successfully",
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}
