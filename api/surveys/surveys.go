package surveys

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
	case errors.Is(err, custom_errors.ErrConflict):
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusConflict)
	default:
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusInternalServerError)
	}
}

func surveyIDFromRequest(request *http.Request) (int64, bool) {
	surveyIDStr := chi.URLParam(request, "surveyID")
	surveyID, err := strconv.ParseInt(surveyIDStr, 10, 64)
	return surveyID, err == nil
}

func (h *Handler) CreateSurveyHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	data, err := jsonutil.UnmarshalJsonResponse[CreateSurveyBody](request)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: err.Error(),
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	survey, err := h.Store.CreateSurvey(ctx, data)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "survey created successfully",
		Data:    survey,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusCreated)
}

func (h *Handler) GetSurveyHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	surveyID, ok := surveyIDFromRequest(request)
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid survey ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	surveyDetail, err := h.Store.GetSurveyWithQuestions(ctx, surveyID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "survey retrieved successfully",
		Data:    surveyDetail,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) ListSurveysHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	status := request.URL.Query().Get("status")

	limitStr := request.URL.Query().Get("limit")
	limit := 10
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	offsetStr := request.URL.Query().Get("offset")
	offset := 0
	if offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil {
			offset = o
		}
	}

	params := ListSurveysParams{
		Status: status,
		Limit:  limit,
		Offset: offset,
	}

	surveys, err := h.Store.ListSurveys(ctx, params)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "surveys retrieved successfully",
		Data:    surveys,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) UpdateSurveyHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	surveyID, ok := surveyIDFromRequest(request)
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid survey ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	data, err := jsonutil.UnmarshalJsonResponse[UpdateSurveyBody](request)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: err.Error(),
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	params := UpdateSurveyParams{
		ID:          surveyID,
		Title:       data.Title,
		Description: data.Description,
	}

	survey, err := h.Store.UpdateSurvey(ctx, params)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "survey updated successfully",
		Data:    survey,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) PublishSurveyHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	surveyID, ok := surveyIDFromRequest(request)
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid survey ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	survey, err := h.Store.PublishSurvey(ctx, surveyID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "survey published successfully",
		Data:    survey,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) ArchiveSurveyHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	surveyID, ok := surveyIDFromRequest(request)
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid survey ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	survey, err := h.Store.ArchiveSurvey(ctx, surveyID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "survey archived successfully",
		Data:    survey,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) DeleteSurveyHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	surveyID, ok := surveyIDFromRequest(request)
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid survey ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	err := h.Store.DeleteSurvey(ctx, surveyID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "survey deleted successfully",
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) GetSurveyStatsHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	surveyID, ok := surveyIDFromRequest(request)
	if !ok {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid survey ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	stats, err := h.Store.GetSurveyStats(ctx, surveyID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "survey stats retrieved successfully",
		Data:    stats,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}
