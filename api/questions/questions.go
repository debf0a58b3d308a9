package questions

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

func (h *Handler) CreateQuestionHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	data, err := jsonutil.UnmarshalJsonResponse[CreateQuestionBody](request)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: err.Error(),
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	required := true
	if data.Required != nil {
		required = *data.Required
	}

	params := CreateQuestionParams{
		SurveyID:    data.SurveyID,
		Title:       data.Title,
		Description: data.Description,
		Type:        data.Type,
		Category:    data.Category,
		Required:    required,
		Options:     data.Options,
	}

	question, err := h.Store.CreateQuestion(ctx, params)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "question created successfully",
		Data:    question,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusCreated)
}

func (h *Handler) GetQuestionHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	questionIDStr := chi.URLParam(request, "questionID")
	questionID, err := strconv.ParseInt(questionIDStr, 10, 64)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid question ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	question, err := h.Store.GetQuestion(ctx, questionID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "question retrieved successfully",
		Data:    question,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) GetQuestionsBySurveyHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	surveyIDStr := chi.URLParam(request, "surveyID")
	surveyID, err := strconv.ParseInt(surveyIDStr, 10, 64)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid survey ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	questions, err := h.Store.GetQuestionsBySurveyID(ctx, surveyID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "questions retrieved successfully",
		Data:    questions,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) UpdateQuestionHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	questionIDStr := chi.URLParam(request, "questionID")
	questionID, err := strconv.ParseInt(questionIDStr, 10, 64)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid question ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	data, err := jsonutil.UnmarshalJsonResponse[UpdateQuestionBody](request)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: err.Error(),
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	params := UpdateQuestionParams{
		ID:          questionID,
		Title:       data.Title,
		Description: data.Description,
		Type:        data.Type,
		Category:    data.Category,
		Required:    data.Required,
		Options:     data.Options,
	}

	question, err := h.Store.UpdateQuestion(ctx, params)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "question updated successfully",
		Data:    question,
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) DeleteQuestionHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	questionIDStr := chi.URLParam(request, "questionID")
	questionID, err := strconv.ParseInt(questionIDStr, 10, 64)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid question ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	err = h.Store.DeleteQuestion(ctx, questionID)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "question deleted successfully",
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}

func (h *Handler) ReorderQuestionsHandler(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := context.Background()

	surveyIDStr := chi.URLParam(request, "surveyID")
	surveyID, err := strconv.ParseInt(surveyIDStr, 10, 64)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: "invalid survey ID",
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	data, err := jsonutil.UnmarshalJsonResponse[ReorderQuestionsBody](request)
	if err != nil {
		response := jsonutil.Response{
			Status:  "error",
			Message: err.Error(),
		}
		jsonutil.WriteJSONResponse(responseWriter, response, http.StatusBadRequest)
		return
	}

	err = h.Store.ReorderQuestions(ctx, surveyID, data.QuestionIDs)
	if err != nil {
		writeErrorResponse(responseWriter, err)
		return
	}

	response := jsonutil.Response{
		Status:  "success",
		Message: "questions reordered successfully",
	}
	jsonutil.WriteJSONResponse(responseWriter, response, http.StatusOK)
}
