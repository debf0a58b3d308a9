package questions_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/waterlily/backend/api/custom_errors"
	"github.com/waterlily/backend/api/questions"
	"github.com/waterlily/backend/database"
)

// ============================================================================
// Stub Question Store
// ============================================================================

type StubQuestionStore struct {
	Surveys          map[int64]bool
	Questions        map[int64]database.Question
	NextID           int64
	ShouldFailCreate bool
	ShouldFailList   bool
}

func NewStubQuestionStore() *StubQuestionStore {
	return &StubQuestionStore{
		Surveys:   make(map[int64]bool),
		Questions: make(map[int64]database.Question),
		NextID:    1,
	}
}

func (s *StubQuestionStore) maxOrder(surveyID int64) int32 {
	var max int32
	for _, q := range s.Questions {
		if q.SurveyID == surveyID && q.OrderIndex > max {
			max = q.OrderIndex
		}
	}
	return max
}

func (s *StubQuestionStore) CreateQuestion(ctx context.Context, params questions.CreateQuestionParams) (database.Question, error) {
	if s.ShouldFailCreate {
		return database.Question{}, errors.New("database error")
	}

	if !s.Surveys[params.SurveyID] {
		return database.Question{}, custom_errors.ErrNotFound
	}

	category := database.QuestionCategory(params.Category)
	if params.Category == "" {
		category = database.QuestionCategoryOther
	}

	question := database.Question{
		ID:         s.NextID,
		SurveyID:   params.SurveyID,
		Title:      params.Title,
		Type:       database.QuestionType(params.Type),
		Category:   category,
		Required:   params.Required,
		OrderIndex: s.maxOrder(params.SurveyID) + 1,
		Options:    params.Options,
	}
	s.Questions[question.ID] = question
	s.NextID++

	return question, nil
}

func (s *StubQuestionStore) GetQuestion(ctx context.Context, questionID int64) (database.Question, error) {
	question, exists := s.Questions[questionID]
	if !exists {
		return database.Question{}, custom_errors.ErrNotFound
	}
	return question, nil
}

func (s *StubQuestionStore) GetQuestionsBySurveyID(ctx context.Context, surveyID int64) ([]database.Question, error) {
	if s.ShouldFailList {
		return nil, errors.New("database error")
	}

	if !s.Surveys[surveyID] {
		return nil, custom_errors.ErrNotFound
	}

	var items []database.Question
	for _, q := range s.Questions {
		if q.SurveyID == surveyID {
			items = append(items, q)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].OrderIndex != items[j].OrderIndex {
			return items[i].OrderIndex < items[j].OrderIndex
		}
		return items[i].ID < items[j].ID
	})

	return items, nil
}

func (s *StubQuestionStore) UpdateQuestion(ctx context.Context, params questions.UpdateQuestionParams) (database.Question, error) {
	question, exists := s.Questions[params.ID]
	if !exists {
		return database.Question{}, custom_errors.ErrNotFound
	}

	if params.Title != nil {
		question.Title = *params.Title
	}
	if params.Type != nil {
		question.Type = database.QuestionType(*params.Type)
	}
	if params.Category != nil {
		question.Category = database.QuestionCategory(*params.Category)
	}
	if params.Required != nil {
		question.Required = *params.Required
	}
	if params.Options != nil {
		question.Options = params.Options
	}

	s.Questions[params.ID] = question
	return question, nil
}

func (s *StubQuestionStore) DeleteQuestion(ctx context.Context, questionID int64) error {
	if _, exists := s.Questions[questionID]; !exists {
		return custom_errors.ErrNotFound
	}
	delete(s.Questions, questionID)
	return nil
}

func (s *StubQuestionStore) ReorderQuestions(ctx context.Context, surveyID int64, questionIDs []int64) error {
	if !s.Surveys[surveyID] {
		return custom_errors.ErrNotFound
	}

	var current []int64
	for _, q := range s.Questions {
		if q.SurveyID == surveyID {
			current = append(current, q.ID)
		}
	}

	want := make(map[int64]bool, len(current))
	for _, id := range current {
		want[id] = true
	}

	seen := make(map[int64]bool, len(questionIDs))
	for _, id := range questionIDs {
		if !want[id] {
			return custom_errors.ErrNotFound
		}
		if seen[id] {
			return custom_errors.ErrValidation
		}
		seen[id] = true
	}

	if len(seen) != len(current) {
		return custom_errors.ErrValidation
	}

	for position, id := range questionIDs {
		question := s.Questions[id]
		question.OrderIndex = int32(position + 1)
		s.Questions[id] = question
	}

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

func seedQuestions(store *StubQuestionStore, surveyID int64, titles ...string) []int64 {
	store.Surveys[surveyID] = true

	var ids []int64
	for _, title := range titles {
		q, _ := store.CreateQuestion(context.Background(), questions.CreateQuestionParams{
			SurveyID: surveyID,
			Title:    title,
			Type:     "TEXT",
			Required: true,
		})
		ids = append(ids, q.ID)
	}
	return ids
}

func surveyOrder(store *StubQuestionStore, surveyID int64) []int64 {
	items, _ := store.GetQuestionsBySurveyID(context.Background(), surveyID)

	var ids []int64
	for _, q := range items {
		ids = append(ids, q.ID)
	}
	return ids
}

func assertIDOrder(t *testing.T, got, want []int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

// ============================================================================
// CreateQuestionHandler Tests
// ============================================================================

func TestCreateQuestionHandler(t *testing.T) {
	t.Run("appends new questions at the end of the sequence", func(t *testing.T) {
		store := NewStubQuestionStore()
		store.Surveys[1] = true

		handler := &questions.Handler{Store: store}

		for i, wantOrder := range []float64{1, 2, 3} {
			data := []byte(`{"survey_id": 1, "title": "question", "type": "TEXT"}`)

			req := httptest.NewRequest(http.MethodPost, "/questions", bytes.NewBuffer(data))
			rec := httptest.NewRecorder()

			handler.CreateQuestionHandler(rec, req)

			var got map[string]interface{}
			_ = json.Unmarshal(rec.Body.Bytes(), &got)

			assertResponseCode(t, rec.Code, http.StatusCreated)
			assertResponseStatus(t, got, "success")
			assertResponseMessage(t, got, "question created successfully")

			question := got["data"].(map[string]interface{})
			if question["order_index"] != wantOrder {
				t.Errorf("question %d order_index = %v, want %v", i+1, question["order_index"], wantOrder)
			}
		}
	})

	t.Run("defaults required to true when omitted", func(t *testing.T) {
		store := NewStubQuestionStore()
		store.Surveys[1] = true

		handler := &questions.Handler{Store: store}

		data := []byte(`{"survey_id": 1, "title": "age", "type": "NUMBER"}`)

		req := httptest.NewRequest(http.MethodPost, "/questions", bytes.NewBuffer(data))
		rec := httptest.NewRecorder()

		handler.CreateQuestionHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusCreated)

		if !store.Questions[1].Required {
			t.Error("expected question to default to required")
		}
	})

	t.Run("defaults category to OTHER when omitted", func(t *testing.T) {
		store := NewStubQuestionStore()
		store.Surveys[1] = true

		handler := &questions.Handler{Store: store}

		data := []byte(`{"survey_id": 1, "title": "age", "type": "NUMBER"}`)

		req := httptest.NewRequest(http.MethodPost, "/questions", bytes.NewBuffer(data))
		rec := httptest.NewRecorder()

		handler.CreateQuestionHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusCreated)

		if store.Questions[1].Category != database.QuestionCategoryOther {
			t.Errorf("category = %s, want OTHER", store.Questions[1].Category)
		}
	})

	t.Run("returns 404 when survey does not exist", func(t *testing.T) {
		store := NewStubQuestionStore()

		handler := &questions.Handler{Store: store}

		data := []byte(`{"survey_id": 999, "title": "question", "type": "TEXT"}`)

		req := httptest.NewRequest(http.MethodPost, "/questions", bytes.NewBuffer(data))
		rec := httptest.NewRecorder()

		handler.CreateQuestionHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusNotFound)
		assertResponseStatus(t, got, "error")
	})

	t.Run("returns 400 for an unknown question type", func(t *testing.T) {
		store := NewStubQuestionStore()
		store.Surveys[1] = true

		handler := &questions.Handler{Store: store}

		data := []byte(`{"survey_id": 1, "title": "question", "type": "DROPDOWN"}`)

		req := httptest.NewRequest(http.MethodPost, "/questions", bytes.NewBuffer(data))
		rec := httptest.NewRecorder()

		handler.CreateQuestionHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusBadRequest)
		assertResponseStatus(t, got, "error")
	})

	t.Run("returns 400 for invalid JSON", func(t *testing.T) {
		handler := &questions.Handler{Store: NewStubQuestionStore()}

		data := []byte(`{"survey_id": 1`)

		req := httptest.NewRequest(http.MethodPost, "/questions", bytes.NewBuffer(data))
		rec := httptest.NewRecorder()

		handler.CreateQuestionHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("returns 409 when the order conflict persists", func(t *testing.T) {
		handler := &questions.Handler{Store: &conflictingStore{}}

		data := []byte(`{"survey_id": 1, "title": "question", "type": "TEXT"}`)

		req := httptest.NewRequest(http.MethodPost, "/questions", bytes.NewBuffer(data))
		rec := httptest.NewRecorder()

		handler.CreateQuestionHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusConflict)
		assertResponseStatus(t, got, "error")
	})
}

// conflictingStore reports a slot conflict on every create.
type conflictingStore struct {
	StubQuestionStore
}

func (s *conflictingStore) CreateQuestion(ctx context.Context, params questions.CreateQuestionParams) (database.Question, error) {
	return database.Question{}, custom_errors.ErrConflict
}

// ============================================================================
// GetQuestionsBySurveyHandler Tests
// ============================================================================

func TestGetQuestionsBySurveyHandler(t *testing.T) {
	t.Run("returns questions in sequence order", func(t *testing.T) {
		store := NewStubQuestionStore()
		seedQuestions(store, 1, "first", "second", "third")

		handler := &questions.Handler{Store: store}

		req := httptest.NewRequest(http.MethodGet, "/questions/survey/1", nil)
		req = withURLParam(req, "surveyID", "1")
		rec := httptest.NewRecorder()

		handler.GetQuestionsBySurveyHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusOK)
		assertResponseStatus(t, got, "success")
		assertResponseMessage(t, got, "questions retrieved successfully")

		items := got["data"].([]interface{})
		if len(items) != 3 {
			t.Fatalf("expected 3 questions, got %d", len(items))
		}

		wantTitles := []string{"first", "second", "third"}
		for i, item := range items {
			question := item.(map[string]interface{})
			if question["title"] != wantTitles[i] {
				t.Errorf("question %d title = %v, want %v", i, question["title"], wantTitles[i])
			}
			if question["order_index"] != float64(i+1) {
				t.Errorf("question %d order_index = %v, want %d", i, question["order_index"], i+1)
			}
		}
	})

	t.Run("returns an empty list for a survey without questions", func(t *testing.T) {
		store := NewStubQuestionStore()
		store.Surveys[1] = true

		handler := &questions.Handler{Store: store}

		req := httptest.NewRequest(http.MethodGet, "/questions/survey/1", nil)
		req = withURLParam(req, "surveyID", "1")
		rec := httptest.NewRecorder()

		handler.GetQuestionsBySurveyHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusOK)
		assertResponseStatus(t, got, "success")
	})

	t.Run("returns 404 when survey does not exist", func(t *testing.T) {
		handler := &questions.Handler{Store: NewStubQuestionStore()}

		req := httptest.NewRequest(http.MethodGet, "/questions/survey/999", nil)
		req = withURLParam(req, "surveyID", "999")
		rec := httptest.NewRecorder()

		handler.GetQuestionsBySurveyHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusNotFound)
		assertResponseStatus(t, got, "error")
	})

	t.Run("returns 500 when the database errors", func(t *testing.T) {
		store := NewStubQuestionStore()
		store.Surveys[1] = true
		store.ShouldFailList = true

		handler := &questions.Handler{Store: store}

		req := httptest.NewRequest(http.MethodGet, "/questions/survey/1", nil)
		req = withURLParam(req, "surveyID", "1")
		rec := httptest.NewRecorder()

		handler.GetQuestionsBySurveyHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusInternalServerError)
	})

	t.Run("returns 400 for a non numeric survey id", func(t *testing.T) {
		handler := &questions.Handler{Store: NewStubQuestionStore()}

		req := httptest.NewRequest(http.MethodGet, "/questions/survey/abc", nil)
		req = withURLParam(req, "surveyID", "abc")
		rec := httptest.NewRecorder()

		handler.GetQuestionsBySurveyHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusBadRequest)
		assertResponseMessage(t, got, "invalid survey ID")
	})
}

// ============================================================================
// ReorderQuestionsHandler Tests
// ============================================================================

func TestReorderQuestionsHandler(t *testing.T) {
	t.Run("applies the submitted permutation", func(t *testing.T) {
		store := NewStubQuestionStore()
		ids := seedQuestions(store, 1, "first", "second", "third")

		handler := &questions.Handler{Store: store}

		body, _ := json.Marshal(map[string][]int64{
			"question_ids": {ids[2], ids[0], ids[1]},
		})

		req := httptest.NewRequest(http.MethodPut, "/questions/survey/1/reorder", bytes.NewBuffer(body))
		req = withURLParam(req, "surveyID", "1")
		rec := httptest.NewRecorder()

		handler.ReorderQuestionsHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusOK)
		assertResponseStatus(t, got, "success")
		assertResponseMessage(t, got, "questions reordered successfully")

		assertIDOrder(t, surveyOrder(store, 1), []int64{ids[2], ids[0], ids[1]})
	})

	t.Run("returns 404 and keeps order for an id from another survey", func(t *testing.T) {
		store := NewStubQuestionStore()
		ids := seedQuestions(store, 1, "first", "second")
		otherIDs := seedQuestions(store, 2, "elsewhere")

		handler := &questions.Handler{Store: store}

		body, _ := json.Marshal(map[string][]int64{
			"question_ids": {ids[1], otherIDs[0]},
		})

		req := httptest.NewRequest(http.MethodPut, "/questions/survey/1/reorder", bytes.NewBuffer(body))
		req = withURLParam(req, "surveyID", "1")
		rec := httptest.NewRecorder()

		handler.ReorderQuestionsHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusNotFound)
		assertResponseStatus(t, got, "error")

		assertIDOrder(t, surveyOrder(store, 1), ids)
	})

	t.Run("returns 400 and keeps order for an incomplete list", func(t *testing.T) {
		store := NewStubQuestionStore()
		ids := seedQuestions(store, 1, "first", "second", "third")

		handler := &questions.Handler{Store: store}

		body, _ := json.Marshal(map[string][]int64{
			"question_ids": {ids[1], ids[0]},
		})

		req := httptest.NewRequest(http.MethodPut, "/questions/survey/1/reorder", bytes.NewBuffer(body))
		req = withURLParam(req, "surveyID", "1")
		rec := httptest.NewRecorder()

		handler.ReorderQuestionsHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusBadRequest)
		assertResponseStatus(t, got, "error")

		assertIDOrder(t, surveyOrder(store, 1), ids)
	})

	t.Run("returns 400 for a duplicated id", func(t *testing.T) {
		store := NewStubQuestionStore()
		ids := seedQuestions(store, 1, "first", "second")

		handler := &questions.Handler{Store: store}

		body, _ := json.Marshal(map[string][]int64{
			"question_ids": {ids[0], ids[0]},
		})

		req := httptest.NewRequest(http.MethodPut, "/questions/survey/1/reorder", bytes.NewBuffer(body))
		req = withURLParam(req, "surveyID", "1")
		rec := httptest.NewRecorder()

		handler.ReorderQuestionsHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusBadRequest)
		assertIDOrder(t, surveyOrder(store, 1), ids)
	})

	t.Run("returns 400 for an empty id list", func(t *testing.T) {
		store := NewStubQuestionStore()
		seedQuestions(store, 1, "first")

		handler := &questions.Handler{Store: store}

		data := []byte(`{"question_ids": []}`)

		req := httptest.NewRequest(http.MethodPut, "/questions/survey/1/reorder", bytes.NewBuffer(data))
		req = withURLParam(req, "surveyID", "1")
		rec := httptest.NewRecorder()

		handler.ReorderQuestionsHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("returns 404 when survey does not exist", func(t *testing.T) {
		handler := &questions.Handler{Store: NewStubQuestionStore()}

		data := []byte(`{"question_ids": [1, 2]}`)

		req := httptest.NewRequest(http.MethodPut, "/questions/survey/999/reorder", bytes.NewBuffer(data))
		req = withURLParam(req, "surveyID", "999")
		rec := httptest.NewRecorder()

		handler.ReorderQuestionsHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusNotFound)
	})
}

// ============================================================================
// DeleteQuestionHandler Tests
// ============================================================================

func TestDeleteQuestionHandler(t *testing.T) {
	t.Run("deletes without renumbering the survivors", func(t *testing.T) {
		store := NewStubQuestionStore()
		ids := seedQuestions(store, 1, "first", "second", "third")

		handler := &questions.Handler{Store: store}

		req := httptest.NewRequest(http.MethodDelete, "/questions/2", nil)
		req = withURLParam(req, "questionID", "2")
		rec := httptest.NewRecorder()

		handler.DeleteQuestionHandler(rec, req)

		var got map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &got)

		assertResponseCode(t, rec.Code, http.StatusOK)
		assertResponseMessage(t, got, "question deleted successfully")

		assertIDOrder(t, surveyOrder(store, 1), []int64{ids[0], ids[2]})

		if store.Questions[ids[2]].OrderIndex != 3 {
			t.Errorf("survivor order_index = %d, want 3", store.Questions[ids[2]].OrderIndex)
		}
	})

	t.Run("returns 404 for a missing question", func(t *testing.T) {
		handler := &questions.Handler{Store: NewStubQuestionStore()}

		req := httptest.NewRequest(http.MethodDelete, "/questions/999", nil)
		req = withURLParam(req, "questionID", "999")
		rec := httptest.NewRecorder()

		handler.DeleteQuestionHandler(rec, req)

		assertResponseCode(t, rec.Code, http.StatusNotFound)
	})
}
