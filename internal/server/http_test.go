package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahanavr/trivia-api/internal/category"
	"github.com/sahanavr/trivia-api/internal/config"
	"github.com/sahanavr/trivia-api/internal/question"
	"github.com/sahanavr/trivia-api/internal/quiz"
)

// bankStore is an in-memory implementation of question.Store and
// quiz.Store used to drive the router end to end.
type bankStore struct {
	questions []question.Question
	nextID    int
}

func (s *bankStore) ListAll(_ context.Context) ([]question.Question, error) {
	out := make([]question.Question, len(s.questions))
	copy(out, s.questions)
	return out, nil
}

func (s *bankStore) Search(_ context.Context, term string) ([]question.Question, error) {
	var out []question.Question
	for _, q := range s.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *bankStore) ByCategory(_ context.Context, categoryID int) ([]question.Question, error) {
	var out []question.Question
	for _, q := range s.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *bankStore) ListEligible(_ context.Context, excludedIDs []int, categoryID int) ([]question.Question, error) {
	var out []question.Question
	for _, q := range s.questions {
		if slices.Contains(excludedIDs, q.ID) {
			continue
		}
		if categoryID != 0 && q.Category != categoryID {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (s *bankStore) Insert(_ context.Context, params question.CreateParams) (question.Question, error) {
	q := question.Question{
		ID:         s.nextID,
		Question:   params.Question,
		Answer:     params.Answer,
		Category:   params.Category,
		Difficulty: params.Difficulty,
	}
	s.nextID++
	s.questions = append(s.questions, q)
	return q, nil
}

func (s *bankStore) Delete(_ context.Context, id int) (question.Question, error) {
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return q, nil
		}
	}
	return question.Question{}, question.ErrNotFound
}

type categoryStore struct {
	categories []category.Category
}

func (s *categoryStore) ListAll(_ context.Context) ([]category.Category, error) {
	return s.categories, nil
}

// newTestRouter seeds categories {1:Science, 2:Sports} and 12 questions
// with ids 1..12, the last 6 in category 2.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	bank := &bankStore{nextID: 13}
	for i := 1; i <= 12; i++ {
		cat := 1
		if i > 6 {
			cat = 2
		}
		bank.questions = append(bank.questions, question.Question{
			ID:         i,
			Question:   "Seed question",
			Answer:     "Seed answer",
			Category:   cat,
			Difficulty: 1,
		})
	}

	cats := &categoryStore{categories: []category.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Sports"},
	}}

	logger := zerolog.Nop()
	questionSvc := question.NewService(bank)
	categorySvc := category.NewService(cats)

	cfg := &config.App{
		HTTPAddr: "127.0.0.1:0",
		CORS: config.CORS{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		},
		API: config.API{QuestionsPerPage: 10},
	}

	return NewRouter(cfg, logger, nil, Handlers{
		Questions:  question.NewHandlers(questionSvc, categorySvc, cfg.API.QuestionsPerPage, logger),
		Categories: category.NewHandlers(categorySvc, logger),
		Quiz:       quiz.NewHandlers(quiz.NewSelector(bank), logger),
	})
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCategoriesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success    bool              `json:"success"`
		Categories map[string]string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]string{"1": "Science", "2": "Sports"}, resp.Categories)
}

func TestQuestionsSecondPageScenario(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/questions?page=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Questions      []question.Question `json:"questions"`
		TotalQuestions int                 `json:"total_questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.TotalQuestions)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, 11, resp.Questions[0].ID)
	assert.Equal(t, 12, resp.Questions[1].ID)
}

func TestCategoryQuestionsScenario(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/categories/2/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Questions       []question.Question `json:"questions"`
		TotalQuestions  int                 `json:"total_questions"`
		CurrentCategory int                 `json:"current_category"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.TotalQuestions)
	assert.Equal(t, 2, resp.CurrentCategory)
	require.Len(t, resp.Questions, 6)
	for _, q := range resp.Questions {
		assert.Equal(t, 2, q.Category)
	}
}

func TestQuizScenario(t *testing.T) {
	router := newTestRouter(t)

	body := `{"previous_questions":[1,2,3],"quiz_category":{"id":0}}`
	rec := doRequest(t, router, http.MethodPost, "/api/questions/quiz", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success  bool               `json:"success"`
		Question *question.Question `json:"question"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Question)
	assert.GreaterOrEqual(t, resp.Question.ID, 4)
	assert.LessOrEqual(t, resp.Question.ID, 12)
}

func TestDeleteThenListExcludesQuestion(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodDelete, "/api/questions/3/delete", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/questions?page=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Questions      []question.Question `json:"questions"`
		TotalQuestions int                 `json:"total_questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.TotalQuestions)
	for _, q := range resp.Questions {
		assert.NotEqual(t, 3, q.ID)
	}
}

func TestCORSHeadersAndPreflight(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/categories", "")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")

	rec = doRequest(t, router, http.MethodOptions, "/api/questions", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}
