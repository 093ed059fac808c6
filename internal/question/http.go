package question

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/sahanavr/trivia-api/pkg/http/errors"
)

// CategoryLister supplies the id->type map embedded in listing responses.
type CategoryLister interface {
	Map(ctx context.Context) (map[int]string, error)
}

// Handlers provides the REST endpoints for the question bank.
type Handlers struct {
	svc        *Service
	categories CategoryLister
	pageSize   int
	logger     zerolog.Logger
}

// NewHandlers creates HTTP handlers for question endpoints.
func NewHandlers(svc *Service, categories CategoryLister, pageSize int, logger zerolog.Logger) *Handlers {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Handlers{
		svc:        svc,
		categories: categories,
		pageSize:   pageSize,
		logger:     logger.With().Str("component", "question_http").Logger(),
	}
}

type listResponse struct {
	Success         bool           `json:"success"`
	Questions       []Question     `json:"questions"`
	TotalQuestions  int            `json:"total_questions"`
	Categories      map[int]string `json:"categories"`
	CurrentCategory string         `json:"current_category"`
}

type createResponse struct {
	Success  bool     `json:"success"`
	Question Question `json:"question"`
	Message  string   `json:"message"`
}

type deleteResponse struct {
	Success  bool     `json:"success"`
	Question Question `json:"deleted question"`
	Message  string   `json:"message"`
}

type searchResponse struct {
	Success   bool       `json:"success"`
	Questions []Question `json:"questions"`
}

type byCategoryResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory int        `json:"current_category"`
}

// List handles GET /api/questions?page=N.
// An empty page window is reported as 404: the page does not exist.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	all, err := h.svc.ListAll(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list questions failed")
		httperrors.RespondInternalError(w)
		return
	}

	cats, err := h.categories.Map(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list categories failed")
		httperrors.RespondInternalError(w)
		return
	}

	window := Paginate(all, page, h.pageSize)
	if len(window) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	h.respondJSON(w, http.StatusOK, listResponse{
		Success:         true,
		Questions:       window,
		TotalQuestions:  len(all),
		Categories:      cats,
		CurrentCategory: "",
	})
}

// Create handles POST /api/questions.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httperrors.RespondBadRequest(w, "")
		return
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			httperrors.RespondBadRequest(w, "")
			return
		}
		h.logger.Error().Err(err).Msg("create question failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, createResponse{
		Success:  true,
		Question: created,
		Message:  "The new question was successfully created",
	})
}

// Search handles POST /api/questions/search. The term comes from the
// searchTerm query parameter, falling back to a JSON body of the same
// shape. No match is a 200 with an empty list.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("searchTerm")
	if term == "" && r.Body != nil {
		var body struct {
			SearchTerm string `json:"searchTerm"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			term = body.SearchTerm
		}
	}

	matches, err := h.svc.Search(r.Context(), term)
	if err != nil {
		h.logger.Error().Err(err).Str("term", term).Msg("search questions failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, searchResponse{
		Success:   true,
		Questions: emptyIfNil(matches),
	})
}

// Delete handles DELETE /api/questions/{id}/delete.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("id", id).Msg("delete question failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, deleteResponse{
		Success:  true,
		Question: deleted,
		Message:  "The question has been successfully deleted",
	})
}

// ByCategory handles GET /api/categories/{id}/questions.
func (h *Handlers) ByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	matches, err := h.svc.ByCategory(r.Context(), categoryID)
	if err != nil {
		h.logger.Error().Err(err).Int("category", categoryID).Msg("questions by category failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, byCategoryResponse{
		Success:         true,
		Questions:       emptyIfNil(matches),
		TotalQuestions:  len(matches),
		CurrentCategory: categoryID,
	})
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("encode response failed")
	}
}

func emptyIfNil(qs []Question) []Question {
	if qs == nil {
		return []Question{}
	}
	return qs
}
