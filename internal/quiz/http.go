package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sahanavr/trivia-api/internal/question"
	httperrors "github.com/sahanavr/trivia-api/pkg/http/errors"
)

// Handlers provides the quiz-play REST endpoint.
type Handlers struct {
	selector *Selector
	logger   zerolog.Logger
}

func NewHandlers(selector *Selector, logger zerolog.Logger) *Handlers {
	return &Handlers{
		selector: selector,
		logger:   logger.With().Str("component", "quiz_http").Logger(),
	}
}

type playRequest struct {
	PreviousQuestions []int `json:"previous_questions"`
	QuizCategory      struct {
		ID int `json:"id"`
	} `json:"quiz_category"`
}

type playResponse struct {
	Success  bool               `json:"success"`
	Question *question.Question `json:"question"`
}

// Play handles POST /api/questions/quiz. A null question in the response
// means the eligible set is exhausted and the quiz is complete.
func (h *Handlers) Play(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, "")
		return
	}

	next, err := h.selector.PickNext(r.Context(), req.PreviousQuestions, req.QuizCategory.ID)
	if err != nil {
		h.logger.Error().Err(err).Msg("quiz selection failed")
		httperrors.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(playResponse{Success: true, Question: next}); err != nil {
		h.logger.Error().Err(err).Msg("encode response failed")
	}
}
