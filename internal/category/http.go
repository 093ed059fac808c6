package category

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/sahanavr/trivia-api/pkg/http/errors"
)

// Handlers provides the REST endpoint for categories.
type Handlers struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandlers(svc *Service, logger zerolog.Logger) *Handlers {
	return &Handlers{
		svc:    svc,
		logger: logger.With().Str("component", "category_http").Logger(),
	}
}

type listResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

// List handles GET /api/categories.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Map(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list categories failed")
		httperrors.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listResponse{Success: true, Categories: cats}); err != nil {
		h.logger.Error().Err(err).Msg("encode response failed")
	}
}
