package projection

import (
	"encoding/json"
	"net/http"

	"github.com/de-tools/growth-atlas/pkg/adapters"
	"github.com/de-tools/growth-atlas/pkg/models/api"
	"github.com/de-tools/growth-atlas/pkg/services/calculator"
	"github.com/rs/zerolog"
)

type Handler struct {
	calc calculator.Service
}

func NewHandler(calc calculator.Service) *Handler {
	return &Handler{calc: calc}
}

func (h *Handler) ListFields(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	response := []api.Field{}
	for _, d := range h.calc.Fields(ctx) {
		response = append(response, adapters.MapDescriptorToApi(d))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode fields")
	}
}

// GetProjection evaluates the calculator with the fields present in the
// query string. A field may repeat; its values are applied in order, so a
// rejected value falls back to the one before it. Rejections are reported
// in the response, they are not an error.
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	view, rejected, err := h.calc.Evaluate(ctx, adapters.MapQueryToUpdates(r.URL.Query()))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to evaluate projection")
		http.Error(w, "failed to evaluate projection", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(adapters.MapViewDomainToApi(view, rejected))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode projection")
	}
}
