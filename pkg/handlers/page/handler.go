package page

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/de-tools/growth-atlas/pkg/adapters"
	"github.com/de-tools/growth-atlas/pkg/models/api"
	"github.com/de-tools/growth-atlas/pkg/services/calculator"
	"github.com/rs/zerolog"
)

//go:embed templates/index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type indexData struct {
	Fields []api.Field
	Values map[string]string
	View   api.View
}

type Handler struct {
	calc calculator.Service
}

func NewHandler(calc calculator.Service) *Handler {
	return &Handler{calc: calc}
}

// Index renders the calculator page for the parameters in the query string.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
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

	data := indexData{
		Fields: []api.Field{},
		Values: adapters.MapParametersToValues(view.Parameters),
		View:   adapters.MapViewDomainToApi(view, rejected),
	}
	for _, d := range h.calc.Fields(ctx) {
		data.Fields = append(data.Fields, adapters.MapDescriptorToApi(d))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to render page")
	}
}
