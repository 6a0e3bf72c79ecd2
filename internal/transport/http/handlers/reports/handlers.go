package reportshandler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"luiza/internal/domain/evaluation"
	"luiza/internal/domain/indicators"
	"luiza/internal/domain/org"
	"luiza/internal/domain/reports"
	"luiza/internal/transport/http/api"
	"luiza/internal/transport/http/middleware"
	"luiza/internal/transport/http/shared"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.With(middleware.RequireEvaluator).Get("/evaluations/experience/{evaluationID}.pdf", h.handleExperiencePDF)
		r.With(middleware.RequireAdmin).Get("/turnover.pdf", h.handleTurnoverPDF)
		r.With(middleware.RequireAdmin).Get("/hr-metrics.pdf", h.handleHRMetricsPDF)
	})
}

// Reports render into memory first so a failed generation never leaves a
// half-written PDF on the wire.
func servePDF(w http.ResponseWriter, filename string, body *bytes.Buffer) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = body.WriteTo(w)
}

func (h *Handler) handleExperiencePDF(w http.ResponseWriter, r *http.Request) {
	evaluationID := chi.URLParam(r, "evaluationID")

	var body bytes.Buffer
	err := h.Service.ExperienceEvaluationPDF(r.Context(), evaluationID, &body)
	if errors.Is(err, evaluation.ErrEvaluationNotFound) || errors.Is(err, org.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "report_source_not_found", "evaluation not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to generate report", middleware.GetRequestID(r.Context()))
		return
	}
	servePDF(w, "avaliacao-experiencia-"+evaluationID+".pdf", &body)
}

func (h *Handler) handleTurnoverPDF(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}

	var body bytes.Buffer
	if err := h.Service.TurnoverSummaryPDF(r.Context(), filter, &body); err != nil {
		api.Fail(w, http.StatusBadGateway, "indicators_unavailable", "indicator data unavailable", middleware.GetRequestID(r.Context()))
		return
	}
	servePDF(w, "resumo-turnover.pdf", &body)
}

func (h *Handler) handleHRMetricsPDF(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}

	var body bytes.Buffer
	if err := h.Service.HRMetricsPDF(r.Context(), filter, &body); err != nil {
		api.Fail(w, http.StatusBadGateway, "indicators_unavailable", "indicator data unavailable", middleware.GetRequestID(r.Context()))
		return
	}
	servePDF(w, "metricas-rh.pdf", &body)
}

func parseFilter(w http.ResponseWriter, r *http.Request) (indicators.Filter, bool) {
	query := r.URL.Query()
	v := shared.NewValidator()

	filter := indicators.Filter{
		Unit:   query.Get("unit"),
		Sector: query.Get("sector"),
	}
	if raw := query.Get("from"); raw != "" {
		filter.From, _ = v.Date("from", raw)
	}
	if raw := query.Get("to"); raw != "" {
		filter.To, _ = v.Date("to", raw)
	}
	v.DateOrder("from", filter.From, "to", filter.To)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return indicators.Filter{}, false
	}
	return filter, true
}
