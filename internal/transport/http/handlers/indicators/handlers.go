package indicatorshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"luiza/internal/domain/indicators"
	"luiza/internal/transport/http/api"
	"luiza/internal/transport/http/middleware"
	"luiza/internal/transport/http/shared"
)

type Handler struct {
	Service *indicators.Service
}

func NewHandler(service *indicators.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/indicators", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/turnover", h.handleTurnover)
		r.Get("/turnover/history", h.handleMonthlyHistory)
		r.Get("/turnover/units", h.handleUnitRanking)
		r.Get("/hr-metrics", h.handleHRMetrics)
		r.Get("/hr-indicators", h.handleHRIndicators)
	})
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

func (h *Handler) handleTurnover(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	set, err := h.Service.Turnover(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "indicators_unavailable", "indicator data unavailable", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, set, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMonthlyHistory(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	series, err := h.Service.MonthlyHistory(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "indicators_unavailable", "indicator data unavailable", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, series, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUnitRanking(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	ranking, err := h.Service.UnitRanking(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "indicators_unavailable", "indicator data unavailable", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, ranking, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHRMetrics(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	metrics, err := h.Service.HRMetrics(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "indicators_unavailable", "indicator data unavailable", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, metrics, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHRIndicators(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	result, err := h.Service.HRIndicators(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "indicators_unavailable", "indicator data unavailable", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}
