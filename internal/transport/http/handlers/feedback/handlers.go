package feedbackhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"luiza/internal/domain/feedback"
	"luiza/internal/transport/http/api"
	"luiza/internal/transport/http/middleware"
	"luiza/internal/transport/http/shared"
)

type Handler struct {
	Service *feedback.Service
}

func NewHandler(service *feedback.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/feedbacks", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.With(middleware.RequireEvaluator).Post("/", h.handleCreate)
		r.Get("/", h.handleList)
		r.Get("/{feedbackID}", h.handleGet)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID          string `json:"employeeId"`
		FeedbackDate        string `json:"feedbackDate"`
		Pauta               string `json:"pauta"`
		EmployeePositioning string `json:"employeePositioning"`
		Observations        string `json:"observations"`
		ActionPlan          string `json:"actionPlan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	v.Required("pauta", payload.Pauta, "pauta is required")
	v.Required("employeePositioning", payload.EmployeePositioning, "employee positioning is required")
	var feedbackDate time.Time
	if payload.FeedbackDate != "" {
		feedbackDate, _ = v.Date("feedbackDate", payload.FeedbackDate)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	created, err := h.Service.Create(r.Context(), feedback.Feedback{
		EmployeeID:          payload.EmployeeID,
		RecorderID:          user.UserID,
		FeedbackDate:        feedbackDate,
		Pauta:               payload.Pauta,
		EmployeePositioning: payload.EmployeePositioning,
		Observations:        payload.Observations,
		ActionPlan:          payload.ActionPlan,
	})
	if errors.Is(err, feedback.ErrMissingFields) {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "feedback_create_failed", "failed to record feedback", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	pagination := shared.ParsePagination(r, 50, 200)
	employeeID := r.URL.Query().Get("employeeId")

	var (
		feedbacks []feedback.Feedback
		err       error
	)
	if employeeID != "" {
		feedbacks, err = h.Service.ListByEmployee(r.Context(), employeeID, pagination.Limit, pagination.Offset)
	} else {
		feedbacks, err = h.Service.List(r.Context(), pagination.Limit, pagination.Offset)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "feedback_list_failed", "failed to list feedbacks", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, feedbacks, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	fb, err := h.Service.Get(r.Context(), chi.URLParam(r, "feedbackID"))
	if errors.Is(err, feedback.ErrFeedbackNotFound) {
		api.Fail(w, http.StatusNotFound, "feedback_not_found", "feedback not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "feedback_lookup_failed", "failed to load feedback", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, fb, middleware.GetRequestID(r.Context()))
}
