package evaluationhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"luiza/internal/domain/evaluation"
	"luiza/internal/transport/http/api"
	"luiza/internal/transport/http/middleware"
	"luiza/internal/transport/http/shared"
)

type Handler struct {
	Service *evaluation.Service
}

func NewHandler(service *evaluation.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/evaluations", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.With(middleware.RequireEvaluator).Post("/experience", h.handleCreateExperience)
		r.Get("/experience", h.handleListExperience)
		r.Get("/experience/{evaluationID}", h.handleGetExperience)
		r.With(middleware.RequireEvaluator).Post("/quarterly", h.handleCreateQuarterly)
		r.Get("/quarterly", h.handleListQuarterly)
		r.With(middleware.RequireEvaluator).Post("/supervisor", h.handleCreateSupervisor)
		r.Get("/supervisor", h.handleListSupervisor)
		r.Get("/rubrics/{version}", h.handleGetRubric)
	})
}

// scoringFail maps the engine's refusal errors onto validation responses so
// the form can highlight the offending questions.
func scoringFail(w http.ResponseWriter, r *http.Request, err error) bool {
	var missing *evaluation.MissingAnswersError
	if errors.As(err, &missing) {
		issues := make([]shared.ValidationIssue, 0, len(missing.Missing))
		for _, key := range missing.Missing {
			issues = append(issues, shared.ValidationIssue{Field: key, Reason: "answer is required"})
		}
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), issues)
		return true
	}
	var outOfRange *evaluation.OutOfRangeError
	if errors.As(err, &outOfRange) {
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), []shared.ValidationIssue{
			{Field: outOfRange.Key, Reason: outOfRange.Error()},
		})
		return true
	}
	return false
}

func (h *Handler) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID      string             `json:"employeeId"`
		Period          string             `json:"period"`
		EvaluationDate  string             `json:"evaluationDate"`
		Answers         map[string]float64 `json:"answers"`
		Outcome         string             `json:"outcome"`
		EmployeeNotes   string             `json:"employeeNotes"`
		SupervisorNotes string             `json:"supervisorNotes"`
		Observations    string             `json:"observations"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	v.EnumExact("period", payload.Period, []string{evaluation.Period45Days, evaluation.Period90Days}, "period must be 45 dias or 90 dias")
	v.Required("period", payload.Period, "period is required")
	var evaluationDate time.Time
	if payload.EvaluationDate != "" {
		evaluationDate, _ = v.Date("evaluationDate", payload.EvaluationDate)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	created, err := h.Service.CreateExperience(r.Context(), evaluation.ExperienceEvaluation{
		EmployeeID:      payload.EmployeeID,
		EvaluatorID:     user.UserID,
		Period:          payload.Period,
		EvaluationDate:  evaluationDate,
		Answers:         payload.Answers,
		Outcome:         payload.Outcome,
		EmployeeNotes:   payload.EmployeeNotes,
		SupervisorNotes: payload.SupervisorNotes,
		Observations:    payload.Observations,
	})
	if scoringFail(w, r, err) {
		return
	}
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "evaluation_rejected", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListExperience(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.Service.ListExperience(r.Context(), r.URL.Query().Get("employeeId"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_list_failed", "failed to list evaluations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, evaluations, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetExperience(w http.ResponseWriter, r *http.Request) {
	eval, err := h.Service.GetExperience(r.Context(), chi.URLParam(r, "evaluationID"))
	if errors.Is(err, evaluation.ErrEvaluationNotFound) {
		api.Fail(w, http.StatusNotFound, "evaluation_not_found", "evaluation not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_lookup_failed", "failed to load evaluation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, eval, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateQuarterly(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID     string         `json:"employeeId"`
		Quarter        int            `json:"quarter"`
		EvaluationDate string         `json:"evaluationDate"`
		Answers        map[string]int `json:"answers"`
		Observations   string         `json:"observations"`
		EmployeeAgreed bool           `json:"employeeAgreed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	if payload.Quarter < 1 || payload.Quarter > 4 {
		v.Add("quarter", "quarter must be between 1 and 4")
	}
	var evaluationDate time.Time
	if payload.EvaluationDate != "" {
		evaluationDate, _ = v.Date("evaluationDate", payload.EvaluationDate)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	created, err := h.Service.CreateQuarterly(r.Context(), evaluation.QuarterlyEvaluation{
		EmployeeID:     payload.EmployeeID,
		EvaluatorID:    user.UserID,
		Quarter:        payload.Quarter,
		EvaluationDate: evaluationDate,
		Answers:        payload.Answers,
		Observations:   payload.Observations,
		EmployeeAgreed: payload.EmployeeAgreed,
	})
	if scoringFail(w, r, err) {
		return
	}
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "evaluation_rejected", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListQuarterly(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.Service.ListQuarterly(r.Context(), r.URL.Query().Get("employeeId"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_list_failed", "failed to list evaluations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, evaluations, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateSupervisor(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID     string             `json:"employeeId"`
		Unit           string             `json:"unit"`
		ReviewPeriod   string             `json:"reviewPeriod"`
		EvaluationDate string             `json:"evaluationDate"`
		RubricVersion  string             `json:"rubricVersion"`
		Answers        map[string]float64 `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	var evaluationDate time.Time
	if payload.EvaluationDate != "" {
		evaluationDate, _ = v.Date("evaluationDate", payload.EvaluationDate)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	created, err := h.Service.CreateSupervisor(r.Context(), evaluation.SupervisorEvaluation{
		EmployeeID:     payload.EmployeeID,
		SupervisorID:   user.UserID,
		Unit:           payload.Unit,
		ReviewPeriod:   payload.ReviewPeriod,
		EvaluationDate: evaluationDate,
		RubricVersion:  payload.RubricVersion,
		Answers:        payload.Answers,
	})
	if scoringFail(w, r, err) {
		return
	}
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "evaluation_rejected", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListSupervisor(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.Service.ListSupervisor(r.Context(), r.URL.Query().Get("employeeId"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_list_failed", "failed to list evaluations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, evaluations, middleware.GetRequestID(r.Context()))
}

// handleGetRubric lets the form render the item table for a rubric version.
func (h *Handler) handleGetRubric(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")
	if version == "current" {
		version = ""
	}
	rubric, err := evaluation.RubricByVersion(version)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "rubric_not_found", "unknown rubric version", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rubric, middleware.GetRequestID(r.Context()))
}
