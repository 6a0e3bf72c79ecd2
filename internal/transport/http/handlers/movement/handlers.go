package movementhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"luiza/internal/domain/movement"
	"luiza/internal/domain/org"
	"luiza/internal/transport/http/api"
	"luiza/internal/transport/http/middleware"
	"luiza/internal/transport/http/shared"
)

type Handler struct {
	Service *movement.Service
}

func NewHandler(service *movement.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/movements", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Get("/{movementID}", h.handleGet)
		r.With(middleware.RequireEvaluator).Post("/", h.handleCreate)
		r.With(middleware.RequireAdmin).Post("/{movementID}/approve", h.handleApprove)
		r.With(middleware.RequireAdmin).Post("/{movementID}/reject", h.handleReject)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Motivo          string `json:"motivo"`
		Unit            string `json:"unit"`
		Sector          string `json:"sector"`
		PositionTitle   string `json:"positionTitle"`
		EmployeeID      string `json:"employeeId"`
		RequisitionDate string `json:"requisitionDate"`
		Notes           string `json:"notes"`
		Termination     *struct {
			RescissionType  string `json:"rescissionType"`
			TerminationDate string `json:"terminationDate"`
			NoticeWorked    bool   `json:"noticeWorked"`
			RehireEligible  bool   `json:"rehireEligible"`
			DuringProbation bool   `json:"duringProbation"`
		} `json:"termination"`
		Promotion *struct {
			CurrentSalary  float64 `json:"currentSalary"`
			CurrentBonus   float64 `json:"currentBonus"`
			ProposedSalary float64 `json:"proposedSalary"`
			ProposedBonus  float64 `json:"proposedBonus"`
		} `json:"promotion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())

	v := shared.NewValidator()
	v.Required("motivo", payload.Motivo, "motivo is required")
	v.EnumExact("motivo", payload.Motivo, movement.Motivos, "unknown motivo")
	v.Required("unit", payload.Unit, "unit is required")
	v.EnumExact("unit", payload.Unit, org.CompanyUnits, "unknown company unit")
	var requisitionDate time.Time
	if payload.RequisitionDate != "" {
		requisitionDate, _ = v.Date("requisitionDate", payload.RequisitionDate)
	}
	var terminationDate time.Time
	if payload.Termination != nil {
		v.EnumExact("termination.rescissionType", payload.Termination.RescissionType, movement.RescissionTypes, "unknown rescission type")
		v.Required("termination.rescissionType", payload.Termination.RescissionType, "rescission type is required")
		if payload.Termination.TerminationDate != "" {
			terminationDate, _ = v.Date("termination.terminationDate", payload.Termination.TerminationDate)
		}
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	mv := movement.Movement{
		Motivo:          payload.Motivo,
		Unit:            payload.Unit,
		Sector:          payload.Sector,
		PositionTitle:   payload.PositionTitle,
		RequesterID:     user.UserID,
		EmployeeID:      payload.EmployeeID,
		RequisitionDate: requisitionDate,
		Notes:           payload.Notes,
	}
	if payload.Termination != nil {
		mv.Termination = &movement.TerminationDetails{
			RescissionType:  payload.Termination.RescissionType,
			TerminationDate: terminationDate,
			NoticeWorked:    payload.Termination.NoticeWorked,
			RehireEligible:  payload.Termination.RehireEligible,
			DuringProbation: payload.Termination.DuringProbation,
		}
	}
	if payload.Promotion != nil {
		mv.Promotion = &movement.PromotionDetails{
			CurrentSalary:  payload.Promotion.CurrentSalary,
			CurrentBonus:   payload.Promotion.CurrentBonus,
			ProposedSalary: payload.Promotion.ProposedSalary,
			ProposedBonus:  payload.Promotion.ProposedBonus,
		}
	}

	created, err := h.Service.Create(r.Context(), mv)
	if errors.Is(err, movement.ErrInvalidMotivo) ||
		errors.Is(err, movement.ErrInvalidRescissionType) ||
		errors.Is(err, movement.ErrMissingSubBlock) {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "movement_create_failed", "failed to create movement", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	pagination := shared.ParsePagination(r, 50, 200)
	query := r.URL.Query()

	v := shared.NewValidator()
	var filter movement.ListFilter
	filter.Unit = query.Get("unit")
	filter.Motivo = query.Get("motivo")
	filter.Status = query.Get("status")
	filter.Limit = pagination.Limit
	filter.Offset = pagination.Offset
	if raw := query.Get("from"); raw != "" {
		filter.From, _ = v.Date("from", raw)
	}
	if raw := query.Get("to"); raw != "" {
		filter.To, _ = v.Date("to", raw)
	}
	v.DateOrder("from", filter.From, "to", filter.To)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	movements, err := h.Service.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "movement_list_failed", "failed to list movements", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, movements, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	mv, err := h.Service.Get(r.Context(), chi.URLParam(r, "movementID"))
	if errors.Is(err, movement.ErrMovementNotFound) {
		api.Fail(w, http.StatusNotFound, "movement_not_found", "movement not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "movement_lookup_failed", "failed to load movement", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, mv, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	mv, err := h.Service.Approve(r.Context(), chi.URLParam(r, "movementID"))
	if errors.Is(err, movement.ErrMovementNotFound) {
		api.Fail(w, http.StatusConflict, "movement_not_pending", "movement not found or already closed", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "movement_approve_failed", "failed to approve movement", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, mv, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	mv, err := h.Service.Reject(r.Context(), chi.URLParam(r, "movementID"))
	if errors.Is(err, movement.ErrMovementNotFound) {
		api.Fail(w, http.StatusConflict, "movement_not_pending", "movement not found or already closed", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "movement_reject_failed", "failed to reject movement", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, mv, middleware.GetRequestID(r.Context()))
}
