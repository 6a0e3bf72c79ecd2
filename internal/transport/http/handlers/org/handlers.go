package orghandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"luiza/internal/domain/org"
	"luiza/internal/transport/http/api"
	"luiza/internal/transport/http/middleware"
	"luiza/internal/transport/http/shared"
)

type Handler struct {
	Service *org.Service
}

func NewHandler(service *org.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/units", func(r chi.Router) {
		r.With(middleware.RequireAuth).Get("/", h.handleListUnits)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreateUnit)
		r.With(middleware.RequireAdmin).Patch("/{unitID}", h.handleSetUnitActive)
	})
	r.Route("/sectors", func(r chi.Router) {
		r.With(middleware.RequireAuth).Get("/", h.handleListSectors)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreateSector)
		r.With(middleware.RequireAdmin).Patch("/{sectorID}", h.handleSetSectorActive)
	})
	r.Route("/positions", func(r chi.Router) {
		r.With(middleware.RequireAuth).Get("/", h.handleListPositions)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreatePosition)
		r.With(middleware.RequireAdmin).Put("/{positionID}", h.handleUpdatePosition)
	})
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleListEmployees)
		r.Get("/{employeeID}", h.handleGetEmployee)
		r.With(middleware.RequireEvaluator).Post("/", h.handleCreateEmployee)
		r.With(middleware.RequireEvaluator).Put("/{employeeID}", h.handleUpdateEmployee)
		r.With(middleware.RequireAdmin).Delete("/{employeeID}", h.handleDeleteEmployee)
	})
}

func (h *Handler) handleListUnits(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("all") == ""
	units, err := h.Service.ListUnits(r.Context(), onlyActive)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "unit_list_failed", "failed to list units", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, units, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateUnit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateUnit(r.Context(), payload.Name)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "unit_create_failed", "failed to create unit", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetUnitActive(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	err := h.Service.SetUnitActive(r.Context(), chi.URLParam(r, "unitID"), payload.Active)
	if errors.Is(err, org.ErrUnitNotFound) {
		api.Fail(w, http.StatusNotFound, "unit_not_found", "unit not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "unit_update_failed", "failed to update unit", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"active": payload.Active}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListSectors(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("all") == ""
	sectors, err := h.Service.ListSectors(r.Context(), onlyActive)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "sector_list_failed", "failed to list sectors", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, sectors, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateSector(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name   string `json:"name"`
		UnitID string `json:"unitId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	var unitID *string
	if payload.UnitID != "" {
		unitID = &payload.UnitID
	}
	id, err := h.Service.CreateSector(r.Context(), payload.Name, unitID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "sector_create_failed", "failed to create sector", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetSectorActive(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	err := h.Service.SetSectorActive(r.Context(), chi.URLParam(r, "sectorID"), payload.Active)
	if errors.Is(err, org.ErrSectorNotFound) {
		api.Fail(w, http.StatusNotFound, "sector_not_found", "sector not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "sector_update_failed", "failed to update sector", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"active": payload.Active}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Service.ListPositions(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "position_list_failed", "failed to list positions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, positions, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreatePosition(w http.ResponseWriter, r *http.Request) {
	var payload org.Position
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreatePosition(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "position_create_failed", "failed to create position", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	var payload org.Position
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "positionID")
	err := h.Service.UpdatePosition(r.Context(), payload)
	if errors.Is(err, org.ErrPositionNotFound) {
		api.Fail(w, http.StatusNotFound, "position_not_found", "position not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "position_update_failed", "failed to update position", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	employees, err := h.Service.ListEmployees(r.Context(), query.Get("unit"), query.Get("sector"), query.Get("status"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.Service.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, org.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_lookup_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employee, middleware.GetRequestID(r.Context()))
}

type employeePayload struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Sector        string `json:"sector"`
	Unit          string `json:"unit"`
	PositionID    string `json:"positionId"`
	AdmissionDate string `json:"admissionDate"`
	Status        string `json:"status"`
	ManagerID     string `json:"managerId"`
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("sector", payload.Sector, "sector is required")
	v.EnumExact("unit", payload.Unit, org.CompanyUnits, "unknown company unit")
	v.Enum("status", payload.Status, []string{org.StatusActive, org.StatusProbation, org.StatusTerminated}, "unknown status")
	admission, _ := v.Date("admissionDate", payload.AdmissionDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateEmployee(r.Context(), org.Employee{
		Name:          payload.Name,
		Email:         payload.Email,
		Sector:        payload.Sector,
		Unit:          payload.Unit,
		PositionID:    payload.PositionID,
		AdmissionDate: admission,
		Status:        payload.Status,
		ManagerID:     payload.ManagerID,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	employee, err := h.Service.GetEmployee(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_lookup_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, employee, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("sector", payload.Sector, "sector is required")
	v.EnumExact("unit", payload.Unit, org.CompanyUnits, "unknown company unit")
	v.Enum("status", payload.Status, []string{org.StatusActive, org.StatusProbation, org.StatusTerminated}, "unknown status")
	admission, _ := v.Date("admissionDate", payload.AdmissionDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err := h.Service.UpdateEmployee(r.Context(), org.Employee{
		ID:            employeeID,
		Name:          payload.Name,
		Email:         payload.Email,
		Sector:        payload.Sector,
		Unit:          payload.Unit,
		PositionID:    payload.PositionID,
		AdmissionDate: admission,
		Status:        payload.Status,
		ManagerID:     payload.ManagerID,
	})
	if errors.Is(err, org.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", middleware.GetRequestID(r.Context()))
		return
	}
	employee, err := h.Service.GetEmployee(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_lookup_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employee, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, org.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

