package org

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) ListUnits(ctx context.Context, onlyActive bool) ([]Unit, error) {
	return s.Store.ListUnits(ctx, onlyActive)
}

func (s *Service) CreateUnit(ctx context.Context, name string) (string, error) {
	return s.Store.CreateUnit(ctx, strings.TrimSpace(name))
}

func (s *Service) SetUnitActive(ctx context.Context, unitID string, active bool) error {
	return s.Store.SetUnitActive(ctx, unitID, active)
}

func (s *Service) ListSectors(ctx context.Context, onlyActive bool) ([]Sector, error) {
	return s.Store.ListSectors(ctx, onlyActive)
}

func (s *Service) CreateSector(ctx context.Context, name string, unitID *string) (string, error) {
	return s.Store.CreateSector(ctx, strings.TrimSpace(name), unitID)
}

func (s *Service) SetSectorActive(ctx context.Context, sectorID string, active bool) error {
	return s.Store.SetSectorActive(ctx, sectorID, active)
}

func (s *Service) ListPositions(ctx context.Context) ([]Position, error) {
	return s.Store.ListPositions(ctx)
}

func (s *Service) CreatePosition(ctx context.Context, position Position) (string, error) {
	if strings.TrimSpace(position.Code) == "" {
		position.Code = fmt.Sprintf("CARGO_%s", strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(position.Name), " ", "_")))
	}
	return s.Store.CreatePosition(ctx, position)
}

func (s *Service) UpdatePosition(ctx context.Context, position Position) error {
	return s.Store.UpdatePosition(ctx, position)
}

func (s *Service) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	return s.Store.GetEmployee(ctx, employeeID)
}

func (s *Service) ListEmployees(ctx context.Context, unit, sector, status string) ([]Employee, error) {
	return s.Store.ListEmployees(ctx, unit, sector, status)
}

func (s *Service) CreateEmployee(ctx context.Context, employee Employee) (string, error) {
	if employee.Status == "" {
		employee.Status = StatusActive
	}
	return s.Store.CreateEmployee(ctx, employee)
}

func (s *Service) UpdateEmployee(ctx context.Context, employee Employee) error {
	return s.Store.UpdateEmployee(ctx, employee)
}

func (s *Service) UpdateEmployeeStatus(ctx context.Context, employeeID, status string) error {
	return s.Store.UpdateEmployeeStatus(ctx, employeeID, status)
}

func (s *Service) DeleteEmployee(ctx context.Context, employeeID string) error {
	return s.Store.DeleteEmployee(ctx, employeeID)
}
