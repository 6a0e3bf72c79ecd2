package org

import "time"

type Unit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type Sector struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UnitID    string    `json:"unitId,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type Position struct {
	ID               string    `json:"id"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	TechnicalSkills  []string  `json:"technicalSkills"`
	BehavioralSkills []string  `json:"behavioralSkills"`
	BaseSalary       *float64  `json:"baseSalary,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Employee struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Sector        string    `json:"sector"`
	Unit          string    `json:"unit,omitempty"`
	PositionID    string    `json:"positionId,omitempty"`
	AdmissionDate time.Time `json:"admissionDate"`
	Status        string    `json:"status"`
	ManagerID     string    `json:"managerId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
