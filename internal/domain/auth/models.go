package auth

import "time"

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	EmployeeID string    `json:"employeeId,omitempty"`
	Active     bool      `json:"active"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UserContext is the acting principal carried through the request context.
type UserContext struct {
	UserID     string
	Name       string
	Role       string
	EmployeeID string
}
