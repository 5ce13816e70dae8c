package models

import "time"

// Staff roles. Admin accounts exist for back-office access and are
// excluded from staff reporting.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleChef    = "chef"
	RoleWaiter  = "waiter"
)

// StaffMember represents an employee.
type StaffMember struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Role      *string   `json:"role,omitempty" db:"role"`
	Email     *string   `json:"email,omitempty" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
