package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

// StaffRepository defines read access to staff members.
type StaffRepository interface {
	// GetActiveStaff returns all staff members except admin accounts,
	// which are back-office logins rather than floor staff.
	GetActiveStaff(ctx context.Context) ([]models.StaffMember, error)
}

type staffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository(db *sql.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetActiveStaff(ctx context.Context) ([]models.StaffMember, error) {
	query := `
		SELECT id, name, role, email, created_at
		FROM staff_members
		WHERE COALESCE(role, '') <> $1
		ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("%w: querying staff members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	staff := []models.StaffMember{}
	for rows.Next() {
		var member models.StaffMember
		if err := rows.Scan(&member.ID, &member.Name, &member.Role, &member.Email,
			&member.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning staff member: %v", ErrDatabaseError, err)
		}
		staff = append(staff, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating staff members: %v", ErrDatabaseError, err)
	}

	return staff, nil
}
