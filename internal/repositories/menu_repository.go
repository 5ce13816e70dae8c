package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

// MenuRepository defines read access to the current menu snapshot.
type MenuRepository interface {
	GetAllItems(ctx context.Context) ([]models.MenuItem, error)
}

type menuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new instance of MenuRepository.
func NewMenuRepository(db *sql.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetAllItems(ctx context.Context) ([]models.MenuItem, error) {
	query := `
		SELECT id, name, category, price, popularity, created_at
		FROM menu_items
		ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying menu items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price,
			&item.Popularity, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning menu item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu items: %v", ErrDatabaseError, err)
	}

	return items, nil
}
