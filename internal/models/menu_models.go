package models

import "time"

// MenuItem represents a sellable dish or drink. Popularity is an optional
// editorial score maintained on the menu screens.
type MenuItem struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Category   *string   `json:"category,omitempty" db:"category"`
	Price      float64   `json:"price" db:"price"`
	Popularity *float64  `json:"popularity,omitempty" db:"popularity"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
