package entity

import "time"

// Category groups products; names are unique.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
